package protocol

const (
	RejectionCodeUnauthorized        = uint8(1)
	RejectionCodeAlreadyEnfranchised = uint8(2)
	RejectionCodeNotEligible         = uint8(3)
	RejectionCodeAlreadyVoted        = uint8(4)
	RejectionCodeInvalidProposal     = uint8(5)
	RejectionCodeNoProposals         = uint8(6)
	RejectionCodeNoVotesCast         = uint8(7)
	RejectionCodeMalformed           = uint8(8)
)

var (
	RejectionCodes = map[uint8][]byte{
		RejectionCodeUnauthorized:        []byte("Unauthorized"),
		RejectionCodeAlreadyEnfranchised: []byte("Already Enfranchised"),
		RejectionCodeNotEligible:         []byte("Not Eligible"),
		RejectionCodeAlreadyVoted:        []byte("Already Voted"),
		RejectionCodeInvalidProposal:     []byte("Invalid Proposal"),
		RejectionCodeNoProposals:         []byte("No Proposals"),
		RejectionCodeNoVotesCast:         []byte("No Votes Cast"),
		RejectionCodeMalformed:           []byte("Malformed"),
	}
)

// RejectionText returns the display text for a rejection code.
func RejectionText(code uint8) string {
	text, ok := RejectionCodes[code]
	if !ok {
		return "Unknown"
	}
	return string(text)
}
