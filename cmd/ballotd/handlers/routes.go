package handlers

import (
	"github.com/tokenized/ballot-engine/internal/ballot"
	"github.com/tokenized/ballot-engine/internal/election"
	"github.com/tokenized/ballot-engine/internal/platform/db"
	"github.com/tokenized/ballot-engine/internal/platform/node"
	"github.com/tokenized/ballot-engine/internal/registry"
	"github.com/tokenized/ballot-engine/internal/tally"
	"github.com/tokenized/ballot-engine/pkg/protocol"
)

// API returns a mux routing each instruction opcode to its handler.
func API(masterDB *db.DB, e *election.Election) *node.App {
	app := node.New()

	// Register participant instructions.
	r := Registry{
		MasterDB: masterDB,
		Election: e,
	}

	app.Handle(protocol.CodeGrantRights, r.GrantRights)
	app.Handle(protocol.CodeParticipantStatus, r.Status)

	// Register voting instructions.
	v := Voting{
		MasterDB: masterDB,
		Election: e,
	}

	app.Handle(protocol.CodeBallotCast, v.Cast)

	// Register tally read instructions.
	t := Tally{
		Election: e,
	}

	app.Handle(protocol.CodeLeadingProposal, t.Leading)
	app.Handle(protocol.CodeWinnerName, t.Winner)

	return app
}

// rejectionCode maps a domain sentinel to its wire rejection code. The
// boolean reports whether the error is one the caller can be told about;
// anything else is a system error.
func rejectionCode(err error) (uint8, bool) {
	switch err {
	case registry.ErrUnauthorized:
		return protocol.RejectionCodeUnauthorized, true
	case registry.ErrAlreadyEnfranchised:
		return protocol.RejectionCodeAlreadyEnfranchised, true
	case registry.ErrNotEligible:
		return protocol.RejectionCodeNotEligible, true
	case registry.ErrAlreadyVoted:
		return protocol.RejectionCodeAlreadyVoted, true
	case ballot.ErrInvalidProposal:
		return protocol.RejectionCodeInvalidProposal, true
	case tally.ErrNoProposals:
		return protocol.RejectionCodeNoProposals, true
	case tally.ErrNoVotesCast:
		return protocol.RejectionCodeNoVotesCast, true
	case protocol.ErrMalformed:
		return protocol.RejectionCodeMalformed, true
	}

	return 0, false
}
