// Package ballot owns the proposal sequence of an election and its vote
// accumulators. The sequence is fixed at construction. No operation inserts,
// removes or relabels a proposal, and the accumulators only grow.
package ballot

import (
	"github.com/tokenized/ballot-engine/internal/platform/state"
	"github.com/tokenized/ballot-engine/pkg/protocol"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidProposal occurs when a proposal index is out of range.
	ErrInvalidProposal = errors.New("Invalid proposal")
)

// New builds the proposal sequence for the given labels. The sequence is
// complete and final when New returns.
func New(labels []string) (state.Ballot, error) {
	result := state.Ballot{
		Proposals: make([]state.Proposal, 0, len(labels)),
	}

	for i, text := range labels {
		label, err := protocol.NewLabel(text)
		if err != nil {
			return result, errors.Wrapf(err, "label %d", i)
		}

		result.Proposals = append(result.Proposals, state.Proposal{Label: label})
	}

	return result, nil
}

// Length returns the number of proposals.
func Length(b *state.Ballot) uint32 {
	return uint32(len(b.Proposals))
}

// VoteCount returns the accumulated count of the proposal at index.
func VoteCount(b *state.Ballot, index uint32) (uint32, error) {
	if index >= uint32(len(b.Proposals)) {
		return 0, errors.Wrapf(ErrInvalidProposal, "index %d of %d", index,
			len(b.Proposals))
	}

	return b.Proposals[index].VoteCount, nil
}

// Label returns the label of the proposal at index, trimmed of padding.
func Label(b *state.Ballot, index uint32) (string, error) {
	if index >= uint32(len(b.Proposals)) {
		return "", errors.Wrapf(ErrInvalidProposal, "index %d of %d", index,
			len(b.Proposals))
	}

	return b.Proposals[index].Label.String(), nil
}

// AddVotes adds amount to the accumulator of the proposal at index. It is
// the only operation that changes an accumulator.
func AddVotes(b *state.Ballot, index uint32, amount uint32) error {
	if index >= uint32(len(b.Proposals)) {
		return errors.Wrapf(ErrInvalidProposal, "index %d of %d", index,
			len(b.Proposals))
	}

	b.Proposals[index].VoteCount += amount
	return nil
}
