// Package tally reads the standing of an election. Nothing here mutates
// state, so results always reflect the accumulators at call time.
package tally

import (
	"github.com/tokenized/ballot-engine/internal/platform/state"

	"github.com/pkg/errors"
)

var (
	// ErrNoProposals occurs when a winner is requested of an election with
	// no proposals.
	ErrNoProposals = errors.New("No proposals")

	// ErrNoVotesCast occurs when a winner is requested before any ballot
	// has been cast.
	ErrNoVotesCast = errors.New("No votes cast")
)

// LeadingIndex returns the index of the proposal holding the highest
// accumulated count. The scan runs in index order and only a strictly
// higher count displaces the leader, so the earliest index wins ties.
func LeadingIndex(b *state.Ballot) uint32 {
	leading := uint32(0)
	highest := uint32(0)

	for i := range b.Proposals {
		if b.Proposals[i].VoteCount > highest {
			highest = b.Proposals[i].VoteCount
			leading = uint32(i)
		}
	}

	return leading
}

// Winner returns the label of the winning proposal.
func Winner(b *state.Ballot) (string, error) {
	if len(b.Proposals) == 0 {
		return "", ErrNoProposals
	}

	leading := LeadingIndex(b)
	if b.Proposals[leading].VoteCount == 0 {
		return "", ErrNoVotesCast
	}

	return b.Proposals[leading].Label.String(), nil
}
