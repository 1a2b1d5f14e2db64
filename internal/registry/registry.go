// Package registry owns participant authorization and the single vote
// guarantee. Every operation names the caller explicitly; nothing about the
// caller is taken from ambient context.
package registry

import (
	"context"

	"github.com/tokenized/ballot-engine/internal/ballot"
	"github.com/tokenized/ballot-engine/internal/platform/state"
	"github.com/tokenized/ballot-engine/pkg/identity"
	"github.com/tokenized/ballot-engine/pkg/protocol"

	"github.com/pkg/errors"
	"go.opencensus.io/trace"
)

var (
	// ErrUnauthorized occurs when a caller other than the administrator
	// grants voting rights.
	ErrUnauthorized = errors.New("Unauthorized")

	// ErrAlreadyEnfranchised occurs when the target of a grant already has
	// voting weight.
	ErrAlreadyEnfranchised = errors.New("Already enfranchised")

	// ErrNotEligible occurs when a caller without voting weight casts a
	// ballot.
	ErrNotEligible = errors.New("Not eligible")

	// ErrAlreadyVoted occurs when the participant has already cast a
	// ballot.
	ErrAlreadyVoted = errors.New("Already voted")
)

// Fetch returns the participant record for id. An id never seen before
// yields a zero record, which carries the same meaning as a stored zero
// record. The returned record is not retained; mutating operations store
// theirs.
func Fetch(e *state.Election, id identity.ID) *state.Participant {
	if participant, exists := e.Participants[id]; exists {
		return participant
	}

	return &state.Participant{}
}

// WeightOf returns the voting weight held by id.
func WeightOf(e *state.Election, id identity.ID) uint32 {
	return Fetch(e, id).Weight
}

// HasVoted returns true if id has cast a ballot.
func HasVoted(e *state.Election, id identity.ID) bool {
	return Fetch(e, id).Voted
}

// GrantRight gives target the right to vote. Only the administrator may
// grant, a participant who has voted is final, and a grant never repeats.
func GrantRight(ctx context.Context, e *state.Election, caller identity.ID,
	target identity.ID, now protocol.Timestamp) error {

	_, span := trace.StartSpan(ctx, "internal.registry.GrantRight")
	defer span.End()

	if !caller.Equal(e.Admin) {
		return errors.Wrap(ErrUnauthorized, caller.String())
	}

	participant := Fetch(e, target)

	if participant.Voted {
		return errors.Wrap(ErrAlreadyVoted, target.String())
	}

	if participant.Weight != 0 {
		return errors.Wrap(ErrAlreadyEnfranchised, target.String())
	}

	participant.Weight = 1
	e.Participants[target] = participant
	e.UpdatedAt = now
	return nil
}

// CastVote records the caller's vote for the proposal at index and adds the
// caller's weight to its accumulator. The vote is irrevocable. A failed
// check leaves the election untouched.
func CastVote(ctx context.Context, e *state.Election, caller identity.ID,
	index uint32, now protocol.Timestamp) error {

	_, span := trace.StartSpan(ctx, "internal.registry.CastVote")
	defer span.End()

	participant := Fetch(e, caller)

	if participant.Weight == 0 {
		return errors.Wrap(ErrNotEligible, caller.String())
	}

	if participant.Voted {
		return errors.Wrap(ErrAlreadyVoted, caller.String())
	}

	// The accumulator add is the last step that can fail, so a rejected
	// index has no effect.
	if err := ballot.AddVotes(&e.Ballot, index, participant.Weight); err != nil {
		return err
	}

	participant.Voted = true
	participant.Vote = index
	e.Participants[caller] = participant
	e.UpdatedAt = now
	return nil
}
