package registry

import (
	"context"
	"testing"

	"github.com/tokenized/ballot-engine/internal/ballot"
	"github.com/tokenized/ballot-engine/internal/platform/state"
	"github.com/tokenized/ballot-engine/pkg/identity"
	"github.com/tokenized/ballot-engine/pkg/protocol"

	"github.com/pkg/errors"
)

var (
	adminID = testID(0x01)
	aliceID = testID(0x20)
	bobID   = testID(0x30)
)

func testID(first byte) identity.ID {
	var id identity.ID
	for i := range id {
		id[i] = first + byte(i)
	}
	return id
}

func testElection(t *testing.T) *state.Election {
	b, err := ballot.New([]string{"Alpha", "Beta", "Gamma"})
	if err != nil {
		t.Fatal(err)
	}

	now := protocol.CurrentTimestamp()
	return &state.Election{
		Admin: adminID,
		Participants: map[identity.ID]*state.Participant{
			adminID: {Weight: 1},
		},
		Ballot:    b,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestFetch_Lazy(t *testing.T) {
	e := testElection(t)

	participant := Fetch(e, aliceID)
	if participant.Weight != 0 || participant.Voted {
		t.Errorf("got %+v, want zero record", participant)
	}

	// A read never inserts.
	if len(e.Participants) != 1 {
		t.Errorf("got %v participants, want 1", len(e.Participants))
	}

	if WeightOf(e, aliceID) != 0 {
		t.Errorf("got %v, want 0", WeightOf(e, aliceID))
	}
	if HasVoted(e, aliceID) {
		t.Error("got voted, want not voted")
	}
}

func TestGrantRight(t *testing.T) {
	ctx := context.Background()
	e := testElection(t)
	now := protocol.NewTimestamp(42)

	if err := GrantRight(ctx, e, adminID, aliceID, now); err != nil {
		t.Fatal(err)
	}

	if WeightOf(e, aliceID) != 1 {
		t.Errorf("got %v, want 1", WeightOf(e, aliceID))
	}
	if HasVoted(e, aliceID) {
		t.Error("got voted, want not voted")
	}
	if !e.UpdatedAt.Equal(now) {
		t.Errorf("got %v, want %v", e.UpdatedAt, now)
	}
}

func TestGrantRight_Unauthorized(t *testing.T) {
	ctx := context.Background()
	e := testElection(t)
	now := protocol.CurrentTimestamp()

	err := GrantRight(ctx, e, aliceID, bobID, now)
	if errors.Cause(err) != ErrUnauthorized {
		t.Errorf("got %v, want %v", err, ErrUnauthorized)
	}

	if WeightOf(e, bobID) != 0 {
		t.Errorf("got %v, want 0", WeightOf(e, bobID))
	}
}

func TestGrantRight_Repeated(t *testing.T) {
	ctx := context.Background()
	e := testElection(t)
	now := protocol.CurrentTimestamp()

	if err := GrantRight(ctx, e, adminID, aliceID, now); err != nil {
		t.Fatal(err)
	}

	err := GrantRight(ctx, e, adminID, aliceID, now)
	if errors.Cause(err) != ErrAlreadyEnfranchised {
		t.Errorf("got %v, want %v", err, ErrAlreadyEnfranchised)
	}

	if WeightOf(e, aliceID) != 1 {
		t.Errorf("got %v, want 1", WeightOf(e, aliceID))
	}
}

func TestGrantRight_AfterVote(t *testing.T) {
	ctx := context.Background()
	e := testElection(t)
	now := protocol.CurrentTimestamp()

	if err := GrantRight(ctx, e, adminID, aliceID, now); err != nil {
		t.Fatal(err)
	}
	if err := CastVote(ctx, e, aliceID, 1, now); err != nil {
		t.Fatal(err)
	}

	err := GrantRight(ctx, e, adminID, aliceID, now)
	if errors.Cause(err) != ErrAlreadyVoted {
		t.Errorf("got %v, want %v", err, ErrAlreadyVoted)
	}
}

func TestGrantRight_AuthorizationFirst(t *testing.T) {
	ctx := context.Background()
	e := testElection(t)
	now := protocol.CurrentTimestamp()

	if err := GrantRight(ctx, e, adminID, aliceID, now); err != nil {
		t.Fatal(err)
	}
	if err := CastVote(ctx, e, aliceID, 0, now); err != nil {
		t.Fatal(err)
	}

	// An unauthorized caller is refused before the target is examined.
	err := GrantRight(ctx, e, bobID, aliceID, now)
	if errors.Cause(err) != ErrUnauthorized {
		t.Errorf("got %v, want %v", err, ErrUnauthorized)
	}
}

func TestCastVote(t *testing.T) {
	ctx := context.Background()
	e := testElection(t)
	now := protocol.CurrentTimestamp()

	if err := GrantRight(ctx, e, adminID, aliceID, now); err != nil {
		t.Fatal(err)
	}

	if err := CastVote(ctx, e, aliceID, 2, now); err != nil {
		t.Fatal(err)
	}

	if !HasVoted(e, aliceID) {
		t.Error("got not voted, want voted")
	}

	participant := Fetch(e, aliceID)
	if participant.Vote != 2 {
		t.Errorf("got %v, want 2", participant.Vote)
	}
	if participant.Weight != 1 {
		t.Errorf("got %v, want 1", participant.Weight)
	}

	count, err := ballot.VoteCount(&e.Ballot, 2)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("got %v, want 1", count)
	}
}

func TestCastVote_NotEligible(t *testing.T) {
	ctx := context.Background()
	e := testElection(t)
	now := protocol.CurrentTimestamp()

	err := CastVote(ctx, e, aliceID, 0, now)
	if errors.Cause(err) != ErrNotEligible {
		t.Errorf("got %v, want %v", err, ErrNotEligible)
	}

	count, _ := ballot.VoteCount(&e.Ballot, 0)
	if count != 0 {
		t.Errorf("got %v, want 0", count)
	}
}

func TestCastVote_Repeated(t *testing.T) {
	ctx := context.Background()
	e := testElection(t)
	now := protocol.CurrentTimestamp()

	if err := GrantRight(ctx, e, adminID, aliceID, now); err != nil {
		t.Fatal(err)
	}
	if err := CastVote(ctx, e, aliceID, 0, now); err != nil {
		t.Fatal(err)
	}

	err := CastVote(ctx, e, aliceID, 1, now)
	if errors.Cause(err) != ErrAlreadyVoted {
		t.Errorf("got %v, want %v", err, ErrAlreadyVoted)
	}

	// The refused second cast changed nothing.
	count, _ := ballot.VoteCount(&e.Ballot, 0)
	if count != 1 {
		t.Errorf("got %v, want 1", count)
	}
	count, _ = ballot.VoteCount(&e.Ballot, 1)
	if count != 0 {
		t.Errorf("got %v, want 0", count)
	}
}

func TestCastVote_InvalidProposal(t *testing.T) {
	ctx := context.Background()
	e := testElection(t)
	now := protocol.CurrentTimestamp()

	if err := GrantRight(ctx, e, adminID, aliceID, now); err != nil {
		t.Fatal(err)
	}

	err := CastVote(ctx, e, aliceID, 3, now)
	if errors.Cause(err) != ballot.ErrInvalidProposal {
		t.Errorf("got %v, want %v", err, ballot.ErrInvalidProposal)
	}

	// The refused cast is not a spent vote.
	if HasVoted(e, aliceID) {
		t.Error("got voted, want not voted")
	}
	if err := CastVote(ctx, e, aliceID, 0, now); err != nil {
		t.Fatal(err)
	}
}

func TestCastVote_Conservation(t *testing.T) {
	ctx := context.Background()
	e := testElection(t)
	now := protocol.CurrentTimestamp()

	for _, id := range []identity.ID{aliceID, bobID} {
		if err := GrantRight(ctx, e, adminID, id, now); err != nil {
			t.Fatal(err)
		}
	}

	if err := CastVote(ctx, e, adminID, 0, now); err != nil {
		t.Fatal(err)
	}
	if err := CastVote(ctx, e, aliceID, 1, now); err != nil {
		t.Fatal(err)
	}
	if err := CastVote(ctx, e, bobID, 1, now); err != nil {
		t.Fatal(err)
	}

	total := uint32(0)
	for i := uint32(0); i < ballot.Length(&e.Ballot); i++ {
		count, err := ballot.VoteCount(&e.Ballot, i)
		if err != nil {
			t.Fatal(err)
		}
		total += count
	}

	voted := uint32(0)
	for _, participant := range e.Participants {
		if participant.Voted {
			voted += participant.Weight
		}
	}

	if total != voted {
		t.Errorf("got accumulated %v, want %v", total, voted)
	}
}
