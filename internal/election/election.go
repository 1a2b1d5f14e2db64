// Package election runs the single authoritative election instance. It
// composes the registry rules, the ballot accumulators and the tally reads
// behind one lock, and persists a full snapshot inside every mutation.
package election

import (
	"context"
	"sync"

	"github.com/tokenized/ballot-engine/internal/ballot"
	"github.com/tokenized/ballot-engine/internal/platform/db"
	"github.com/tokenized/ballot-engine/internal/platform/state"
	"github.com/tokenized/ballot-engine/internal/registry"
	"github.com/tokenized/ballot-engine/internal/tally"
	"github.com/tokenized/ballot-engine/pkg/identity"
	"github.com/tokenized/ballot-engine/pkg/protocol"

	"github.com/pkg/errors"
	"go.opencensus.io/trace"
)

// Election is the running aggregate. All access goes through its lock; the
// caller never sees a partially applied mutation.
type Election struct {
	state state.Election
	mutex sync.RWMutex
}

// Create initializes a new election and persists it before returning. The
// administrator and the proposal sequence are final from here on. The
// administrator starts with the right to vote.
func Create(ctx context.Context, dbConn *db.DB, admin identity.ID,
	labels []string, now protocol.Timestamp) (*Election, error) {

	ctx, span := trace.StartSpan(ctx, "internal.election.Create")
	defer span.End()

	if admin.IsZero() {
		return nil, errors.New("Missing administrator")
	}

	if len(labels) == 0 {
		return nil, errors.New("No proposals")
	}

	b, err := ballot.New(labels)
	if err != nil {
		return nil, err
	}

	result := Election{
		state: state.Election{
			Admin: admin,
			Participants: map[identity.ID]*state.Participant{
				admin: {Weight: 1},
			},
			Ballot:    b,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := result.save(ctx, dbConn); err != nil {
		return nil, errors.Wrap(err, "save new election")
	}

	return &result, nil
}

// GrantRight gives target the right to vote and persists the new state.
func (e *Election) GrantRight(ctx context.Context, dbConn *db.DB,
	caller identity.ID, target identity.ID, now protocol.Timestamp) error {

	ctx, span := trace.StartSpan(ctx, "internal.election.GrantRight")
	defer span.End()

	e.mutex.Lock()
	defer e.mutex.Unlock()

	if err := registry.GrantRight(ctx, &e.state, caller, target, now); err != nil {
		return err
	}

	return e.save(ctx, dbConn)
}

// CastBallot records the caller's vote for the proposal at index and
// persists the new state.
func (e *Election) CastBallot(ctx context.Context, dbConn *db.DB,
	caller identity.ID, index uint32, now protocol.Timestamp) error {

	ctx, span := trace.StartSpan(ctx, "internal.election.CastBallot")
	defer span.End()

	e.mutex.Lock()
	defer e.mutex.Unlock()

	if err := registry.CastVote(ctx, &e.state, caller, index, now); err != nil {
		return err
	}

	return e.save(ctx, dbConn)
}

// LeadingProposal returns the index and record of the proposal currently
// holding the highest accumulated count.
func (e *Election) LeadingProposal() (uint32, state.Proposal, error) {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	if len(e.state.Ballot.Proposals) == 0 {
		return 0, state.Proposal{}, tally.ErrNoProposals
	}

	index := tally.LeadingIndex(&e.state.Ballot)
	return index, e.state.Ballot.Proposals[index], nil
}

// Winner returns the label of the winning proposal.
func (e *Election) Winner() (string, error) {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	return tally.Winner(&e.state.Ballot)
}

// Status returns a copy of the participant record held for id.
func (e *Election) Status(id identity.ID) state.Participant {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	return *registry.Fetch(&e.state, id)
}

// Admin returns the administrator identity.
func (e *Election) Admin() identity.ID {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	return e.state.Admin
}

// Proposals returns the proposal labels in ballot order.
func (e *Election) Proposals() []string {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	labels := make([]string, 0, len(e.state.Ballot.Proposals))
	for i := range e.state.Ballot.Proposals {
		labels = append(labels, e.state.Ballot.Proposals[i].Label.String())
	}

	return labels
}
