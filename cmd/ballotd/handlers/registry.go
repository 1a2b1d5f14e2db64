package handlers

import (
	"context"

	"github.com/tokenized/ballot-engine/internal/election"
	"github.com/tokenized/ballot-engine/internal/platform/db"
	"github.com/tokenized/ballot-engine/internal/platform/logger"
	"github.com/tokenized/ballot-engine/internal/platform/node"
	"github.com/tokenized/ballot-engine/pkg/protocol"

	"github.com/pkg/errors"
	"go.opencensus.io/trace"
)

type Registry struct {
	MasterDB *db.DB
	Election *election.Election
}

// GrantRights handles an incoming GrantRights instruction. Only the
// administrator may grant, and only to an identity that has neither voted
// nor already holds the right.
func (g *Registry) GrantRights(ctx context.Context, w *node.ResponseWriter, r *protocol.Request) error {
	ctx, span := trace.StartSpan(ctx, "handlers.Registry.GrantRights")
	defer span.End()

	msg, ok := r.Instruction.(*protocol.GrantRights)
	if !ok {
		return errors.New("Could not assert as *protocol.GrantRights")
	}

	v := ctx.Value(node.KeyValues).(*node.Values)

	if err := g.Election.GrantRight(ctx, g.MasterDB, r.Caller, msg.Target, v.Now); err != nil {
		code, known := rejectionCode(errors.Cause(err))
		if !known {
			return err
		}

		logger.Warn(ctx, "%s : Grant to %s rejected : %s", v.TraceID, msg.Target, err)
		return node.RespondReject(ctx, w, code)
	}

	logger.Info(ctx, "%s : Rights granted to %s", v.TraceID, msg.Target)

	ack := protocol.Acknowledgement{
		Opcode:    protocol.CodeGrantRights,
		Timestamp: v.Now,
	}
	return node.RespondSuccess(ctx, w, &ack)
}

// Status handles an incoming ParticipantStatus instruction. An identity the
// registry has never seen reports a zero record, indistinguishable from one
// inserted and never granted anything.
func (g *Registry) Status(ctx context.Context, w *node.ResponseWriter, r *protocol.Request) error {
	ctx, span := trace.StartSpan(ctx, "handlers.Registry.Status")
	defer span.End()

	msg, ok := r.Instruction.(*protocol.ParticipantStatus)
	if !ok {
		return errors.New("Could not assert as *protocol.ParticipantStatus")
	}

	participant := g.Election.Status(msg.ID)

	result := protocol.StatusResult{
		Weight: participant.Weight,
		Voted:  participant.Voted,
		Vote:   participant.Vote,
	}
	return node.RespondSuccess(ctx, w, &result)
}
