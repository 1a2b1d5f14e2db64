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

type Voting struct {
	MasterDB *db.DB
	Election *election.Election
}

// Cast handles an incoming BallotCast instruction. A ballot is final; a
// rejected cast leaves the caller free to try another index.
func (vt *Voting) Cast(ctx context.Context, w *node.ResponseWriter, r *protocol.Request) error {
	ctx, span := trace.StartSpan(ctx, "handlers.Voting.Cast")
	defer span.End()

	msg, ok := r.Instruction.(*protocol.BallotCast)
	if !ok {
		return errors.New("Could not assert as *protocol.BallotCast")
	}

	v := ctx.Value(node.KeyValues).(*node.Values)

	if err := vt.Election.CastBallot(ctx, vt.MasterDB, r.Caller, msg.Index, v.Now); err != nil {
		code, known := rejectionCode(errors.Cause(err))
		if !known {
			return err
		}

		logger.Warn(ctx, "%s : Ballot from %s rejected : %s", v.TraceID, r.Caller, err)
		return node.RespondReject(ctx, w, code)
	}

	logger.Info(ctx, "%s : Ballot cast for proposal %d", v.TraceID, msg.Index)

	ack := protocol.Acknowledgement{
		Opcode:    protocol.CodeBallotCast,
		Timestamp: v.Now,
	}
	return node.RespondSuccess(ctx, w, &ack)
}
