package handlers

import (
	"context"

	"github.com/tokenized/ballot-engine/internal/election"
	"github.com/tokenized/ballot-engine/internal/platform/logger"
	"github.com/tokenized/ballot-engine/internal/platform/node"
	"github.com/tokenized/ballot-engine/pkg/protocol"

	"github.com/pkg/errors"
	"go.opencensus.io/trace"
)

type Tally struct {
	Election *election.Election
}

// Leading handles an incoming LeadingProposal instruction, reporting the
// proposal currently holding the highest count.
func (t *Tally) Leading(ctx context.Context, w *node.ResponseWriter, r *protocol.Request) error {
	ctx, span := trace.StartSpan(ctx, "handlers.Tally.Leading")
	defer span.End()

	v := ctx.Value(node.KeyValues).(*node.Values)

	index, proposal, err := t.Election.LeadingProposal()
	if err != nil {
		code, known := rejectionCode(errors.Cause(err))
		if !known {
			return err
		}

		logger.Warn(ctx, "%s : Tally rejected : %s", v.TraceID, err)
		return node.RespondReject(ctx, w, code)
	}

	result := protocol.TallyResult{
		Index:     index,
		Label:     proposal.Label,
		VoteCount: proposal.VoteCount,
	}
	return node.RespondSuccess(ctx, w, &result)
}

// Winner handles an incoming WinnerName instruction.
func (t *Tally) Winner(ctx context.Context, w *node.ResponseWriter, r *protocol.Request) error {
	ctx, span := trace.StartSpan(ctx, "handlers.Tally.Winner")
	defer span.End()

	v := ctx.Value(node.KeyValues).(*node.Values)

	name, err := t.Election.Winner()
	if err != nil {
		code, known := rejectionCode(errors.Cause(err))
		if !known {
			return err
		}

		logger.Warn(ctx, "%s : Winner rejected : %s", v.TraceID, err)
		return node.RespondReject(ctx, w, code)
	}

	label, err := protocol.NewLabel(name)
	if err != nil {
		return errors.Wrap(err, "winner label")
	}

	result := protocol.WinnerResult{
		Label: label,
	}
	return node.RespondSuccess(ctx, w, &result)
}
