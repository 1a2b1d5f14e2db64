// Package node dispatches decoded instructions to their handlers and
// carries the per request values every handler needs.
package node

import (
	"context"

	"github.com/tokenized/ballot-engine/internal/platform/logger"
	"github.com/tokenized/ballot-engine/pkg/protocol"

	"github.com/pkg/errors"
	"go.opencensus.io/trace"
)

// ctxKey represents the type of value for the context key.
type ctxKey int

// KeyValues is how request values are stored/retrieved.
const KeyValues ctxKey = 1

// Values represent state for each request.
type Values struct {
	TraceID string
	Now     protocol.Timestamp
}

// A Handler is a type that handles an instruction within our own little
// mini framework.
type Handler func(ctx context.Context, w *ResponseWriter, r *protocol.Request) error

// App is the entrypoint into our application and what configures our
// context object for each of our instruction handlers.
type App struct {
	handlers map[uint8]Handler
}

// New creates an App value that handles a set of instructions for the
// application.
func New() *App {
	return &App{
		handlers: make(map[uint8]Handler),
	}
}

// Handle is our mechanism for mounting Handlers for a given opcode, this
// makes for really easy, convenient routing.
func (a *App) Handle(opcode uint8, handler Handler) {
	a.handlers[opcode] = handler
}

// Trigger runs the Handler mounted for the request's instruction.
func (a *App) Trigger(ctx context.Context, w *ResponseWriter, r *protocol.Request) error {
	if r == nil || r.Instruction == nil {
		return errors.Wrap(protocol.ErrMalformed, "missing instruction")
	}

	handler, exists := a.handlers[r.Instruction.Opcode()]
	if !exists {
		return errors.Wrapf(protocol.ErrMalformed, "no handler for opcode %02x",
			r.Instruction.Opcode())
	}

	// Start trace span.
	ctx, span := trace.StartSpan(ctx, "internal.platform.node")
	defer span.End()

	// Set the context with the required values to process the request.
	v := Values{
		TraceID: span.SpanContext().TraceID.String(),
		Now:     protocol.CurrentTimestamp(),
	}
	ctx = context.WithValue(ctx, KeyValues, &v)

	ctx = logger.ContextWithInstruction(ctx, r.Instruction.Type())

	return handler(ctx, w, r)
}
