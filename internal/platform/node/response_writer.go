package node

import (
	"context"

	"github.com/tokenized/ballot-engine/pkg/protocol"
)

// ResponderFunc delivers one response to the caller of the instruction. The
// host serving the request supplies it; handlers never see the transport.
type ResponderFunc func(ctx context.Context, resp protocol.Response) error

// ResponseWriter carries the reply path for one request.
type ResponseWriter struct {
	Responder ResponderFunc
}

// Respond sends the response to the caller.
func (w *ResponseWriter) Respond(ctx context.Context, resp protocol.Response) error {
	if w.Responder == nil {
		return ErrNoResponse
	}

	return w.Responder(ctx, resp)
}
