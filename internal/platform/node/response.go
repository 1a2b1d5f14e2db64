package node

import (
	"context"
	"errors"

	"github.com/tokenized/ballot-engine/pkg/protocol"
)

var (
	// ErrSystemError occurs for a non standard response.
	ErrSystemError = errors.New("System error")

	// ErrNoResponse occurs when there is no response.
	ErrNoResponse = errors.New("No response given")

	// ErrRejected occurs for a rejected response.
	ErrRejected = errors.New("Rejected")
)

// RespondReject sends a rejection message to the caller carrying the text
// registered for the code.
func RespondReject(ctx context.Context, w *ResponseWriter, code uint8) error {
	rejection := protocol.Rejection{
		RejectionCode: code,
		Message:       protocol.RejectionText(code),
	}

	if err := w.Respond(ctx, &rejection); err != nil {
		return err
	}

	return ErrRejected
}

// RespondSuccess sends the response to the caller.
func RespondSuccess(ctx context.Context, w *ResponseWriter, resp protocol.Response) error {
	return w.Respond(ctx, resp)
}
