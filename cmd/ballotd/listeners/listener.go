package listeners

import (
	"context"
	"io"
	"net"
	"sync"

	"github.com/tokenized/ballot-engine/internal/platform/logger"
	"github.com/tokenized/ballot-engine/internal/platform/node"
	"github.com/tokenized/ballot-engine/pkg/protocol"

	"github.com/pkg/errors"
)

// Server accepts instruction connections and feeds every decoded request
// through the handler mux. One response frame answers every request frame.
type Server struct {
	Handler *node.App
	Address string

	mutex    sync.Mutex
	listener net.Listener
	closing  bool
}

// Start listens for connections and blocks serving them until Close is
// called.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.Address)
	if err != nil {
		return errors.Wrap(err, "listen")
	}

	s.mutex.Lock()
	if s.closing {
		s.mutex.Unlock()
		listener.Close()
		return nil
	}
	s.listener = listener
	s.mutex.Unlock()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if s.isClosing() {
				return nil
			}
			return errors.Wrap(err, "accept")
		}

		go s.serve(conn)
	}
}

// Close stops the listener. Connections already being served finish their
// current request.
func (s *Server) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.closing = true
	if s.listener == nil {
		return nil
	}

	return s.listener.Close()
}

func (s *Server) isClosing() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.closing
}

// Addr returns the bound address, or nil before Start has bound one. With a
// configured port of zero this reports the port the system picked.
func (s *Server) Addr() net.Addr {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

// serve reads request frames from one connection until the peer hangs up or
// the stream turns unrecoverable.
func (s *Server) serve(conn net.Conn) {
	defer conn.Close()

	for {
		ctx := logger.NewContext()

		payload, err := protocol.ReadFrame(conn)
		if err != nil {
			if errors.Cause(err) == io.EOF {
				return
			}

			// A bad length prefix leaves the stream offset unknown, so the
			// caller gets one rejection and the connection is dropped.
			if errors.Cause(err) == protocol.ErrMalformed {
				logger.Warn(ctx, "Bad frame from %s : %s", conn.RemoteAddr(), err)
				s.reject(ctx, conn, protocol.RejectionCodeMalformed)
				return
			}

			logger.Warn(ctx, "Read from %s failed : %s", conn.RemoteAddr(), err)
			return
		}

		request, err := protocol.ParseRequest(payload)
		if err != nil {
			// The frame boundary held, so the connection can keep going.
			logger.Warn(ctx, "Malformed request from %s : %s", conn.RemoteAddr(), err)
			if !s.reject(ctx, conn, protocol.RejectionCodeMalformed) {
				return
			}
			continue
		}

		w := node.ResponseWriter{
			Responder: func(ctx context.Context, resp protocol.Response) error {
				return respond(conn, resp)
			},
		}

		err = s.Handler.Trigger(ctx, &w, request)
		switch errors.Cause(err) {
		case nil, node.ErrRejected, node.ErrNoResponse:
			// Rejections already answered the caller.

		case protocol.ErrMalformed:
			logger.Warn(ctx, "Unhandled instruction from %s : %s", conn.RemoteAddr(), err)
			if !s.reject(ctx, conn, protocol.RejectionCodeMalformed) {
				return
			}

		default:
			// The state of the request is unknown, so the connection is not
			// given another answer.
			logger.Error(ctx, "Handler failed : %s", err)
			return
		}
	}
}

// reject answers a request that never reached a handler. It reports whether
// the connection is still usable.
func (s *Server) reject(ctx context.Context, conn net.Conn, code uint8) bool {
	rejection := protocol.Rejection{
		RejectionCode: code,
		Message:       protocol.RejectionText(code),
	}

	if err := respond(conn, &rejection); err != nil {
		logger.Warn(ctx, "Write to %s failed : %s", conn.RemoteAddr(), err)
		return false
	}

	return true
}

// respond writes one response frame.
func respond(conn net.Conn, resp protocol.Response) error {
	payload, err := protocol.SerializeResponse(resp)
	if err != nil {
		return err
	}

	return protocol.WriteFrame(conn, payload)
}
