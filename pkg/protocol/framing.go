package protocol

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

const (
	// MaxFrameSize is the largest payload accepted on the wire. Instruction
	// and response payloads are all far smaller; the limit keeps a bad
	// length prefix from forcing a large allocation.
	MaxFrameSize = 4096
)

// WriteFrame writes one length prefixed frame to w.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > MaxFrameSize {
		return errors.Wrapf(ErrMalformed, "frame size %d", len(payload))
	}

	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(len(payload)))

	if _, err := w.Write(size[:]); err != nil {
		return err
	}

	_, err := w.Write(payload)
	return err
}

// ReadFrame reads one length prefixed frame from r.
func ReadFrame(r io.Reader) ([]byte, error) {
	var size [4]byte
	if _, err := io.ReadFull(r, size[:]); err != nil {
		return nil, err
	}

	length := binary.LittleEndian.Uint32(size[:])
	if length > MaxFrameSize {
		return nil, errors.Wrapf(ErrMalformed, "frame size %d", length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}

	return payload, nil
}
