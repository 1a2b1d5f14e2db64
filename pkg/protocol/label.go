package protocol

import (
	"bytes"

	"github.com/pkg/errors"
)

const (
	// LabelSize is the fixed width of a proposal label on the wire and in
	// stored state. Shorter labels are zero padded on the right.
	LabelSize = 32
)

// Label is a fixed width proposal name.
type Label [LabelSize]byte

// NewLabel converts a string into a fixed width label.
func NewLabel(s string) (Label, error) {
	var result Label
	if len(s) == 0 {
		return result, errors.New("Empty label")
	}
	if len(s) > LabelSize {
		return result, errors.Errorf("Label size %d exceeds %d", len(s), LabelSize)
	}
	copy(result[:], s)
	return result, nil
}

// Bytes returns the label as a fixed width byte slice.
func (l Label) Bytes() []byte {
	return l[:]
}

// String returns the label with the zero padding trimmed.
func (l Label) String() string {
	return string(bytes.TrimRight(l[:], "\x00"))
}

// Equal returns true if the labels contain the same bytes.
func (l Label) Equal(other Label) bool {
	return bytes.Equal(l[:], other[:])
}

// MarshalText returns the trimmed text form of the label.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText sets the label from its text form.
func (l *Label) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		return errors.New("Empty label")
	}
	if len(text) > LabelSize {
		return errors.Errorf("Label size %d exceeds %d", len(text), LabelSize)
	}
	*l = Label{}
	copy(l[:], text)
	return nil
}

// Serialize writes the label to the buffer.
func (l Label) Serialize(buf *bytes.Buffer) error {
	_, err := buf.Write(l[:])
	return err
}

// Deserialize reads the label from the buffer.
func (l *Label) Deserialize(buf *bytes.Buffer) error {
	return readLen(buf, l[:])
}
