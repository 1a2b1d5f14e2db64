package protocol

import (
	"bytes"
	"strconv"
	"time"
)

// Timestamp represents a time on the wire and in stored state.
type Timestamp struct {
	nanoseconds uint64 // nanoseconds since Unix epoch
}

// NewTimestamp returns a new timestamp from nanoseconds.
func NewTimestamp(value uint64) Timestamp {
	return Timestamp{nanoseconds: value}
}

// CurrentTimestamp returns a Timestamp containing the current time.
func CurrentTimestamp() Timestamp {
	return Timestamp{nanoseconds: uint64(time.Now().UnixNano())}
}

// Equal returns true if the timestamps hold the same time.
func (time Timestamp) Equal(other Timestamp) bool {
	return time.nanoseconds == other.nanoseconds
}

// Nano returns the nanoseconds since the Unix epoch for the Timestamp.
func (time Timestamp) Nano() uint64 {
	return time.nanoseconds
}

// String converts to a string.
func (t Timestamp) String() string {
	return time.Unix(0, int64(t.nanoseconds)).UTC().Format(time.RFC3339Nano)
}

// MarshalJSON converts to json.
func (time Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(time.nanoseconds, 10)), nil
}

// UnmarshalJSON converts from json.
func (time *Timestamp) UnmarshalJSON(data []byte) error {
	var err error
	time.nanoseconds, err = strconv.ParseUint(string(data), 10, 64)
	return err
}

// Serialize writes the timestamp to the buffer.
func (time Timestamp) Serialize(buf *bytes.Buffer) error {
	return write(buf, time.nanoseconds)
}

// Deserialize reads the timestamp from the buffer.
func (time *Timestamp) Deserialize(buf *bytes.Buffer) error {
	return read(buf, &time.nanoseconds)
}
