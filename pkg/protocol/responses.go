package protocol

import (
	"bytes"

	"github.com/pkg/errors"
)

// Acknowledgement reports a successfully applied mutation.
type Acknowledgement struct {
	Opcode    uint8 // the opcode of the acknowledged instruction
	Timestamp Timestamp
}

// Code returns the identifying response code.
func (m Acknowledgement) Code() uint8 {
	return CodeAcknowledgement
}

// Type returns the name of the response.
func (m Acknowledgement) Type() string {
	return "Acknowledgement"
}

// Serialize writes the response body to the buffer.
func (m Acknowledgement) Serialize(buf *bytes.Buffer) error {
	if err := buf.WriteByte(m.Opcode); err != nil {
		return err
	}

	return m.Timestamp.Serialize(buf)
}

// Deserialize reads the response body from the buffer.
func (m *Acknowledgement) Deserialize(buf *bytes.Buffer) error {
	opcode, err := buf.ReadByte()
	if err != nil {
		return err
	}
	m.Opcode = opcode

	return m.Timestamp.Deserialize(buf)
}

// Rejection reports a refused instruction and carries the reason.
type Rejection struct {
	RejectionCode uint8
	Message       string
}

// Code returns the identifying response code.
func (m Rejection) Code() uint8 {
	return CodeRejection
}

// Type returns the name of the response.
func (m Rejection) Type() string {
	return "Rejection"
}

// Serialize writes the response body to the buffer.
func (m Rejection) Serialize(buf *bytes.Buffer) error {
	if err := buf.WriteByte(m.RejectionCode); err != nil {
		return err
	}

	if err := write(buf, uint32(len(m.Message))); err != nil {
		return err
	}

	_, err := buf.WriteString(m.Message)
	return err
}

// Deserialize reads the response body from the buffer.
func (m *Rejection) Deserialize(buf *bytes.Buffer) error {
	code, err := buf.ReadByte()
	if err != nil {
		return err
	}
	m.RejectionCode = code

	var size uint32
	if err := read(buf, &size); err != nil {
		return err
	}
	if size > MaxFrameSize {
		return errors.Errorf("message size %d", size)
	}

	message := make([]byte, size)
	if err := readLen(buf, message); err != nil {
		return err
	}
	m.Message = string(message)

	return nil
}

// TallyResult carries the proposal currently holding the highest
// accumulated vote count.
type TallyResult struct {
	Index     uint32
	Label     Label
	VoteCount uint32
}

// Code returns the identifying response code.
func (m TallyResult) Code() uint8 {
	return CodeTallyResult
}

// Type returns the name of the response.
func (m TallyResult) Type() string {
	return "TallyResult"
}

// Serialize writes the response body to the buffer.
func (m TallyResult) Serialize(buf *bytes.Buffer) error {
	if err := write(buf, m.Index); err != nil {
		return err
	}

	if err := m.Label.Serialize(buf); err != nil {
		return err
	}

	return write(buf, m.VoteCount)
}

// Deserialize reads the response body from the buffer.
func (m *TallyResult) Deserialize(buf *bytes.Buffer) error {
	if err := read(buf, &m.Index); err != nil {
		return err
	}

	if err := m.Label.Deserialize(buf); err != nil {
		return err
	}

	return read(buf, &m.VoteCount)
}

// WinnerResult carries the label of the winning proposal.
type WinnerResult struct {
	Label Label
}

// Code returns the identifying response code.
func (m WinnerResult) Code() uint8 {
	return CodeWinnerResult
}

// Type returns the name of the response.
func (m WinnerResult) Type() string {
	return "WinnerResult"
}

// Serialize writes the response body to the buffer.
func (m WinnerResult) Serialize(buf *bytes.Buffer) error {
	return m.Label.Serialize(buf)
}

// Deserialize reads the response body from the buffer.
func (m *WinnerResult) Deserialize(buf *bytes.Buffer) error {
	return m.Label.Deserialize(buf)
}

// StatusResult carries one participant record.
type StatusResult struct {
	Weight uint32
	Voted  bool
	Vote   uint32 // meaningful only when Voted is true
}

// Code returns the identifying response code.
func (m StatusResult) Code() uint8 {
	return CodeStatusResult
}

// Type returns the name of the response.
func (m StatusResult) Type() string {
	return "StatusResult"
}

// Serialize writes the response body to the buffer.
func (m StatusResult) Serialize(buf *bytes.Buffer) error {
	if err := write(buf, m.Weight); err != nil {
		return err
	}

	if err := write(buf, m.Voted); err != nil {
		return err
	}

	return write(buf, m.Vote)
}

// Deserialize reads the response body from the buffer.
func (m *StatusResult) Deserialize(buf *bytes.Buffer) error {
	if err := read(buf, &m.Weight); err != nil {
		return err
	}

	if err := read(buf, &m.Voted); err != nil {
		return err
	}

	return read(buf, &m.Vote)
}
