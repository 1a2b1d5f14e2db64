package protocol

import (
	"bytes"

	"github.com/tokenized/ballot-engine/pkg/identity"
)

// GrantRights instructs the engine to give the target participant the right
// to vote. Only the administrator may issue it.
type GrantRights struct {
	Target identity.ID
}

// Opcode returns the identifying opcode for the instruction.
func (m GrantRights) Opcode() uint8 {
	return CodeGrantRights
}

// Type returns the name of the instruction.
func (m GrantRights) Type() string {
	return "GrantRights"
}

// Serialize writes the instruction operand to the buffer.
func (m GrantRights) Serialize(buf *bytes.Buffer) error {
	_, err := buf.Write(m.Target.Bytes())
	return err
}

// Deserialize reads the instruction operand from the buffer.
func (m *GrantRights) Deserialize(buf *bytes.Buffer) error {
	return readLen(buf, m.Target[:])
}

// BallotCast records the caller's irrevocable vote for the proposal at
// Index.
type BallotCast struct {
	Index uint32
}

// Opcode returns the identifying opcode for the instruction.
func (m BallotCast) Opcode() uint8 {
	return CodeBallotCast
}

// Type returns the name of the instruction.
func (m BallotCast) Type() string {
	return "BallotCast"
}

// Serialize writes the instruction operand to the buffer.
func (m BallotCast) Serialize(buf *bytes.Buffer) error {
	return write(buf, m.Index)
}

// Deserialize reads the instruction operand from the buffer.
func (m *BallotCast) Deserialize(buf *bytes.Buffer) error {
	return read(buf, &m.Index)
}

// LeadingProposal requests the proposal currently holding the highest
// accumulated vote count. It carries no operand.
type LeadingProposal struct{}

// Opcode returns the identifying opcode for the instruction.
func (m LeadingProposal) Opcode() uint8 {
	return CodeLeadingProposal
}

// Type returns the name of the instruction.
func (m LeadingProposal) Type() string {
	return "LeadingProposal"
}

// Serialize writes the instruction operand to the buffer.
func (m LeadingProposal) Serialize(buf *bytes.Buffer) error {
	return nil
}

// Deserialize reads the instruction operand from the buffer.
func (m *LeadingProposal) Deserialize(buf *bytes.Buffer) error {
	return nil
}

// WinnerName requests the label of the winning proposal. It carries no
// operand.
type WinnerName struct{}

// Opcode returns the identifying opcode for the instruction.
func (m WinnerName) Opcode() uint8 {
	return CodeWinnerName
}

// Type returns the name of the instruction.
func (m WinnerName) Type() string {
	return "WinnerName"
}

// Serialize writes the instruction operand to the buffer.
func (m WinnerName) Serialize(buf *bytes.Buffer) error {
	return nil
}

// Deserialize reads the instruction operand from the buffer.
func (m *WinnerName) Deserialize(buf *bytes.Buffer) error {
	return nil
}

// ParticipantStatus requests the participant record held for ID.
type ParticipantStatus struct {
	ID identity.ID
}

// Opcode returns the identifying opcode for the instruction.
func (m ParticipantStatus) Opcode() uint8 {
	return CodeParticipantStatus
}

// Type returns the name of the instruction.
func (m ParticipantStatus) Type() string {
	return "ParticipantStatus"
}

// Serialize writes the instruction operand to the buffer.
func (m ParticipantStatus) Serialize(buf *bytes.Buffer) error {
	_, err := buf.Write(m.ID.Bytes())
	return err
}

// Deserialize reads the instruction operand from the buffer.
func (m *ParticipantStatus) Deserialize(buf *bytes.Buffer) error {
	return readLen(buf, m.ID[:])
}
