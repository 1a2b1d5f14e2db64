// Package protocol defines the instruction protocol of the ballot engine.
//
// Every request is one length prefixed frame carrying the authenticated
// caller identity, a one byte opcode and the instruction operand. Every
// response is one frame carrying a one byte response code and the response
// body. All integers on the wire are little-endian.
package protocol

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/tokenized/ballot-engine/pkg/identity"

	"github.com/pkg/errors"
)

const (
	// CodeGrantRights identifies a GrantRights instruction.
	CodeGrantRights uint8 = 0x00

	// CodeBallotCast identifies a BallotCast instruction.
	CodeBallotCast uint8 = 0x01

	// CodeLeadingProposal identifies a LeadingProposal instruction.
	CodeLeadingProposal uint8 = 0x02

	// CodeWinnerName identifies a WinnerName instruction.
	CodeWinnerName uint8 = 0x03

	// CodeParticipantStatus identifies a ParticipantStatus instruction.
	CodeParticipantStatus uint8 = 0x04
)

const (
	// CodeAcknowledgement identifies an Acknowledgement response.
	CodeAcknowledgement uint8 = 0x00

	// CodeRejection identifies a Rejection response.
	CodeRejection uint8 = 0x01

	// CodeTallyResult identifies a TallyResult response.
	CodeTallyResult uint8 = 0x02

	// CodeWinnerResult identifies a WinnerResult response.
	CodeWinnerResult uint8 = 0x03

	// CodeStatusResult identifies a StatusResult response.
	CodeStatusResult uint8 = 0x04
)

var (
	// ErrMalformed is returned for wire data that does not decode to an
	// instruction or response.
	ErrMalformed = errors.New("Malformed")
)

// Instruction is one operation requested of the engine.
type Instruction interface {
	// Opcode returns the identifying opcode for the instruction.
	Opcode() uint8

	// Type returns the name of the instruction.
	Type() string

	// Serialize writes the instruction operand to the buffer.
	Serialize(buf *bytes.Buffer) error

	// Deserialize reads the instruction operand from the buffer.
	Deserialize(buf *bytes.Buffer) error
}

// Response is one reply to an instruction.
type Response interface {
	// Code returns the identifying response code.
	Code() uint8

	// Type returns the name of the response.
	Type() string

	// Serialize writes the response body to the buffer.
	Serialize(buf *bytes.Buffer) error

	// Deserialize reads the response body from the buffer.
	Deserialize(buf *bytes.Buffer) error
}

// Request is one instruction together with the authenticated identity of
// the caller issuing it. The identity is supplied by the host envelope and
// trusted by the engine.
type Request struct {
	Caller      identity.ID
	Instruction Instruction
}

// Serialize returns the request payload.
func (r Request) Serialize() ([]byte, error) {
	if r.Instruction == nil {
		return nil, errors.New("Missing instruction")
	}

	buf := new(bytes.Buffer)
	buf.Write(r.Caller.Bytes())
	buf.WriteByte(r.Instruction.Opcode())

	if err := r.Instruction.Serialize(buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ParseRequest decodes a request payload.
//
// A payload that is truncated, carries trailing bytes or names an unknown
// opcode fails with ErrMalformed and must be rejected without state effect.
func ParseRequest(payload []byte) (*Request, error) {
	buf := bytes.NewBuffer(payload)

	var result Request
	if err := readLen(buf, result.Caller[:]); err != nil {
		return nil, errors.Wrap(ErrMalformed, "caller identity")
	}

	opcode, err := buf.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, "opcode")
	}

	instruction, err := NewInstruction(opcode)
	if err != nil {
		return nil, err
	}

	if err := instruction.Deserialize(buf); err != nil {
		return nil, errors.Wrapf(ErrMalformed, "%s operand : %s",
			instruction.Type(), err)
	}

	if buf.Len() != 0 {
		return nil, errors.Wrapf(ErrMalformed, "%s operand : %d trailing bytes",
			instruction.Type(), buf.Len())
	}

	result.Instruction = instruction
	return &result, nil
}

// NewInstruction returns an empty instruction of the type identified by the
// opcode.
func NewInstruction(opcode uint8) (Instruction, error) {
	switch opcode {
	case CodeGrantRights:
		return &GrantRights{}, nil
	case CodeBallotCast:
		return &BallotCast{}, nil
	case CodeLeadingProposal:
		return &LeadingProposal{}, nil
	case CodeWinnerName:
		return &WinnerName{}, nil
	case CodeParticipantStatus:
		return &ParticipantStatus{}, nil
	}

	return nil, errors.Wrapf(ErrMalformed, "unknown opcode %02x", opcode)
}

// SerializeResponse returns the response payload.
func SerializeResponse(resp Response) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte(resp.Code())

	if err := resp.Serialize(buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ParseResponse decodes a response payload.
func ParseResponse(payload []byte) (Response, error) {
	buf := bytes.NewBuffer(payload)

	code, err := buf.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, "response code")
	}

	resp, err := NewResponse(code)
	if err != nil {
		return nil, err
	}

	if err := resp.Deserialize(buf); err != nil {
		return nil, errors.Wrapf(ErrMalformed, "%s body : %s", resp.Type(), err)
	}

	if buf.Len() != 0 {
		return nil, errors.Wrapf(ErrMalformed, "%s body : %d trailing bytes",
			resp.Type(), buf.Len())
	}

	return resp, nil
}

// NewResponse returns an empty response of the type identified by the
// response code.
func NewResponse(code uint8) (Response, error) {
	switch code {
	case CodeAcknowledgement:
		return &Acknowledgement{}, nil
	case CodeRejection:
		return &Rejection{}, nil
	case CodeTallyResult:
		return &TallyResult{}, nil
	case CodeWinnerResult:
		return &WinnerResult{}, nil
	case CodeStatusResult:
		return &StatusResult{}, nil
	}

	return nil, errors.Wrapf(ErrMalformed, "unknown response code %02x", code)
}

// write writes the value to the buffer, little-endian.
func write(buf *bytes.Buffer, v interface{}) error {
	return binary.Write(buf, binary.LittleEndian, v)
}

// read fills the value with the appropriate number of bytes from the
// buffer, little-endian.
//
// This is useful for fixed size types such as integers.
func read(buf *bytes.Buffer, v interface{}) error {
	return binary.Read(buf, binary.LittleEndian, v)
}

// readLen reads the number of bytes from the buffer to fill the slice of
// []byte.
func readLen(buf *bytes.Buffer, b []byte) error {
	_, err := io.ReadFull(buf, b)
	return err
}
