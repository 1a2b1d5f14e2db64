package state

import (
	"bytes"
	"encoding/binary"
	"io"
	"sort"

	"github.com/tokenized/ballot-engine/pkg/identity"
)

// Serialize writes the participant record to the buffer.
func (p *Participant) Serialize(buf *bytes.Buffer) error {
	if err := binary.Write(buf, binary.LittleEndian, &p.Weight); err != nil {
		return err
	}

	if err := binary.Write(buf, binary.LittleEndian, &p.Voted); err != nil {
		return err
	}

	return binary.Write(buf, binary.LittleEndian, &p.Vote)
}

// Deserialize reads the participant record from the buffer.
func (p *Participant) Deserialize(buf *bytes.Buffer) error {
	if err := binary.Read(buf, binary.LittleEndian, &p.Weight); err != nil {
		return err
	}

	if err := binary.Read(buf, binary.LittleEndian, &p.Voted); err != nil {
		return err
	}

	return binary.Read(buf, binary.LittleEndian, &p.Vote)
}

// Serialize writes the proposal to the buffer.
func (p *Proposal) Serialize(buf *bytes.Buffer) error {
	if err := p.Label.Serialize(buf); err != nil {
		return err
	}

	return binary.Write(buf, binary.LittleEndian, &p.VoteCount)
}

// Deserialize reads the proposal from the buffer.
func (p *Proposal) Deserialize(buf *bytes.Buffer) error {
	if err := p.Label.Deserialize(buf); err != nil {
		return err
	}

	return binary.Read(buf, binary.LittleEndian, &p.VoteCount)
}

// Serialize writes the full election document to the buffer. Participant
// entries are written in id byte order so identical states serialize to
// identical snapshots.
func (e *Election) Serialize(buf *bytes.Buffer) error {
	if _, err := buf.Write(e.Admin.Bytes()); err != nil {
		return err
	}

	ids := make([]identity.ID, 0, len(e.Participants))
	for id := range e.Participants {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i].Bytes(), ids[j].Bytes()) < 0
	})

	count := uint32(len(ids))
	if err := binary.Write(buf, binary.LittleEndian, &count); err != nil {
		return err
	}

	for _, id := range ids {
		if _, err := buf.Write(id.Bytes()); err != nil {
			return err
		}

		if err := e.Participants[id].Serialize(buf); err != nil {
			return err
		}
	}

	count = uint32(len(e.Ballot.Proposals))
	if err := binary.Write(buf, binary.LittleEndian, &count); err != nil {
		return err
	}

	for i := range e.Ballot.Proposals {
		if err := e.Ballot.Proposals[i].Serialize(buf); err != nil {
			return err
		}
	}

	if err := e.CreatedAt.Serialize(buf); err != nil {
		return err
	}

	return e.UpdatedAt.Serialize(buf)
}

// Deserialize reads the full election document from the buffer.
func (e *Election) Deserialize(buf *bytes.Buffer) error {
	if _, err := io.ReadFull(buf, e.Admin[:]); err != nil {
		return err
	}

	var count uint32
	if err := binary.Read(buf, binary.LittleEndian, &count); err != nil {
		return err
	}

	e.Participants = make(map[identity.ID]*Participant, count)
	for i := uint32(0); i < count; i++ {
		var id identity.ID
		if _, err := io.ReadFull(buf, id[:]); err != nil {
			return err
		}

		participant := Participant{}
		if err := participant.Deserialize(buf); err != nil {
			return err
		}

		e.Participants[id] = &participant
	}

	if err := binary.Read(buf, binary.LittleEndian, &count); err != nil {
		return err
	}

	e.Ballot.Proposals = make([]Proposal, count)
	for i := range e.Ballot.Proposals {
		if err := e.Ballot.Proposals[i].Deserialize(buf); err != nil {
			return err
		}
	}

	if err := e.CreatedAt.Deserialize(buf); err != nil {
		return err
	}

	return e.UpdatedAt.Deserialize(buf)
}
