// Package state holds the authoritative election document and its binary
// codec.
package state

import (
	"github.com/tokenized/ballot-engine/pkg/identity"
	"github.com/tokenized/ballot-engine/pkg/protocol"
)

// Participant is one voter record. An absent record carries the same
// meaning as the zero value, so lookups create records lazily.
type Participant struct {
	Weight uint32 `json:"Weight,omitempty"`
	Voted  bool   `json:"Voted,omitempty"`
	Vote   uint32 `json:"Vote,omitempty"` // proposal index, meaningful only when Voted
}

// Proposal is one ballot option and its accumulated count. The label is
// opaque and not required to be unique.
type Proposal struct {
	Label     protocol.Label `json:"Label,omitempty"`
	VoteCount uint32         `json:"VoteCount,omitempty"`
}

// Ballot is the sequence of proposals under vote. Length, order and labels
// are fixed at construction.
type Ballot struct {
	Proposals []Proposal `json:"Proposals,omitempty"`
}

// Election is the full state document. One instance is authoritative for
// the life of the process and persists as a single snapshot.
type Election struct {
	Admin        identity.ID                  `json:"Admin,omitempty"`
	Participants map[identity.ID]*Participant `json:"Participants,omitempty"`
	Ballot       Ballot                       `json:"Ballot,omitempty"`
	CreatedAt    protocol.Timestamp           `json:"CreatedAt,omitempty"`
	UpdatedAt    protocol.Timestamp           `json:"UpdatedAt,omitempty"`
}
