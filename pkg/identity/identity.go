// Package identity names the actors of the ballot engine.
//
// An ID is an opaque 20 byte identifier. Key holding callers derive theirs
// from a secp256k1 public key. The engine never interprets the bytes; it
// only compares them.
package identity

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"
)

const (
	// Size is the byte length of an ID.
	Size = 20

	// version is the base58check version byte of the text encoding.
	version = 0x42
)

var (
	// ErrBadID is returned for data that does not decode to an ID.
	ErrBadID = errors.New("Invalid identity")
)

// ID is an opaque identifier for a caller or participant.
type ID [Size]byte

// FromPublicKey derives the ID for a secp256k1 public key. The ID is the
// RIPEMD-160 digest of the SHA-256 digest of the compressed serialization.
func FromPublicKey(pub *btcec.PublicKey) ID {
	hash256 := sha256.Sum256(pub.SerializeCompressed())

	hash160 := ripemd160.New()
	hash160.Write(hash256[:])

	var id ID
	copy(id[:], hash160.Sum(nil))
	return id
}

// FromBytes returns the ID holding b.
func FromBytes(b []byte) (ID, error) {
	var id ID

	if len(b) != Size {
		return id, errors.Wrapf(ErrBadID, "length %d", len(b))
	}

	copy(id[:], b)
	return id, nil
}

// DecodeString parses the base58check text form of an ID.
func DecodeString(s string) (ID, error) {
	var id ID

	b, v, err := base58.CheckDecode(s)
	if err != nil {
		return id, errors.Wrap(ErrBadID, err.Error())
	}

	if v != version || len(b) != Size {
		return id, errors.Wrapf(ErrBadID, "version %d", v)
	}

	copy(id[:], b)
	return id, nil
}

// Bytes returns the raw identifier.
func (id ID) Bytes() []byte {
	return id[:]
}

// Equal returns true when both IDs hold the same bytes.
func (id ID) Equal(other ID) bool {
	return id == other
}

// IsZero returns true for the unset ID.
func (id ID) IsZero() bool {
	return id == ID{}
}

// String returns the base58check text form.
func (id ID) String() string {
	return base58.CheckEncode(id[:], version)
}

// MarshalText returns the base58check text form.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText sets the ID from its base58check text form.
func (id *ID) UnmarshalText(text []byte) error {
	decoded, err := DecodeString(string(text))
	if err != nil {
		return err
	}

	*id = decoded
	return nil
}
