// Package wallet holds the keys used to operate on the ballot engine.
//
// The engine itself only sees identities. Keys exist on the operator side,
// in the CLI and in the daemon bootstrap, to derive those identities.
package wallet

import (
	"encoding/hex"

	"github.com/tokenized/ballot-engine/pkg/identity"

	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
)

var (
	// ErrBadKey is returned for data that does not decode to a private key.
	ErrBadKey = errors.New("Invalid key")
)

// Key is a secp256k1 key pair with the identity it derives.
type Key struct {
	PrivateKey *btcec.PrivateKey
	PublicKey  *btcec.PublicKey
	ID         identity.ID
}

// NewKey wraps a private key, deriving its public key and identity.
func NewKey(priv *btcec.PrivateKey) *Key {
	result := Key{
		PrivateKey: priv,
		PublicKey:  priv.PubKey(),
	}

	result.ID = identity.FromPublicKey(result.PublicKey)
	return &result
}

// GenerateKey creates a new random key.
func GenerateKey() (*Key, error) {
	priv, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return nil, errors.Wrap(err, "generate key")
	}

	return NewKey(priv), nil
}

// KeyFromStr parses a hex encoded 32 byte secret.
func KeyFromStr(s string) (*Key, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(ErrBadKey, err.Error())
	}

	if len(b) != btcec.PrivKeyBytesLen {
		return nil, errors.Wrapf(ErrBadKey, "length %d", len(b))
	}

	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), b)
	return NewKey(priv), nil
}

// SecretStr returns the hex encoded 32 byte secret.
func (k *Key) SecretStr() string {
	return hex.EncodeToString(k.PrivateKey.Serialize())
}
