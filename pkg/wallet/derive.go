package wallet

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
	bip32 "github.com/tyler-smith/go-bip32"
)

// DeriveKeys derives count keys from a seed using BIP-32 child derivation.
// The same seed always yields the same keys, so an operator can reissue a
// batch of participant identities without storing every secret.
func DeriveKeys(seed []byte, count int) ([]*Key, error) {
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "master key")
	}

	keys := make([]*Key, 0, count)
	for i := 0; i < count; i++ {
		child, err := master.NewChildKey(uint32(i))
		if err != nil {
			return nil, errors.Wrapf(err, "child key %d", i)
		}

		priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), child.Key)
		keys = append(keys, NewKey(priv))
	}

	return keys, nil
}
