package wallet

import (
	"bytes"
	"testing"
)

func TestDeriveKeys(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 32)

	keys, err := DeriveKeys(seed, 3)
	if err != nil {
		t.Fatalf("Failed to derive keys : %s", err)
	}

	if len(keys) != 3 {
		t.Fatalf("Derived %d keys, want 3", len(keys))
	}

	for i, key := range keys {
		for j := i + 1; j < len(keys); j++ {
			if key.ID.Equal(keys[j].ID) {
				t.Errorf("Keys %d and %d share an identity", i, j)
			}
		}
	}

	// The same seed must reissue the same batch.
	again, err := DeriveKeys(seed, 3)
	if err != nil {
		t.Fatalf("Failed to derive keys again : %s", err)
	}

	for i := range keys {
		if !keys[i].ID.Equal(again[i].ID) {
			t.Errorf("Key %d not reproducible : %v != %v", i, keys[i].ID, again[i].ID)
		}
	}

	other, err := DeriveKeys(bytes.Repeat([]byte{0x43}, 32), 1)
	if err != nil {
		t.Fatalf("Failed to derive from other seed : %s", err)
	}

	if other[0].ID.Equal(keys[0].ID) {
		t.Errorf("Different seeds derived the same identity")
	}
}
