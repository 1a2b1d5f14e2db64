package wallet

import (
	"testing"

	"github.com/pkg/errors"
)

func TestGenerateKey(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate key : %s", err)
	}

	if key.ID.IsZero() {
		t.Errorf("Generated key has a zero identity")
	}

	if len(key.SecretStr()) != 64 {
		t.Errorf("Secret is %d hex characters, want 64", len(key.SecretStr()))
	}
}

func TestKeyFromStr(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate key : %s", err)
	}

	parsed, err := KeyFromStr(key.SecretStr())
	if err != nil {
		t.Fatalf("Failed to parse secret : %s", err)
	}

	if !parsed.ID.Equal(key.ID) {
		t.Errorf("Got identity %v, want %v", parsed.ID, key.ID)
	}
}

func TestKeyFromStrRejectsGarbage(t *testing.T) {
	tests := []string{
		"",
		"zz",
		"0102", // too short
	}

	for _, tt := range tests {
		if _, err := KeyFromStr(tt); errors.Cause(err) != ErrBadKey {
			t.Errorf("Got %v decoding %q, want %v", err, tt, ErrBadKey)
		}
	}
}
