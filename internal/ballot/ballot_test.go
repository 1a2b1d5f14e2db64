package ballot

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestNew(t *testing.T) {
	b, err := New([]string{"Alpha", "Beta", "Gamma"})
	if err != nil {
		t.Fatal(err)
	}

	if Length(&b) != 3 {
		t.Errorf("got %v, want %v", Length(&b), 3)
	}

	for i, want := range []string{"Alpha", "Beta", "Gamma"} {
		label, err := Label(&b, uint32(i))
		if err != nil {
			t.Fatal(err)
		}
		if label != want {
			t.Errorf("proposal %d : got %q, want %q", i, label, want)
		}

		count, err := VoteCount(&b, uint32(i))
		if err != nil {
			t.Fatal(err)
		}
		if count != 0 {
			t.Errorf("proposal %d : got count %v, want 0", i, count)
		}
	}
}

func TestNew_BadLabels(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
	}{
		{"empty label", []string{"Alpha", ""}},
		{"oversized label", []string{strings.Repeat("x", 33)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.labels); err == nil {
				t.Fatal("got nil, want error")
			}
		})
	}
}

func TestNew_DuplicateLabelsAllowed(t *testing.T) {
	b, err := New([]string{"Same", "Same"})
	if err != nil {
		t.Fatal(err)
	}

	if Length(&b) != 2 {
		t.Errorf("got %v, want %v", Length(&b), 2)
	}
}

func TestAddVotes(t *testing.T) {
	b, err := New([]string{"Alpha", "Beta"})
	if err != nil {
		t.Fatal(err)
	}

	if err := AddVotes(&b, 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := AddVotes(&b, 1, 2); err != nil {
		t.Fatal(err)
	}

	count, err := VoteCount(&b, 1)
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("got %v, want %v", count, 3)
	}

	count, err = VoteCount(&b, 0)
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("got %v, want %v", count, 0)
	}
}

func TestAddVotes_OutOfRange(t *testing.T) {
	b, err := New([]string{"Alpha", "Beta"})
	if err != nil {
		t.Fatal(err)
	}

	err = AddVotes(&b, 2, 1)
	if errors.Cause(err) != ErrInvalidProposal {
		t.Errorf("got %v, want %v", err, ErrInvalidProposal)
	}

	if _, err := VoteCount(&b, 99); errors.Cause(err) != ErrInvalidProposal {
		t.Errorf("got %v, want %v", err, ErrInvalidProposal)
	}

	if _, err := Label(&b, 99); errors.Cause(err) != ErrInvalidProposal {
		t.Errorf("got %v, want %v", err, ErrInvalidProposal)
	}
}

func TestEmptyBallot(t *testing.T) {
	b, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}

	if Length(&b) != 0 {
		t.Errorf("got %v, want %v", Length(&b), 0)
	}

	if err := AddVotes(&b, 0, 1); errors.Cause(err) != ErrInvalidProposal {
		t.Errorf("got %v, want %v", err, ErrInvalidProposal)
	}
}
