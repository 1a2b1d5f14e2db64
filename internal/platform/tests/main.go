// Package tests holds the fixture shared by the package level tests.
package tests

import (
	"context"
	"runtime/debug"
	"testing"

	"github.com/tokenized/ballot-engine/internal/platform/db"
	"github.com/tokenized/ballot-engine/internal/platform/logger"
	"github.com/tokenized/ballot-engine/pkg/wallet"

	"github.com/pkg/errors"
)

const (
	// Success is the Unicode codepoint for a check mark.
	Success = "✓"

	// Failed is the Unicode codepoint for an X mark.
	Failed = "✗"
)

// Test owns the state shared by the tests of one package.
type Test struct {
	Context  context.Context
	AdminKey *wallet.Key
	MasterDB *db.DB
}

// New builds the shared fixture: a context with a request scoped logger, a
// standalone storage DB under ./tmp and an administrator key. Anything a
// previous run left under the election path is cleared.
func New() (*Test, error) {
	test := Test{
		Context: logger.NewContext(),
	}

	var err error
	test.MasterDB, err = db.New(&db.StorageConfig{
		Bucket: "standalone",
		Root:   "./tmp",
	})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create DB")
	}

	if err := test.MasterDB.Clear(test.Context, "election"); err != nil {
		return nil, errors.Wrap(err, "Failed to clear election path")
	}

	test.AdminKey, err = wallet.GenerateKey()
	if err != nil {
		return nil, errors.Wrap(err, "Failed to generate admin key")
	}

	return &test, nil
}

// TearDown releases what New built.
func (test *Test) TearDown() {
	if test.MasterDB != nil {
		test.MasterDB.Close()
	}
}

// Reset clears the stored election so a test starts from nothing.
func (test *Test) Reset(ctx context.Context) error {
	return test.MasterDB.Clear(ctx, "election")
}

// GenerateKey returns a new random key.
func GenerateKey() (*wallet.Key, error) {
	return wallet.GenerateKey()
}

// Recover is used to prevent panics from allowing the test to cleanup.
func Recover(t testing.TB) {
	if r := recover(); r != nil {
		t.Fatal("Unhandled Exception:", string(debug.Stack()))
	}
}
