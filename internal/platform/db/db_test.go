package db

import (
	"bytes"
	"context"
	"testing"

	"github.com/pkg/errors"
)

func newTestDB(t testing.TB) *DB {
	dbConn, err := New(&StorageConfig{
		Bucket: "standalone",
		Root:   "./tmp",
	})
	if err != nil {
		t.Fatalf("Failed to create DB : %s", err)
	}

	if err := dbConn.Clear(context.Background(), "test"); err != nil {
		t.Fatalf("Failed to clear test path : %s", err)
	}

	return dbConn
}

func TestPutFetchRemove(t *testing.T) {
	ctx := context.Background()
	dbConn := newTestDB(t)
	defer dbConn.Close()

	body := []byte("hello")

	if err := dbConn.Put(ctx, "test/doc", body); err != nil {
		t.Fatalf("Failed to put : %s", err)
	}

	got, err := dbConn.Fetch(ctx, "test/doc")
	if err != nil {
		t.Fatalf("Failed to fetch : %s", err)
	}
	if !bytes.Equal(got, body) {
		t.Errorf("Got %q, want %q", got, body)
	}

	if err := dbConn.Remove(ctx, "test/doc"); err != nil {
		t.Fatalf("Failed to remove : %s", err)
	}

	if _, err := dbConn.Fetch(ctx, "test/doc"); err != ErrNotFound {
		t.Errorf("Got %v, want %v", err, ErrNotFound)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	dbConn := newTestDB(t)
	defer dbConn.Close()

	keys := []string{"test/a", "test/b", "test/c"}
	for _, key := range keys {
		if err := dbConn.Put(ctx, key, []byte(key)); err != nil {
			t.Fatalf("Failed to put %s : %s", key, err)
		}
	}

	listed, err := dbConn.List(ctx, "test")
	if err != nil {
		t.Fatalf("Failed to list : %s", err)
	}
	if len(listed) != len(keys) {
		t.Errorf("Listed %d keys, want %d", len(listed), len(keys))
	}

	if err := dbConn.Clear(ctx, "test"); err != nil {
		t.Fatalf("Failed to clear : %s", err)
	}

	listed, err = dbConn.List(ctx, "test")
	if err != nil {
		t.Fatalf("Failed to list after clear : %s", err)
	}
	if len(listed) != 0 {
		t.Errorf("Listed %d keys after clear, want 0", len(listed))
	}
}

func TestStatusCheck(t *testing.T) {
	ctx := context.Background()
	dbConn := newTestDB(t)
	defer dbConn.Close()

	if err := dbConn.StatusCheck(ctx); err != nil {
		t.Errorf("Status check failed : %s", err)
	}
}

func TestUninitialized(t *testing.T) {
	ctx := context.Background()
	dbConn := &DB{}

	if err := dbConn.Put(ctx, "test/doc", nil); errors.Cause(err) != ErrInvalidDBProvided {
		t.Errorf("Got %v, want %v", err, ErrInvalidDBProvided)
	}

	if _, err := dbConn.Fetch(ctx, "test/doc"); errors.Cause(err) != ErrInvalidDBProvided {
		t.Errorf("Got %v, want %v", err, ErrInvalidDBProvided)
	}
}
