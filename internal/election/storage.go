package election

import (
	"bytes"
	"context"

	"github.com/tokenized/ballot-engine/internal/platform/db"

	"go.opencensus.io/trace"
)

const (
	// StorageKey locates the single election document.
	StorageKey = "election/state"
)

// Load recovers the persisted election. db.ErrNotFound is returned when no
// election document has been written yet.
func Load(ctx context.Context, dbConn *db.DB) (*Election, error) {
	ctx, span := trace.StartSpan(ctx, "internal.election.Load")
	defer span.End()

	data, err := dbConn.Fetch(ctx, StorageKey)
	if err != nil {
		return nil, err
	}

	result := Election{}
	if err := result.state.Deserialize(bytes.NewBuffer(data)); err != nil {
		return nil, err
	}

	return &result, nil
}

// Save persists the current snapshot. It is for callers outside a mutation,
// such as the shutdown checkpoint; mutations persist on their own.
func (e *Election) Save(ctx context.Context, dbConn *db.DB) error {
	ctx, span := trace.StartSpan(ctx, "internal.election.Save")
	defer span.End()

	e.mutex.RLock()
	defer e.mutex.RUnlock()

	return e.save(ctx, dbConn)
}

// save writes the snapshot. The caller holds the lock.
func (e *Election) save(ctx context.Context, dbConn *db.DB) error {
	var buf bytes.Buffer
	if err := e.state.Serialize(&buf); err != nil {
		return err
	}

	return dbConn.Put(ctx, StorageKey, buf.Bytes())
}
