// Package persistence moves whole tracker snapshots in and out of durable
// key-value storage.
package persistence

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"challenge-tracker/internal/errors"
	"challenge-tracker/internal/tracker"
)

// KeyValueStore is the durable storage the adapter writes snapshots to.
// The SQLite repository satisfies it.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Adapter loads and saves the full tracker store under a single key.
type Adapter struct {
	kv     KeyValueStore
	key    string
	logger *zap.Logger
}

// NewAdapter creates an adapter storing snapshots under key
func NewAdapter(kv KeyValueStore, key string, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		kv:     kv,
		key:    key,
		logger: logger.With(zap.String("key", key)),
	}
}

// Key returns the storage key snapshots are written under
func (a *Adapter) Key() string {
	return a.key
}

// Load reads the persisted store. A missing key yields an empty store, and
// so does a blob that cannot be read or decoded; that case is logged and
// never surfaced to the caller.
func (a *Adapter) Load(ctx context.Context) *tracker.Store {
	raw, ok, err := a.kv.Get(ctx, a.key)
	if err != nil {
		a.logger.Warn("discarding unreadable tracker data", zap.Error(errors.NewMalformedStateError(a.key, err)))
		return tracker.New()
	}
	if !ok {
		a.logger.Debug("no tracker data stored yet")
		return tracker.New()
	}

	store := tracker.New()
	if err := json.Unmarshal([]byte(raw), store); err != nil {
		a.logger.Warn("discarding malformed tracker data", zap.Error(errors.NewMalformedStateError(a.key, err)))
		return tracker.New()
	}

	a.logger.Debug("loaded tracker data", zap.Int("activities", store.Len()))
	return store
}

// Save writes a full snapshot of store, replacing the previous one. A
// failed write is logged and returned as a PersistenceWrite error; it is
// not retried.
func (a *Adapter) Save(ctx context.Context, store *tracker.Store) error {
	data, err := json.Marshal(store)
	if err != nil {
		return a.writeFailed(err)
	}
	if err := a.kv.Put(ctx, a.key, string(data)); err != nil {
		return a.writeFailed(err)
	}

	a.logger.Debug("saved tracker data", zap.Int("activities", store.Len()), zap.Int("bytes", len(data)))
	return nil
}

// Clear removes the persisted snapshot. Clearing an empty slot is not an error.
func (a *Adapter) Clear(ctx context.Context) error {
	err := a.kv.Delete(ctx, a.key)
	if err == nil || errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		a.logger.Debug("cleared tracker data")
		return nil
	}
	return a.writeFailed(err)
}

func (a *Adapter) writeFailed(cause error) error {
	err := errors.NewPersistenceWriteError(a.key, cause)
	a.logger.Error("tracker data was not saved", zap.Error(err))
	return err
}
