package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"challenge-tracker/internal/errors"
	"challenge-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Repository defines the key-value operations backing the tracker snapshot
type Repository interface {
	// Get returns the value stored under key and whether it exists
	Get(ctx context.Context, key string) (string, bool, error)
	GetRecord(ctx context.Context, key string) (*Record, error)
	Keys(ctx context.Context) ([]string, error)

	// Put replaces the value under key in a single statement
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error

	Close() error
}

// Options tunes the SQLite repository
type Options struct {
	QueryTimeout   time.Duration
	WriteTimeout   time.Duration
	DirPermissions os.FileMode
}

// DefaultOptions returns the options used by New
func DefaultOptions() Options {
	return Options{
		QueryTimeout:   10 * time.Second,
		WriteTimeout:   5 * time.Second,
		DirPermissions: 0755,
	}
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, DefaultOptions())
}

// NewWithOptions creates the database file and its directory if needed and
// runs pending migrations.
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	if dbPath != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), opts.DirPermissions); err != nil {
			return nil, errors.NewDatabaseError("create database directory", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// A second pooled connection to ":memory:" would see a different database.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opts.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.opts.QueryTimeout)
}

func (r *SQLiteRepository) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opts.WriteTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.opts.WriteTimeout)
}

// GetRecord retrieves the full record stored under key
func (r *SQLiteRepository) GetRecord(ctx context.Context, key string) (*Record, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `SELECT key, value, updated_at FROM kv_store WHERE key = ?`
	return QuerySingle(ctx, r.db, query, ScanRecord, "key", key, key)
}

// Get retrieves the value stored under key. A missing key is not an error.
func (r *SQLiteRepository) Get(ctx context.Context, key string) (string, bool, error) {
	record, err := r.GetRecord(ctx, key)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return record.Value, true, nil
}

// Keys lists all stored keys in ascending order
func (r *SQLiteRepository) Keys(ctx context.Context) ([]string, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `SELECT key FROM kv_store ORDER BY key ASC`
	ptrs, err := QueryMultiple(ctx, r.db, query, ScanKeys, "keys")
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(ptrs))
	for i, k := range ptrs {
		keys[i] = *k
	}
	return keys, nil
}

// Put stores value under key, replacing any previous value
func (r *SQLiteRepository) Put(ctx context.Context, key, value string) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `
	INSERT INTO kv_store (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	return Execute(ctx, r.db, query, key, value, FormatTimeForDB(timeNow()))
}

// Delete removes key
func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `DELETE FROM kv_store WHERE key = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "key", key, key)
}
