// Package badgerstore implements session.Store on an embedded BadgerDB.
//
// Each session's snapshot is stored as one JSON value under the key
// "session/<id>". A unit of work reads and writes the whole snapshot, so the
// last write for a session wins.
package badgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"

	"todos/internal/session"
	"todos/internal/todo"
)

const keyPrefix = "session/"

// Config holds configuration for a Store.
type Config struct {
	// Path is the directory for BadgerDB files. Ignored when InMemory is true.
	Path string

	// InMemory keeps all data in memory. Used by tests.
	InMemory bool

	// SyncWrites makes every write durable before Save returns.
	SyncWrites bool

	// Logger receives BadgerDB's internal logs. If nil they are discarded.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used by the CLI and server.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns a configuration for tests.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// Store is a session.Store backed by BadgerDB.
type Store struct {
	db *badger.DB
}

var _ session.Store = (*Store)(nil)

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Open opens (creating if needed) the database described by cfg.
// The caller must Close the returned Store.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0700); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &Store{db: db}, nil
}

// Load implements session.Store.
func (s *Store) Load(ctx context.Context, id string) (todo.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return todo.Snapshot{}, err
	}
	if !session.ValidID(id) {
		return todo.Snapshot{}, fmt.Errorf("%w: %q", session.ErrInvalidID, id)
	}

	snap := todo.EmptySnapshot()
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if err != nil {
		return todo.Snapshot{}, fmt.Errorf("load session %s: %w", id, err)
	}
	normalize(&snap)
	return snap, nil
}

// Save implements session.Store.
func (s *Store) Save(ctx context.Context, id string, snap todo.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !session.ValidID(id) {
		return fmt.Errorf("%w: %q", session.ErrInvalidID, id)
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", id, err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(id), data)
	}); err != nil {
		return fmt.Errorf("save session %s: %w", id, err)
	}
	return nil
}

// Delete implements session.Store.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key(id))
	}); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

// Close implements session.Store.
func (s *Store) Close() error {
	return s.db.Close()
}

func key(id string) []byte {
	return []byte(keyPrefix + id)
}

// normalize replaces null arrays from older or hand-written values so that
// snapshots always carry non-nil slices.
func normalize(snap *todo.Snapshot) {
	if snap.Lists == nil {
		snap.Lists = []todo.ListSnapshot{}
	}
	for i := range snap.Lists {
		if snap.Lists[i].Tasks == nil {
			snap.Lists[i].Tasks = []todo.TaskSnapshot{}
		}
	}
}
