// Package session defines how task list snapshots are persisted between
// units of work.
package session

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"todos/internal/todo"
)

// DefaultID is the session used by the CLI when none is configured.
const DefaultID = "default"

// ErrInvalidID is returned for session ids that cannot be used as keys.
var ErrInvalidID = errors.New("invalid session id")

// Store persists one snapshot per session id.
// Implementations must be safe for concurrent use.
type Store interface {
	// Load returns the snapshot saved for id, or an empty snapshot if none
	// was saved.
	Load(ctx context.Context, id string) (todo.Snapshot, error)

	// Save replaces the snapshot for id.
	Save(ctx context.Context, id string, snap todo.Snapshot) error

	// Delete removes the snapshot for id. Deleting an unknown id is not an
	// error.
	Delete(ctx context.Context, id string) error

	// Close releases the underlying resources.
	Close() error
}

// NewID returns a fresh random session id.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id can be used as a session key: a UUID issued by
// NewID, or a short name made of letters, digits, '-' and '_'.
func ValidID(id string) bool {
	if _, err := uuid.Parse(id); err == nil {
		return true
	}
	if id == "" || len(id) > 64 {
		return false
	}
	return strings.IndexFunc(id, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_')
	}) < 0
}
