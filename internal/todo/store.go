package todo

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced list or task does not exist.
var ErrNotFound = errors.New("not found")

// Snapshot is the plain, persistable form of a Store.
type Snapshot struct {
	Lists []ListSnapshot `json:"lists"`
}

// ListSnapshot is the plain form of a TaskList.
type ListSnapshot struct {
	ID    int            `json:"id"`
	Title string         `json:"title"`
	Tasks []TaskSnapshot `json:"tasks"`
}

// TaskSnapshot is the plain form of a Task.
type TaskSnapshot struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// EmptySnapshot returns a snapshot with no lists.
func EmptySnapshot() Snapshot {
	return Snapshot{Lists: []ListSnapshot{}}
}

// Store holds the task lists of one session for one unit of work.
// A Store is not safe for concurrent use; each unit of work rehydrates
// its own.
type Store struct {
	ids   *IDGenerator
	lists []*TaskList
}

// Rehydrate rebuilds a store from a snapshot. The snapshot is trusted: no
// invariant is re-checked. Every id in the snapshot is reported to ids so
// that new entities never reuse a persisted id.
func Rehydrate(s Snapshot, ids *IDGenerator) *Store {
	st := &Store{ids: ids, lists: make([]*TaskList, 0, len(s.Lists))}
	for _, ls := range s.Lists {
		ids.Observe(ls.ID)
		for _, ts := range ls.Tasks {
			ids.Observe(ts.ID)
		}
		st.lists = append(st.lists, RestoreTaskList(ls))
	}
	return st
}

// Serialize returns the snapshot of the store. Rehydrate(s).Serialize()
// equals s for any snapshot s with non-nil slices.
func (s *Store) Serialize() Snapshot {
	out := Snapshot{Lists: make([]ListSnapshot, 0, len(s.lists))}
	for _, l := range s.lists {
		out.Lists = append(out.Lists, l.snapshot())
	}
	return out
}

// Lists returns the lists in insertion order.
func (s *Store) Lists() []*TaskList {
	out := make([]*TaskList, len(s.lists))
	copy(out, s.lists)
	return out
}

// Titles returns the titles of all lists except the one with id exclude.
// Pass 0 to include every list.
func (s *Store) Titles(exclude int) []string {
	out := make([]string, 0, len(s.lists))
	for _, l := range s.lists {
		if l.id == exclude {
			continue
		}
		out = append(out, l.title)
	}
	return out
}

// AddList creates an empty list with a fresh id and appends it.
func (s *Store) AddList(title string) *TaskList {
	l := NewTaskList(s.ids.Next(), title)
	s.lists = append(s.lists, l)
	return l
}

// NewTask creates a task with a fresh id. The task is not added to any list.
func (s *Store) NewTask(title string) *Task {
	return NewTask(s.ids.Next(), title)
}

// FindList returns the list with the given id.
func (s *Store) FindList(id int) (*TaskList, error) {
	for _, l := range s.lists {
		if l.id == id {
			return l, nil
		}
	}
	return nil, fmt.Errorf("list %d: %w", id, ErrNotFound)
}

// FindTask looks up a task within a list.
func (s *Store) FindTask(listID, taskID int) (*Task, error) {
	l, err := s.FindList(listID)
	if err != nil {
		return nil, err
	}
	return l.FindByID(taskID)
}

// RemoveList removes a list together with its tasks.
func (s *Store) RemoveList(id int) error {
	for i, l := range s.lists {
		if l.id == id {
			s.lists = append(s.lists[:i], s.lists[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("list %d: %w", id, ErrNotFound)
}
