package service

import "todos/internal/todo"

// Outcome is the final state of a unit of work.
type Outcome int

const (
	// Applied means the store was changed and Result.Snapshot must be
	// persisted.
	Applied Outcome = iota + 1

	// Rejected means validation failed; Result.Snapshot is the input
	// snapshot and Result.Messages holds the violations.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Result is returned by every mutating operation.
type Result struct {
	Outcome  Outcome
	Snapshot todo.Snapshot
	Messages []string

	// ID is the id of the list or task created by the operation, or 0.
	ID int
}

// ListView is a display projection of a task list.
type ListView struct {
	ID        int
	Title     string
	Done      bool
	Count     int
	DoneCount int
	Tasks     []TaskView
}

// TaskView is a display projection of a task.
type TaskView struct {
	ID     int
	Title  string
	Done   bool
	Marker string
}
