package todo

import "fmt"

// Display markers for a task's completion state.
const (
	DoneMarker   = "X"
	UndoneMarker = " "
)

// Task is a single completable work item. Tasks are owned by exactly one
// TaskList.
type Task struct {
	id    int
	title string
	done  bool
}

// NewTask creates an undone task. id must come from an IDGenerator.
func NewTask(id int, title string) *Task {
	return &Task{id: id, title: title}
}

// RestoreTask rebuilds a task from its snapshot without re-checking it.
func RestoreTask(s TaskSnapshot) *Task {
	return &Task{id: s.ID, title: s.Title, done: s.Done}
}

func (t *Task) ID() int       { return t.id }
func (t *Task) Title() string { return t.title }
func (t *Task) IsDone() bool  { return t.done }

func (t *Task) MarkDone()   { t.done = true }
func (t *Task) MarkUndone() { t.done = false }

// Toggle flips the completion state.
func (t *Task) Toggle() {
	if t.done {
		t.MarkUndone()
	} else {
		t.MarkDone()
	}
}

// Rename replaces the title. The caller validates it first.
func (t *Task) Rename(title string) {
	t.title = title
}

// Marker returns DoneMarker or UndoneMarker.
func (t *Task) Marker() string {
	if t.done {
		return DoneMarker
	}
	return UndoneMarker
}

func (t *Task) String() string {
	return fmt.Sprintf("[%s] %s", t.Marker(), t.title)
}

func (t *Task) snapshot() TaskSnapshot {
	return TaskSnapshot{ID: t.id, Title: t.title, Done: t.done}
}
