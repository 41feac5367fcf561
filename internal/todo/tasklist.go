package todo

import "fmt"

// TaskList is a titled collection of tasks kept in insertion order.
type TaskList struct {
	id    int
	title string
	tasks []*Task
}

// NewTaskList creates an empty list. id must come from an IDGenerator.
func NewTaskList(id int, title string) *TaskList {
	return &TaskList{id: id, title: title}
}

// RestoreTaskList rebuilds a list and all of its tasks from a snapshot.
func RestoreTaskList(s ListSnapshot) *TaskList {
	l := &TaskList{id: s.ID, title: s.Title, tasks: make([]*Task, 0, len(s.Tasks))}
	for _, ts := range s.Tasks {
		l.tasks = append(l.tasks, RestoreTask(ts))
	}
	return l
}

func (l *TaskList) ID() int       { return l.id }
func (l *TaskList) Title() string { return l.title }

// Rename replaces the title. The caller validates it first.
func (l *TaskList) Rename(title string) {
	l.title = title
}

// Add appends a task to the end of the list.
func (l *TaskList) Add(t *Task) {
	l.tasks = append(l.tasks, t)
}

// Tasks returns the tasks in insertion order. The slice is a copy; the
// tasks are shared.
func (l *TaskList) Tasks() []*Task {
	out := make([]*Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// FindByID returns the task with the given id.
func (l *TaskList) FindByID(id int) (*Task, error) {
	for _, t := range l.tasks {
		if t.id == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("task %d in list %d: %w", id, l.id, ErrNotFound)
}

// IndexOf returns the position of t in the list, or -1.
func (l *TaskList) IndexOf(t *Task) int {
	for i, cur := range l.tasks {
		if cur == t {
			return i
		}
	}
	return -1
}

// RemoveAt removes the task at index.
func (l *TaskList) RemoveAt(index int) error {
	if index < 0 || index >= len(l.tasks) {
		return fmt.Errorf("task index %d in list %d: %w", index, l.id, ErrNotFound)
	}
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	return nil
}

// RemoveByID removes the task with the given id.
func (l *TaskList) RemoveByID(id int) error {
	t, err := l.FindByID(id)
	if err != nil {
		return err
	}
	return l.RemoveAt(l.IndexOf(t))
}

// MarkAllDone marks every task done.
func (l *TaskList) MarkAllDone() {
	for _, t := range l.tasks {
		t.MarkDone()
	}
}

// IsFullyDone reports whether every task is done. An empty list is done.
func (l *TaskList) IsFullyDone() bool {
	for _, t := range l.tasks {
		if !t.done {
			return false
		}
	}
	return true
}

func (l *TaskList) Count() int { return len(l.tasks) }

func (l *TaskList) DoneCount() int {
	n := 0
	for _, t := range l.tasks {
		if t.done {
			n++
		}
	}
	return n
}

func (l *TaskList) UndoneCount() int { return l.Count() - l.DoneCount() }

func (l *TaskList) snapshot() ListSnapshot {
	tasks := make([]TaskSnapshot, 0, len(l.tasks))
	for _, t := range l.tasks {
		tasks = append(tasks, t.snapshot())
	}
	return ListSnapshot{ID: l.id, Title: l.title, Tasks: tasks}
}
