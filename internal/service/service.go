// Package service implements the unit-of-work operations over a session's
// task lists.
//
// Every mutating operation receives the session's prior snapshot and the raw
// request values, and returns a Result carrying the snapshot to persist and
// the messages to show. A non-nil error is returned only when a referenced
// list or task does not exist (errors.Is(err, todo.ErrNotFound)); callers
// keep their snapshot in that case.
package service

import (
	"fmt"
	"strings"

	"todos/internal/todo"
)

// Success messages.
const (
	MsgListCreated    = "The todo list has been created."
	MsgListRenamed    = "The todo list title updated."
	MsgListDeleted    = "Todo list deleted."
	MsgTaskAdded      = "The todo added."
	MsgTaskRenamed    = "The todo title updated."
	MsgAllTasksDone   = "All items marked completed."
	msgTaskDoneFmt    = `"%s" marked done.`
	msgTaskUndoneFmt  = `"%s" marked as NOT done!`
	msgTaskDeletedFmt = `"%s" deleted!`
)

// Service runs operations against snapshots. It is safe for concurrent use
// as long as each call gets its own snapshot.
type Service struct {
	ids *todo.IDGenerator
}

// New creates a Service drawing new ids from ids.
func New(ids *todo.IDGenerator) *Service {
	return &Service{ids: ids}
}

// CreateList adds a list titled title.
func (s *Service) CreateList(snap todo.Snapshot, title string) (Result, error) {
	st := todo.Rehydrate(snap, s.ids)
	if msgs := todo.ValidateListTitle(title, st.Titles(0)); len(msgs) > 0 {
		return rejected(snap, msgs), nil
	}
	l := st.AddList(strings.TrimSpace(title))
	return applied(st, l.ID(), MsgListCreated), nil
}

// RenameList changes the title of a list. The list's current title does not
// count as a duplicate.
func (s *Service) RenameList(snap todo.Snapshot, listID, title string) (Result, error) {
	st := todo.Rehydrate(snap, s.ids)
	l, err := findList(st, listID)
	if err != nil {
		return Result{}, err
	}
	if msgs := todo.ValidateListTitle(title, st.Titles(l.ID())); len(msgs) > 0 {
		return rejected(snap, msgs), nil
	}
	l.Rename(strings.TrimSpace(title))
	return applied(st, 0, MsgListRenamed), nil
}

// DeleteList removes a list and all of its tasks.
func (s *Service) DeleteList(snap todo.Snapshot, listID string) (Result, error) {
	st := todo.Rehydrate(snap, s.ids)
	l, err := findList(st, listID)
	if err != nil {
		return Result{}, err
	}
	if err := st.RemoveList(l.ID()); err != nil {
		return Result{}, err
	}
	return applied(st, 0, MsgListDeleted), nil
}

// AddTask appends a new undone task to a list.
func (s *Service) AddTask(snap todo.Snapshot, listID, title string) (Result, error) {
	st := todo.Rehydrate(snap, s.ids)
	l, err := findList(st, listID)
	if err != nil {
		return Result{}, err
	}
	if msgs := todo.ValidateTaskTitle(title); len(msgs) > 0 {
		return rejected(snap, msgs), nil
	}
	t := st.NewTask(strings.TrimSpace(title))
	l.Add(t)
	return applied(st, t.ID(), MsgTaskAdded), nil
}

// RenameTask changes the title of a task.
func (s *Service) RenameTask(snap todo.Snapshot, listID, taskID, title string) (Result, error) {
	st := todo.Rehydrate(snap, s.ids)
	t, err := findTask(st, listID, taskID)
	if err != nil {
		return Result{}, err
	}
	if msgs := todo.ValidateTaskTitle(title); len(msgs) > 0 {
		return rejected(snap, msgs), nil
	}
	t.Rename(strings.TrimSpace(title))
	return applied(st, 0, MsgTaskRenamed), nil
}

// ToggleTask flips a task between done and undone.
func (s *Service) ToggleTask(snap todo.Snapshot, listID, taskID string) (Result, error) {
	st := todo.Rehydrate(snap, s.ids)
	t, err := findTask(st, listID, taskID)
	if err != nil {
		return Result{}, err
	}
	t.Toggle()
	msg := fmt.Sprintf(msgTaskUndoneFmt, t.Title())
	if t.IsDone() {
		msg = fmt.Sprintf(msgTaskDoneFmt, t.Title())
	}
	return applied(st, 0, msg), nil
}

// DeleteTask removes a task from its list.
func (s *Service) DeleteTask(snap todo.Snapshot, listID, taskID string) (Result, error) {
	st := todo.Rehydrate(snap, s.ids)
	l, err := findList(st, listID)
	if err != nil {
		return Result{}, err
	}
	t, err := findTaskIn(l, taskID)
	if err != nil {
		return Result{}, err
	}
	if err := l.RemoveAt(l.IndexOf(t)); err != nil {
		return Result{}, err
	}
	return applied(st, 0, fmt.Sprintf(msgTaskDeletedFmt, t.Title())), nil
}

// CompleteAll marks every task of a list done.
func (s *Service) CompleteAll(snap todo.Snapshot, listID string) (Result, error) {
	st := todo.Rehydrate(snap, s.ids)
	l, err := findList(st, listID)
	if err != nil {
		return Result{}, err
	}
	l.MarkAllDone()
	return applied(st, 0, MsgAllTasksDone), nil
}

// Lists returns every list ordered for display, without tasks.
func (s *Service) Lists(snap todo.Snapshot) []ListView {
	st := todo.Rehydrate(snap, s.ids)
	sorted := todo.SortLists(st.Lists())
	views := make([]ListView, 0, len(sorted))
	for _, l := range sorted {
		views = append(views, listView(l))
	}
	return views
}

// List returns one list with its tasks ordered for display.
func (s *Service) List(snap todo.Snapshot, listID string) (ListView, error) {
	st := todo.Rehydrate(snap, s.ids)
	l, err := findList(st, listID)
	if err != nil {
		return ListView{}, err
	}
	v := listView(l)
	v.Tasks = make([]TaskView, 0, l.Count())
	for _, t := range todo.SortTasks(l) {
		v.Tasks = append(v.Tasks, TaskView{ID: t.ID(), Title: t.Title(), Done: t.IsDone(), Marker: t.Marker()})
	}
	return v, nil
}

func findList(st *todo.Store, rawID string) (*todo.TaskList, error) {
	id, ok := todo.ParseID(rawID)
	if !ok {
		return nil, fmt.Errorf("list %q: %w", rawID, todo.ErrNotFound)
	}
	return st.FindList(id)
}

func findTask(st *todo.Store, rawListID, rawTaskID string) (*todo.Task, error) {
	l, err := findList(st, rawListID)
	if err != nil {
		return nil, err
	}
	return findTaskIn(l, rawTaskID)
}

func findTaskIn(l *todo.TaskList, rawID string) (*todo.Task, error) {
	id, ok := todo.ParseID(rawID)
	if !ok {
		return nil, fmt.Errorf("task %q in list %d: %w", rawID, l.ID(), todo.ErrNotFound)
	}
	return l.FindByID(id)
}

func listView(l *todo.TaskList) ListView {
	return ListView{
		ID:        l.ID(),
		Title:     l.Title(),
		Done:      l.IsFullyDone(),
		Count:     l.Count(),
		DoneCount: l.DoneCount(),
	}
}

func applied(st *todo.Store, id int, msg string) Result {
	return Result{Outcome: Applied, Snapshot: st.Serialize(), Messages: []string{msg}, ID: id}
}

func rejected(snap todo.Snapshot, msgs []string) Result {
	return Result{Outcome: Rejected, Snapshot: snap, Messages: msgs}
}
