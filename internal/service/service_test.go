package service_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todos/internal/service"
	"todos/internal/todo"
)

func newService() *service.Service {
	return service.New(todo.NewIDGenerator(0))
}

func id(n int) string { return strconv.Itoa(n) }

func homeSnapshot() todo.Snapshot {
	return todo.Snapshot{Lists: []todo.ListSnapshot{
		{ID: 1, Title: "Home", Tasks: []todo.TaskSnapshot{
			{ID: 2, Title: "Milk", Done: false},
			{ID: 3, Title: "Bread", Done: true},
		}},
		{ID: 4, Title: "Groceries", Tasks: []todo.TaskSnapshot{}},
	}}
}

func TestEndToEndScenario(t *testing.T) {
	svc := newService()

	res, err := svc.CreateList(todo.EmptySnapshot(), "Home")
	require.NoError(t, err)
	require.Equal(t, service.Applied, res.Outcome)
	assert.Equal(t, []string{service.MsgListCreated}, res.Messages)
	listID := id(res.ID)

	res, err = svc.AddTask(res.Snapshot, listID, "Milk")
	require.NoError(t, err)
	require.Equal(t, service.Applied, res.Outcome)
	require.Len(t, res.Snapshot.Lists[0].Tasks, 1)
	assert.False(t, res.Snapshot.Lists[0].Tasks[0].Done)
	taskID := id(res.ID)

	res, err = svc.ToggleTask(res.Snapshot, listID, taskID)
	require.NoError(t, err)
	require.Equal(t, service.Applied, res.Outcome)
	assert.True(t, res.Snapshot.Lists[0].Tasks[0].Done)
	assert.Equal(t, []string{`"Milk" marked done.`}, res.Messages)

	view, err := svc.List(res.Snapshot, listID)
	require.NoError(t, err)
	assert.True(t, view.Done)

	res, err = svc.DeleteList(res.Snapshot, listID)
	require.NoError(t, err)
	require.Equal(t, service.Applied, res.Outcome)
	assert.Empty(t, res.Snapshot.Lists)

	_, err = svc.DeleteList(res.Snapshot, listID)
	assert.ErrorIs(t, err, todo.ErrNotFound)
}

func TestCreateList_Validation(t *testing.T) {
	svc := newService()

	tests := []struct {
		name    string
		title   string
		outcome service.Outcome
		msgs    []string
	}{
		{"empty", "", service.Rejected, []string{todo.MsgListTitleRequired}},
		{"too long", strings.Repeat("a", 101), service.Rejected, []string{todo.MsgListTitleTooLong}},
		{"duplicate", "Groceries", service.Rejected, []string{todo.MsgListTitleUnique}},
		{"different case", "groceries", service.Applied, []string{service.MsgListCreated}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := homeSnapshot()
			res, err := svc.CreateList(snap, tt.title)
			require.NoError(t, err)
			assert.Equal(t, tt.outcome, res.Outcome)
			assert.Equal(t, tt.msgs, res.Messages)
			if tt.outcome == service.Rejected {
				assert.Equal(t, homeSnapshot(), res.Snapshot)
				assert.Zero(t, res.ID)
			}
		})
	}
}

func TestCreateList_TrimsTitle(t *testing.T) {
	res, err := newService().CreateList(todo.EmptySnapshot(), "  Work  ")
	require.NoError(t, err)
	require.Equal(t, service.Applied, res.Outcome)
	assert.Equal(t, "Work", res.Snapshot.Lists[0].Title)
	assert.Equal(t, []todo.TaskSnapshot{}, res.Snapshot.Lists[0].Tasks)
}

func TestCreateList_NewIDAvoidsPersistedIDs(t *testing.T) {
	res, err := newService().CreateList(homeSnapshot(), "Work")
	require.NoError(t, err)
	assert.Equal(t, 5, res.ID)
}

func TestRenameList(t *testing.T) {
	svc := newService()

	res, err := svc.RenameList(homeSnapshot(), "1", "Home")
	require.NoError(t, err)
	assert.Equal(t, service.Applied, res.Outcome, "keeping the same title is not a duplicate")

	res, err = svc.RenameList(homeSnapshot(), "1", "Groceries")
	require.NoError(t, err)
	assert.Equal(t, service.Rejected, res.Outcome)
	assert.Equal(t, []string{todo.MsgListTitleUnique}, res.Messages)

	res, err = svc.RenameList(homeSnapshot(), "1", " House ")
	require.NoError(t, err)
	assert.Equal(t, service.Applied, res.Outcome)
	assert.Equal(t, "House", res.Snapshot.Lists[0].Title)
	assert.Equal(t, []string{service.MsgListRenamed}, res.Messages)

	_, err = svc.RenameList(homeSnapshot(), "99", "Other")
	assert.ErrorIs(t, err, todo.ErrNotFound)
}

func TestAddTask(t *testing.T) {
	svc := newService()

	res, err := svc.AddTask(homeSnapshot(), "4", " Apples ")
	require.NoError(t, err)
	require.Equal(t, service.Applied, res.Outcome)
	assert.Equal(t, []todo.TaskSnapshot{{ID: 5, Title: "Apples"}}, res.Snapshot.Lists[1].Tasks)
	assert.Equal(t, 5, res.ID)

	res, err = svc.AddTask(homeSnapshot(), "4", "   ")
	require.NoError(t, err)
	assert.Equal(t, service.Rejected, res.Outcome)
	assert.Equal(t, []string{todo.MsgTaskTitleRequired}, res.Messages)
	assert.Equal(t, homeSnapshot(), res.Snapshot)

	res, err = svc.AddTask(homeSnapshot(), "1", "Milk")
	require.NoError(t, err)
	assert.Equal(t, service.Applied, res.Outcome, "task titles need not be unique")
}

func TestAddTask_NotFoundBeforeValidation(t *testing.T) {
	_, err := newService().AddTask(homeSnapshot(), "99", "")
	assert.ErrorIs(t, err, todo.ErrNotFound)
}

func TestToggleTask_Messages(t *testing.T) {
	svc := newService()

	res, err := svc.ToggleTask(homeSnapshot(), "1", "3")
	require.NoError(t, err)
	assert.Equal(t, []string{`"Bread" marked as NOT done!`}, res.Messages)
	assert.False(t, res.Snapshot.Lists[0].Tasks[1].Done)

	res, err = svc.ToggleTask(res.Snapshot, "1", "3")
	require.NoError(t, err)
	assert.Equal(t, homeSnapshot(), res.Snapshot)
}

func TestDeleteTask(t *testing.T) {
	svc := newService()

	res, err := svc.DeleteTask(homeSnapshot(), "1", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{`"Milk" deleted!`}, res.Messages)
	assert.Equal(t, []todo.TaskSnapshot{{ID: 3, Title: "Bread", Done: true}}, res.Snapshot.Lists[0].Tasks)

	_, err = svc.DeleteTask(res.Snapshot, "1", "2")
	assert.ErrorIs(t, err, todo.ErrNotFound)
}

func TestRenameTask(t *testing.T) {
	svc := newService()

	res, err := svc.RenameTask(homeSnapshot(), "1", "2", "Oat milk")
	require.NoError(t, err)
	assert.Equal(t, service.Applied, res.Outcome)
	assert.Equal(t, "Oat milk", res.Snapshot.Lists[0].Tasks[0].Title)

	res, err = svc.RenameTask(homeSnapshot(), "1", "2", strings.Repeat("m", 101))
	require.NoError(t, err)
	assert.Equal(t, service.Rejected, res.Outcome)
	assert.Equal(t, []string{todo.MsgTaskTitleTooLong}, res.Messages)
}

func TestCompleteAll(t *testing.T) {
	svc := newService()

	res, err := svc.CompleteAll(homeSnapshot(), "1")
	require.NoError(t, err)
	assert.Equal(t, []string{service.MsgAllTasksDone}, res.Messages)
	for _, task := range res.Snapshot.Lists[0].Tasks {
		assert.True(t, task.Done)
	}

	res, err = svc.CompleteAll(homeSnapshot(), "4")
	require.NoError(t, err)
	assert.Equal(t, service.Applied, res.Outcome)
}

func TestNotFound_BadIDs(t *testing.T) {
	svc := newService()
	snap := homeSnapshot()

	for _, raw := range []string{"", "abc", "0", "-1", "1e3", "999999999999999999999"} {
		_, err := svc.ToggleTask(snap, raw, "2")
		assert.ErrorIs(t, err, todo.ErrNotFound, "list id %q", raw)

		_, err = svc.ToggleTask(snap, "1", raw)
		assert.ErrorIs(t, err, todo.ErrNotFound, "task id %q", raw)

		_, err = svc.List(snap, raw)
		assert.ErrorIs(t, err, todo.ErrNotFound, "list id %q", raw)
	}
	_, err := svc.DeleteTask(snap, "4", "2")
	assert.ErrorIs(t, err, todo.ErrNotFound, "task belongs to another list")

	assert.Equal(t, homeSnapshot(), snap)
}

func TestLists_SortedProjection(t *testing.T) {
	snap := todo.Snapshot{Lists: []todo.ListSnapshot{
		{ID: 1, Title: "b", Tasks: []todo.TaskSnapshot{{ID: 10, Title: "x"}}},
		{ID: 2, Title: "a", Tasks: []todo.TaskSnapshot{{ID: 11, Title: "x", Done: true}}},
		{ID: 3, Title: "a", Tasks: []todo.TaskSnapshot{{ID: 12, Title: "x"}}},
	}}

	views := newService().Lists(snap)

	var got []int
	for _, v := range views {
		got = append(got, v.ID)
	}
	assert.Equal(t, []int{3, 1, 2}, got)
	assert.True(t, views[2].Done)
	assert.Equal(t, 1, views[2].DoneCount)
}

func TestList_SortedTasks(t *testing.T) {
	view, err := newService().List(homeSnapshot(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Home", view.Title)
	assert.Equal(t, 2, view.Count)
	assert.Equal(t, []service.TaskView{
		{ID: 2, Title: "Milk", Done: false, Marker: todo.UndoneMarker},
		{ID: 3, Title: "Bread", Done: true, Marker: todo.DoneMarker},
	}, view.Tasks)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "applied", service.Applied.String())
	assert.Equal(t, "rejected", service.Rejected.String())
	assert.Equal(t, "unknown", service.Outcome(0).String())
}
