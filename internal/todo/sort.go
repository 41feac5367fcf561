package todo

import (
	"slices"
	"strings"
)

// SortLists returns lists ordered for display: lists with undone work
// first, then by case-insensitive title. Equal keys keep their input order.
// The input slice is not modified.
func SortLists(lists []*TaskList) []*TaskList {
	out := slices.Clone(lists)
	slices.SortStableFunc(out, func(a, b *TaskList) int {
		return compareDisplay(a.IsFullyDone(), a.title, b.IsFullyDone(), b.title)
	})
	return out
}

// SortTasks returns the tasks of l ordered for display using the same rule
// as SortLists. The list itself keeps its insertion order.
func SortTasks(l *TaskList) []*Task {
	out := l.Tasks()
	slices.SortStableFunc(out, func(a, b *Task) int {
		return compareDisplay(a.done, a.title, b.done, b.title)
	})
	return out
}

func compareDisplay(aDone bool, aTitle string, bDone bool, bTitle string) int {
	if aDone != bDone {
		if aDone {
			return 1
		}
		return -1
	}
	return strings.Compare(strings.ToLower(aTitle), strings.ToLower(bTitle))
}
