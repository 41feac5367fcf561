// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todos/internal/service"
	"todos/internal/todo"
)

const (
	// ListSeparator is the separator line for list sections.
	ListSeparator = "------------"

	// NoLists is printed when the session has no lists.
	NoLists = "no lists"

	// NoTasks is printed under a list header when the list is empty.
	NoTasks = "    (empty)"
)

// FormatListLine formats a list line for the lists command.
// Format: "{ID:>4}  [{MARKER}] {TITLE} ({DONE}/{COUNT})\n"
func FormatListLine(w io.Writer, list service.ListView) {
	fmt.Fprintf(w, "%4d  [%s] %s (%d/%d)\n",
		list.ID, listMarker(list), normalizeTitle(list.Title), list.DoneCount, list.Count)
}

// FormatListHeader formats a list section header.
func FormatListHeader(w io.Writer, list service.ListView) {
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintf(w, "%s (%d/%d)\n", normalizeTitle(list.Title), list.DoneCount, list.Count)
	fmt.Fprintln(w, ListSeparator)
}

// FormatTaskIndented formats a task line for a list section.
// Format: "    {ID:>4}  [{MARKER}] {TITLE}\n"
func FormatTaskIndented(w io.Writer, task service.TaskView) {
	fmt.Fprintf(w, "    %4d  [%s] %s\n", task.ID, task.Marker, normalizeTitle(task.Title))
}

// FormatList writes a header followed by every task of the list.
func FormatList(w io.Writer, list service.ListView) {
	FormatListHeader(w, list)
	if len(list.Tasks) == 0 {
		fmt.Fprintln(w, NoTasks)
		return
	}
	for _, task := range list.Tasks {
		FormatTaskIndented(w, task)
	}
}

// FormatLists writes one line per list, or NoLists.
func FormatLists(w io.Writer, lists []service.ListView) {
	if len(lists) == 0 {
		fmt.Fprintln(w, NoLists)
		return
	}
	for _, list := range lists {
		FormatListLine(w, list)
	}
}

// FormatMessages writes each message on its own line.
func FormatMessages(w io.Writer, msgs []string) {
	for _, msg := range msgs {
		fmt.Fprintln(w, msg)
	}
}

func listMarker(list service.ListView) string {
	if list.Done && list.Count > 0 {
		return todo.DoneMarker
	}
	return todo.UndoneMarker
}

// normalizeTitle normalizes a title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
