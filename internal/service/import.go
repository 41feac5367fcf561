package service

import (
	"fmt"
	"strings"

	"todos/internal/todo"
)

// MsgNothingToImport is reported when no list could be imported.
const MsgNothingToImport = "Nothing to import."

const (
	msgImportedFmt   = "%d todo lists imported."
	msgImportSkipFmt = `"%s" skipped: %s`
)

// ImportList is a list fetched from an external source.
type ImportList struct {
	Title string
	Tasks []ImportTask
}

// ImportTask is a task fetched from an external source.
type ImportTask struct {
	Title string
	Done  bool
}

// Import appends lists to the session with fresh ids. Titles are trimmed
// and cut to todo.MaxTitleLength characters. Lists whose title fails
// validation against the session are skipped with a message; tasks with
// an empty title are dropped. The result is Rejected when no list could
// be imported.
func (s *Service) Import(snap todo.Snapshot, lists []ImportList) (Result, error) {
	st := todo.Rehydrate(snap, s.ids)

	var skipped []string
	imported := 0
	for _, in := range lists {
		title := truncate(in.Title)
		if msgs := todo.ValidateListTitle(title, st.Titles(0)); len(msgs) > 0 {
			skipped = append(skipped, fmt.Sprintf(msgImportSkipFmt, title, msgs[0]))
			continue
		}
		l := st.AddList(title)
		for _, it := range in.Tasks {
			taskTitle := truncate(it.Title)
			if len(todo.ValidateTaskTitle(taskTitle)) > 0 {
				continue
			}
			t := st.NewTask(taskTitle)
			if it.Done {
				t.MarkDone()
			}
			l.Add(t)
		}
		imported++
	}

	if imported == 0 {
		return rejected(snap, append(skipped, MsgNothingToImport)), nil
	}
	msgs := append([]string{fmt.Sprintf(msgImportedFmt, imported)}, skipped...)
	return Result{Outcome: Applied, Snapshot: st.Serialize(), Messages: msgs}, nil
}

func truncate(title string) string {
	title = strings.TrimSpace(title)
	r := []rune(title)
	if len(r) > todo.MaxTitleLength {
		title = strings.TrimSpace(string(r[:todo.MaxTitleLength]))
	}
	return title
}
