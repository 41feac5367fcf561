package output

import (
	"bytes"
	"testing"

	"todos/internal/service"
)

func TestFormatListLine(t *testing.T) {
	tests := []struct {
		name string
		list service.ListView
		want string
	}{
		{
			name: "open list",
			list: service.ListView{ID: 1, Title: "Home", Count: 3, DoneCount: 1},
			want: "   1  [ ] Home (1/3)\n",
		},
		{
			name: "done list",
			list: service.ListView{ID: 12, Title: "Work", Done: true, Count: 2, DoneCount: 2},
			want: "  12  [X] Work (2/2)\n",
		},
		{
			name: "empty list is not marked",
			list: service.ListView{ID: 3, Title: "New", Done: true},
			want: "   3  [ ] New (0/0)\n",
		},
		{
			name: "newline in title",
			list: service.ListView{ID: 4, Title: "a\nb"},
			want: "   4  [ ] a b (0/0)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			FormatListLine(&buf, tt.list)
			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestFormatList(t *testing.T) {
	list := service.ListView{
		ID:        1,
		Title:     "Home",
		Count:     2,
		DoneCount: 1,
		Tasks: []service.TaskView{
			{ID: 2, Title: "Milk", Marker: " "},
			{ID: 3, Title: "Eggs", Done: true, Marker: "X"},
		},
	}

	var buf bytes.Buffer
	FormatList(&buf, list)

	want := "------------\nHome (1/2)\n------------\n       2  [ ] Milk\n       3  [X] Eggs\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatList_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatList(&buf, service.ListView{ID: 1, Title: "  "})

	want := "------------\n(untitled) (0/0)\n------------\n    (empty)\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatLists_None(t *testing.T) {
	var buf bytes.Buffer
	FormatLists(&buf, nil)
	if buf.String() != NoLists+"\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestFormatMessages(t *testing.T) {
	var buf bytes.Buffer
	FormatMessages(&buf, []string{"one", "two"})
	if buf.String() != "one\ntwo\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
