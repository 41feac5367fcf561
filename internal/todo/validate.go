package todo

import (
	"errors"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxTitleLength is the maximum title length in characters.
const MaxTitleLength = 100

// Validation messages.
const (
	MsgListTitleRequired = "The list title is required."
	MsgListTitleTooLong  = "The list title is too long (maximum 100 characters)."
	MsgListTitleUnique   = "List title must be unique."
	MsgTaskTitleRequired = "A todo title is required."
	MsgTaskTitleTooLong  = "The todo title is too long (maximum 100 characters)."
)

// titleRules is checked against the trimmed title. validator's max counts
// runes for strings.
const titleRules = "required,max=100"

var titleValidate *validator.Validate

func init() {
	titleValidate = validator.New()
}

type titleMessages struct {
	required string
	tooLong  string
}

var (
	listTitleMessages = titleMessages{required: MsgListTitleRequired, tooLong: MsgListTitleTooLong}
	taskTitleMessages = titleMessages{required: MsgTaskTitleRequired, tooLong: MsgTaskTitleTooLong}
)

// ValidateListTitle checks a list title against the length rules and
// against existing, the titles of the sibling lists. When renaming, existing
// must not include the list being renamed. Uniqueness is case-sensitive.
// An empty result means the title is valid.
func ValidateListTitle(title string, existing []string) []string {
	title = strings.TrimSpace(title)
	msgs := checkTitle(title, listTitleMessages)
	if slices.Contains(existing, title) {
		msgs = append(msgs, MsgListTitleUnique)
	}
	return msgs
}

// ValidateTaskTitle checks a task title against the length rules. Task
// titles need not be unique.
func ValidateTaskTitle(title string) []string {
	return checkTitle(strings.TrimSpace(title), taskTitleMessages)
}

func checkTitle(title string, m titleMessages) []string {
	msgs := []string{}
	err := titleValidate.Var(title, titleRules)
	if err == nil {
		return msgs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return append(msgs, m.required)
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, m.required)
		case "max":
			msgs = append(msgs, m.tooLong)
		}
	}
	return msgs
}
