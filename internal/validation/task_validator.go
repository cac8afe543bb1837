package validation

import (
	"strings"

	"github.com/yukikurage/project-task-api/internal/models"
)

// Operation selects the rule set: some rules apply only on update.
type Operation int

const (
	OperationCreate Operation = iota
	OperationUpdate
)

// Field names used in task violations.
const (
	FieldName      = "name"
	FieldPriority  = "priority"
	FieldDueOn     = "due_on"
	FieldDueString = "due_string"
)

// TaskValidator runs the task pipeline: derive due_on from due_string,
// then check the field rules. Every rule is evaluated before returning.
type TaskValidator struct {
	parser DateParser
}

// NewTaskValidator creates a TaskValidator using parser for due_string.
func NewTaskValidator(parser DateParser) *TaskValidator {
	return &TaskValidator{parser: parser}
}

// Validate derives fields on task in place and returns a *ValidationError
// listing every violation, or nil.
func (v *TaskValidator) Validate(task *models.Task, op Operation) error {
	verr := NewValidationError()

	v.deriveDueOn(task, verr)

	if strings.TrimSpace(task.Name) == "" {
		verr.Add(FieldName, "required")
	}
	if !task.Priority.Valid() {
		verr.Add(FieldPriority, "not in allowed list")
	}
	if op == OperationUpdate && (task.DueOn == nil || task.DueOn.IsZero()) {
		verr.Add(FieldDueOn, "invalid")
	}

	return verr.OrNil()
}

// deriveDueOn leaves due_on untouched when due_string is absent or unparsable.
func (v *TaskValidator) deriveDueOn(task *models.Task, verr *ValidationError) {
	if task.DueString == nil {
		return
	}

	dueOn, ok := v.parser.Parse(*task.DueString)
	if !ok {
		verr.Add(FieldDueString, "was not a proper date: "+*task.DueString)
		return
	}
	task.DueOn = &dueOn
}
