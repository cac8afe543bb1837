package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-task-api/internal/models"
)

// stubParser resolves a fixed set of phrases.
type stubParser map[string]time.Time

func (p stubParser) Parse(text string) (time.Time, bool) {
	t, ok := p[text]
	return t, ok
}

func strPtr(s string) *string { return &s }

func validTask() *models.Task {
	due := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)
	return &models.Task{
		Name:      "Ship release",
		Priority:  models.PriorityHigh,
		DueOn:     &due,
		ProjectID: 1,
		CreatedBy: 1,
	}
}

func TestTaskValidator_Valid(t *testing.T) {
	v := NewTaskValidator(stubParser{})

	assert.NoError(t, v.Validate(validTask(), OperationCreate))
	assert.NoError(t, v.Validate(validTask(), OperationUpdate))
}

func TestTaskValidator_Name(t *testing.T) {
	v := NewTaskValidator(stubParser{})

	for _, name := range []string{"", " ", "\t\n"} {
		task := validTask()
		task.Name = name

		err := v.Validate(task, OperationCreate)

		verr, ok := AsValidationError(err)
		require.True(t, ok, "name %q", name)
		assert.Equal(t, []string{"required"}, verr.On(FieldName))
	}
}

func TestTaskValidator_Priority(t *testing.T) {
	v := NewTaskValidator(stubParser{})

	for _, p := range []models.Priority{-1, 0, 5, 42} {
		task := validTask()
		task.Priority = p

		err := v.Validate(task, OperationCreate)

		verr, ok := AsValidationError(err)
		require.True(t, ok, "priority %d", p)
		assert.Equal(t, []string{"not in allowed list"}, verr.On(FieldPriority))
	}

	for _, p := range []models.Priority{1, 2, 3, 4} {
		task := validTask()
		task.Priority = p
		assert.NoError(t, v.Validate(task, OperationCreate), "priority %d", p)
	}
}

func TestTaskValidator_DueOnRequiredOnUpdateOnly(t *testing.T) {
	v := NewTaskValidator(stubParser{})

	task := validTask()
	task.DueOn = nil
	assert.NoError(t, v.Validate(task, OperationCreate))

	err := v.Validate(task, OperationUpdate)
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"invalid"}, verr.On(FieldDueOn))

	zero := time.Time{}
	task.DueOn = &zero
	err = v.Validate(task, OperationUpdate)
	verr, ok = AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"invalid"}, verr.On(FieldDueOn))
}

func TestTaskValidator_DueStringDerivesDueOn(t *testing.T) {
	tomorrow := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	v := NewTaskValidator(stubParser{"tomorrow": tomorrow})

	task := validTask()
	task.DueOn = nil
	task.DueString = strPtr("tomorrow")

	require.NoError(t, v.Validate(task, OperationUpdate))
	require.NotNil(t, task.DueOn)
	assert.Equal(t, tomorrow, *task.DueOn)
}

func TestTaskValidator_UnparsableDueStringLeavesDueOn(t *testing.T) {
	v := NewTaskValidator(stubParser{})

	task := validTask()
	original := *task.DueOn
	task.DueString = strPtr("zzqq123")

	err := v.Validate(task, OperationCreate)

	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"was not a proper date: zzqq123"}, verr.On(FieldDueString))
	require.NotNil(t, task.DueOn)
	assert.Equal(t, original, *task.DueOn)
}

func TestTaskValidator_MalformedAbsoluteDate(t *testing.T) {
	v := NewTaskValidator(NewNaturalDateParser(func() time.Time {
		return time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	}))

	for _, text := range []string{"2026-02-30", "2026-13-45"} {
		task := validTask()
		original := *task.DueOn
		task.DueString = strPtr(text)

		verr, ok := AsValidationError(v.Validate(task, OperationUpdate))
		require.True(t, ok, text)
		assert.Equal(t, []string{"was not a proper date: " + text}, verr.On(FieldDueString))
		assert.Empty(t, verr.On(FieldDueOn))
		assert.Equal(t, original, *task.DueOn, text)
	}
}

func TestTaskValidator_AccumulatesAllViolations(t *testing.T) {
	v := NewTaskValidator(stubParser{})

	task := &models.Task{
		Name:      "",
		Priority:  9,
		DueString: strPtr("whenever"),
	}

	err := v.Validate(task, OperationUpdate)

	verr, ok := AsValidationError(err)
	require.True(t, ok)
	fields := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{FieldDueString, FieldName, FieldPriority, FieldDueOn}, fields)
	assert.Nil(t, task.DueOn)
}

func TestTaskValidator_ShipReleaseExample(t *testing.T) {
	now := time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)
	v := NewTaskValidator(NewNaturalDateParser(func() time.Time { return now }))

	task := &models.Task{
		Name:      "Ship release",
		Priority:  models.PriorityHigh,
		DueString: strPtr("tomorrow"),
		ProjectID: 1,
		CreatedBy: 1,
	}

	require.NoError(t, v.Validate(task, OperationCreate))
	require.NotNil(t, task.DueOn)

	want := now.AddDate(0, 0, 1)
	assert.Equal(t, want.Format("2006-01-02"), task.DueOn.Format("2006-01-02"))
	assert.Equal(t, models.TaskStatusPending, task.Status(now))
}
