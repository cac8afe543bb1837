package models

// Priority ranks a task. Lower values are more urgent.
type Priority int

const (
	PriorityHigh    Priority = 1
	PriorityMed     Priority = 2
	PriorityLow     Priority = 3
	PrioritySomeday Priority = 4
)

var priorityLabels = map[Priority]string{
	PriorityHigh:    "High",
	PriorityMed:     "Med",
	PriorityLow:     "Low",
	PrioritySomeday: "Who cares?",
}

// PriorityOption is a label/value pair for select inputs.
type PriorityOption struct {
	Label string   `json:"label"`
	Value Priority `json:"value"`
}

// Valid reports whether p is one of the allowed priority levels.
func (p Priority) Valid() bool {
	_, ok := priorityLabels[p]
	return ok
}

// Label returns the display label, or "" for an unknown priority.
func (p Priority) Label() string {
	return priorityLabels[p]
}

// Priorities returns every allowed priority in ascending order.
func Priorities() []PriorityOption {
	return []PriorityOption{
		{Label: PriorityHigh.Label(), Value: PriorityHigh},
		{Label: PriorityMed.Label(), Value: PriorityMed},
		{Label: PriorityLow.Label(), Value: PriorityLow},
		{Label: PrioritySomeday.Label(), Value: PrioritySomeday},
	}
}
