package task

import (
	"sort"

	"github.com/dcm-mcn/console/internal/errors"
)

// Status represents the current state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
	StatusCanceled   Status = "canceled"
)

// Priority represents the importance level of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultPriority is assigned when a creation request leaves priority unset.
const DefaultPriority = PriorityMedium

// Workflow labels. Label is an open set; these two are the creation
// workflows the console knows about.
const (
	LabelContentAnalysis     = "content-analysis"
	LabelInfluencerExpansion = "influencer-expansion"
)

// PriorityOrder returns the sort order for a priority (lower = higher priority).
func PriorityOrder(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// SortByPriority stably sorts tasks in place, highest priority first.
// Ties keep their existing order, so a server-ordered list stays in
// insertion order within each priority.
func SortByPriority(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return PriorityOrder(tasks[i].Priority) < PriorityOrder(tasks[j].Priority)
	})
}

// Task represents a unit of work tracked by the dashboard.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	Label       string   `json:"label,omitempty"`
}

// IsValidStatus checks if a status string is valid.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsValidPriority checks if a priority string is valid.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Validate checks the task against the record schema. It reports the first
// failing field and has no side effects.
func (t Task) Validate() error {
	if t.ID == "" {
		return errors.ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if t.Title == "" {
		return errors.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !IsValidStatus(t.Status) {
		return errors.ValidationError{Field: "status", Reason: "must be one of todo, in-progress, done, canceled"}
	}
	if !IsValidPriority(t.Priority) {
		return errors.ValidationError{Field: "priority", Reason: "must be one of low, medium, high"}
	}
	return nil
}
