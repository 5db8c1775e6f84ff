package forms

import (
	"context"
	"fmt"

	"github.com/dcm-mcn/console/internal/client"
	"github.com/dcm-mcn/console/internal/errors"
	"github.com/dcm-mcn/console/internal/task"
)

const expansionTitlePrefix = "[达人拓展] "

// InfluencerExpansionForm collects the fields of an influencer expansion
// task. Description is optional; everything else is required.
type InfluencerExpansionForm struct {
	Title       string
	Influencer  string
	Platform    string
	Description string
	Priority    task.Priority

	submitting bool
}

// NewInfluencerExpansionForm returns a form in its initial state.
func NewInfluencerExpansionForm() *InfluencerExpansionForm {
	return &InfluencerExpansionForm{Priority: task.DefaultPriority}
}

// Payload composes the structured fields into a creation payload.
func (f *InfluencerExpansionForm) Payload() client.CreatePayload {
	return client.CreatePayload{
		Title:       expansionTitlePrefix + f.Title,
		Description: fmt.Sprintf("达人: %s\n平台: %s\n\n%s", f.Influencer, f.Platform, f.Description),
		Status:      string(task.StatusTodo),
		Priority:    string(f.Priority),
		Label:       task.LabelInfluencerExpansion,
	}
}

// Submitting reports whether a submit is in flight.
func (f *InfluencerExpansionForm) Submitting() bool {
	return f.submitting
}

// Submit validates the form and sends the assembled payload. On failure the
// fields are left intact for retry; on success the form resets to its
// initial state. The in-flight flag clears on every path.
func (f *InfluencerExpansionForm) Submit(ctx context.Context, creator TaskCreator) (task.Task, error) {
	if f.submitting {
		return task.Task{}, errors.SubmitInProgressError{}
	}
	if err := f.validate(); err != nil {
		return task.Task{}, err
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	created, err := creator.CreateTask(ctx, f.Payload())
	if err != nil {
		return task.Task{}, err
	}

	f.Reset()
	return created, nil
}

// Reset returns every field to its initial value.
func (f *InfluencerExpansionForm) Reset() {
	f.Title = ""
	f.Influencer = ""
	f.Platform = ""
	f.Description = ""
	f.Priority = task.DefaultPriority
}

func (f *InfluencerExpansionForm) validate() error {
	if f.Title == "" {
		return errors.MissingFieldError{Field: "title"}
	}
	if f.Influencer == "" {
		return errors.MissingFieldError{Field: "influencer"}
	}
	if f.Platform == "" {
		return errors.MissingFieldError{Field: "platform"}
	}
	return requirePriority(f.Priority)
}
