package forms

import (
	"context"
	"fmt"

	"github.com/dcm-mcn/console/internal/client"
	"github.com/dcm-mcn/console/internal/errors"
	"github.com/dcm-mcn/console/internal/task"
)

const analysisTitlePrefix = "[创作分析] "

// ContentAnalysisForm collects the fields of a content analysis task.
// AnalysisGoal and Description are optional; everything else is required.
type ContentAnalysisForm struct {
	Title        string
	ContentType  string
	Platform     string
	AnalysisGoal string
	Description  string
	Priority     task.Priority

	submitting bool
}

// NewContentAnalysisForm returns a form in its initial state.
func NewContentAnalysisForm() *ContentAnalysisForm {
	return &ContentAnalysisForm{Priority: task.DefaultPriority}
}

// Payload composes the structured fields into a creation payload. The title
// carries the workflow marker and the description joins the structured
// values ahead of the free-text body.
func (f *ContentAnalysisForm) Payload() client.CreatePayload {
	return client.CreatePayload{
		Title:       analysisTitlePrefix + f.Title,
		Description: fmt.Sprintf("内容类型: %s\n平台: %s\n分析目标: %s\n\n%s", f.ContentType, f.Platform, f.AnalysisGoal, f.Description),
		Status:      string(task.StatusTodo),
		Priority:    string(f.Priority),
		Label:       task.LabelContentAnalysis,
	}
}

// Submitting reports whether a submit is in flight.
func (f *ContentAnalysisForm) Submitting() bool {
	return f.submitting
}

// Submit validates the form and sends the assembled payload. On failure the
// fields are left intact for retry; on success the form resets to its
// initial state. The in-flight flag clears on every path.
func (f *ContentAnalysisForm) Submit(ctx context.Context, creator TaskCreator) (task.Task, error) {
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
func (f *ContentAnalysisForm) Reset() {
	f.Title = ""
	f.ContentType = ""
	f.Platform = ""
	f.AnalysisGoal = ""
	f.Description = ""
	f.Priority = task.DefaultPriority
}

func (f *ContentAnalysisForm) validate() error {
	if f.Title == "" {
		return errors.MissingFieldError{Field: "title"}
	}
	if f.ContentType == "" {
		return errors.MissingFieldError{Field: "contentType"}
	}
	if f.Platform == "" {
		return errors.MissingFieldError{Field: "platform"}
	}
	return requirePriority(f.Priority)
}
