package output

import (
	"encoding/json"

	"github.com/dcm-mcn/console/internal/auth"
	"github.com/dcm-mcn/console/internal/settings"
	"github.com/dcm-mcn/console/internal/task"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct{}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatTask formats a single task as JSON.
func (f *JSONFormatter) FormatTask(t task.Task) string {
	return marshalJSON(t)
}

// FormatTaskList formats a list of tasks as JSON.
func (f *JSONFormatter) FormatTaskList(tasks []task.Task) string {
	if tasks == nil {
		tasks = []task.Task{}
	}
	return marshalJSON(tasks)
}

// FormatUser formats the logged-in identity as JSON.
func (f *JSONFormatter) FormatUser(u *auth.User) string {
	if u == nil {
		return marshalJSON(nil)
	}
	return marshalJSON(u)
}

// FormatModels formats the stored model credentials as JSON.
func (f *JSONFormatter) FormatModels(models []settings.ModelCredential) string {
	if models == nil {
		models = []settings.ModelCredential{}
	}
	return marshalJSON(models)
}

// FormatCookies formats the stored crawler cookies as JSON.
func (f *JSONFormatter) FormatCookies(cookies []settings.CrawlerCookie) string {
	if cookies == nil {
		cookies = []settings.CrawlerCookie{}
	}
	return marshalJSON(cookies)
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(errorJSON{Error: err.Error()})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}
