package output

import (
	"fmt"
	"strings"

	"github.com/dcm-mcn/console/internal/auth"
	"github.com/dcm-mcn/console/internal/settings"
	"github.com/dcm-mcn/console/internal/task"
)

// HumanFormatter formats output for human-readable terminal display.
type HumanFormatter struct{}

// NewHumanFormatter creates a new HumanFormatter.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// FormatTask formats a single task for display.
func (f *HumanFormatter) FormatTask(t task.Task) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s\n", t.ID, t.Title))
	sb.WriteString(fmt.Sprintf("  Status:   %s\n", t.Status))
	sb.WriteString(fmt.Sprintf("  Priority: %s\n", t.Priority))
	if t.Label != "" {
		sb.WriteString(fmt.Sprintf("  Label:    %s\n", t.Label))
	}
	if t.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(t.Description)
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatTaskList formats a list of tasks for display.
func (f *HumanFormatter) FormatTaskList(tasks []task.Task) string {
	if len(tasks) == 0 {
		return "No tasks found.\n"
	}

	var sb strings.Builder
	for _, t := range tasks {
		sb.WriteString(f.formatTaskLine(t))
	}
	return sb.String()
}

// formatTaskLine formats a single task as a compact one-liner.
func (f *HumanFormatter) formatTaskLine(t task.Task) string {
	statusIcon := f.statusIcon(t.Status)
	priorityMark := f.priorityMark(t.Priority)
	label := ""
	if t.Label != "" {
		label = fmt.Sprintf(" (%s)", t.Label)
	}
	return fmt.Sprintf("%s %s [%s] %s%s\n", statusIcon, priorityMark, t.ID, t.Title, label)
}

func (f *HumanFormatter) statusIcon(s task.Status) string {
	switch s {
	case task.StatusTodo:
		return "[ ]"
	case task.StatusInProgress:
		return "[*]"
	case task.StatusDone:
		return "[X]"
	case task.StatusCanceled:
		return "[-]"
	default:
		return "[?]"
	}
}

func (f *HumanFormatter) priorityMark(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return "P1"
	case task.PriorityMedium:
		return "P2"
	case task.PriorityLow:
		return "P3"
	default:
		return "P?"
	}
}

// FormatUser formats the logged-in identity.
func (f *HumanFormatter) FormatUser(u *auth.User) string {
	if u == nil {
		return "Not logged in.\n"
	}
	return fmt.Sprintf("Logged in as %s <%s>\n", u.Name, u.Email)
}

// FormatModels formats the stored model credentials. API keys are masked.
func (f *HumanFormatter) FormatModels(models []settings.ModelCredential) string {
	if len(models) == 0 {
		return "No model credentials stored.\n"
	}

	var sb strings.Builder
	for _, m := range models {
		sb.WriteString(fmt.Sprintf("[%s] %s  %s  key:%s\n", m.ID, m.Name, m.APIURL, maskSecret(m.APIKey)))
	}
	return sb.String()
}

// FormatCookies formats the stored crawler cookies. Values are masked.
func (f *HumanFormatter) FormatCookies(cookies []settings.CrawlerCookie) string {
	if len(cookies) == 0 {
		return "No crawler cookies stored.\n"
	}

	var sb strings.Builder
	for _, c := range cookies {
		sb.WriteString(fmt.Sprintf("[%s] %s  %s\n", c.ID, c.Platform, maskSecret(c.Cookie)))
	}
	return sb.String()
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return fmt.Sprintf("Error: %s\n", err.Error())
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}

// maskSecret keeps the first four characters of a secret visible.
func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
