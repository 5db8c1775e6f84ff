package output

import (
	"github.com/dcm-mcn/console/internal/auth"
	"github.com/dcm-mcn/console/internal/settings"
	"github.com/dcm-mcn/console/internal/task"
)

// Formatter defines the interface for output formatting.
type Formatter interface {
	FormatTask(t task.Task) string
	FormatTaskList(tasks []task.Task) string
	FormatUser(u *auth.User) string
	FormatModels(models []settings.ModelCredential) string
	FormatCookies(cookies []settings.CrawlerCookie) string
	FormatError(err error) string
	FormatMessage(msg string) string
}
