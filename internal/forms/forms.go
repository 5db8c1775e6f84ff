// Package forms assembles task creation payloads for the console's two
// business workflows. Each form mirrors the dashboard's behavior: required
// fields block submission, structured fields are composed into the task's
// title and description, and a successful submit resets every field to its
// initial value.
package forms

import (
	"context"

	"github.com/dcm-mcn/console/internal/client"
	"github.com/dcm-mcn/console/internal/errors"
	"github.com/dcm-mcn/console/internal/task"
)

// Platform options. Both workflows draw from the same family; the analysis
// form adds the all-platforms option and the expansion form adds other.
const (
	PlatformDouyin      = "抖音"
	PlatformKuaishou    = "快手"
	PlatformXiaohongshu = "小红书"
	PlatformBilibili    = "B站"
	PlatformWeibo       = "微博"
	PlatformAll         = "全平台"
	PlatformOther       = "其他"
)

// Content type options for the analysis workflow.
const (
	ContentTypeShortVideo = "短视频"
	ContentTypeLivestream = "直播"
	ContentTypeGraphic    = "图文"
	ContentTypeLongVideo  = "长视频"
	ContentTypeMixed      = "综合"
)

// AnalysisPlatforms returns the platform choices for the analysis form.
func AnalysisPlatforms() []string {
	return []string{PlatformDouyin, PlatformKuaishou, PlatformXiaohongshu, PlatformBilibili, PlatformWeibo, PlatformAll}
}

// ExpansionPlatforms returns the platform choices for the expansion form.
func ExpansionPlatforms() []string {
	return []string{PlatformDouyin, PlatformKuaishou, PlatformXiaohongshu, PlatformBilibili, PlatformWeibo, PlatformOther}
}

// ContentTypes returns the content type choices for the analysis form.
func ContentTypes() []string {
	return []string{ContentTypeShortVideo, ContentTypeLivestream, ContentTypeGraphic, ContentTypeLongVideo, ContentTypeMixed}
}

// TaskCreator abstracts the write side of the task API.
type TaskCreator interface {
	CreateTask(ctx context.Context, payload client.CreatePayload) (task.Task, error)
}

// requirePriority validates a form's priority selection.
func requirePriority(p task.Priority) error {
	if !task.IsValidPriority(p) {
		return errors.InvalidPriorityError{Value: string(p)}
	}
	return nil
}
