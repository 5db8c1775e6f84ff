package main

import (
	"github.com/spf13/cobra"

	"github.com/dcm-mcn/console/internal/forms"
	"github.com/dcm-mcn/console/internal/task"
)

// analyzeCmd implements 'dcm analyze': creates a content analysis task.
func analyzeCmd() *cobra.Command {
	var contentType, platform, goal, description, priority string
	cmd := &cobra.Command{
		Use:   "analyze <title>",
		Short: "Create a content analysis task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			form := forms.NewContentAnalysisForm()
			form.Title = args[0]
			form.ContentType = contentType
			form.Platform = platform
			form.AnalysisGoal = goal
			form.Description = description
			form.Priority = task.Priority(priority)

			created, err := form.Submit(cmd.Context(), getClient(getConfig()))
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(created))
		},
	}
	cmd.Flags().StringVarP(&contentType, "content-type", "t", "", "Content type (短视频, 直播, 图文, 长视频, 综合)")
	cmd.Flags().StringVarP(&platform, "platform", "P", "", "Platform (抖音, 快手, 小红书, B站, 微博, 全平台)")
	cmd.Flags().StringVarP(&goal, "goal", "g", "", "Analysis goal")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low, medium, high)")
	return cmd
}

// expandCmd implements 'dcm expand': creates an influencer expansion task.
func expandCmd() *cobra.Command {
	var influencer, platform, description, priority string
	cmd := &cobra.Command{
		Use:   "expand <title>",
		Short: "Create an influencer expansion task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			form := forms.NewInfluencerExpansionForm()
			form.Title = args[0]
			form.Influencer = influencer
			form.Platform = platform
			form.Description = description
			form.Priority = task.Priority(priority)

			created, err := form.Submit(cmd.Context(), getClient(getConfig()))
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(created))
		},
	}
	cmd.Flags().StringVarP(&influencer, "influencer", "i", "", "Target influencer name")
	cmd.Flags().StringVarP(&platform, "platform", "P", "", "Platform (抖音, 快手, 小红书, B站, 微博, 其他)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low, medium, high)")
	return cmd
}
