package cmd

import (
	"github.com/quill-social/cli/pkg/service"
	"github.com/spf13/cobra"
)

var timelineRefresh bool

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Browse timelines",
	Long:  "Browse your own, another blogger's, the global, or a community timeline",
}

var timelineMeCmd = &cobra.Command{
	Use:   "me",
	Short: "Your own posts and reblogs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		timelineService := service.NewTimelineService()
		applyRefresh(timelineService)
		return timelineService.Personal()
	},
}

var timelineUserCmd = &cobra.Command{
	Use:   "user <username>",
	Short: "Another blogger's posts and reblogs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timelineService := service.NewTimelineService()
		applyRefresh(timelineService)
		return timelineService.User(args[0])
	},
}

var timelineGlobalCmd = &cobra.Command{
	Use:   "global",
	Short: "Everything posted on the platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		timelineService := service.NewTimelineService()
		applyRefresh(timelineService)
		return timelineService.Global()
	},
}

var timelineCommunityCmd = &cobra.Command{
	Use:   "community <tag>",
	Short: "The global timeline narrowed to one hashtag",
	Long:  "Posts whose text contains #<tag>, plus reblogs whose comment or reblogged post contains it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timelineService := service.NewTimelineService()
		applyRefresh(timelineService)
		return timelineService.Community(args[0])
	},
}

// applyRefresh makes every feed query hit the network this run.
func applyRefresh(s *service.TimelineService) {
	if !timelineRefresh {
		return
	}
	pol := s.Policies()
	pol.Feeds.RefetchOnRun = true
	pol.GlobalFeeds.RefetchOnRun = true
}

func init() {
	timelineCmd.PersistentFlags().BoolVar(&timelineRefresh, "refresh", false, "Bypass cached feeds and refetch")

	timelineCmd.AddCommand(timelineMeCmd)
	timelineCmd.AddCommand(timelineUserCmd)
	timelineCmd.AddCommand(timelineGlobalCmd)
	timelineCmd.AddCommand(timelineCommunityCmd)
}
