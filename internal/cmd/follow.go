package cmd

import (
	"github.com/quill-social/cli/pkg/service"
	"github.com/spf13/cobra"
)

var followCmd = &cobra.Command{
	Use:   "follow <username>",
	Short: "Follow a blogger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		followService := service.NewFollowService()
		return followService.Follow(args[0])
	},
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow <username>",
	Short: "Unfollow a blogger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		followService := service.NewFollowService()
		return followService.Unfollow(args[0])
	},
}

var followersCmd = &cobra.Command{
	Use:   "followers [username]",
	Short: "List a blogger's followers (yours by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := ""
		if len(args) == 1 {
			username = args[0]
		}
		followService := service.NewFollowService()
		return followService.Followers(username)
	},
}

var followStatusCmd = &cobra.Command{
	Use:   "status <username>",
	Short: "Check whether you follow a blogger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		followService := service.NewFollowService()
		return followService.Status(args[0])
	},
}

func init() {
	followCmd.AddCommand(followStatusCmd)
}
