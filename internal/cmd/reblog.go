package cmd

import (
	"github.com/quill-social/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	reblogComment string
	reblogForce   bool
)

var reblogCmd = &cobra.Command{
	Use:   "reblog",
	Short: "Reblog management commands",
	Long:  "Reblog posts, list reblogs and delete your reblogs",
}

var reblogListCmd = &cobra.Command{
	Use:   "list [username]",
	Short: "List a blogger's reblogs (yours by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := ""
		if len(args) == 1 {
			username = args[0]
		}
		reblogService := service.NewReblogService()
		return reblogService.List(username)
	},
}

var reblogCreateCmd = &cobra.Command{
	Use:   "create <post-id>",
	Short: "Reblog a post, optionally with a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "post")
		if err != nil {
			return err
		}
		reblogService := service.NewReblogService()
		return reblogService.Create(id, reblogComment)
	},
}

var reblogDeleteCmd = &cobra.Command{
	Use:   "delete <reblog-id>",
	Short: "Delete one of your reblogs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "reblog")
		if err != nil {
			return err
		}
		reblogService := service.NewReblogService()
		return reblogService.Delete(id, reblogForce)
	},
}

func init() {
	reblogCreateCmd.Flags().StringVarP(&reblogComment, "comment", "c", "", "Comment to add on top of the reblogged post")
	reblogDeleteCmd.Flags().BoolVarP(&reblogForce, "yes", "y", false, "Skip confirmation")

	reblogCmd.AddCommand(reblogCreateCmd)
	reblogCmd.AddCommand(reblogListCmd)
	reblogCmd.AddCommand(reblogDeleteCmd)
}
