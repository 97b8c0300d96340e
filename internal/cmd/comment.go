package cmd

import (
	"github.com/quill-social/cli/pkg/service"
	"github.com/spf13/cobra"
)

var commentOnReblog bool

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Comment management commands",
	Long:  "View, add and delete comments on posts and reblogs",
}

var commentListCmd = &cobra.Command{
	Use:   "list <id>",
	Short: "List comments on a post (or reblog with --reblog)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entity, err := entityRef(args[0], commentOnReblog)
		if err != nil {
			return err
		}
		commentService := service.NewCommentService()
		return commentService.List(entity)
	},
}

var commentAddCmd = &cobra.Command{
	Use:   "add <id> <text>",
	Short: "Comment on a post (or reblog with --reblog)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		entity, err := entityRef(args[0], commentOnReblog)
		if err != nil {
			return err
		}
		commentService := service.NewCommentService()
		return commentService.Add(entity, args[1])
	},
}

var commentDeleteCmd = &cobra.Command{
	Use:   "delete <id> <comment-id>",
	Short: "Delete your comment from a post (or reblog with --reblog)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		entity, err := entityRef(args[0], commentOnReblog)
		if err != nil {
			return err
		}
		commentID, err := parseID(args[1], "comment")
		if err != nil {
			return err
		}
		commentService := service.NewCommentService()
		return commentService.Delete(entity, commentID)
	},
}

func init() {
	commentCmd.PersistentFlags().BoolVar(&commentOnReblog, "reblog", false, "Target a reblog instead of a post")

	commentCmd.AddCommand(commentListCmd)
	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentDeleteCmd)
}
