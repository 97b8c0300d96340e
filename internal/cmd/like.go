package cmd

import (
	"github.com/quill-social/cli/pkg/service"
	"github.com/spf13/cobra"
)

var likeOnReblog bool

var likeCmd = &cobra.Command{
	Use:   "like <id>",
	Short: "Like a post (or reblog with --reblog)",
	Long:  "Like a post or reblog. Liking something you already liked is a no-op.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entity, err := entityRef(args[0], likeOnReblog)
		if err != nil {
			return err
		}
		likeService := service.NewLikeService()
		return likeService.Like(entity)
	},
}

var unlikeCmd = &cobra.Command{
	Use:   "unlike <id>",
	Short: "Remove your like from a post (or reblog with --reblog)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entity, err := entityRef(args[0], likeOnReblog)
		if err != nil {
			return err
		}
		likeService := service.NewLikeService()
		return likeService.Unlike(entity)
	},
}

var likesCmd = &cobra.Command{
	Use:   "likes <id>",
	Short: "Show the like state of a post (or reblog with --reblog)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entity, err := entityRef(args[0], likeOnReblog)
		if err != nil {
			return err
		}
		likeService := service.NewLikeService()
		return likeService.Show(entity)
	},
}

func init() {
	likeCmd.Flags().BoolVar(&likeOnReblog, "reblog", false, "Target a reblog instead of a post")
	unlikeCmd.Flags().BoolVar(&likeOnReblog, "reblog", false, "Target a reblog instead of a post")
	likesCmd.Flags().BoolVar(&likeOnReblog, "reblog", false, "Target a reblog instead of a post")
}
