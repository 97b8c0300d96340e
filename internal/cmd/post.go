package cmd

import (
	"github.com/quill-social/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	postContent string
	postMedia   string
	postGif     string
	postForce   bool
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post management commands",
	Long:  "Create, list and delete posts",
}

var postListCmd = &cobra.Command{
	Use:   "list [username]",
	Short: "List a blogger's posts (yours by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := ""
		if len(args) == 1 {
			username = args[0]
		}
		postService := service.NewPostService()
		return postService.List(username)
	},
}

var postCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a new post",
	Long:  "Publish a post with text, a local media file, a GIF URL, or a combination",
	RunE: func(cmd *cobra.Command, args []string) error {
		postService := service.NewPostService()
		return postService.Create(postContent, postMedia, postGif)
	},
}

var postDeleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete one of your posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "post")
		if err != nil {
			return err
		}
		postService := service.NewPostService()
		return postService.Delete(id, postForce)
	},
}

func init() {
	postCreateCmd.Flags().StringVarP(&postContent, "message", "m", "", "Post text (hashtags like #art place the post in that community)")
	postCreateCmd.Flags().StringVar(&postMedia, "media", "", "Path to an image to attach")
	postCreateCmd.Flags().StringVar(&postGif, "gif", "", "GIF URL to attach (see 'quill gif search')")
	postDeleteCmd.Flags().BoolVarP(&postForce, "yes", "y", false, "Skip confirmation")

	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postListCmd)
	postCmd.AddCommand(postDeleteCmd)
}
