package cmd

import (
	"strings"

	"github.com/quill-social/cli/pkg/service"
	"github.com/spf13/cobra"
)

var gifCmd = &cobra.Command{
	Use:   "gif",
	Short: "GIF commands",
}

var gifSearchCmd = &cobra.Command{
	Use:   "search <keywords>",
	Short: "Search GIFs to attach to a post",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gifService := service.NewGifService()
		return gifService.Search(strings.Join(args, " "))
	},
}

func init() {
	gifCmd.AddCommand(gifSearchCmd)
}
