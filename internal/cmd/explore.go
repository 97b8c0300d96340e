package cmd

import (
	"strings"

	"github.com/quill-social/cli/pkg/service"
	"github.com/spf13/cobra"
)

var topBloggersLimit int

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Discover trending content and bloggers",
}

var exploreTrendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show the post with the most interactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		exploreService := service.NewExploreService()
		return exploreService.Trending()
	},
}

var exploreTopCmd = &cobra.Command{
	Use:   "top",
	Short: "List the most-followed bloggers",
	RunE: func(cmd *cobra.Command, args []string) error {
		exploreService := service.NewExploreService()
		return exploreService.TopBloggers(topBloggersLimit)
	},
}

var exploreSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search bloggers by username or name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exploreService := service.NewExploreService()
		return exploreService.Search(strings.Join(args, " "))
	},
}

func init() {
	exploreTopCmd.Flags().IntVarP(&topBloggersLimit, "limit", "n", 5, "How many bloggers to list")

	exploreCmd.AddCommand(exploreTrendingCmd)
	exploreCmd.AddCommand(exploreTopCmd)
	exploreCmd.AddCommand(exploreSearchCmd)
}
