package service

import (
	"fmt"

	"github.com/quill-social/cli/pkg/formatter"
	"github.com/quill-social/cli/pkg/output"
)

type ExploreService struct{}

// NewExploreService creates a new explore service
func NewExploreService() *ExploreService {
	return &ExploreService{}
}

// Trending shows the post with the most combined likes, comments and
// reblogs.
func (s *ExploreService) Trending() error {
	deps()

	trending, err := queries.Trending()
	if err != nil {
		formatter.PrintError("Failed to fetch trending post: %v", err)
		return err
	}
	if trending == nil || trending.PostID == 0 {
		formatter.PrintInfo("Nothing is trending right now")
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", trending)
	}

	return output.PrintRecord(fmt.Sprintf("Trending: @%s", trending.Username), map[string]interface{}{
		"Post":     trending.PostID,
		"Content":  trending.Content,
		"Likes":    trending.LikeCount,
		"Comments": trending.CommentCount,
		"Reblogs":  trending.ReblogCount,
		"Total":    trending.TotalInteractions,
	})
}

// TopBloggers lists the most-followed bloggers.
func (s *ExploreService) TopBloggers(limit int) error {
	deps()

	if limit <= 0 {
		limit = 5
	}

	bloggers, err := queries.TopBloggers(limit)
	if err != nil {
		formatter.PrintError("Failed to fetch top bloggers: %v", err)
		return err
	}

	if len(bloggers) == 0 {
		formatter.PrintInfo("No bloggers yet")
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", bloggers)
	}

	rows := make([][]string, 0, len(bloggers))
	for i, b := range bloggers {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			"@" + b.Username,
			fmt.Sprintf("%d", b.FollowerCount),
		})
	}
	formatter.PrintTable([]string{"#", "Blogger", "Followers"}, rows)
	return nil
}

// Search finds bloggers by username or name fragment. Terms shorter than
// two characters return nothing rather than flooding the server.
func (s *ExploreService) Search(term string) error {
	deps()

	results, err := queries.SearchBloggers(term)
	if err != nil {
		formatter.PrintError("Search failed: %v", err)
		return err
	}

	if len(results) == 0 {
		formatter.PrintInfo("No bloggers matched %q", term)
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", results)
	}

	rows := make([][]string, 0, len(results))
	for _, b := range results {
		rows = append(rows, []string{"@" + b.Username, b.FullName})
	}
	formatter.PrintTable([]string{"Blogger", "Name"}, rows)
	return nil
}
