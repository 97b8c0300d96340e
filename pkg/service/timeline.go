package service

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/quill-social/cli/pkg/feed"
	"github.com/quill-social/cli/pkg/formatter"
	"github.com/quill-social/cli/pkg/output"
	"github.com/quill-social/cli/pkg/query"
	"github.com/quill-social/cli/pkg/session"
)

type TimelineService struct{}

// NewTimelineService creates a new timeline service
func NewTimelineService() *TimelineService {
	return &TimelineService{}
}

// Personal shows the current user's own posts and reblogs, newest first.
func (s *TimelineService) Personal() error {
	deps()

	if _, err := session.Current(); err != nil {
		return err
	}

	items, err := feedLoader.Personal()
	if err != nil {
		formatter.PrintError("Failed to load timeline: %v", err)
		return err
	}
	return renderTimeline("Your timeline", items)
}

// User shows another blogger's timeline by username.
func (s *TimelineService) User(username string) error {
	deps()

	target, err := queries.Profile(username)
	if err != nil {
		formatter.PrintError("Blogger @%s not found: %v", username, err)
		return err
	}

	items, err := feedLoader.User(target.BloggerID)
	if err != nil {
		formatter.PrintError("Failed to load timeline: %v", err)
		return err
	}
	return renderTimeline(fmt.Sprintf("@%s's timeline", username), items)
}

// Global shows every post and reblog on the platform.
func (s *TimelineService) Global() error {
	deps()

	items, err := feedLoader.Global()
	if err != nil {
		formatter.PrintError("Failed to load timeline: %v", err)
		return err
	}
	return renderTimeline("Global timeline", items)
}

// Community shows the global timeline filtered to one hashtag.
func (s *TimelineService) Community(tag string) error {
	deps()

	items, err := feedLoader.Community(tag)
	if err != nil {
		formatter.PrintError("Failed to load timeline: %v", err)
		return err
	}
	return renderTimeline(fmt.Sprintf("#%s community", tag), items)
}

// Policies exposes the shared staleness knobs so commands can force a
// network refresh for one run.
func (s *TimelineService) Policies() *query.Policies {
	deps()
	return &queries.Policies
}

func renderTimeline(title string, items []feed.Item) error {
	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", items)
	}

	if len(items) == 0 {
		formatter.PrintInfo("Nothing here yet")
		return nil
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	fmt.Printf("%s (%d items)\n\n", title, len(items))
	for _, it := range items {
		switch it.Kind {
		case feed.KindPost:
			p := it.Post
			bold.Printf("@%s", p.Username)
			dim.Printf("  post %d · %s\n", p.PostID, p.CreatedAt.Local().Format("Jan 2 15:04"))
			if p.Content != "" {
				fmt.Printf("  %s\n", p.Content)
			}
			if p.MediaURL != nil {
				dim.Printf("  [media] %s\n", *p.MediaURL)
			}
		case feed.KindReblog:
			r := it.Reblog
			bold.Printf("@%s", r.BloggerUsername)
			dim.Printf("  reblogged @%s · reblog %d · %s\n",
				r.OriginalPostUsername, r.ReblogID, r.RebloggedAt.Local().Format("Jan 2 15:04"))
			if r.Comment != nil && *r.Comment != "" {
				fmt.Printf("  %s\n", *r.Comment)
			}
			fmt.Printf("  ┃ %s\n", r.OriginalPostContent)
			if r.OriginalPostMediaURL != nil {
				dim.Printf("  ┃ [media] %s\n", *r.OriginalPostMediaURL)
			}
		}
		fmt.Println()
	}
	return nil
}
