package service

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/quill-social/cli/pkg/api"
	"github.com/quill-social/cli/pkg/cache"
	"github.com/quill-social/cli/pkg/formatter"
	"github.com/quill-social/cli/pkg/output"
	"github.com/quill-social/cli/pkg/prompter"
	"github.com/quill-social/cli/pkg/session"
)

type ReblogService struct{}

// NewReblogService creates a new reblog service
func NewReblogService() *ReblogService {
	return &ReblogService{}
}

// Create reblogs a post, with an optional comment. The server snapshots the
// original post's content into the reblog at this moment.
func (s *ReblogService) Create(postID int, comment string) error {
	deps()

	user, err := session.Require()
	if err != nil {
		return err
	}

	var commentPtr *string
	if trimmed := strings.TrimSpace(comment); trimmed != "" {
		commentPtr = &trimmed
	}

	reblog, err := api.CreateReblog(postID, commentPtr)
	if err != nil {
		formatter.PrintError("Failed to reblog: %v", err)
		return err
	}

	cache.InvalidateFor(store, cache.MutationCreateReblog, cache.MutationScope{
		AuthorID: user.BloggerID,
	})

	formatter.PrintSuccess("Reblogged @%s's post (reblog id %d)", reblog.OriginalPostUsername, reblog.ReblogID)
	return nil
}

// List shows a blogger's reblogs, the current user's when username is empty.
func (s *ReblogService) List(username string) error {
	deps()

	var reblogs []api.Reblog

	if username == "" {
		if _, err := session.Current(); err != nil {
			return err
		}
		mine, err := queries.MyReblogs()
		if err != nil {
			formatter.PrintError("Failed to load reblogs: %v", err)
			return err
		}
		reblogs = mine
	} else {
		target, err := queries.Profile(username)
		if err != nil {
			formatter.PrintError("Blogger @%s not found: %v", username, err)
			return err
		}
		theirs, err := queries.UserReblogs(target.BloggerID)
		if err != nil {
			formatter.PrintError("Failed to load reblogs: %v", err)
			return err
		}
		reblogs = theirs
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", reblogs)
	}

	if len(reblogs) == 0 {
		formatter.PrintInfo("No reblogs yet")
		return nil
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	for _, r := range reblogs {
		bold.Printf("@%s", r.BloggerUsername)
		dim.Printf("  reblogged @%s · reblog %d · %s\n",
			r.OriginalPostUsername, r.ReblogID, r.RebloggedAt.Local().Format("Jan 2 15:04"))
		if r.Comment != nil && *r.Comment != "" {
			fmt.Printf("  %s\n", *r.Comment)
		}
		fmt.Printf("  ┃ %s\n", r.OriginalPostContent)
		fmt.Println()
	}
	return nil
}

// Delete removes one of the blogger's own reblogs. The original post is
// untouched.
func (s *ReblogService) Delete(reblogID int, skipConfirm bool) error {
	deps()

	user, err := session.Require()
	if err != nil {
		return err
	}

	if !skipConfirm {
		confirm, err := prompter.PromptConfirm("Delete this reblog?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	if err := api.DeleteReblog(reblogID); err != nil {
		formatter.PrintError("Failed to delete reblog: %v", err)
		return err
	}

	cache.InvalidateFor(store, cache.MutationDeleteReblog, cache.MutationScope{
		AuthorID: user.BloggerID,
		EntityID: reblogID,
	})

	formatter.PrintSuccess("Reblog %d deleted", reblogID)
	return nil
}
