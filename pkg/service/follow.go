package service

import (
	"fmt"

	"github.com/quill-social/cli/pkg/formatter"
	"github.com/quill-social/cli/pkg/output"
	"github.com/quill-social/cli/pkg/session"
)

type FollowService struct{}

// NewFollowService creates a new follow service
func NewFollowService() *FollowService {
	return &FollowService{}
}

// Follow follows a blogger by username. Success is reported from the
// re-derived server state, not from the request alone, so a rapid
// follow/unfollow sequence reports whatever actually landed last.
func (s *FollowService) Follow(username string) error {
	deps()

	user, err := session.Require()
	if err != nil {
		return err
	}

	target, err := queries.Profile(username)
	if err != nil {
		formatter.PrintError("Blogger @%s not found: %v", username, err)
		return err
	}
	if target.BloggerID == user.BloggerID {
		formatter.PrintWarning("You cannot follow yourself")
		return nil
	}

	following, err := followCtl.Go(user.BloggerID, target)
	if err != nil {
		formatter.PrintError("Failed to follow @%s: %v", username, err)
		return err
	}

	if following {
		formatter.PrintSuccess("Following @%s", username)
	} else {
		formatter.PrintWarning("Follow request settled, but you are not following @%s", username)
	}
	return nil
}

// Unfollow unfollows a blogger by username.
func (s *FollowService) Unfollow(username string) error {
	deps()

	user, err := session.Require()
	if err != nil {
		return err
	}

	target, err := queries.Profile(username)
	if err != nil {
		formatter.PrintError("Blogger @%s not found: %v", username, err)
		return err
	}

	following, err := followCtl.Stop(user.BloggerID, target)
	if err != nil {
		formatter.PrintError("Failed to unfollow @%s: %v", username, err)
		return err
	}

	if !following {
		formatter.PrintSuccess("Unfollowed @%s", username)
	} else {
		formatter.PrintWarning("Unfollow request settled, but you are still following @%s", username)
	}
	return nil
}

// Followers lists a blogger's followers. With an empty username it lists the
// current user's own followers.
func (s *FollowService) Followers(username string) error {
	deps()

	bloggerID := 0
	title := ""

	if username == "" {
		user, err := session.Current()
		if err != nil {
			return err
		}
		bloggerID = user.BloggerID
		title = "Your followers"
	} else {
		target, err := queries.Profile(username)
		if err != nil {
			formatter.PrintError("Blogger @%s not found: %v", username, err)
			return err
		}
		bloggerID = target.BloggerID
		title = fmt.Sprintf("Followers of @%s", username)
	}

	followers, err := queries.Followers(bloggerID)
	if err != nil {
		formatter.PrintError("Failed to fetch followers: %v", err)
		return err
	}

	if len(followers) == 0 {
		formatter.PrintInfo("No followers yet")
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", followers)
	}

	fmt.Printf("%s (%d):\n", title, len(followers))
	for _, f := range followers {
		fmt.Printf("  @%s\n", f.Username)
	}
	return nil
}

// Status reports whether the current user follows the given blogger.
func (s *FollowService) Status(username string) error {
	deps()

	user, err := session.Current()
	if err != nil {
		return err
	}

	target, err := queries.Profile(username)
	if err != nil {
		formatter.PrintError("Blogger @%s not found: %v", username, err)
		return err
	}

	following, err := followCtl.IsFollowing(user.BloggerID, target.BloggerID)
	if err != nil {
		formatter.PrintError("Failed to fetch follow state: %v", err)
		return err
	}

	if following {
		formatter.PrintInfo("You are following @%s", username)
	} else {
		formatter.PrintInfo("You are not following @%s", username)
	}
	return nil
}
