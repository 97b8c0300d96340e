package service

import (
	"fmt"

	"github.com/quill-social/cli/pkg/api"
	"github.com/quill-social/cli/pkg/formatter"
	"github.com/quill-social/cli/pkg/output"
	"github.com/quill-social/cli/pkg/session"
)

type LikeService struct{}

// NewLikeService creates a new like service
func NewLikeService() *LikeService {
	return &LikeService{}
}

// Show prints the like state of a post or reblog from the current user's
// perspective.
func (s *LikeService) Show(entity api.EntityRef) error {
	deps()

	user, err := session.Current()
	if err != nil {
		return err
	}

	state, err := likeCtl.State(entity, user.Username)
	if err != nil {
		formatter.PrintError("Failed to fetch likes: %v", err)
		return err
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", state)
	}

	liked := "no"
	if state.IsLiked {
		liked = "yes"
	}
	return output.PrintRecord(fmt.Sprintf("Likes on %s %d", entity.Kind, entity.ID), map[string]interface{}{
		"Likes":        state.LikeCount,
		"Liked by you": liked,
	})
}

// Like likes a post or reblog. Liking something already liked succeeds.
func (s *LikeService) Like(entity api.EntityRef) error {
	deps()

	user, err := session.Require()
	if err != nil {
		return err
	}

	if err := likeCtl.Add(entity, user.Username); err != nil {
		formatter.PrintError("Failed to like %s %d: %v", entity.Kind, entity.ID, err)
		return err
	}

	formatter.PrintSuccess("Liked %s %d", entity.Kind, entity.ID)
	return nil
}

// Unlike removes the current user's like from a post or reblog. Unliking
// something not liked is a no-op.
func (s *LikeService) Unlike(entity api.EntityRef) error {
	deps()

	user, err := session.Require()
	if err != nil {
		return err
	}

	state, err := likeCtl.State(entity, user.Username)
	if err != nil {
		formatter.PrintError("Failed to fetch likes: %v", err)
		return err
	}
	if state.CurrentUserLikeID == nil {
		formatter.PrintInfo("You have not liked %s %d", entity.Kind, entity.ID)
		return nil
	}

	if err := likeCtl.Remove(entity, *state.CurrentUserLikeID); err != nil {
		formatter.PrintError("Failed to unlike %s %d: %v", entity.Kind, entity.ID, err)
		return err
	}

	formatter.PrintSuccess("Unliked %s %d", entity.Kind, entity.ID)
	return nil
}
