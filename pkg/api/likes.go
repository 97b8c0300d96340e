package api

import (
	"fmt"

	"github.com/quill-social/cli/pkg/client"
	"github.com/quill-social/cli/pkg/logger"
)

func likesBase(entity EntityRef) string {
	if entity.Kind == EntityReblog {
		return fmt.Sprintf("/reblogs/%d/likes", entity.ID)
	}
	return fmt.Sprintf("/posts/%d/likes", entity.ID)
}

// Likes retrieves all likes on a post or reblog
func Likes(entity EntityRef) ([]Like, error) {
	logger.Debug("Fetching likes", "kind", entity.Kind, "id", entity.ID)

	var likes []Like

	resp, err := client.GetClient().
		R().
		SetResult(&likes).
		Get(likesBase(entity))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return likes, nil
}

// CreateLike likes a post or reblog on behalf of the authenticated blogger
func CreateLike(entity EntityRef) (*Like, error) {
	logger.Debug("Creating like", "kind", entity.Kind, "id", entity.ID)

	var like Like

	resp, err := client.GetClient().
		R().
		SetResult(&like).
		Post(likesBase(entity) + "/like")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &like, nil
}

// DeleteLike removes a like by its id
func DeleteLike(entity EntityRef, likeID int) error {
	logger.Debug("Deleting like", "kind", entity.Kind, "id", entity.ID, "like_id", likeID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("%s/%d", likesBase(entity), likeID))

	return CheckResponse(resp, err)
}
