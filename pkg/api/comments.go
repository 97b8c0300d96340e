package api

import (
	"fmt"

	"github.com/quill-social/cli/pkg/client"
	"github.com/quill-social/cli/pkg/logger"
)

func commentsBase(entity EntityRef) string {
	if entity.Kind == EntityReblog {
		return fmt.Sprintf("/reblogs/%d/comments", entity.ID)
	}
	return fmt.Sprintf("/posts/%d/comments", entity.ID)
}

// Comments retrieves all comments on a post or reblog
func Comments(entity EntityRef) ([]Comment, error) {
	logger.Debug("Fetching comments", "kind", entity.Kind, "id", entity.ID)

	var comments []Comment

	resp, err := client.GetClient().
		R().
		SetResult(&comments).
		Get(commentsBase(entity))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return comments, nil
}

// CreateComment adds a comment to a post or reblog
func CreateComment(entity EntityRef, content string) (*Comment, error) {
	logger.Debug("Creating comment", "kind", entity.Kind, "id", entity.ID)

	var comment Comment

	resp, err := client.GetClient().
		R().
		SetBody(map[string]string{"content": content}).
		SetResult(&comment).
		Post(commentsBase(entity) + "/create")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &comment, nil
}

// DeleteComment removes a comment. Only the author may delete; the server
// enforces this, the client just surfaces the rejection.
func DeleteComment(entity EntityRef, commentID int) error {
	logger.Debug("Deleting comment", "kind", entity.Kind, "id", entity.ID, "comment_id", commentID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("%s/delete/%d", commentsBase(entity), commentID))

	return CheckResponse(resp, err)
}
