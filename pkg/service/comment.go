package service

import (
	"fmt"
	"strings"

	"github.com/quill-social/cli/pkg/api"
	"github.com/quill-social/cli/pkg/cache"
	"github.com/quill-social/cli/pkg/errors"
	"github.com/quill-social/cli/pkg/formatter"
	"github.com/quill-social/cli/pkg/output"
	"github.com/quill-social/cli/pkg/session"
)

type CommentService struct{}

// NewCommentService creates a new comment service
func NewCommentService() *CommentService {
	return &CommentService{}
}

// List prints the comments of a post or reblog, oldest first as the server
// returns them.
func (s *CommentService) List(entity api.EntityRef) error {
	deps()

	comments, err := queries.Comments(entity)
	if err != nil {
		formatter.PrintError("Failed to fetch comments: %v", err)
		return err
	}

	if len(comments) == 0 {
		formatter.PrintInfo("No comments on %s %d", entity.Kind, entity.ID)
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", comments)
	}

	rows := make([][]string, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, []string{
			fmt.Sprintf("%d", c.CommentID),
			"@" + c.BloggerUsername,
			c.CreatedAt.Local().Format("2006-01-02 15:04"),
			c.Content,
		})
	}
	formatter.PrintTable([]string{"ID", "Author", "When", "Comment"}, rows)

	return nil
}

// Add posts a comment on a post or reblog.
func (s *CommentService) Add(entity api.EntityRef, content string) error {
	deps()

	if _, err := session.Require(); err != nil {
		return err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return errors.ValidationError("content", "comment cannot be empty")
	}

	comment, err := api.CreateComment(entity, content)
	if err != nil {
		formatter.PrintError("Failed to comment: %v", err)
		return err
	}

	cache.InvalidateFor(store, cache.MutationCreateComment, cache.MutationScope{
		EntityKind: string(entity.Kind),
		EntityID:   entity.ID,
	})

	formatter.PrintSuccess("Comment %d added", comment.CommentID)
	return nil
}

// Delete removes a comment the blogger owns.
func (s *CommentService) Delete(entity api.EntityRef, commentID int) error {
	deps()

	if _, err := session.Require(); err != nil {
		return err
	}

	if err := api.DeleteComment(entity, commentID); err != nil {
		formatter.PrintError("Failed to delete comment: %v", err)
		return err
	}

	cache.InvalidateFor(store, cache.MutationDeleteComment, cache.MutationScope{
		EntityKind: string(entity.Kind),
		EntityID:   entity.ID,
	})

	formatter.PrintSuccess("Comment %d deleted", commentID)
	return nil
}
