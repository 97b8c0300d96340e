package api

import (
	"fmt"

	"github.com/quill-social/cli/pkg/client"
	"github.com/quill-social/cli/pkg/logger"
)

// CreateReblogRequest is the body for reblogging a post. The original's
// content and media are snapshotted server-side at this moment.
type CreateReblogRequest struct {
	Comment *string `json:"comment,omitempty"`
}

// CreateReblog reblogs a post, optionally with an added comment
func CreateReblog(postID int, comment *string) (*Reblog, error) {
	logger.Debug("Creating reblog", "post_id", postID)

	var reblog Reblog

	resp, err := client.GetClient().
		R().
		SetBody(CreateReblogRequest{Comment: comment}).
		SetResult(&reblog).
		Post(fmt.Sprintf("/reblogs/posts/%d", postID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &reblog, nil
}

// MyReblogs retrieves the authenticated blogger's reblogs
func MyReblogs() ([]Reblog, error) {
	logger.Debug("Fetching my reblogs")

	var reblogs []Reblog

	resp, err := client.GetClient().
		R().
		SetResult(&reblogs).
		Get("/reblogs/my-reblogs")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return reblogs, nil
}

// AllReblogs retrieves every reblog, for the global timeline
func AllReblogs() ([]Reblog, error) {
	logger.Debug("Fetching all reblogs")

	var reblogs []Reblog

	resp, err := client.GetClient().
		R().
		SetResult(&reblogs).
		Get("/reblogs/all")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return reblogs, nil
}

// UserReblogs retrieves another blogger's reblogs by id
func UserReblogs(bloggerID int) ([]Reblog, error) {
	logger.Debug("Fetching user reblogs", "blogger_id", bloggerID)

	var reblogs []Reblog

	resp, err := client.GetClient().
		R().
		SetResult(&reblogs).
		Get(fmt.Sprintf("/reblogs/user/%d", bloggerID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return reblogs, nil
}

// DeleteReblog deletes a reblog by id
func DeleteReblog(reblogID int) error {
	logger.Debug("Deleting reblog", "reblog_id", reblogID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/reblogs/%d", reblogID))

	return CheckResponse(resp, err)
}
