package api

import (
	"fmt"

	"github.com/quill-social/cli/pkg/client"
	"github.com/quill-social/cli/pkg/logger"
)

// Followers retrieves the materialized follower list of a blogger
func Followers(bloggerID int) ([]Follower, error) {
	logger.Debug("Fetching followers", "blogger_id", bloggerID)

	var response struct {
		Followers []Follower `json:"followers"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get(fmt.Sprintf("/followers/%d", bloggerID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return response.Followers, nil
}

// IsFollowing is a point query on one (follower, followee) pair. No
// client-side list of all relationships exists.
func IsFollowing(followerID, followeeID int) (bool, error) {
	logger.Debug("Checking follow status", "follower_id", followerID, "followee_id", followeeID)

	var following bool

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"followerId": fmt.Sprintf("%d", followerID),
			"followeeId": fmt.Sprintf("%d", followeeID),
		}).
		SetResult(&following).
		Get("/followers/isFollowing")

	if err := CheckResponse(resp, err); err != nil {
		return false, err
	}

	return following, nil
}

// Follow follows a blogger
func Follow(bloggerID int) error {
	logger.Debug("Following blogger", "blogger_id", bloggerID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/followers/follow/%d", bloggerID))

	return CheckResponse(resp, err)
}

// Unfollow unfollows a blogger
func Unfollow(bloggerID int) error {
	logger.Debug("Unfollowing blogger", "blogger_id", bloggerID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/followers/unfollow/%d", bloggerID))

	return CheckResponse(resp, err)
}

// TopBloggers retrieves the most-followed bloggers
func TopBloggers(limit int) ([]TopBlogger, error) {
	logger.Debug("Fetching top bloggers", "limit", limit)

	var bloggers []TopBlogger

	resp, err := client.GetClient().
		R().
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		SetResult(&bloggers).
		Get("/followers/top-bloggers")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return bloggers, nil
}
