package api

import (
	"fmt"

	"github.com/quill-social/cli/pkg/client"
	"github.com/quill-social/cli/pkg/logger"
)

// CreatePostRequest is the request to create a new post
type CreatePostRequest struct {
	Content   string  `json:"content"`
	MediaURL  *string `json:"mediaUrl,omitempty"`
	MediaType *string `json:"mediaType,omitempty"`
}

// CreatePost creates a new post
func CreatePost(req CreatePostRequest) (*Post, error) {
	logger.Debug("Creating post")

	var post Post

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&post).
		Post("/posts/create")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &post, nil
}

// MyPosts retrieves the authenticated blogger's posts
func MyPosts() ([]Post, error) {
	logger.Debug("Fetching my posts")

	var posts []Post

	resp, err := client.GetClient().
		R().
		SetResult(&posts).
		Get("/posts/my-posts")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return posts, nil
}

// AllPosts retrieves every post, for the global timeline
func AllPosts() ([]Post, error) {
	logger.Debug("Fetching all posts")

	var posts []Post

	resp, err := client.GetClient().
		R().
		SetResult(&posts).
		Get("/posts/all")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return posts, nil
}

// UserPosts retrieves another blogger's posts by id
func UserPosts(bloggerID int) ([]Post, error) {
	logger.Debug("Fetching user posts", "blogger_id", bloggerID)

	var posts []Post

	resp, err := client.GetClient().
		R().
		SetResult(&posts).
		Get(fmt.Sprintf("/posts/user/%d", bloggerID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return posts, nil
}

// Trending retrieves the post with the most interactions
func Trending() (*TrendingPost, error) {
	logger.Debug("Fetching trending post")

	var trending TrendingPost

	resp, err := client.GetClient().
		R().
		SetResult(&trending).
		Get("/posts/trending")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &trending, nil
}

// DeletePost deletes a post by id
func DeletePost(postID int) error {
	logger.Debug("Deleting post", "post_id", postID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/posts/%d", postID))

	return CheckResponse(resp, err)
}
