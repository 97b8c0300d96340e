package service

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/quill-social/cli/pkg/api"
	"github.com/quill-social/cli/pkg/cache"
	"github.com/quill-social/cli/pkg/errors"
	"github.com/quill-social/cli/pkg/formatter"
	"github.com/quill-social/cli/pkg/output"
	"github.com/quill-social/cli/pkg/prompter"
	"github.com/quill-social/cli/pkg/session"
	"github.com/quill-social/cli/pkg/storage"
)

type PostService struct{}

// NewPostService creates a new post service
func NewPostService() *PostService {
	return &PostService{}
}

// Create publishes a new post, optionally attaching a local media file or a
// GIF URL. A post needs content, media, or both.
func (s *PostService) Create(content, mediaFile, gifURL string) error {
	deps()

	user, err := session.Require()
	if err != nil {
		return err
	}

	content = strings.TrimSpace(content)

	var mediaURL *string
	var mediaType *string

	switch {
	case mediaFile != "" && gifURL != "":
		return errors.ValidationError("media", "use either a media file or a GIF, not both")
	case mediaFile != "":
		formatter.PrintInfo("Uploading media...")
		url, err := storage.Upload(mediaFile, "posts")
		if err != nil {
			formatter.PrintError("Upload failed: %v", err)
			return err
		}
		mediaURL = &url
		mediaType = storage.MediaTypeFor(mediaFile)
	case gifURL != "":
		gif := "gif"
		mediaURL = &gifURL
		mediaType = &gif
	}

	if content == "" && mediaURL == nil {
		return errors.ValidationError("content", "a post needs text or media")
	}

	post, err := api.CreatePost(api.CreatePostRequest{
		Content:   content,
		MediaURL:  mediaURL,
		MediaType: mediaType,
	})
	if err != nil {
		formatter.PrintError("Failed to create post: %v", err)
		return err
	}

	cache.InvalidateFor(store, cache.MutationCreatePost, cache.MutationScope{
		AuthorID: user.BloggerID,
	})

	formatter.PrintSuccess("Posted! (id %d)", post.PostID)
	return nil
}

// List shows a blogger's posts, the current user's when username is empty.
func (s *PostService) List(username string) error {
	deps()

	var posts []api.Post

	if username == "" {
		if _, err := session.Current(); err != nil {
			return err
		}
		mine, err := queries.MyPosts()
		if err != nil {
			formatter.PrintError("Failed to load posts: %v", err)
			return err
		}
		posts = mine
	} else {
		target, err := queries.Profile(username)
		if err != nil {
			formatter.PrintError("Blogger @%s not found: %v", username, err)
			return err
		}
		theirs, err := queries.UserPosts(target.BloggerID)
		if err != nil {
			formatter.PrintError("Failed to load posts: %v", err)
			return err
		}
		posts = theirs
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", posts)
	}

	if len(posts) == 0 {
		formatter.PrintInfo("No posts yet")
		return nil
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	for _, p := range posts {
		bold.Printf("@%s", p.Username)
		dim.Printf("  post %d · %s\n", p.PostID, p.CreatedAt.Local().Format("Jan 2 15:04"))
		if p.Content != "" {
			fmt.Printf("  %s\n", p.Content)
		}
		if p.MediaURL != nil {
			dim.Printf("  [media] %s\n", *p.MediaURL)
		}
		fmt.Println()
	}
	return nil
}

// Delete removes one of the blogger's own posts after confirmation.
func (s *PostService) Delete(postID int, skipConfirm bool) error {
	deps()

	user, err := session.Require()
	if err != nil {
		return err
	}

	if !skipConfirm {
		confirm, err := prompter.PromptConfirm("Delete this post? Reblogs of it survive with their snapshot.")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	if err := api.DeletePost(postID); err != nil {
		formatter.PrintError("Failed to delete post: %v", err)
		return err
	}

	cache.InvalidateFor(store, cache.MutationDeletePost, cache.MutationScope{
		AuthorID: user.BloggerID,
		EntityID: postID,
	})

	formatter.PrintSuccess("Post %d deleted", postID)
	return nil
}
