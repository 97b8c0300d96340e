package api

import "time"

// Auth types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Password  string `json:"password"`
}

// Blogger is the platform's term for a registered account. The same shape is
// returned by /auth/me, /bloggers/profile/{username} and /bloggers/search.
type Blogger struct {
	BloggerID         int    `json:"bloggerId"`
	Email             string `json:"email"`
	Username          string `json:"username"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	FullName          string `json:"fullName"`
	RoleName          string `json:"roleName"`
	ProfilePictureURL string `json:"profilePictureUrl"`
}

// Post is immutable once created except for deletion.
type Post struct {
	PostID            int       `json:"postId"`
	BloggerID         int       `json:"bloggerId"`
	Username          string    `json:"username"`
	ProfilePictureURL *string   `json:"profilePictureUrl,omitempty"`
	Content           string    `json:"content"`
	MediaURL          *string   `json:"mediaUrl"`
	MediaType         *string   `json:"mediaType"` // "image" or null
	CreatedAt         time.Time `json:"createdAt"`
}

// Reblog carries a denormalized snapshot of the original post, copied at
// reblog time. Edits to the original never propagate here.
type Reblog struct {
	ReblogID                      int       `json:"reblogId"`
	BloggerUsername               string    `json:"bloggerUsername"`
	BloggerProfilePictureURL      *string   `json:"bloggerProfilePictureUrl,omitempty"`
	Comment                       *string   `json:"comment,omitempty"`
	RebloggedAt                   time.Time `json:"rebloggedAt"`
	OriginalPostUsername          string    `json:"originalPostUsername"`
	OriginalPostContent           string    `json:"originalPostContent"`
	OriginalPostProfilePictureURL *string   `json:"originalPostProfilePictureUrl,omitempty"`
	OriginalPostMediaURL          *string   `json:"originalPostMediaUrl,omitempty"`
}

// Like references a post or a reblog depending on which endpoint it was
// fetched from. At most one like per (username, entity) pair, enforced
// server-side; an "already liked" rejection is success-equivalent.
type Like struct {
	LikeID   int    `json:"likeId"`
	Username string `json:"username"`
	EntityID int    `json:"entityId"`
}

type Comment struct {
	CommentID       int       `json:"commentId"`
	Content         string    `json:"content"`
	BloggerUsername string    `json:"bloggerUsername"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Follower struct {
	Username          string  `json:"username"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`
}

type TopBlogger struct {
	BloggerID         int     `json:"bloggerId"`
	Username          string  `json:"username"`
	FollowerCount     int     `json:"followerCount"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`
}

type TrendingPost struct {
	PostID            int     `json:"postId"`
	Content           string  `json:"content"`
	Username          string  `json:"username"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`
	MediaURL          *string `json:"mediaUrl,omitempty"`
	MediaType         *string `json:"mediaType,omitempty"`
	LikeCount         int     `json:"likeCount"`
	CommentCount      int     `json:"commentCount"`
	ReblogCount       int     `json:"reblogCount"`
	TotalInteractions int     `json:"totalInteractions"`
}

// EntityKind discriminates between the two likeable/commentable entities.
type EntityKind string

const (
	EntityPost   EntityKind = "post"
	EntityReblog EntityKind = "reblog"
)

// EntityRef addresses one post or one reblog for likes and comments.
type EntityRef struct {
	Kind EntityKind
	ID   int
}

// ErrorResponse is the backend's error body. Some endpoints return
// {"error": "..."}, some {"message": "..."}, some a bare string.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
