package cache

import (
	"fmt"
	"strings"
)

// MutationKind names every write the client can issue.
type MutationKind string

const (
	MutationCreatePost    MutationKind = "create_post"
	MutationDeletePost    MutationKind = "delete_post"
	MutationCreateReblog  MutationKind = "create_reblog"
	MutationDeleteReblog  MutationKind = "delete_reblog"
	MutationLike          MutationKind = "like"
	MutationUnlike        MutationKind = "unlike"
	MutationCreateComment MutationKind = "create_comment"
	MutationDeleteComment MutationKind = "delete_comment"
	MutationFollow        MutationKind = "follow"
	MutationUnfollow      MutationKind = "unfollow"
	MutationUpdateProfile MutationKind = "update_profile"
)

// MutationScope carries the parameters needed to expand key templates for
// one concrete mutation.
type MutationScope struct {
	AuthorID   int    // blogger owning the mutated post/reblog
	EntityKind string // "post" or "reblog" for likes/comments
	EntityID   int
	FollowerID int
	FolloweeID int
	Username   string // profile affected by follows / profile updates
}

// invalidationTable is the static mutation-to-cache-keys graph. Placeholders
// are expanded from the MutationScope. Deleting a post touches every feed
// that could have displayed it plus its likes and comments; reblog writes
// touch the post lists too because reblog counts ride along with posts.
// Deletes also drop "trending", whose interaction totals count the deleted
// entity; like and comment writes leave trending to its TTL.
var invalidationTable = map[MutationKind][]string{
	MutationCreatePost: {
		"posts:mine", "posts:all", "posts:user:{author}",
	},
	MutationDeletePost: {
		"posts:mine", "posts:all", "posts:user:{author}",
		"likes:post:{entity}", "comments:post:{entity}", "trending",
	},
	MutationCreateReblog: {
		"reblogs:mine", "reblogs:all", "reblogs:user:{author}",
		"posts:mine", "posts:all",
	},
	MutationDeleteReblog: {
		"reblogs:mine", "reblogs:all", "reblogs:user:{author}",
		"posts:mine", "posts:all",
		"likes:reblog:{entity}", "comments:reblog:{entity}", "trending",
	},
	MutationLike: {
		"likes:{kind}:{entity}",
	},
	MutationUnlike: {
		"likes:{kind}:{entity}",
	},
	MutationCreateComment: {
		"comments:{kind}:{entity}",
	},
	MutationDeleteComment: {
		"comments:{kind}:{entity}",
	},
	MutationFollow: {
		"follow:{follower}:{followee}", "followers:{followee}",
		"profile:{username}", "top-bloggers:*",
	},
	MutationUnfollow: {
		"follow:{follower}:{followee}", "followers:{followee}",
		"profile:{username}", "top-bloggers:*",
	},
	MutationUpdateProfile: {
		"auth:me", "profile:{username}",
	},
}

// AffectedKeys expands the invalidation table for one mutation.
func AffectedKeys(kind MutationKind, scope MutationScope) []string {
	templates := invalidationTable[kind]
	keys := make([]string, 0, len(templates))

	replacer := strings.NewReplacer(
		"{author}", fmt.Sprintf("%d", scope.AuthorID),
		"{kind}", scope.EntityKind,
		"{entity}", fmt.Sprintf("%d", scope.EntityID),
		"{follower}", fmt.Sprintf("%d", scope.FollowerID),
		"{followee}", fmt.Sprintf("%d", scope.FolloweeID),
		"{username}", scope.Username,
	)

	for _, t := range templates {
		keys = append(keys, replacer.Replace(t))
	}
	return keys
}

// InvalidateFor applies the graph for one mutation against a store.
func InvalidateFor(s *Store, kind MutationKind, scope MutationScope) {
	s.Invalidate(AffectedKeys(kind, scope)...)
}
