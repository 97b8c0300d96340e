package interaction

import (
	"github.com/quill-social/cli/pkg/api"
	"github.com/quill-social/cli/pkg/cache"
	"github.com/quill-social/cli/pkg/errors"
	"github.com/quill-social/cli/pkg/logger"
	"github.com/quill-social/cli/pkg/query"
)

// Follow drives the follow/unfollow interaction. After a mutation settles,
// the follow state is re-derived from the server; callers report success
// only when the re-derived state matches the requested direction, which
// guards against a rapid double-toggle resolving opposite to intent.
type Follow struct {
	queries *query.Queries
}

// NewFollow creates a follow projector over the query layer
func NewFollow(q *query.Queries) *Follow {
	return &Follow{queries: q}
}

// IsFollowing is the cached point query for one (follower, followee) pair.
func (f *Follow) IsFollowing(followerID, followeeID int) (bool, error) {
	return f.queries.IsFollowing(followerID, followeeID)
}

func (f *Follow) invalidate(kind cache.MutationKind, followerID int, target *api.Blogger) {
	cache.InvalidateFor(f.queries.Store(), kind, cache.MutationScope{
		FollowerID: followerID,
		FolloweeID: target.BloggerID,
		Username:   target.Username,
	})
}

// Go follows the target. Returns the re-derived follow state; true means
// the mutation landed as requested.
func (f *Follow) Go(followerID int, target *api.Blogger) (bool, error) {
	err := api.Follow(target.BloggerID)
	if err != nil && (api.IsConflict(err) || errors.IsConflict(err)) {
		// Already following server-side: the state the user asked for.
		logger.Debug("Already following, treating as success", "followee", target.Username)
		err = nil
	}

	// Settle: drop the pair's cached state and its dependents either way.
	f.invalidate(cache.MutationFollow, followerID, target)

	if err != nil {
		return false, err
	}

	return f.queries.IsFollowing(followerID, target.BloggerID)
}

// Stop unfollows the target. Returns the re-derived follow state; false
// means the mutation landed as requested.
func (f *Follow) Stop(followerID int, target *api.Blogger) (bool, error) {
	err := api.Unfollow(target.BloggerID)
	if err != nil && api.IsNotFound(err) {
		// Not following to begin with; converged.
		err = nil
	}

	f.invalidate(cache.MutationUnfollow, followerID, target)

	if err != nil {
		return true, err
	}

	return f.queries.IsFollowing(followerID, target.BloggerID)
}
