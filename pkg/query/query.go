// Package query is the read side of the client: one read-through function
// per entity read endpoint, each with its own cache key and staleness
// policy. A failed fetch leaves prior cached data in place and hands it
// back stale-but-present; it never clears a working view.
package query

import (
	"time"

	"github.com/quill-social/cli/pkg/api"
	"github.com/quill-social/cli/pkg/cache"
	"github.com/quill-social/cli/pkg/config"
	"github.com/quill-social/cli/pkg/logger"
	"github.com/quill-social/cli/pkg/output"
)

// Policy controls one query's cache behavior. RefetchOnRun queries go to the
// network on every command invocation and only fall back to the cache on
// failure; the rest serve fresh cache hits without a request.
type Policy struct {
	StaleTime    time.Duration
	RefetchOnRun bool
}

// Policies groups the per-query knobs. Each one is individually tunable;
// defaults mirror the staleness windows the product shipped with.
type Policies struct {
	Feeds       Policy // my/user-scoped posts and reblogs
	GlobalFeeds Policy // posts:all, reblogs:all
	Likes       Policy
	Comments    Policy
	Followers   Policy
	Profiles    Policy
	Explore     Policy // trending, top bloggers
	Search      Policy
}

// DefaultPolicies derives policies from config. Global feeds refetch on
// every run (a CLI invocation is the analog of a window refocus); profile
// and identity reads do not, to avoid churn on transient failures.
func DefaultPolicies() Policies {
	stale := time.Duration(config.GetInt("cache.stale_minutes")) * time.Minute
	if stale <= 0 {
		stale = 5 * time.Minute
	}
	exploreStale := time.Duration(config.GetInt("cache.explore_stale_minutes")) * time.Minute
	if exploreStale <= 0 {
		exploreStale = 10 * time.Minute
	}

	return Policies{
		Feeds:       Policy{StaleTime: stale},
		GlobalFeeds: Policy{StaleTime: stale, RefetchOnRun: true},
		Likes:       Policy{StaleTime: stale},
		Comments:    Policy{StaleTime: stale},
		Followers:   Policy{StaleTime: stale},
		Profiles:    Policy{StaleTime: stale},
		Explore:     Policy{StaleTime: exploreStale},
		Search:      Policy{StaleTime: stale},
	}
}

// Queries is the entity query layer bound to one cache store.
type Queries struct {
	store    *cache.Store
	Policies Policies
}

// New creates a query layer over the given store
func New(store *cache.Store) *Queries {
	return &Queries{store: store, Policies: DefaultPolicies()}
}

// Store exposes the underlying cache for the mutation layer's invalidations
// and the interaction projector's optimistic edits.
func (q *Queries) Store() *cache.Store {
	return q.store
}

// lookup is the shared read-through path.
func lookup[T any](q *Queries, key string, pol Policy, fetch func() (T, error)) (T, error) {
	if !pol.RefetchOnRun {
		if v, ok := q.store.Get(key); ok {
			if cached, ok := v.(T); ok {
				return cached, nil
			}
		}
	}

	fetched, err := fetch()
	if err != nil {
		// Keep showing what we had rather than blanking the view. The user
		// sees a warning so stale data is never mistaken for live data.
		if v, ok := q.store.GetStale(key); ok {
			if stale, ok := v.(T); ok {
				logger.Warn("Fetch failed, serving stale cache", "key", key, "error", err)
				output.PrintWarning("Could not refresh from the server, showing cached data")
				return stale, nil
			}
		}
		var zero T
		return zero, err
	}

	q.store.Set(key, fetched, pol.StaleTime)
	return fetched, nil
}

func (q *Queries) MyPosts() ([]api.Post, error) {
	return lookup(q, cache.KeyMyPosts(), q.Policies.Feeds, api.MyPosts)
}

func (q *Queries) AllPosts() ([]api.Post, error) {
	return lookup(q, cache.KeyAllPosts(), q.Policies.GlobalFeeds, api.AllPosts)
}

func (q *Queries) UserPosts(bloggerID int) ([]api.Post, error) {
	return lookup(q, cache.KeyUserPosts(bloggerID), q.Policies.Feeds, func() ([]api.Post, error) {
		return api.UserPosts(bloggerID)
	})
}

func (q *Queries) MyReblogs() ([]api.Reblog, error) {
	return lookup(q, cache.KeyMyReblogs(), q.Policies.Feeds, api.MyReblogs)
}

func (q *Queries) AllReblogs() ([]api.Reblog, error) {
	return lookup(q, cache.KeyAllReblogs(), q.Policies.GlobalFeeds, api.AllReblogs)
}

func (q *Queries) UserReblogs(bloggerID int) ([]api.Reblog, error) {
	return lookup(q, cache.KeyUserReblogs(bloggerID), q.Policies.Feeds, func() ([]api.Reblog, error) {
		return api.UserReblogs(bloggerID)
	})
}

func (q *Queries) Likes(entity api.EntityRef) ([]api.Like, error) {
	return lookup(q, cache.KeyLikes(string(entity.Kind), entity.ID), q.Policies.Likes, func() ([]api.Like, error) {
		return api.Likes(entity)
	})
}

func (q *Queries) Comments(entity api.EntityRef) ([]api.Comment, error) {
	return lookup(q, cache.KeyComments(string(entity.Kind), entity.ID), q.Policies.Comments, func() ([]api.Comment, error) {
		return api.Comments(entity)
	})
}

func (q *Queries) Followers(bloggerID int) ([]api.Follower, error) {
	return lookup(q, cache.KeyFollowers(bloggerID), q.Policies.Followers, func() ([]api.Follower, error) {
		return api.Followers(bloggerID)
	})
}

func (q *Queries) IsFollowing(followerID, followeeID int) (bool, error) {
	return lookup(q, cache.KeyFollowState(followerID, followeeID), q.Policies.Followers, func() (bool, error) {
		return api.IsFollowing(followerID, followeeID)
	})
}

func (q *Queries) Profile(username string) (*api.Blogger, error) {
	return lookup(q, cache.KeyProfile(username), q.Policies.Profiles, func() (*api.Blogger, error) {
		return api.Profile(username)
	})
}

func (q *Queries) TopBloggers(limit int) ([]api.TopBlogger, error) {
	return lookup(q, cache.KeyTopBloggers(limit), q.Policies.Explore, func() ([]api.TopBlogger, error) {
		return api.TopBloggers(limit)
	})
}

func (q *Queries) Trending() (*api.TrendingPost, error) {
	return lookup(q, cache.KeyTrending(), q.Policies.Explore, api.Trending)
}

func (q *Queries) SearchBloggers(term string) ([]api.Blogger, error) {
	if len(term) < 2 {
		return nil, nil
	}
	return lookup(q, cache.KeySearch(term), q.Policies.Search, func() ([]api.Blogger, error) {
		return api.SearchBloggers(term)
	})
}
