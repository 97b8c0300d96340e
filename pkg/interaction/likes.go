// Package interaction projects like and follow state for the current user
// and applies optimistic local updates ahead of server confirmation. The
// optimistic list is never the system of record: every mutation invalidates
// its cache key on settle, success or failure, so the next read reconciles
// with server truth (server-assigned ids differ from placeholders).
package interaction

import (
	"github.com/google/uuid"
	"github.com/quill-social/cli/pkg/api"
	"github.com/quill-social/cli/pkg/cache"
	"github.com/quill-social/cli/pkg/errors"
	"github.com/quill-social/cli/pkg/logger"
	"github.com/quill-social/cli/pkg/query"
)

// LikeState is the projection of a like list for one user.
type LikeState struct {
	LikeCount         int
	IsLiked           bool
	CurrentUserLikeID *int
}

// ProjectLikes derives like state from a fetched like list.
func ProjectLikes(likes []api.Like, currentUsername string) LikeState {
	state := LikeState{LikeCount: len(likes)}

	for i := range likes {
		if likes[i].Username == currentUsername {
			state.IsLiked = true
			id := likes[i].LikeID
			state.CurrentUserLikeID = &id
			break
		}
	}

	return state
}

// Likes mutates like state optimistically against the query cache.
type Likes struct {
	queries *query.Queries
}

// NewLikes creates a like projector over the query layer
func NewLikes(q *query.Queries) *Likes {
	return &Likes{queries: q}
}

// State fetches (through cache) and projects the like state of an entity.
func (l *Likes) State(entity api.EntityRef, currentUsername string) (LikeState, error) {
	likes, err := l.queries.Likes(entity)
	if err != nil {
		return LikeState{}, err
	}
	return ProjectLikes(likes, currentUsername), nil
}

// placeholderLikeID is a client-local id that cannot collide with a
// server-assigned one: server ids are positive.
func placeholderLikeID() int {
	return -int(uuid.New().ID()%1_000_000_000 + 1)
}

// Add likes an entity. The synthetic like lands in the cached list before
// the request is dispatched, so a projection taken in between already shows
// the new state. On failure the pre-mutation snapshot is restored; on settle
// the key is invalidated either way.
func (l *Likes) Add(entity api.EntityRef, currentUsername string) error {
	store := l.queries.Store()
	key := cache.KeyLikes(string(entity.Kind), entity.ID)
	ttl := l.queries.Policies.Likes.StaleTime

	snapshot, present := store.Snapshot(key)

	var optimistic []api.Like
	if present {
		if cached, ok := snapshot.([]api.Like); ok {
			optimistic = append(optimistic, cached...)
		}
	}
	optimistic = append(optimistic, api.Like{
		LikeID:   placeholderLikeID(),
		Username: currentUsername,
		EntityID: entity.ID,
	})
	store.Set(key, optimistic, ttl)

	_, err := api.CreateLike(entity)
	if err != nil && (api.IsConflict(err) || errors.IsConflict(err)) {
		// Already liked server-side: the state the user asked for.
		logger.Debug("Like already exists, treating as success", "kind", entity.Kind, "id", entity.ID)
		err = nil
	}

	if err != nil {
		store.Restore(key, snapshot, present, ttl)
	}

	// Mandatory reconciliation on settle, success or failure: the key goes
	// stale so the next read refetches and no placeholder id survives a
	// fresh hit, while the local projection stays readable meanwhile.
	store.MarkStale(cache.AffectedKeys(cache.MutationLike, cache.MutationScope{
		EntityKind: string(entity.Kind), EntityID: entity.ID,
	})...)
	return err
}

// Remove unlikes an entity by like id. Filtering an absent id out of the
// optimistic list is a no-op, not an error.
func (l *Likes) Remove(entity api.EntityRef, likeID int) error {
	store := l.queries.Store()
	key := cache.KeyLikes(string(entity.Kind), entity.ID)
	ttl := l.queries.Policies.Likes.StaleTime

	snapshot, present := store.Snapshot(key)

	if present {
		if cached, ok := snapshot.([]api.Like); ok {
			optimistic := make([]api.Like, 0, len(cached))
			for _, like := range cached {
				if like.LikeID != likeID {
					optimistic = append(optimistic, like)
				}
			}
			store.Set(key, optimistic, ttl)
		}
	}

	err := api.DeleteLike(entity, likeID)
	if err != nil && api.IsNotFound(err) {
		// Already gone server-side; converged.
		err = nil
	}

	if err != nil {
		store.Restore(key, snapshot, present, ttl)
	}

	store.MarkStale(cache.AffectedKeys(cache.MutationUnlike, cache.MutationScope{
		EntityKind: string(entity.Kind), EntityID: entity.ID,
	})...)
	return err
}
