package interaction

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-social/cli/pkg/api"
	"github.com/quill-social/cli/pkg/cache"
	"github.com/quill-social/cli/pkg/client"
	"github.com/quill-social/cli/pkg/query"
)

func startBackend(t *testing.T, mux *http.ServeMux) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	client.SetBaseURL(server.URL)
	return server
}

func TestProjectLikes(t *testing.T) {
	likes := []api.Like{
		{LikeID: 11, Username: "alice", EntityID: 4},
		{LikeID: 12, Username: "bob", EntityID: 4},
	}

	bob := ProjectLikes(likes, "bob")
	assert.Equal(t, 2, bob.LikeCount)
	assert.True(t, bob.IsLiked)
	require.NotNil(t, bob.CurrentUserLikeID)
	assert.Equal(t, 12, *bob.CurrentUserLikeID)

	carol := ProjectLikes(likes, "carol")
	assert.Equal(t, 2, carol.LikeCount)
	assert.False(t, carol.IsLiked)
	assert.Nil(t, carol.CurrentUserLikeID)
}

func TestProjectLikesEmpty(t *testing.T) {
	state := ProjectLikes(nil, "alice")
	assert.Equal(t, 0, state.LikeCount)
	assert.False(t, state.IsLiked)
	assert.Nil(t, state.CurrentUserLikeID)
}

func TestAddVisibleBeforeSettle(t *testing.T) {
	entity := api.EntityRef{Kind: api.EntityPost, ID: 4}
	key := cache.KeyLikes("post", 4)

	store := cache.New()
	q := query.New(store)
	likes := NewLikes(q)

	// Seed the cache with the server's current list.
	store.Set(key, []api.Like{{LikeID: 11, Username: "alice", EntityID: 4}}, q.Policies.Likes.StaleTime)

	// The handler observes the cache while the request is in flight: the
	// optimistic like must already be there.
	var midFlight LikeState
	mux := http.NewServeMux()
	mux.HandleFunc("/posts/4/likes/like", func(w http.ResponseWriter, r *http.Request) {
		if cached, ok := store.GetStale(key); ok {
			midFlight = ProjectLikes(cached.([]api.Like), "bob")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"likeId": 99, "username": "bob", "entityId": 4}`)
	})
	startBackend(t, mux)

	err := likes.Add(entity, "bob")
	require.NoError(t, err)

	assert.Equal(t, 2, midFlight.LikeCount, "optimistic like must land before the request settles")
	assert.True(t, midFlight.IsLiked)
	require.NotNil(t, midFlight.CurrentUserLikeID)
	assert.Negative(t, *midFlight.CurrentUserLikeID, "placeholder id cannot collide with server ids")
}

func TestAddSettlesStaleForReconciliation(t *testing.T) {
	entity := api.EntityRef{Kind: api.EntityPost, ID: 4}
	key := cache.KeyLikes("post", 4)

	store := cache.New()
	q := query.New(store)
	likes := NewLikes(q)

	mux := http.NewServeMux()
	mux.HandleFunc("/posts/4/likes/like", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"likeId": 99, "username": "bob", "entityId": 4}`)
	})
	startBackend(t, mux)

	require.NoError(t, likes.Add(entity, "bob"))

	_, fresh := store.Get(key)
	assert.False(t, fresh, "settled mutation must force the next read to refetch")

	v, ok := store.GetStale(key)
	require.True(t, ok, "optimistic list remains readable until the refetch")
	state := ProjectLikes(v.([]api.Like), "bob")
	assert.True(t, state.IsLiked)
}

func TestAddRevertsOnFailure(t *testing.T) {
	entity := api.EntityRef{Kind: api.EntityPost, ID: 4}
	key := cache.KeyLikes("post", 4)

	store := cache.New()
	q := query.New(store)
	likes := NewLikes(q)

	original := []api.Like{{LikeID: 11, Username: "alice", EntityID: 4}}
	store.Set(key, original, q.Policies.Likes.StaleTime)

	mux := http.NewServeMux()
	mux.HandleFunc("/posts/4/likes/like", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": "database unavailable"}`)
	})
	startBackend(t, mux)

	err := likes.Add(entity, "bob")
	require.Error(t, err)

	v, ok := store.GetStale(key)
	require.True(t, ok)
	assert.Equal(t, original, v.([]api.Like), "failed mutation restores the pre-mutation list")
}

func TestAddAlreadyLikedIsSuccess(t *testing.T) {
	entity := api.EntityRef{Kind: api.EntityPost, ID: 4}

	store := cache.New()
	likes := NewLikes(query.New(store))

	mux := http.NewServeMux()
	mux.HandleFunc("/posts/4/likes/like", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"error": "You have already liked this post."}`)
	})
	startBackend(t, mux)

	err := likes.Add(entity, "bob")
	assert.NoError(t, err, "already liked is the state the user asked for")
}

func TestRemoveOptimisticallyDropsLike(t *testing.T) {
	entity := api.EntityRef{Kind: api.EntityPost, ID: 4}
	key := cache.KeyLikes("post", 4)

	store := cache.New()
	q := query.New(store)
	likes := NewLikes(q)

	store.Set(key, []api.Like{
		{LikeID: 11, Username: "alice", EntityID: 4},
		{LikeID: 12, Username: "bob", EntityID: 4},
	}, q.Policies.Likes.StaleTime)

	mux := http.NewServeMux()
	mux.HandleFunc("/posts/4/likes/12", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	startBackend(t, mux)

	require.NoError(t, likes.Remove(entity, 12))

	v, ok := store.GetStale(key)
	require.True(t, ok)
	state := ProjectLikes(v.([]api.Like), "bob")
	assert.Equal(t, 1, state.LikeCount)
	assert.False(t, state.IsLiked)
}

func TestRemoveAbsentIDIsNoOp(t *testing.T) {
	entity := api.EntityRef{Kind: api.EntityPost, ID: 4}
	key := cache.KeyLikes("post", 4)

	store := cache.New()
	q := query.New(store)
	likes := NewLikes(q)

	original := []api.Like{{LikeID: 11, Username: "alice", EntityID: 4}}
	store.Set(key, original, q.Policies.Likes.StaleTime)

	mux := http.NewServeMux()
	mux.HandleFunc("/posts/4/likes/999", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error": "Like not found."}`)
	})
	startBackend(t, mux)

	err := likes.Remove(entity, 999)
	assert.NoError(t, err, "removing an absent like means the states already converged")

	v, ok := store.GetStale(key)
	require.True(t, ok)
	assert.Equal(t, original, v.([]api.Like))
}

func TestRemoveRevertsOnFailure(t *testing.T) {
	entity := api.EntityRef{Kind: api.EntityReblog, ID: 7}
	key := cache.KeyLikes("reblog", 7)

	store := cache.New()
	q := query.New(store)
	likes := NewLikes(q)

	original := []api.Like{{LikeID: 30, Username: "bob", EntityID: 7}}
	store.Set(key, original, q.Policies.Likes.StaleTime)

	mux := http.NewServeMux()
	mux.HandleFunc("/reblogs/7/likes/30", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": "boom"}`)
	})
	startBackend(t, mux)

	err := likes.Remove(entity, 30)
	require.Error(t, err)

	v, ok := store.GetStale(key)
	require.True(t, ok)
	assert.Equal(t, original, v.([]api.Like), "the removed like comes back on failure")
}
