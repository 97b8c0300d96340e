package feed

import (
	"sync"

	"github.com/quill-social/cli/pkg/api"
	"github.com/quill-social/cli/pkg/query"
)

// Loader fetches the two source lists for a timeline scope concurrently,
// waits for both to settle, and aggregates. The posts and reblogs queries
// are independent requests joined here, never chained.
type Loader struct {
	queries *query.Queries
}

// NewLoader creates a feed loader over the query layer
func NewLoader(q *query.Queries) *Loader {
	return &Loader{queries: q}
}

func (l *Loader) load(fetchPosts func() ([]api.Post, error), fetchReblogs func() ([]api.Reblog, error), filter Predicate) ([]Item, error) {
	var (
		wg         sync.WaitGroup
		posts      []api.Post
		reblogs    []api.Reblog
		postsErr   error
		reblogsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		posts, postsErr = fetchPosts()
	}()
	go func() {
		defer wg.Done()
		reblogs, reblogsErr = fetchReblogs()
	}()
	wg.Wait()

	// Both sources must have loaded; a partial feed is never rendered.
	if postsErr != nil {
		return nil, postsErr
	}
	if reblogsErr != nil {
		return nil, reblogsErr
	}

	return Aggregate(posts, reblogs, filter), nil
}

// Personal is the authenticated blogger's own timeline
func (l *Loader) Personal() ([]Item, error) {
	return l.load(l.queries.MyPosts, l.queries.MyReblogs, nil)
}

// User is another blogger's timeline
func (l *Loader) User(bloggerID int) ([]Item, error) {
	return l.load(
		func() ([]api.Post, error) { return l.queries.UserPosts(bloggerID) },
		func() ([]api.Reblog, error) { return l.queries.UserReblogs(bloggerID) },
		nil,
	)
}

// Global is the everything-feed
func (l *Loader) Global() ([]Item, error) {
	return l.load(l.queries.AllPosts, l.queries.AllReblogs, nil)
}

// Community is the global feed narrowed to one hashtag. Communities are a
// client-side construct; the server knows nothing about them.
func (l *Loader) Community(tag string) ([]Item, error) {
	return l.load(l.queries.AllPosts, l.queries.AllReblogs, HashtagFilter(tag))
}
