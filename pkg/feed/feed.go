// Package feed merges independently fetched post and reblog lists into one
// reverse-chronological timeline of tagged items.
package feed

import (
	"sort"
	"strings"
	"time"

	"github.com/quill-social/cli/pkg/api"
)

// Kind discriminates timeline items.
type Kind string

const (
	KindPost   Kind = "post"
	KindReblog Kind = "reblog"
)

// Item is the tagged union rendered by a timeline: exactly one of Post or
// Reblog is set, matching Kind.
type Item struct {
	Kind   Kind
	Post   *api.Post
	Reblog *api.Reblog
}

// Timestamp is the derived ordering field: createdAt for posts, rebloggedAt
// for reblogs.
func (it Item) Timestamp() time.Time {
	if it.Kind == KindReblog {
		return it.Reblog.RebloggedAt
	}
	return it.Post.CreatedAt
}

// Predicate filters a timeline item. It receives the union type and must
// switch on Kind to know which text fields to inspect.
type Predicate func(Item) bool

// Aggregate tags, filters and sorts two source lists into one timeline.
// Callers gate on both sources being loaded before calling; aggregation
// never sees a half-fetched feed. The sort is stable and descending by
// derived timestamp, so equal timestamps keep input order (posts first,
// then reblogs, each in source order). An empty result is a valid state.
func Aggregate(posts []api.Post, reblogs []api.Reblog, filter Predicate) []Item {
	items := make([]Item, 0, len(posts)+len(reblogs))

	for i := range posts {
		items = append(items, Item{Kind: KindPost, Post: &posts[i]})
	}
	for i := range reblogs {
		items = append(items, Item{Kind: KindReblog, Reblog: &reblogs[i]})
	}

	if filter != nil {
		filtered := items[:0]
		for _, it := range items {
			if filter(it) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp().After(items[j].Timestamp())
	})

	return items
}

// HashtagFilter builds the community predicate for one tag. A post matches
// on its content; a reblog matches on its added comment or on the original
// post's snapshotted content.
func HashtagFilter(tag string) Predicate {
	needle := "#" + strings.TrimPrefix(tag, "#")

	return func(it Item) bool {
		switch it.Kind {
		case KindPost:
			return strings.Contains(it.Post.Content, needle)
		case KindReblog:
			if it.Reblog.Comment != nil && strings.Contains(*it.Reblog.Comment, needle) {
				return true
			}
			return strings.Contains(it.Reblog.OriginalPostContent, needle)
		}
		return false
	}
}
