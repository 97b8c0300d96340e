package service

import (
	"sync"

	"github.com/quill-social/cli/pkg/cache"
	"github.com/quill-social/cli/pkg/feed"
	"github.com/quill-social/cli/pkg/interaction"
	"github.com/quill-social/cli/pkg/query"
)

// One cache store per process, shared by every service so that mutations
// invalidate the same entries the queries populate. Built lazily, after
// config has been initialized by the root command.
var (
	depsOnce   sync.Once
	store      *cache.Store
	queries    *query.Queries
	feedLoader *feed.Loader
	likeCtl    *interaction.Likes
	followCtl  *interaction.Follow
)

func deps() {
	depsOnce.Do(func() {
		store = cache.New()
		queries = query.New(store)
		feedLoader = feed.NewLoader(queries)
		likeCtl = interaction.NewLikes(queries)
		followCtl = interaction.NewFollow(queries)
	})
}

// Queries exposes the shared query layer, mainly for tests.
func Queries() *query.Queries {
	deps()
	return queries
}
