package cmd

import (
	"fmt"
	"strconv"

	"github.com/quill-social/cli/pkg/api"
)

// parseID parses a numeric id argument.
func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id: %q", what, arg)
	}
	return id, nil
}

// entityRef resolves the post/reblog target of a like or comment command
// from an id argument and the --reblog flag.
func entityRef(arg string, onReblog bool) (api.EntityRef, error) {
	kind := api.EntityPost
	what := "post"
	if onReblog {
		kind = api.EntityReblog
		what = "reblog"
	}

	id, err := parseID(arg, what)
	if err != nil {
		return api.EntityRef{}, err
	}
	return api.EntityRef{Kind: kind, ID: id}, nil
}
