package cache

import "fmt"

// Cache keys are scoped by the query's own parameters. A response that
// arrives after the user has moved on to a different profile or post lands
// in that parameter's key, never in the one currently displayed.

func KeyMe() string { return "auth:me" }

func KeyMyPosts() string { return "posts:mine" }

func KeyAllPosts() string { return "posts:all" }

func KeyUserPosts(id int) string { return fmt.Sprintf("posts:user:%d", id) }

func KeyMyReblogs() string { return "reblogs:mine" }

func KeyAllReblogs() string { return "reblogs:all" }

func KeyUserReblogs(id int) string { return fmt.Sprintf("reblogs:user:%d", id) }

func KeyTrending() string { return "trending" }

func KeyTopBloggers(limit int) string {
	return fmt.Sprintf("top-bloggers:%d", limit)
}

func KeyProfile(username string) string {
	return fmt.Sprintf("profile:%s", username)
}

func KeySearch(term string) string { return fmt.Sprintf("search:%s", term) }

func KeyLikes(kind string, id int) string {
	return fmt.Sprintf("likes:%s:%d", kind, id)
}

func KeyComments(kind string, id int) string {
	return fmt.Sprintf("comments:%s:%d", kind, id)
}

func KeyFollowers(id int) string { return fmt.Sprintf("followers:%d", id) }

func KeyFollowState(followerID, followeeID int) string {
	return fmt.Sprintf("follow:%d:%d", followerID, followeeID)
}
