package api

import (
	"fmt"
	"net/http"
	"testing"
)

func TestFollowers_UnwrapsEnvelope(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/followers/7", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"followers": [{"username": "bob"}, {"username": "carol"}]}`)
	})
	startTestServer(t, mux)

	followers, err := Followers(7)
	if err != nil {
		t.Fatalf("Followers failed: %v", err)
	}
	if len(followers) != 2 {
		t.Fatalf("Expected 2 followers, got %d", len(followers))
	}
	if followers[0].Username != "bob" {
		t.Errorf("Expected bob first, got %q", followers[0].Username)
	}
}

func TestIsFollowing_SendsBothIDs(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/followers/isFollowing", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("followerId") != "1" || r.URL.Query().Get("followeeId") != "2" {
			t.Errorf("Missing or wrong query params: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, "true")
	})
	startTestServer(t, mux)

	following, err := IsFollowing(1, 2)
	if err != nil {
		t.Fatalf("IsFollowing failed: %v", err)
	}
	if !following {
		t.Error("Expected following=true")
	}
}

func TestTopBloggers_PassesLimit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/followers/top-bloggers", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("limit") != "3" {
			t.Errorf("Expected limit=3, got %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"bloggerId": 1, "username": "alice", "followerCount": 10}]`)
	})
	startTestServer(t, mux)

	bloggers, err := TopBloggers(3)
	if err != nil {
		t.Fatalf("TopBloggers failed: %v", err)
	}
	if len(bloggers) != 1 || bloggers[0].FollowerCount != 10 {
		t.Errorf("Unexpected result: %+v", bloggers)
	}
}
