package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
)

func TestCreatePost_SendsMediaFields(t *testing.T) {
	var received CreatePostRequest

	mux := http.NewServeMux()
	mux.HandleFunc("/posts/create", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Errorf("Bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"postId": 42, "content": "hello"}`)
	})
	startTestServer(t, mux)

	mediaURL := "https://cdn.example.com/pic.png"
	mediaType := "image"
	post, err := CreatePost(CreatePostRequest{
		Content:   "hello",
		MediaURL:  &mediaURL,
		MediaType: &mediaType,
	})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if post.PostID != 42 {
		t.Errorf("Expected post id 42, got %d", post.PostID)
	}
	if received.MediaURL == nil || *received.MediaURL != mediaURL {
		t.Error("Media URL not sent to server")
	}
}

func TestCreatePost_TextOnlyOmitsMedia(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/posts/create", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var raw map[string]interface{}
		if err := json.Unmarshal(body, &raw); err != nil {
			t.Fatalf("Bad request body: %v", err)
		}
		if _, present := raw["mediaUrl"]; present {
			t.Error("mediaUrl should be omitted for a text-only post")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"postId": 1}`)
	})
	startTestServer(t, mux)

	if _, err := CreatePost(CreatePostRequest{Content: "just text"}); err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
}

func TestDeletePost_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/posts/99", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error": "Post not found."}`)
	})
	startTestServer(t, mux)

	err := DeletePost(99)
	if err == nil {
		t.Fatal("Expected error for missing post")
	}
	if !IsNotFound(err) {
		t.Errorf("Expected 404 classification, got: %v", err)
	}
}

func TestTrending(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/posts/trending", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"postId": 5, "username": "alice", "likeCount": 3, "commentCount": 2, "reblogCount": 1, "totalInteractions": 6}`)
	})
	startTestServer(t, mux)

	trending, err := Trending()
	if err != nil {
		t.Fatalf("Trending failed: %v", err)
	}
	if trending.TotalInteractions != 6 {
		t.Errorf("Expected 6 interactions, got %d", trending.TotalInteractions)
	}
}
