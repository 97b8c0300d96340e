package api

import (
	"testing"
)

func TestSearchGifs_EmptyQuery(t *testing.T) {
	gifs, err := SearchGifs("   ")
	if err != nil {
		t.Fatalf("Empty query should not error: %v", err)
	}
	if gifs != nil {
		t.Errorf("Empty query should return no results, got %d", len(gifs))
	}
}

func TestSearchGifs_MissingAPIKey(t *testing.T) {
	// No giphy.api_key configured in tests.
	_, err := SearchGifs("cats")
	if err == nil {
		t.Fatal("Expected error when no API key is configured")
	}
}
