package client

import (
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
)

// TestGetClientInitialization validates client initialization
func TestGetClientInitialization(t *testing.T) {
	httpClient = nil

	client := GetClient()
	if client == nil {
		t.Fatal("GetClient should not return nil")
	}
}

// TestGetClientSingleton validates that GetClient returns same instance
func TestGetClientSingleton(t *testing.T) {
	httpClient = nil

	client1 := GetClient()
	client2 := GetClient()
	if client1 != client2 {
		t.Error("GetClient should return same instance")
	}
}

// TestGetClientConcurrentColdInit validates that goroutines racing to
// initialize the client all get the same fully configured instance. The
// feed loader calls GetClient from two goroutines at once on a cold process.
func TestGetClientConcurrentColdInit(t *testing.T) {
	httpClient = nil

	var wg sync.WaitGroup
	clients := make([]*resty.Client, 8)
	for i := range clients {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			clients[i] = GetClient()
		}(i)
	}
	wg.Wait()

	for i, c := range clients {
		if c == nil {
			t.Fatalf("goroutine %d got nil client", i)
		}
		if c != clients[0] {
			t.Errorf("goroutine %d got a different instance", i)
		}
		if c.Header.Get("User-Agent") == "" {
			t.Errorf("goroutine %d observed a client without default headers", i)
		}
	}
}

// TestSetAuthToken validates auth token setting
func TestSetAuthToken(t *testing.T) {
	httpClient = nil

	SetAuthToken("test_token_12345")

	client := GetClient()
	if client == nil {
		t.Fatal("Client should be initialized after SetAuthToken")
	}

	auth := client.Header.Get("Authorization")
	if auth != "Bearer test_token_12345" {
		t.Errorf("Expected Bearer header, got %q", auth)
	}
}

// TestClearAuthToken validates auth token clearing
func TestClearAuthToken(t *testing.T) {
	httpClient = nil

	SetAuthToken("test_token")
	ClearAuthToken()

	client := GetClient()
	if client == nil {
		t.Fatal("Client should still exist after clearing auth")
	}
	if auth := client.Header.Get("Authorization"); auth != "" {
		t.Errorf("Authorization header should be gone, got %q", auth)
	}
}

// TestSetBaseURL validates the test override
func TestSetBaseURL(t *testing.T) {
	httpClient = nil

	SetBaseURL("http://127.0.0.1:9999")
	if GetClient().BaseURL != "http://127.0.0.1:9999" {
		t.Errorf("Base URL not applied: %q", GetClient().BaseURL)
	}
}

// TestOnUnauthorizedHandler validates handler registration
func TestOnUnauthorizedHandler(t *testing.T) {
	httpClient = nil

	called := false
	OnUnauthorized(func() { called = true })

	if unauthorizedHandler == nil {
		t.Fatal("Handler should be registered")
	}
	unauthorizedHandler()
	if !called {
		t.Error("Registered handler should be invoked")
	}
}
