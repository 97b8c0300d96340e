package api

import (
	"fmt"
	"net/http"
	"testing"
)

func TestLogin_TokenFromHeader(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		w.Header().Set("Authorization", "Bearer token-abc-123")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"bloggerId": 7, "username": "alice", "email": "alice@example.com"}`)
	})
	startTestServer(t, mux)

	user, token, err := Login("alice", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if token != "token-abc-123" {
		t.Errorf("Expected token from Authorization header, got %q", token)
	}
	if user.Username != "alice" {
		t.Errorf("Expected username alice, got %q", user.Username)
	}
	if user.BloggerID != 7 {
		t.Errorf("Expected blogger id 7, got %d", user.BloggerID)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": "Bad credentials"}`)
	})
	startTestServer(t, mux)

	_, token, err := Login("alice", "wrong")
	if err == nil {
		t.Fatal("Expected error for bad credentials")
	}
	if token != "" {
		t.Errorf("Expected empty token on failure, got %q", token)
	}
	if !IsUnauthorized(err) {
		t.Errorf("Expected 401 classification, got: %v", err)
	}
}

func TestRegister_ReturnsCreatedBlogger(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"bloggerId": 9, "username": "newbie", "roleName": "USER"}`)
	})
	startTestServer(t, mux)

	user, err := Register(RegisterRequest{
		Email:    "newbie@example.com",
		Username: "newbie",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Username != "newbie" {
		t.Errorf("Expected username newbie, got %q", user.Username)
	}
}

func TestMe(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"bloggerId": 7, "username": "alice", "fullName": "Alice A"}`)
	})
	startTestServer(t, mux)

	user, err := Me()
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if user.FullName != "Alice A" {
		t.Errorf("Expected full name, got %q", user.FullName)
	}
}
