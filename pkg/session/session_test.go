package session

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/quill-social/cli/pkg/api"
	"github.com/quill-social/cli/pkg/client"
	"github.com/quill-social/cli/pkg/config"
	"github.com/quill-social/cli/pkg/credentials"
	"github.com/quill-social/cli/pkg/errors"
)

func setup(t *testing.T) {
	t.Helper()

	if err := config.Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}
	Clear()
}

// TestRequireWithoutCredentials fails fast before any network call
func TestRequireWithoutCredentials(t *testing.T) {
	setup(t)

	_, err := Require()
	if err == nil {
		t.Fatal("Require should fail with no stored token")
	}

	cliErr, ok := err.(*errors.CLIError)
	if !ok {
		t.Fatalf("Expected CLIError, got %T", err)
	}
	if cliErr.Type != errors.ErrorTypeUnauthenticated {
		t.Errorf("Expected unauthenticated error, got %s", cliErr.Type)
	}
}

// TestBeginThenCurrent serves the identity from memory after login
func TestBeginThenCurrent(t *testing.T) {
	setup(t)

	user := &api.Blogger{BloggerID: 7, Username: "alice", Email: "alice@example.com"}
	if err := Begin(user, "token-123"); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	// No server is running: a fresh in-memory identity must not refetch.
	current, err := Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if current.Username != "alice" {
		t.Errorf("Expected alice, got %q", current.Username)
	}

	// Begin also persists credentials for the next process.
	creds, err := credentials.Load()
	if err != nil || creds == nil {
		t.Fatalf("Credentials not persisted: %v", err)
	}
	if creds.AccessToken != "token-123" {
		t.Errorf("Wrong persisted token: %q", creds.AccessToken)
	}
}

// TestCurrentReturnsCopy protects the live identity from callers
func TestCurrentReturnsCopy(t *testing.T) {
	setup(t)

	if err := Begin(&api.Blogger{BloggerID: 7, Username: "alice"}, "token"); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	first, _ := Current()
	first.Username = "mallory"

	second, _ := Current()
	if second.Username != "alice" {
		t.Error("Mutating a returned identity must not affect the session")
	}
}

// TestEndClearsEverything drops memory, token header and disk state
func TestEndClearsEverything(t *testing.T) {
	setup(t)

	if err := Begin(&api.Blogger{BloggerID: 7, Username: "alice"}, "token"); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	creds, err := credentials.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if creds != nil {
		t.Error("Credentials should be deleted after End")
	}

	_, err = Require()
	if err == nil {
		t.Error("Require should fail after End")
	}
}

// TestCurrentRefetchesFromServer validates the identity query path
func TestCurrentRefetchesFromServer(t *testing.T) {
	setup(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer stored-token" {
			t.Errorf("Expected stored token on identity query, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bloggerId": 7, "username": "alice"}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	client.SetBaseURL(server.URL)

	// Token on disk but nothing in memory, as at process start.
	if err := credentials.Save(&credentials.Credentials{AccessToken: "stored-token"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	user, err := Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("Expected alice, got %q", user.Username)
	}
}

// TestFailedIdentityQueryClearsSession logs the user out on failure
func TestFailedIdentityQueryClearsSession(t *testing.T) {
	setup(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "token expired"}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	client.SetBaseURL(server.URL)

	if err := credentials.Save(&credentials.Credentials{AccessToken: "dead-token"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	_, err := Current()
	if err == nil {
		t.Fatal("Current should fail when the identity query fails")
	}

	cliErr, ok := err.(*errors.CLIError)
	if !ok || cliErr.Type != errors.ErrorTypeSessionExpired {
		t.Errorf("Expected session expired error, got %v", err)
	}
}
