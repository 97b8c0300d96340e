package client

import (
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/quill-social/cli/pkg/config"
	"github.com/quill-social/cli/pkg/logger"
)

var (
	mu                  sync.Mutex
	httpClient          *resty.Client
	unauthorizedHandler func()
)

// Init initializes the HTTP client
func Init() {
	mu.Lock()
	defer mu.Unlock()
	initLocked()
}

// initLocked builds a fully configured client before publishing it, so a
// concurrent GetClient never observes a half-configured instance. Callers
// hold mu.
func initLocked() {
	c := resty.New()

	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second

	c.SetBaseURL(baseURL)
	c.SetTimeout(timeout)
	c.SetHeader("User-Agent", "Quill-CLI/0.1.0")
	c.SetHeader("Content-Type", "application/json")

	c.OnBeforeRequest(func(cl *resty.Client, req *resty.Request) error {
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)
		return nil
	})

	c.OnAfterResponse(func(cl *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode())

		// A 401 anywhere means the session is dead. The session store
		// registers itself here so it can clear the live AuthUser.
		if resp.StatusCode() == 401 {
			mu.Lock()
			handler := unauthorizedHandler
			mu.Unlock()
			if handler != nil {
				handler()
			}
		}
		return nil
	})

	httpClient = c
}

// GetClient returns the HTTP client. Safe for concurrent callers; the feed
// loader hits it from two goroutines at once.
func GetClient() *resty.Client {
	mu.Lock()
	defer mu.Unlock()
	if httpClient == nil {
		initLocked()
	}
	return httpClient
}

// SetAuthToken sets the authorization token as a client default header.
// This is the only place the token is attached; no per-call headers.
func SetAuthToken(token string) {
	mu.Lock()
	defer mu.Unlock()
	if httpClient == nil {
		initLocked()
	}
	httpClient.SetHeader("Authorization", "Bearer "+token)
}

// ClearAuthToken clears the authorization token
func ClearAuthToken() {
	mu.Lock()
	defer mu.Unlock()
	// Re-init the client to clear auth headers
	initLocked()
}

// SetBaseURL overrides the configured base URL. Used by tests to point the
// client at a local fake backend.
func SetBaseURL(url string) {
	GetClient().SetBaseURL(url)
}

// OnUnauthorized registers the handler invoked whenever any response comes
// back 401.
func OnUnauthorized(handler func()) {
	mu.Lock()
	defer mu.Unlock()
	unauthorizedHandler = handler
}
