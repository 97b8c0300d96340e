package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quill-social/cli/pkg/client"
)

// startTestServer points the gateway client at a local fake backend for the
// duration of one test.
func startTestServer(t *testing.T, mux *http.ServeMux) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client.SetBaseURL(server.URL)
	return server
}
