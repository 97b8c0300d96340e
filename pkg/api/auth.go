package api

import (
	"strings"

	json "github.com/json-iterator/go"
	"github.com/quill-social/cli/pkg/client"
	"github.com/quill-social/cli/pkg/logger"
)

// Login authenticates with username and password. The backend hands the
// bearer token back in the Authorization response header, not the body.
func Login(username, password string) (*Blogger, string, error) {
	logger.Debug("Attempting login", "username", username)

	req := LoginRequest{
		Username: username,
		Password: password,
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, "", err
	}

	resp, err := client.GetClient().
		R().
		SetBody(reqBody).
		Post("/auth/login")

	if err := CheckResponse(resp, err); err != nil {
		return nil, "", err
	}

	token := strings.TrimPrefix(resp.Header().Get("Authorization"), "Bearer ")

	var user Blogger
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, "", err
	}

	logger.Debug("Login successful", "username", user.Username)
	return &user, token, nil
}

// Register creates a new blogger account
func Register(req RegisterRequest) (*Blogger, error) {
	logger.Debug("Registering account", "username", req.Username)

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetBody(reqBody).
		Post("/auth/register")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var user Blogger
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Me fetches the authenticated blogger's profile ("who am I")
func Me() (*Blogger, error) {
	logger.Debug("Fetching current user")

	resp, err := client.GetClient().
		R().
		Get("/auth/me")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var user Blogger
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, err
	}

	logger.Debug("Current user fetched", "username", user.Username)
	return &user, nil
}

// Logout invalidates the session server-side
func Logout() error {
	logger.Debug("Logging out")

	resp, err := client.GetClient().
		R().
		Post("/auth/logout")

	return CheckResponse(resp, err)
}
