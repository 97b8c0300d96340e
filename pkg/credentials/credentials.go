package credentials

import (
	"encoding/json"
	"os"
	"time"

	"github.com/quill-social/cli/pkg/config"
)

// Credentials is the persisted bearer token plus the identity it was issued
// for. The token is attached to every request by the API gateway client.
type Credentials struct {
	AccessToken string    `json:"access_token"`
	BloggerID   int       `json:"blogger_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	SavedAt     time.Time `json:"saved_at"`
}

// Load loads credentials from disk
func Load() (*Credentials, error) {
	path := config.GetCredentialsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Credentials don't exist yet
		}
		return nil, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}

	return &creds, nil
}

// Save saves credentials to disk
func Save(creds *Credentials) error {
	path := config.GetCredentialsPath()

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}

// Delete deletes credentials from disk
func Delete() error {
	path := config.GetCredentialsPath()
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// IsValid checks if credentials carry a token. Expiry is the server's call:
// a 401 on any request clears the session regardless of what is stored here.
func (c *Credentials) IsValid() bool {
	return c != nil && c.AccessToken != ""
}
