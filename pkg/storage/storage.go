package storage

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/quill-social/cli/pkg/config"
	"github.com/quill-social/cli/pkg/errors"
	"github.com/quill-social/cli/pkg/logger"
)

// uploadClient PUTs binary content straight at the object store, bypassing
// the API gateway. Only the resulting URL ever goes through the backend.
var uploadClient = resty.New()

// Upload uploads a local file into the given folder of the object store and
// returns the public URL to persist via a post-create or profile mutation.
func Upload(filePath, folder string) (string, error) {
	baseURL := config.GetString("storage.base_url")
	if baseURL == "" {
		return "", fmt.Errorf("no storage base URL configured (set storage.base_url)")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.FileNotFoundError(filePath)
		}
		return "", err
	}

	name := strings.ReplaceAll(filepath.Base(filePath), " ", "_")
	key := fmt.Sprintf("%s/%s-%s", folder, uuid.NewString(), name)
	uploadURL := fmt.Sprintf("%s/%s", strings.TrimRight(baseURL, "/"), key)

	contentType := mime.TypeByExtension(filepath.Ext(filePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	logger.Debug("Uploading file", "key", key, "bytes", len(data))

	resp, err := uploadClient.
		R().
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Put(uploadURL)

	if err != nil {
		return "", err
	}

	if !resp.IsSuccess() {
		return "", fmt.Errorf("upload failed: %s", resp.Status())
	}

	return uploadURL, nil
}

// MediaTypeFor maps a file to the backend's media type discriminant.
// Anything image-like is "image"; the backend knows no other kind.
func MediaTypeFor(filePath string) *string {
	contentType := mime.TypeByExtension(filepath.Ext(filePath))
	if strings.HasPrefix(contentType, "image/") {
		t := "image"
		return &t
	}
	return nil
}
