package api

import (
	"fmt"

	"github.com/quill-social/cli/pkg/client"
	"github.com/quill-social/cli/pkg/logger"
)

// Profile retrieves a blogger's public profile by username
func Profile(username string) (*Blogger, error) {
	logger.Debug("Fetching profile", "username", username)

	var blogger Blogger

	resp, err := client.GetClient().
		R().
		SetResult(&blogger).
		Get(fmt.Sprintf("/bloggers/profile/%s", username))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &blogger, nil
}

// SearchBloggers searches bloggers by term
func SearchBloggers(searchTerm string) ([]Blogger, error) {
	logger.Debug("Searching bloggers", "term", searchTerm)

	var bloggers []Blogger

	resp, err := client.GetClient().
		R().
		SetQueryParam("searchTerm", searchTerm).
		SetResult(&bloggers).
		Get("/bloggers/search")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return bloggers, nil
}

// UpdateProfilePicture persists the storage URL of an uploaded picture
func UpdateProfilePicture(pictureURL string) error {
	logger.Debug("Updating profile picture")

	resp, err := client.GetClient().
		R().
		SetBody(map[string]string{"profilePictureUrl": pictureURL}).
		Put("/bloggers/profile-picture")

	return CheckResponse(resp, err)
}

// UpdateFirstName updates the blogger's first name
func UpdateFirstName(bloggerID int, firstName string) error {
	logger.Debug("Updating first name", "blogger_id", bloggerID)

	resp, err := client.GetClient().
		R().
		SetBody(map[string]string{"firstName": firstName}).
		Put(fmt.Sprintf("/bloggers/%d/first-name", bloggerID))

	return CheckResponse(resp, err)
}

// UpdateLastName updates the blogger's last name
func UpdateLastName(bloggerID int, lastName string) error {
	logger.Debug("Updating last name", "blogger_id", bloggerID)

	resp, err := client.GetClient().
		R().
		SetBody(map[string]string{"lastName": lastName}).
		Put(fmt.Sprintf("/bloggers/%d/last-name", bloggerID))

	return CheckResponse(resp, err)
}

// UpdatePassword changes the blogger's password
func UpdatePassword(bloggerID int, currentPassword, newPassword string) error {
	logger.Debug("Updating password", "blogger_id", bloggerID)

	resp, err := client.GetClient().
		R().
		SetBody(map[string]string{
			"currentPassword": currentPassword,
			"newPassword":     newPassword,
		}).
		Put(fmt.Sprintf("/bloggers/%d/password", bloggerID))

	return CheckResponse(resp, err)
}
