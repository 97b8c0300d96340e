package service

import (
	"github.com/quill-social/cli/pkg/api"
	"github.com/quill-social/cli/pkg/cache"
	"github.com/quill-social/cli/pkg/errors"
	"github.com/quill-social/cli/pkg/formatter"
	"github.com/quill-social/cli/pkg/output"
	"github.com/quill-social/cli/pkg/prompter"
	"github.com/quill-social/cli/pkg/session"
	"github.com/quill-social/cli/pkg/storage"
)

type ProfileService struct{}

// NewProfileService creates a new profile service
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// Show prints a blogger's public profile, or the current user's own when the
// username is empty.
func (s *ProfileService) Show(username string) error {
	deps()

	if username == "" {
		user, err := session.Current()
		if err != nil {
			return err
		}
		username = user.Username
	}

	profile, err := queries.Profile(username)
	if err != nil {
		formatter.PrintError("Blogger @%s not found: %v", username, err)
		return err
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", profile)
	}

	return output.PrintRecord("@"+profile.Username, map[string]interface{}{
		"Name":    profile.FullName,
		"Email":   profile.Email,
		"Role":    profile.RoleName,
		"Picture": profile.ProfilePictureURL,
	})
}

func (s *ProfileService) invalidateProfile(user *api.Blogger) {
	cache.InvalidateFor(store, cache.MutationUpdateProfile, cache.MutationScope{
		Username: user.Username,
	})
	session.Clear()
}

// SetPicture uploads a local image and sets it as the profile picture.
func (s *ProfileService) SetPicture(filePath string) error {
	deps()

	user, err := session.Require()
	if err != nil {
		return err
	}

	formatter.PrintInfo("Uploading picture...")
	url, err := storage.Upload(filePath, "avatars")
	if err != nil {
		formatter.PrintError("Upload failed: %v", err)
		return err
	}

	if err := api.UpdateProfilePicture(url); err != nil {
		formatter.PrintError("Failed to update profile picture: %v", err)
		return err
	}

	s.invalidateProfile(user)
	formatter.PrintSuccess("Profile picture updated")
	return nil
}

// SetFirstName updates the blogger's first name.
func (s *ProfileService) SetFirstName(firstName string) error {
	deps()

	user, err := session.Require()
	if err != nil {
		return err
	}
	if firstName == "" {
		return errors.ValidationError("first name", "cannot be empty")
	}

	if err := api.UpdateFirstName(user.BloggerID, firstName); err != nil {
		formatter.PrintError("Failed to update first name: %v", err)
		return err
	}

	s.invalidateProfile(user)
	formatter.PrintSuccess("First name updated")
	return nil
}

// SetLastName updates the blogger's last name.
func (s *ProfileService) SetLastName(lastName string) error {
	deps()

	user, err := session.Require()
	if err != nil {
		return err
	}
	if lastName == "" {
		return errors.ValidationError("last name", "cannot be empty")
	}

	if err := api.UpdateLastName(user.BloggerID, lastName); err != nil {
		formatter.PrintError("Failed to update last name: %v", err)
		return err
	}

	s.invalidateProfile(user)
	formatter.PrintSuccess("Last name updated")
	return nil
}

// ChangePassword prompts for the current and new passwords and updates them.
func (s *ProfileService) ChangePassword() error {
	deps()

	user, err := session.Require()
	if err != nil {
		return err
	}

	current, err := prompter.PromptPassword("Current password: ")
	if err != nil {
		return err
	}
	next, err := prompter.PromptPassword("New password: ")
	if err != nil {
		return err
	}
	confirm, err := prompter.PromptPassword("Confirm new password: ")
	if err != nil {
		return err
	}
	if next != confirm {
		return errors.ValidationError("password", "passwords do not match")
	}
	if next == "" {
		return errors.ValidationError("password", "cannot be empty")
	}

	if err := api.UpdatePassword(user.BloggerID, current, next); err != nil {
		formatter.PrintError("Failed to change password: %v", err)
		return err
	}

	formatter.PrintSuccess("Password changed")
	return nil
}
