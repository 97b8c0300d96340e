package service

import (
	"fmt"

	"github.com/quill-social/cli/pkg/api"
	"github.com/quill-social/cli/pkg/credentials"
	"github.com/quill-social/cli/pkg/errors"
	"github.com/quill-social/cli/pkg/formatter"
	"github.com/quill-social/cli/pkg/logger"
	"github.com/quill-social/cli/pkg/prompter"
	"github.com/quill-social/cli/pkg/session"
)

type AuthService struct{}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login handles user login
func (s *AuthService) Login() error {
	deps()

	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return err
	}

	if creds.IsValid() {
		formatter.PrintWarning("Already logged in as %s", creds.Username)
		confirm, err := prompter.PromptConfirm("Continue with new login?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	username, err := prompter.PromptString("Username: ")
	if err != nil {
		return err
	}
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	formatter.PrintInfo("Authenticating...")
	user, token, err := api.Login(username, password)
	if err != nil {
		formatter.PrintError("Login failed: %v", err)
		return err
	}
	if token == "" {
		return fmt.Errorf("server did not return a session token")
	}

	if err := session.Begin(user, token); err != nil {
		formatter.PrintError("Failed to save credentials: %v", err)
		return err
	}

	formatter.PrintSuccess("Login successful!")
	formatter.PrintInfo("Logged in as %s", formatter.Bold.Sprint(user.Username))
	fmt.Printf("\n")
	formatter.PrintKeyValue(map[string]interface{}{
		"Username": user.Username,
		"Email":    user.Email,
		"Name":     user.FullName,
		"Role":     user.RoleName,
	})

	return nil
}

// Register creates a new account and logs the user in
func (s *AuthService) Register() error {
	deps()

	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	username, err := prompter.PromptString("Username: ")
	if err != nil {
		return err
	}
	firstName, err := prompter.PromptString("First name: ")
	if err != nil {
		return err
	}
	lastName, err := prompter.PromptString("Last name: ")
	if err != nil {
		return err
	}
	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := prompter.PromptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.ValidationError("password", "passwords do not match")
	}
	if email == "" || username == "" || password == "" {
		return errors.ValidationError("registration", "email, username and password are required")
	}

	formatter.PrintInfo("Creating account...")
	user, err := api.Register(api.RegisterRequest{
		Email:     email,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Password:  password,
	})
	if err != nil {
		formatter.PrintError("Registration failed: %v", err)
		return err
	}

	formatter.PrintSuccess("Account created! Welcome, @%s", user.Username)
	formatter.PrintInfo("Run 'quill auth login' to start a session.")
	return nil
}

// Logout handles user logout
func (s *AuthService) Logout() error {
	deps()

	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return err
	}

	if creds == nil {
		formatter.PrintWarning("Not logged in")
		return nil
	}

	confirm, err := prompter.PromptConfirm("Logout?")
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	// Best effort server-side; the local session ends regardless.
	if err := api.Logout(); err != nil {
		logger.Warn("Server logout failed", "error", err)
	}

	if err := session.End(); err != nil {
		formatter.PrintError("Failed to delete credentials: %v", err)
		return err
	}

	formatter.PrintSuccess("Logged out")
	return nil
}

// WhoAmI prints the current session identity
func (s *AuthService) WhoAmI() error {
	deps()

	user, err := session.Current()
	if err != nil {
		formatter.PrintError("%v", err)
		return err
	}

	formatter.PrintKeyValue(map[string]interface{}{
		"Username": user.Username,
		"Email":    user.Email,
		"Name":     user.FullName,
		"Role":     user.RoleName,
		"ID":       user.BloggerID,
	})
	return nil
}
