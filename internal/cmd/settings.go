package cmd

import (
	"github.com/quill-social/cli/pkg/service"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Update your account",
	Long:  "Update your name, password and profile picture",
}

var settingsFirstNameCmd = &cobra.Command{
	Use:   "first-name <name>",
	Short: "Update your first name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileService := service.NewProfileService()
		return profileService.SetFirstName(args[0])
	},
}

var settingsLastNameCmd = &cobra.Command{
	Use:   "last-name <name>",
	Short: "Update your last name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileService := service.NewProfileService()
		return profileService.SetLastName(args[0])
	},
}

var settingsPasswordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change your password",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileService := service.NewProfileService()
		return profileService.ChangePassword()
	},
}

var settingsPictureCmd = &cobra.Command{
	Use:   "picture <filepath>",
	Short: "Upload a new profile picture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileService := service.NewProfileService()
		return profileService.SetPicture(args[0])
	},
}

func init() {
	settingsCmd.AddCommand(settingsFirstNameCmd)
	settingsCmd.AddCommand(settingsLastNameCmd)
	settingsCmd.AddCommand(settingsPasswordCmd)
	settingsCmd.AddCommand(settingsPictureCmd)
}
