// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gofolio",
	Short: "gofolio is a personal portfolio website with an admin dashboard",
	Long: `gofolio is a personal portfolio website backed by a password-protected
admin dashboard for content management and a lightweight first-party
analytics tracker.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
