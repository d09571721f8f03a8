package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"somabuddy/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer release is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(30 * time.Second))

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}

		if !result.UpdateAvailable {
			fmt.Println("Already running the latest version.")
			return nil
		}
		fmt.Printf("Update available: %s (running %s)\n", result.LatestVersion, version)
		if result.ReleaseURL != "" {
			fmt.Println("Download:", result.ReleaseURL)
		}
		return nil
	},
}
