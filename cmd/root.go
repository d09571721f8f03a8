package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"somabuddy/internal/api"
	"somabuddy/internal/app"
	"somabuddy/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "somabuddy",
	Short: "Bilingual reading companion for kids",
	Long:  "SomaBuddy — a terminal reading companion that helps Kenyan children practice reading in English and Kiswahili.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(store.Seed())
	},
}

func Execute() error {
	// Local .env is optional; the defaults work without one.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(kidsCmd)
	rootCmd.AddCommand(speakCmd)
	rootCmd.AddCommand(transcribeCmd)
	rootCmd.AddCommand(adaptCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// apiClient builds the backend client from the environment.
func apiClient() *api.Client {
	return api.NewClient(api.ConfigFromEnv())
}
