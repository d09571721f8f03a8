package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"somabuddy/internal/api"
)

var speakCmd = &cobra.Command{
	Use:   "speak <text>...",
	Short: "Synthesize speech for a piece of text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kidID, _ := cmd.Flags().GetInt("kid")
		lang, _ := cmd.Flags().GetString("lang")
		slow, _ := cmd.Flags().GetBool("slow")
		out, _ := cmd.Flags().GetString("out")

		audio, err := apiClient().Synthesize(cmd.Context(), api.SpeechRequest{
			Text:  strings.Join(args, " "),
			KidID: kidID,
			Lang:  lang,
			Slow:  slow,
		})
		if err != nil {
			return err
		}

		if err := os.WriteFile(out, audio, 0o644); err != nil {
			return fmt.Errorf("write audio file: %w", err)
		}
		fmt.Printf("Wrote %d bytes to %s\n", len(audio), out)
		return nil
	},
}

func init() {
	speakCmd.Flags().Int("kid", 0, "Child profile ID")
	speakCmd.Flags().String("lang", "en", "Speech language: en or sw")
	speakCmd.Flags().Bool("slow", false, "Slow playback for beginner readers")
	speakCmd.Flags().String("out", "speech.mp3", "Output audio file")
}
