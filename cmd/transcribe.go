package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe recorded audio to text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open audio file: %w", err)
		}
		defer func() { _ = f.Close() }()

		tr, err := apiClient().Transcribe(cmd.Context(), filepath.Base(args[0]), f)
		if err != nil {
			return err
		}
		fmt.Println(tr.Text)
		fmt.Printf("(confidence %.2f)\n", tr.Confidence)
		return nil
	},
}
