package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var adaptCmd = &cobra.Command{
	Use:   "adapt <kid-id> <text>...",
	Short: "Rewrite text for a child's reading level",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kidID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid kid id %q", args[0])
		}

		a, err := apiClient().AdaptText(cmd.Context(), kidID, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Printf("Adapted for %s level:\n\n%s\n", a.ReadingLevel, a.AdaptedText)
		return nil
	},
}

var sessionCmd = &cobra.Command{
	Use:   "session <kid-id>",
	Short: "Show a child's AI tutoring session state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kidID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid kid id %q", args[0])
		}

		s, err := apiClient().GetAISession(cmd.Context(), kidID)
		if err != nil {
			return err
		}
		fmt.Printf("Kid %d: %s level, %d interactions", s.KidID, s.ReadingLevel, s.Interactions)
		if s.UpdatedAt != "" {
			fmt.Printf(", last active %s", s.UpdatedAt)
		}
		fmt.Println()
		return nil
	},
}
