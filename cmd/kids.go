package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"somabuddy/internal/api"
)

var kidsCmd = &cobra.Command{
	Use:   "kids",
	Short: "Manage child profiles on the backend",
}

var kidsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all child profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		kids, err := apiClient().ListKids(cmd.Context())
		if err != nil {
			return err
		}
		if len(kids) == 0 {
			fmt.Println("No profiles yet.")
			return nil
		}
		for _, k := range kids {
			printKid(k)
		}
		return nil
	},
}

var kidsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one child profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		kid, err := apiClient().GetKid(cmd.Context(), id)
		if err != nil {
			return err
		}
		printKid(kid)
		return nil
	},
}

var kidsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a child profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := api.KidInput{}
		in.Name, _ = cmd.Flags().GetString("name")
		in.Age, _ = cmd.Flags().GetInt("age")
		in.Grade, _ = cmd.Flags().GetInt("grade")
		in.ReadingLevel, _ = cmd.Flags().GetString("level")
		in.Language, _ = cmd.Flags().GetString("lang")

		kid, err := apiClient().CreateKid(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Println("Created:")
		printKid(kid)
		return nil
	},
}

var kidsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a child profile (only the flags you pass change)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		var patch api.KidPatch
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			patch.Name = &v
		}
		if cmd.Flags().Changed("age") {
			v, _ := cmd.Flags().GetInt("age")
			patch.Age = &v
		}
		if cmd.Flags().Changed("grade") {
			v, _ := cmd.Flags().GetInt("grade")
			patch.Grade = &v
		}
		if cmd.Flags().Changed("level") {
			v, _ := cmd.Flags().GetString("level")
			patch.ReadingLevel = &v
		}
		if cmd.Flags().Changed("lang") {
			v, _ := cmd.Flags().GetString("lang")
			patch.Language = &v
		}

		kid, err := apiClient().UpdateKid(cmd.Context(), id, patch)
		if err != nil {
			return err
		}
		fmt.Println("Updated:")
		printKid(kid)
		return nil
	},
}

var kidsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a child profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		if err := apiClient().DeleteKid(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("Deleted profile", id)
		return nil
	},
}

func printKid(k api.Kid) {
	fmt.Printf("%3d  %-12s age %-2d grade %-2d %-12s %s\n",
		k.ID, k.Name, k.Age, k.Grade, k.ReadingLevel, k.Language)
}

func init() {
	for _, c := range []*cobra.Command{kidsCreateCmd, kidsUpdateCmd} {
		c.Flags().String("name", "", "Child's name")
		c.Flags().Int("age", 0, "Age in years")
		c.Flags().Int("grade", 0, "School grade")
		c.Flags().String("level", "beginner", "Reading level: beginner, intermediate, advanced")
		c.Flags().String("lang", "en", "Preferred language: en or sw")
	}
	_ = kidsCreateCmd.MarkFlagRequired("name")

	kidsCmd.AddCommand(kidsListCmd)
	kidsCmd.AddCommand(kidsGetCmd)
	kidsCmd.AddCommand(kidsCreateCmd)
	kidsCmd.AddCommand(kidsUpdateCmd)
	kidsCmd.AddCommand(kidsDeleteCmd)
}
