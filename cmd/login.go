package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify the API token and show the current user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		user, err := s.client.CurrentUser(cmd.Context())
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", user.Username, user.FirstName, user.LastName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
