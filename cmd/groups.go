package cmd

import (
	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups [GROUP]",
	Short: "Show group detail or list groups",
	Long: `Show group detail or list groups.

GROUP may be a pk or the uniqname of any member.`,
	Example: "  agio groups -c eecs485sp21 -p p1 --list\n  agio groups -c eecs485sp21 -p p1 awdeorio",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		scope := scopeFromFlags(cmd)

		if list, _ := cmd.Flags().GetBool("list"); list {
			groups, err := s.resolver.Groups(cmd.Context(), scope)
			if err != nil {
				return err
			}
			printSummaries(cmd.OutOrStdout(), groups)
			return nil
		}

		group, err := s.resolver.Group(cmd.Context(), argOrEmpty(args), scope)
		if err != nil {
			return err
		}
		return printDetail(cmd.OutOrStdout(), group)
	},
}

func init() {
	rootCmd.AddCommand(groupsCmd)
	groupsCmd.Flags().StringP("course", "c", "", "Course pk, shorthand or name")
	groupsCmd.Flags().StringP("project", "p", "", "Project pk or shorthand")
	groupsCmd.Flags().BoolP("list", "l", false, "List groups and exit")
}
