package cmd

import (
	"github.com/spf13/cobra"
)

var submissionsCmd = &cobra.Command{
	Use:   "submissions [SUBMISSION]",
	Short: "Show submission detail or list submissions",
	Long: `Show submission detail or list submissions.

SUBMISSION may be a pk, "last" for the most recent submission (the
default) or "best" for the submission that counts toward the final score.`,
	Example: "  agio submissions -c eecs485sp21 -p p1 -g awdeorio best",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		scope := scopeFromFlags(cmd)

		if list, _ := cmd.Flags().GetBool("list"); list {
			submissions, err := s.resolver.Submissions(cmd.Context(), scope)
			if err != nil {
				return err
			}
			printSummaries(cmd.OutOrStdout(), submissions)
			return nil
		}

		submission, err := s.resolver.Submission(cmd.Context(), argOrEmpty(args), scope)
		if err != nil {
			return err
		}
		return printDetail(cmd.OutOrStdout(), submission)
	},
}

func init() {
	rootCmd.AddCommand(submissionsCmd)
	submissionsCmd.Flags().StringP("course", "c", "", "Course pk, shorthand or name")
	submissionsCmd.Flags().StringP("project", "p", "", "Project pk or shorthand")
	submissionsCmd.Flags().StringP("group", "g", "", "Group pk or member uniqname")
	submissionsCmd.Flags().BoolP("list", "l", false, "List submissions and exit")
}
