package cmd

import (
	"agioctl/pkg/autograder"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses [COURSE]",
	Short: "Show course detail or list courses",
	Long: `Show course detail or list courses.

COURSE may be a pk, a shorthand or a full name:

  agio courses 109
  agio courses eecs485sp21
  agio courses "EECS 485 Spring 2021"

Without COURSE, current courses are offered for selection; --all offers
every semester.`,
	Example: "  agio courses --list\n  agio courses eecs280f21",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		if list, _ := cmd.Flags().GetBool("list"); list {
			var courses []autograder.Course
			s.withSpinner("Fetching courses...", func() {
				courses, err = s.resolver.Courses(cmd.Context())
			})
			if err != nil {
				return err
			}
			printSummaries(cmd.OutOrStdout(), courses)
			return nil
		}

		course, err := s.resolver.Course(cmd.Context(), argOrEmpty(args))
		if err != nil {
			return err
		}
		return printDetail(cmd.OutOrStdout(), course)
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
	coursesCmd.Flags().BoolP("list", "l", false, "List courses and exit")
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
