package cmd

import (
	"agioctl/pkg/resolve"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects [PROJECT]",
	Short: "Show project detail or list projects",
	Long: `Show project detail or list projects.

PROJECT may be a pk, a shorthand like "p1", "P02", "hw3" or "lab-2", or
a single word from a project's subtitle like "mapreduce". Input of more
than one word is read as type, number and subtitle, so "p4 map reduce"
works but "Final Project" does not.`,
	Example: "  agio projects -c eecs485sp21 --list\n  agio projects -c eecs485sp21 p1",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		scope := scopeFromFlags(cmd)

		if list, _ := cmd.Flags().GetBool("list"); list {
			projects, err := s.resolver.Projects(cmd.Context(), scope)
			if err != nil {
				return err
			}
			printSummaries(cmd.OutOrStdout(), projects)
			return nil
		}

		project, err := s.resolver.Project(cmd.Context(), argOrEmpty(args), scope)
		if err != nil {
			return err
		}
		return printDetail(cmd.OutOrStdout(), project)
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.Flags().StringP("course", "c", "", "Course pk, shorthand or name")
	projectsCmd.Flags().BoolP("list", "l", false, "List projects and exit")
}

// scopeFromFlags reads whichever of --course, --project and --group the
// command defines.
func scopeFromFlags(cmd *cobra.Command) resolve.Scope {
	get := func(name string) string {
		if cmd.Flags().Lookup(name) == nil {
			return ""
		}
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return resolve.Scope{
		Course:  get("course"),
		Project: get("project"),
		Group:   get("group"),
	}
}
