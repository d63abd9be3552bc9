package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"agioctl/pkg/autograder"
	"agioctl/pkg/exporter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var deadlinesCmd = &cobra.Command{
	Use:   "deadlines",
	Short: "Export a course's project deadlines to an ICS file",
	Long: `Export the closing time of every project in a course as calendar events.
Use "-o -" to write the calendar to stdout.`,
	Example: "  agio deadlines -c eecs485sp21 -o eecs485.ics",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		courseArg, _ := cmd.Flags().GetString("course")
		output, _ := cmd.Flags().GetString("output")

		course, err := s.resolver.Course(cmd.Context(), courseArg)
		if err != nil {
			return err
		}
		return s.exportDeadlines(cmd.Context(), cmd.OutOrStdout(), course, output)
	},
}

func init() {
	rootCmd.AddCommand(deadlinesCmd)
	deadlinesCmd.Flags().StringP("course", "c", "", "Course pk, shorthand or name")
	deadlinesCmd.Flags().StringP("output", "o", "deadlines.ics", "Output file path, - for stdout")
}

// exportDeadlines writes the calendar to output and reports to out.
func (s *session) exportDeadlines(ctx context.Context, out io.Writer, course autograder.Course, output string) error {
	var projects []autograder.Project
	var err error

	s.withSpinner(fmt.Sprintf("Fetching projects of %s...", course.Name), func() {
		projects, err = s.client.Projects(ctx, course.PK)
	})
	if err != nil {
		return fmt.Errorf("failed to fetch projects: %w", err)
	}

	if output == "-" {
		_, err := exporter.GenerateDeadlinesICS(course, projects, out)
		return err
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	n, err := exporter.GenerateDeadlinesICS(course, projects, file)
	if err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}
	if skipped := len(projects) - n; skipped > 0 {
		log.Warn().Int("projects", skipped).Msg("skipped projects without a closing time")
	}

	fmt.Fprintf(out, "Successfully exported %d deadlines to %s\n", n, output)
	return nil
}
