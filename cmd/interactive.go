package cmd

import (
	"context"

	"agioctl/pkg/autograder"
	"agioctl/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to pick a course, project, group or submission from menus.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("config")

		return tui.RunTUI(cmd.Context(), tui.Menu{
			Resolver: s.resolver,
			Show: func(v any) error {
				return printDetail(cmd.OutOrStdout(), v)
			},
			ExportDeadlines: func(ctx context.Context, course autograder.Course, output string) error {
				return s.exportDeadlines(ctx, cmd.OutOrStdout(), course, output)
			},
			ConfigPath: path,
		})
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
