package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"agioctl/pkg/config"
	"agioctl/pkg/logger"
	"agioctl/pkg/match"
	"agioctl/pkg/tui"

	"github.com/spf13/cobra"
)

// appCfg is loaded before any subcommand runs.
var appCfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "agio",
	Short: "A command line interface to autograder.io",
	Long: `agio is a command line interface for course staff using autograder.io.

Courses, projects, groups and submissions can be given by pk, by a
shorthand like "eecs485sp21", "p1" or a uniqname, or chosen interactively
when left out.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		appCfg = cfg

		level := cfg.LogLevel
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			level = "debug"
		}
		logger.InitWriter(cmd.ErrOrStderr(), level, cfg.LogFormat)
		tui.SetAccent(cfg.AccentColor)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Log API requests and responses to stderr")
	rootCmd.PersistentFlags().BoolP("all", "a", false, "Offer courses from every semester, not just current ones")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $AGIO_CONFIG or ~/.agio.yaml)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// printError writes err and, for resolution failures, the records that
// were considered.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, tui.Error("Error: "+err.Error()))

	var mErr *match.Error
	if !errors.As(err, &mErr) || len(mErr.Listing) == 0 {
		return
	}
	switch mErr.Kind {
	case match.AmbiguousMatch:
		fmt.Fprintln(w, "Matches:")
	case match.UnknownAbbreviation, match.UnsupportedFormat:
		fmt.Fprintln(w, "Accepted shortcuts:")
	default:
		fmt.Fprintln(w, "Candidates:")
	}
	for _, line := range mErr.Listing {
		fmt.Fprintf(w, "  %s\n", line)
	}
}
