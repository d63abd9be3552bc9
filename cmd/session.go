package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"agioctl/pkg/autograder"
	"agioctl/pkg/config"
	"agioctl/pkg/resolve"
	"agioctl/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	newPicker = func() resolve.Picker { return tui.NewPicker() }
	now       = time.Now

	terminal = isTerminal
	spin     = func(title string, action func()) error {
		return spinner.New().Title(title).Action(action).Run()
	}
)

// session bundles what every API command needs.
type session struct {
	client   *autograder.Client
	resolver *resolve.Resolver
	stderr   io.Writer
}

func newSession(cmd *cobra.Command) (*session, error) {
	token, err := config.FindToken(appCfg.TokenFile)
	if err != nil {
		if errors.Is(err, config.ErrTokenNotFound) {
			return nil, fmt.Errorf("%w\n  → save the token from %s to ~/%s", err, tokenPage(), config.DefaultTokenFile)
		}
		return nil, err
	}

	client := autograder.NewClient(appCfg.BaseURL, token,
		autograder.WithTimeout(appCfg.Timeout),
		autograder.WithLogger(log.Logger),
	)

	all, _ := cmd.Flags().GetBool("all")
	r := resolve.New(client, newPicker(), resolve.Options{
		AllSemesters: all,
		GroupPrompt:  appCfg.GroupPrompt == config.GroupPromptUniqname,
		Now:          now,
		Logger:       &log.Logger,
	})

	return &session{client: client, resolver: r, stderr: cmd.ErrOrStderr()}, nil
}

func tokenPage() string {
	return appCfg.BaseURL + "web/__apitoken__"
}

// withSpinner runs action behind a spinner when the command's stderr is
// a terminal. If the spinner fails, action still runs exactly once.
func (s *session) withSpinner(title string, action func()) {
	if !terminal(s.stderr) {
		action()
		return
	}
	var once sync.Once
	run := func() { once.Do(action) }
	if err := spin(title, run); err != nil {
		log.Debug().Err(err).Msg("spinner failed, running without it")
		run()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
