package tui

import (
	"context"
	"fmt"

	"agioctl/pkg/autograder"
	"agioctl/pkg/resolve"

	"github.com/charmbracelet/huh"
)

// Menu connects the main menu to the command implementations.
type Menu struct {
	Resolver *resolve.Resolver
	// Show prints one resolved record.
	Show func(v any) error
	// ExportDeadlines writes the deadline calendar of course to path.
	ExportDeadlines func(ctx context.Context, course autograder.Course, path string) error
	ConfigPath      string
}

// RunTUI launches the main menu interactive form experience
func RunTUI(ctx context.Context, m Menu) error {
	var action string

	initialForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to look up?").
				Options(
					huh.NewOption("🎓 Course", "course"),
					huh.NewOption("📁 Project", "project"),
					huh.NewOption("👥 Group", "group"),
					huh.NewOption("📨 Latest Submission", "submission"),
					huh.NewOption("📅 Export Deadlines", "deadlines"),
					huh.NewOption("⚙️ Settings", "config"),
				).
				Value(&action),
		),
	).WithTheme(GetTheme())

	if err := initialForm.Run(); err != nil {
		return err
	}

	var (
		record any
		err    error
	)
	switch action {
	case "course":
		record, err = m.Resolver.Course(ctx, "")
	case "project":
		record, err = m.Resolver.Project(ctx, "", resolve.Scope{})
	case "group":
		record, err = m.Resolver.Group(ctx, "", resolve.Scope{})
	case "submission":
		record, err = m.Resolver.Submission(ctx, resolve.Last, resolve.Scope{})
	case "deadlines":
		return runDeadlinesTUI(ctx, m)
	case "config":
		return RunConfigTUI(m.ConfigPath)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
	if err != nil {
		return err
	}
	return m.Show(record)
}

func runDeadlinesTUI(ctx context.Context, m Menu) error {
	course, err := m.Resolver.Course(ctx, "")
	if err != nil {
		return err
	}

	path := "deadlines.ics"
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Where should the calendar be saved?").
				Value(&path).
				Validate(requireText),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}
	return m.ExportDeadlines(ctx, course, path)
}
