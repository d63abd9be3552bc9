package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// Picker asks the user through huh forms on the terminal.
type Picker struct {
	// Height caps the visible rows of a selection list.
	Height int
}

func NewPicker() *Picker {
	return &Picker{Height: 12}
}

// PickOne shows labels as a filterable list and returns the chosen index.
func (p *Picker) PickOne(title string, labels []string) (int, error) {
	var selected int

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Description("Enter = confirm. Type / to filter.").
				Options(selectOptions(labels)...).
				Value(&selected).
				Height(min(p.Height, len(labels)+2)),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return 0, err
	}
	return selected, nil
}

// Prompt asks for free text, completing from suggestions.
func (p *Picker) Prompt(title string, suggestions []string) (string, error) {
	var input string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Tab = accept suggestion.").
				Suggestions(suggestions).
				Value(&input).
				Validate(requireText),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func selectOptions(labels []string) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(labels))
	for i, label := range labels {
		opts = append(opts, huh.NewOption(label, i))
	}
	return opts
}

func requireText(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("please enter a value")
	}
	return nil
}
