package tui

import (
	"fmt"
	"strings"

	"agioctl/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI(path string) error {
	for {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Group Prompt Mode", "group_prompt"),
						huh.NewOption("Set Log Level", "log_level"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg, path)
		case "group_prompt":
			err = runSetChoiceTUI(cfg, path, "group_prompt", "How should groups be chosen interactively?",
				huh.NewOption("Pick from a list of groups", config.GroupPromptSelect),
				huh.NewOption("Type a uniqname (with completion)", config.GroupPromptUniqname),
			)
		case "log_level":
			err = runSetChoiceTUI(cfg, path, "log_level", "Minimum level of diagnostics on stderr",
				huh.NewOption("debug", "debug"),
				huh.NewOption("info", "info"),
				huh.NewOption("warn", "warn"),
				huh.NewOption("error", "error"),
			)
		case "view":
			fmt.Println(accentStyle.Render("\n--- Current Configuration ---"))
			fmt.Print(describe(cfg))
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func describe(cfg *config.AppConfig) string {
	accent := cfg.AccentColor
	if accent == "" {
		accent = "default"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Base URL: %s\n", cfg.BaseURL)
	fmt.Fprintf(&b, "Token File: %s\n", cfg.TokenFile)
	fmt.Fprintf(&b, "Timeout: %s\n", cfg.Timeout)
	fmt.Fprintf(&b, "Log Level: %s (%s)\n", cfg.LogLevel, cfg.LogFormat)
	fmt.Fprintf(&b, "Group Prompt: %s\n", cfg.GroupPrompt)
	fmt.Fprintf(&b, "Accent Color: %s\n", accent)
	return b.String()
}

func runSetChoiceTUI(cfg *config.AppConfig, path, key, title string, options ...huh.Option[string]) error {
	var selected string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if err := cfg.Set(key, selected); err != nil {
		return err
	}
	if err := config.Save(cfg, path); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ %s changed to: %s\n", key, selected)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func validateHex(str string) error {
	if len(str) != 7 || !strings.HasPrefix(str, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	return nil
}

func runSetThemeTUI(cfg *config.AppConfig, path string) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for agio").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Maize", colorBlock(DefaultAccent)), DefaultAccent),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #00274C").
					Placeholder("#").
					Value(&hexInput).
					Validate(validateHex),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		input = hexInput
	}

	cfg.AccentColor = input
	if err := config.Save(cfg, path); err != nil {
		return err
	}
	SetAccent(input)

	fmt.Println(accentStyle.Render("\n✅ Beautiful! The theme color is now saved.\n"))
	return nil
}
