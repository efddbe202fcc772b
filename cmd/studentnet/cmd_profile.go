package main

import (
	"fmt"
	"io"
	"net/url"

	"studentnet/cmd/studentnet/ui"
	"studentnet/internal/logging"
	"studentnet/internal/profile"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	prefillHobbies   []string
	prefillInterests []string
	profileNoTUI     bool
)

// profileCmd runs the edit-profile page
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Edit hobbies and interests",
	Long: `Opens the edit-profile page with one tag field per configured category.

Stored values can be passed in with --hobbies and --interests. On save the
form values are printed url-encoded, the way the page submits them.

Example:
  studentnet profile --hobbies chess,"rock climbing"`,
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().StringSliceVar(&prefillHobbies, "hobbies", nil, "Stored hobbies to start with")
	profileCmd.Flags().StringSliceVar(&prefillInterests, "interests", nil, "Stored interests to start with")
	profileCmd.Flags().BoolVar(&profileNoTUI, "no-tui", false, "Print the prefilled form without opening the editor")
}

func runProfile(cmd *cobra.Command, args []string) error {
	form, err := profile.NewDefaultForm(cfg, logging.Get(logging.CategoryProfile))
	if err != nil {
		return err
	}
	if err := prefill(form); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if profileNoTUI {
		return printSubmission(out, form.Values(), form.Validate())
	}

	model := ui.NewProfilePageModel(form, ui.NewStyles(ui.DetectTheme(cfg.UI.DarkMode)), logging.Get(logging.CategoryUI))
	opts := append([]tea.ProgramOption{tea.WithContext(cmd.Context())}, programOptions...)
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return fmt.Errorf("profile editor failed: %w", err)
	}

	page := final.(ui.ProfilePageModel)
	if !page.Submitted() {
		fmt.Fprintln(out, "Cancelled, nothing saved.")
		return nil
	}
	return printSubmission(out, page.Values(), nil)
}

func prefill(form *profile.Form) error {
	stored := map[string][]string{
		"hobbies":   prefillHobbies,
		"interests": prefillInterests,
	}
	for name, values := range stored {
		if len(values) == 0 {
			continue
		}
		if err := form.Prefill(name, values); err != nil {
			return err
		}
	}
	return nil
}

func printSubmission(w io.Writer, values url.Values, validation error) error {
	if msgs := profile.Messages(validation); len(msgs) > 0 {
		for _, m := range msgs {
			fmt.Fprintln(w, "✗", m)
		}
		return fmt.Errorf("profile not saved: %w", validation)
	}
	fmt.Fprintln(w, values.Encode())
	return nil
}
