package ui

import (
	"net/url"
	"strings"

	"studentnet/internal/profile"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ProfilePageModel is the edit-profile page: one tag field per category,
// tab to move between them, ctrl+s to save.
type ProfilePageModel struct {
	form      *profile.Form
	fields    []TagInputModel
	focus     int
	errors    []string
	submitted bool
	cancelled bool
	width     int

	styles Styles
	keys   ProfileKeyMap
	help   help.Model
	logger *zap.Logger
}

// NewProfilePageModel builds one field per bound section and focuses the
// first.
func NewProfilePageModel(form *profile.Form, styles Styles, logger *zap.Logger) ProfilePageModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	title := cases.Title(language.English)

	m := ProfilePageModel{
		form:   form,
		styles: styles,
		keys:   DefaultProfileKeyMap(),
		help:   help.New(),
		logger: logger,
	}
	for _, s := range form.Sections() {
		m.fields = append(m.fields, NewTagInputModel(
			title.String(s.Category.Name), s.Input, s.Container, s.Tags, s.Category.Placeholder, styles))
	}
	if len(m.fields) > 0 {
		m.fields[0].Focus()
	}
	return m
}

// Init implements tea.Model.
func (m ProfilePageModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m ProfilePageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			if err := m.form.Validate(); err != nil {
				m.errors = profile.Messages(err)
				m.logger.Debug("submit rejected", zap.Strings("errors", m.errors))
				return m, nil
			}
			m.errors = nil
			m.submitted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextField):
			return m, m.moveFocus(1)
		case key.Matches(msg, m.keys.PrevField):
			return m, m.moveFocus(-1)
		}
	}

	if len(m.fields) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m *ProfilePageModel) moveFocus(delta int) tea.Cmd {
	n := len(m.fields)
	if n == 0 {
		return nil
	}
	m.fields[m.focus].Blur()
	m.focus = ((m.focus+delta)%n + n) % n
	return m.fields[m.focus].Focus()
}

// View implements tea.Model.
func (m ProfilePageModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Edit profile"))
	b.WriteString("\n\n")
	for _, f := range m.fields {
		b.WriteString(f.View())
		b.WriteString("\n")
	}
	for _, e := range m.errors {
		b.WriteString(m.styles.Error.Render("✗ " + e))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Focus returns the index of the focused field.
func (m ProfilePageModel) Focus() int {
	return m.focus
}

// Field returns the i-th field.
func (m ProfilePageModel) Field(i int) TagInputModel {
	return m.fields[i]
}

// Errors returns the messages of the last rejected submit.
func (m ProfilePageModel) Errors() []string {
	return m.errors
}

// Submitted reports whether the form was saved.
func (m ProfilePageModel) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the user left without saving.
func (m ProfilePageModel) Cancelled() bool {
	return m.cancelled
}

// Values returns the form values that a save submits.
func (m ProfilePageModel) Values() url.Values {
	return m.form.Values()
}
