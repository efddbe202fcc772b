package ui

import (
	"strings"

	"studentnet/internal/dom"
	"studentnet/internal/taglist"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TagInputModel is one tag field: a text line bound to a document input and
// the chips its controller renders into the container.
type TagInputModel struct {
	label     string
	input     textinput.Model
	el        *dom.Element
	container *dom.Element
	tags      *taglist.Controller
	selected  int
	focused   bool
	styles    Styles
	keys      ProfileKeyMap
}

// NewTagInputModel binds a text line to el. Key presses are forwarded to el
// as input and keydown events so tags reaches them the way it would in a
// browser.
func NewTagInputModel(label string, el, container *dom.Element, tags *taglist.Controller, placeholder string, styles Styles) TagInputModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = placeholder
	ti.Width = 40

	return TagInputModel{
		label:     label,
		input:     ti,
		el:        el,
		container: container,
		tags:      tags,
		selected:  -1,
		styles:    styles,
		keys:      DefaultProfileKeyMap(),
	}
}

// Focus focuses the text line.
func (m *TagInputModel) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur removes focus and clears any chip selection.
func (m *TagInputModel) Blur() {
	m.focused = false
	m.selected = -1
	m.input.Blur()
}

// Focused reports whether the field has focus.
func (m TagInputModel) Focused() bool {
	return m.focused
}

// Value returns the uncommitted text.
func (m TagInputModel) Value() string {
	return m.input.Value()
}

// Selected returns the index of the highlighted chip, or -1.
func (m TagInputModel) Selected() int {
	return m.selected
}

// Tags returns the bound controller.
func (m TagInputModel) Tags() *taglist.Controller {
	return m.tags
}

// Update handles key presses while focused.
func (m TagInputModel) Update(msg tea.Msg) (TagInputModel, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		empty := m.input.Value() == ""
		chips := chipElements(m.container)

		switch {
		case key.Matches(msg, m.keys.Backspace):
			if m.selected >= 0 {
				m.removeSelected(chips)
				return m, nil
			}
			m.el.SetValue(m.input.Value())
			m.el.Dispatch(dom.Event{Kind: dom.EventKeyDown, Key: dom.KeyBackspace})
			if empty {
				return m, nil
			}

		case key.Matches(msg, m.keys.ChipLeft) && empty && len(chips) > 0:
			switch {
			case m.selected < 0:
				m.selected = len(chips) - 1
			case m.selected > 0:
				m.selected--
			}
			return m, nil

		case key.Matches(msg, m.keys.ChipRight) && m.selected >= 0:
			m.selected++
			if m.selected >= len(chips) {
				m.selected = -1
			}
			return m, nil

		case key.Matches(msg, m.keys.RemoveChip) && m.selected >= 0:
			m.removeSelected(chips)
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if after := m.input.Value(); after != before {
		m.selected = -1
		m.el.SetValue(after)
		m.el.Dispatch(dom.Event{Kind: dom.EventInput})
		if v := m.el.Value(); v != after {
			m.input.SetValue(v)
			m.input.CursorEnd()
		}
	}
	return m, cmd
}

func (m *TagInputModel) removeSelected(chips []*dom.Element) {
	if m.selected < 0 || m.selected >= len(chips) {
		m.selected = -1
		return
	}
	if icons := chips[m.selected].FindByClass("close"); len(icons) > 0 {
		icons[0].Click()
	}
	if remaining := len(chips) - 1; m.selected >= remaining {
		m.selected = remaining - 1
	}
}

// View renders the label, chips and text line.
func (m TagInputModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.label))
	b.WriteString("\n")
	b.WriteString(RenderChips(m.container, m.styles, m.selected))
	b.WriteString("\n")
	b.WriteString(m.input.View())

	box := m.styles.Blurred
	if m.focused {
		box = m.styles.Focused
	}
	return box.Render(b.String())
}
