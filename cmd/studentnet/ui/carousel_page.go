package ui

import (
	"errors"
	"strings"

	"studentnet/internal/carousel"
	"studentnet/internal/dom"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// ManifestReloadedMsg carries slides re-read from an edited manifest.
type ManifestReloadedMsg struct {
	Slides []carousel.Slide
}

// CarouselPageModel is the slideshow page. Keys are turned into clicks on
// the slideshow's arrows, dots and images.
type CarouselPageModel struct {
	target   *dom.Element
	carousel *carousel.Controller
	modal    *carousel.Modal
	status   string
	err      error
	width    int

	styles Styles
	keys   CarouselKeyMap
	help   help.Model
	logger *zap.Logger
}

// NewCarouselPageModel renders slides into a fresh page.
func NewCarouselPageModel(slides []carousel.Slide, styles Styles, logger *zap.Logger) (CarouselPageModel, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := CarouselPageModel{
		modal:  carousel.NewModal(),
		styles: styles,
		keys:   DefaultCarouselKeyMap(),
		help:   help.New(),
		logger: logger,
	}
	if err := m.load(slides, 0); err != nil {
		return CarouselPageModel{}, err
	}
	return m, nil
}

func (m *CarouselPageModel) load(slides []carousel.Slide, index int) error {
	target := dom.NewElement("body")
	c, err := carousel.New(target, slides, carousel.Options{
		Viewer: m.modal,
		Logger: m.logger,
	})
	if err != nil {
		return err
	}
	if index > 0 && index < c.Len() {
		if err := c.JumpTo(index); err != nil {
			return err
		}
	}
	target.AppendChild(m.modal.Element())
	m.target = target
	m.carousel = c
	return nil
}

// Init implements tea.Model.
func (m CarouselPageModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m CarouselPageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case ManifestReloadedMsg:
		if err := m.load(msg.Slides, m.carousel.Index()); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.status = "manifest reloaded"
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		if m.modal.IsOpen() {
			switch {
			case key.Matches(msg, m.keys.Close):
				m.modal.Close()
			case msg.String() == "q" || msg.String() == "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.carousel.PrevButton().Click()
		case key.Matches(msg, m.keys.Next):
			m.carousel.NextButton().Click()
		case key.Matches(msg, m.keys.Open):
			m.carousel.Image(m.carousel.Index()).Click()
		case key.Matches(msg, m.keys.Jump):
			i := int(msg.Runes[0] - '1')
			if dot := m.carousel.Dot(i); dot != nil {
				dot.Click()
				m.err = nil
			} else {
				m.err = m.carousel.JumpTo(i)
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m CarouselPageModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Photos"))
	b.WriteString("\n\n")
	if m.modal.IsOpen() {
		b.WriteString(RenderModal(m.modal.Element(), m.styles))
	} else {
		b.WriteString(RenderSlideshow(m.carousel.Root(), m.styles))
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		msg := m.err.Error()
		if errors.Is(m.err, carousel.ErrInvalidIndex) {
			msg = "no such slide"
		}
		b.WriteString(m.styles.Error.Render(msg))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Carousel returns the current slideshow controller.
func (m CarouselPageModel) Carousel() *carousel.Controller {
	return m.carousel
}

// Modal returns the image viewer.
func (m CarouselPageModel) Modal() *carousel.Modal {
	return m.modal
}

// Err returns the last navigation or reload error.
func (m CarouselPageModel) Err() error {
	return m.err
}
