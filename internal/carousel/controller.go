// Package carousel implements the profile photo slideshow: one visible slide
// out of N with prev/next cycling, dot indicators and an image hand-off to a
// full-size viewer.
package carousel

import (
	"errors"
	"fmt"

	"studentnet/internal/dom"

	"go.uber.org/zap"
)

var (
	// ErrInvalidIndex is returned by JumpTo for an index outside [0, N).
	ErrInvalidIndex = errors.New("invalid slide index")
	// ErrNoSlides is returned when a carousel is built without slides.
	ErrNoSlides = errors.New("carousel requires at least one slide")
)

// Slide is one image and its caption.
type Slide struct {
	ImageURL string `yaml:"image"`
	Caption  string `yaml:"caption"`
}

// RenderTarget receives the carousel markup.
type RenderTarget interface {
	AppendChild(child *dom.Element)
}

// Viewer opens a single image full size.
type Viewer interface {
	Open(imageURL string)
}

// Options configures a carousel.
type Options struct {
	Viewer Viewer
	Logger *zap.Logger
}

// Controller owns the current-index cursor of one carousel.
type Controller struct {
	slides []Slide
	index  int
	viewer Viewer
	logger *zap.Logger

	root       *dom.Element
	slideEls   []*dom.Element
	dots       []*dom.Element
	prevButton *dom.Element
	nextButton *dom.Element
}

// New builds the carousel markup into target and shows the first slide.
func New(target RenderTarget, slides []Slide, opts Options) (*Controller, error) {
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Controller{
		slides: append([]Slide(nil), slides...),
		viewer: opts.Viewer,
		logger: logger,
	}
	c.build()
	target.AppendChild(c.root)
	c.Render()

	c.logger.Debug("carousel built", zap.Int("slides", len(c.slides)))
	return c, nil
}

// build lays out:
//
//	div.slideshow
//	  div.slideshow-container.fade-left
//	    div.slide-img.fade.fade-right   (one per slide: numbertext, img, caption-text)
//	    a.prev, a.next
//	  div.dots
//	    span.dot                        (one per slide)
func (c *Controller) build() {
	n := len(c.slides)
	c.root = dom.NewElement("div", "slideshow")

	container := dom.NewElement("div", "slideshow-container", "fade-left")
	for i, s := range c.slides {
		slide := dom.NewElement("div", "slide-img", "fade", "fade-right")

		number := dom.NewElement("div", "numbertext")
		number.SetText(fmt.Sprintf("%d / %d", i+1, n))
		slide.AppendChild(number)

		img := dom.NewElement("img")
		img.SetAttribute("src", s.ImageURL)
		img.SetStyle("width", "100%")
		src := s.ImageURL
		img.On(dom.EventClick, func(dom.Event) {
			c.open(src)
		})
		slide.AppendChild(img)

		caption := dom.NewElement("div", "caption-text")
		caption.SetText(s.Caption)
		slide.AppendChild(caption)

		container.AppendChild(slide)
		c.slideEls = append(c.slideEls, slide)
	}

	c.prevButton = dom.NewElement("a", "prev")
	c.prevButton.SetText("❮")
	c.prevButton.On(dom.EventClick, func(dom.Event) { c.Prev() })
	container.AppendChild(c.prevButton)

	c.nextButton = dom.NewElement("a", "next")
	c.nextButton.SetText("❯")
	c.nextButton.On(dom.EventClick, func(dom.Event) { c.Next() })
	container.AppendChild(c.nextButton)

	c.root.AppendChild(container)

	dots := dom.NewElement("div", "dots")
	dots.SetStyle("text-align", "center")
	for i := range c.slides {
		dot := dom.NewElement("span", "dot")
		idx := i
		dot.On(dom.EventClick, func(dom.Event) {
			// Dots only exist for valid indices.
			_ = c.JumpTo(idx)
		})
		dots.AppendChild(dot)
		c.dots = append(c.dots, dot)
	}
	c.root.AppendChild(dots)
}

// Next advances to the following slide, wrapping from the last to the first.
func (c *Controller) Next() {
	c.index = floorMod(c.index+1, len(c.slides))
	c.Render()
}

// Prev steps back one slide, wrapping from the first to the last.
func (c *Controller) Prev() {
	c.index = floorMod(c.index-1, len(c.slides))
	c.Render()
}

// JumpTo shows slide i. Out-of-range indices are rejected and leave the
// state unchanged.
func (c *Controller) JumpTo(i int) error {
	if i < 0 || i >= len(c.slides) {
		c.logger.Debug("jump rejected", zap.Int("index", i), zap.Int("slides", len(c.slides)))
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, i, len(c.slides))
	}
	c.index = i
	c.Render()
	return nil
}

// Render shows exactly the current slide and marks exactly its dot active.
func (c *Controller) Render() {
	for i, s := range c.slideEls {
		if i == c.index {
			s.SetStyle("display", "block")
		} else {
			s.SetStyle("display", "none")
		}
	}
	for i, d := range c.dots {
		if i == c.index {
			d.AddClass("active")
		} else {
			d.RemoveClass("active")
		}
	}
}

// Index returns the current slide index.
func (c *Controller) Index() int {
	return c.index
}

// Len returns the number of slides.
func (c *Controller) Len() int {
	return len(c.slides)
}

// Current returns the visible slide.
func (c *Controller) Current() Slide {
	return c.slides[c.index]
}

// Slides returns a copy of the slides.
func (c *Controller) Slides() []Slide {
	return append([]Slide(nil), c.slides...)
}

// Root returns the outermost carousel element.
func (c *Controller) Root() *dom.Element { return c.root }

// SlideElement returns the element for slide i, or nil when out of range.
func (c *Controller) SlideElement(i int) *dom.Element {
	if i < 0 || i >= len(c.slideEls) {
		return nil
	}
	return c.slideEls[i]
}

// Dot returns the indicator for slide i, or nil when out of range.
func (c *Controller) Dot(i int) *dom.Element {
	if i < 0 || i >= len(c.dots) {
		return nil
	}
	return c.dots[i]
}

// PrevButton returns the backward affordance.
func (c *Controller) PrevButton() *dom.Element { return c.prevButton }

// NextButton returns the forward affordance.
func (c *Controller) NextButton() *dom.Element { return c.nextButton }

// Image returns the img element of slide i, or nil when out of range.
func (c *Controller) Image(i int) *dom.Element {
	s := c.SlideElement(i)
	if s == nil {
		return nil
	}
	for _, child := range s.Children() {
		if child.Tag() == "img" {
			return child
		}
	}
	return nil
}

func (c *Controller) open(src string) {
	if c.viewer == nil {
		return
	}
	c.logger.Debug("opening image", zap.String("src", src))
	c.viewer.Open(src)
}

// floorMod returns i mod n in [0, n) for any i and n > 0. Go's % keeps the
// sign of the dividend, so -1 % 4 is -1.
func floorMod(i, n int) int {
	return ((i % n) + n) % n
}
