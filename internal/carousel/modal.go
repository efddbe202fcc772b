package carousel

import "studentnet/internal/dom"

// Modal is the full-size image viewer opened by clicking a slide.
type Modal struct {
	el  *dom.Element
	img *dom.Element
}

// NewModal returns a hidden modal.
func NewModal() *Modal {
	el := dom.NewElement("div", "modal")
	img := dom.NewElement("img")
	el.AppendChild(img)

	m := &Modal{el: el, img: img}
	m.Close()
	return m
}

// Open shows src in the modal.
func (m *Modal) Open(src string) {
	m.img.SetAttribute("src", src)
	m.el.SetStyle("display", "block")
}

// Close hides the modal. The last image stays loaded.
func (m *Modal) Close() {
	m.el.SetStyle("display", "none")
}

// IsOpen reports whether the modal is visible.
func (m *Modal) IsOpen() bool {
	return m.el.Style("display") != "none"
}

// Image returns the src of the last opened image.
func (m *Modal) Image() string {
	src, _ := m.img.Attribute("src")
	return src
}

// Element returns the modal root so it can be placed in a document.
func (m *Modal) Element() *dom.Element {
	return m.el
}
