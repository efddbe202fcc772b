package ui

import (
	"fmt"
	"strings"

	"studentnet/internal/dom"

	"github.com/charmbracelet/lipgloss"
)

// chipElements returns the chip wrappers rendered into container.
func chipElements(container *dom.Element) []*dom.Element {
	var chips []*dom.Element
	for _, child := range container.Children() {
		if child.HasClass("labels") {
			chips = append(chips, child)
		}
	}
	return chips
}

// chipToken returns the colour token of a chip wrapper, the class that is
// neither "ui" nor "labels".
func chipToken(chip *dom.Element) string {
	for _, c := range chip.Classes() {
		if c != "ui" && c != "labels" {
			return c
		}
	}
	return ""
}

// RenderChips draws the chips of container on one line. selected is the
// index of the highlighted chip or -1.
func RenderChips(container *dom.Element, styles Styles, selected int) string {
	chips := chipElements(container)
	if len(chips) == 0 {
		return styles.Muted.Render("no tags yet")
	}

	parts := make([]string, 0, len(chips))
	for i, chip := range chips {
		style := styles.ChipStyle(chipToken(chip))
		if i == selected {
			style = style.Inherit(styles.Selected)
		}
		parts = append(parts, style.Render(chip.TextContent()+" ×"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderSlideshow draws the visible slide, the arrows, and the dot row of a
// slideshow root element.
func RenderSlideshow(root *dom.Element, styles Styles) string {
	var visible *dom.Element
	for _, s := range root.FindByClass("slide-img") {
		if s.Style("display") == "block" {
			visible = s
			break
		}
	}

	var body strings.Builder
	if visible != nil {
		if nt := visible.FindByClass("numbertext"); len(nt) > 0 {
			body.WriteString(styles.NumberText.Render(nt[0].Text()))
			body.WriteString("\n")
		}
		imgs := visible.Find(func(e *dom.Element) bool { return e.Tag() == "img" })
		if len(imgs) > 0 {
			src, _ := imgs[0].Attribute("src")
			body.WriteString(styles.Body.Render(fmt.Sprintf("[ %s ]", src)))
			body.WriteString("\n")
		}
		if captions := visible.FindByClass("caption-text"); len(captions) > 0 && captions[0].Text() != "" {
			body.WriteString(styles.Caption.Render(captions[0].Text()))
		}
	}

	slide := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.Arrow.Render("❮ "),
		styles.Slide.Render(strings.TrimRight(body.String(), "\n")),
		styles.Arrow.Render(" ❯"),
	)

	var dots []string
	for _, d := range root.FindByClass("dot") {
		if d.HasClass("active") {
			dots = append(dots, styles.DotActive.Render("●"))
		} else {
			dots = append(dots, styles.Dot.Render("○"))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Center, slide, strings.Join(dots, " "))
}

// RenderModal draws the full-size viewer box for the modal element.
func RenderModal(modal *dom.Element, styles Styles) string {
	src := ""
	if imgs := modal.Find(func(e *dom.Element) bool { return e.Tag() == "img" }); len(imgs) > 0 {
		src, _ = imgs[0].Attribute("src")
	}
	return styles.Modal.Render(styles.Title.Render("Viewing") + "\n" + styles.Body.Render(src))
}
