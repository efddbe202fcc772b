// Package taglist implements the free-text tag input used for profile
// hobbies and interests. Raw text typed into a source field is split on
// commas, normalized, rendered as removable chips and mirrored into a hidden
// field holding the comma-joined tags.
package taglist

import (
	"strings"

	"studentnet/internal/dom"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Tag is one committed, normalized tag. Text values may repeat; ID does not.
type Tag struct {
	ID   uuid.UUID
	Text string
}

// EventSource is the raw text field the controller listens to.
type EventSource interface {
	On(kind dom.EventKind, h dom.Handler)
	Value() string
	SetValue(v string)
}

// RenderTarget receives chip elements and the hidden field.
type RenderTarget interface {
	AppendChild(child *dom.Element)
	RemoveChild(child *dom.Element) bool
}

// Options configures one tag list instance.
type Options struct {
	// FieldName is the name of the hidden field submitted with the form.
	FieldName string
	// Style is the colour token added to every chip (e.g. "teal").
	Style string
	Logger *zap.Logger
}

// Controller owns the tag collection for a single widget instance.
type Controller struct {
	src    EventSource
	target RenderTarget
	opts   Options
	logger *zap.Logger

	tags  []Tag
	chips map[uuid.UUID]*dom.Element
	field *dom.Element
}

// New binds a controller to src and target. The hidden field is appended to
// target immediately.
func New(src EventSource, target RenderTarget, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	field := dom.NewElement("input")
	field.SetAttribute("type", "hidden")
	field.SetAttribute("name", opts.FieldName)

	c := &Controller{
		src:    src,
		target: target,
		opts:   opts,
		logger: logger.With(zap.String("field", opts.FieldName)),
		chips:  make(map[uuid.UUID]*dom.Element),
		field:  field,
	}
	target.AppendChild(field)

	src.On(dom.EventInput, func(dom.Event) {
		c.OnRawInputChanged(c.src.Value())
	})
	src.On(dom.EventKeyDown, func(ev dom.Event) {
		if ev.Key == dom.KeyBackspace {
			c.OnBackspaceAtEmptyInput()
		}
	})

	return c
}

// OnRawInputChanged commits every segment of v once it contains a
// delimiter, then clears the source field. Without a delimiter the user is
// still typing and nothing happens.
func (c *Controller) OnRawInputChanged(v string) {
	if !strings.Contains(v, Delimiter) {
		return
	}
	for _, text := range Split(v) {
		c.add(text)
	}
	c.src.SetValue("")
	c.refresh()
}

// Add normalizes raw and appends it as a single tag. It reports false when
// nothing usable remains after normalization.
func (c *Controller) Add(raw string) (Tag, bool) {
	text := Normalize(raw)
	if text == "" {
		return Tag{}, false
	}
	tag := c.add(text)
	c.refresh()
	return tag, true
}

// OnBackspaceAtEmptyInput removes the last tag when the source field is
// empty.
func (c *Controller) OnBackspaceAtEmptyInput() {
	if c.src.Value() != "" || len(c.tags) == 0 {
		return
	}
	c.RemoveTag(c.tags[len(c.tags)-1].ID)
}

// RemoveTag removes the tag with the given id and its chip. Unknown ids are
// ignored.
func (c *Controller) RemoveTag(id uuid.UUID) {
	for i, t := range c.tags {
		if t.ID != id {
			continue
		}
		c.tags = append(c.tags[:i], c.tags[i+1:]...)
		if chip, ok := c.chips[id]; ok {
			c.target.RemoveChild(chip)
			delete(c.chips, id)
		}
		c.logger.Debug("tag removed", zap.String("text", t.Text), zap.Int("remaining", len(c.tags)))
		c.refresh()
		return
	}
}

// Tags returns the committed tags in display order.
func (c *Controller) Tags() []Tag {
	out := make([]Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// Texts returns the committed tag texts in display order.
func (c *Controller) Texts() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.Text
	}
	return out
}

// Len returns the number of committed tags.
func (c *Controller) Len() int {
	return len(c.tags)
}

// Serialized returns the comma-joined tag texts.
func (c *Controller) Serialized() string {
	return c.field.Value()
}

// Field returns the hidden form field owned by the controller.
func (c *Controller) Field() *dom.Element {
	return c.field
}

// FieldName returns the name of the hidden field.
func (c *Controller) FieldName() string {
	return c.opts.FieldName
}

// Chip returns the rendered chip for id, or nil.
func (c *Controller) Chip(id uuid.UUID) *dom.Element {
	return c.chips[id]
}

func (c *Controller) add(text string) Tag {
	tag := Tag{ID: uuid.New(), Text: text}
	c.tags = append(c.tags, tag)

	chip := c.renderChip(tag)
	c.chips[tag.ID] = chip
	c.target.AppendChild(chip)

	c.logger.Debug("tag added", zap.String("text", text), zap.Int("count", len(c.tags)))
	return tag
}

// renderChip builds div.ui.labels.<style> > div.ui.label > i.close.icon.
// The close icon removes the tag by id so later removals cannot shift it.
func (c *Controller) renderChip(tag Tag) *dom.Element {
	chip := dom.NewElement("div", "ui", "labels", c.opts.Style)
	chip.SetAttribute("data-tag-id", tag.ID.String())

	label := dom.NewElement("div", "ui", "label")
	label.SetText(tag.Text)
	chip.AppendChild(label)

	closeBtn := dom.NewElement("i", "close", "icon")
	id := tag.ID
	closeBtn.On(dom.EventClick, func(dom.Event) {
		c.RemoveTag(id)
	})
	label.AppendChild(closeBtn)

	return chip
}

func (c *Controller) refresh() {
	c.field.SetValue(strings.Join(c.Texts(), Delimiter))
}
