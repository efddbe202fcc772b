// Package dom provides a small in-memory element tree that stands in for the
// browser document. Widgets append, remove and restyle elements here and
// receive input through synchronous event dispatch, which keeps them testable
// without a real UI surface.
package dom

import (
	"sort"
	"strings"
)

// Element is a node in the tree. The zero value is not usable; use NewElement.
type Element struct {
	tag       string
	attrs     map[string]string
	classes   []string
	style     map[string]string
	text      string
	value     string
	parent    *Element
	children  []*Element
	listeners map[EventKind][]Handler
}

// NewElement creates a detached element with the given tag and classes.
func NewElement(tag string, classes ...string) *Element {
	e := &Element{
		tag:       strings.ToLower(tag),
		attrs:     make(map[string]string),
		style:     make(map[string]string),
		listeners: make(map[EventKind][]Handler),
	}
	e.AddClass(classes...)
	return e
}

// Tag returns the lower-cased tag name.
func (e *Element) Tag() string {
	return e.tag
}

// SetAttribute sets an attribute. "class" and "value" are routed to the
// class list and the input value.
func (e *Element) SetAttribute(name, value string) {
	switch name {
	case "class":
		e.classes = nil
		e.AddClass(strings.Fields(value)...)
	case "value":
		e.value = value
	case "style":
		e.style = parseStyle(value)
	default:
		e.attrs[name] = value
	}
}

// Attribute returns the attribute value and whether it was set.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Name is shorthand for the "name" attribute.
func (e *Element) Name() string {
	return e.attrs["name"]
}

// ID is shorthand for the "id" attribute.
func (e *Element) ID() string {
	return e.attrs["id"]
}

// AddClass adds classes that are not already present.
func (e *Element) AddClass(classes ...string) {
	for _, c := range classes {
		if c == "" || e.HasClass(c) {
			continue
		}
		e.classes = append(e.classes, c)
	}
}

// RemoveClass removes classes; absent classes are ignored.
func (e *Element) RemoveClass(classes ...string) {
	for _, c := range classes {
		for i, have := range e.classes {
			if have == c {
				e.classes = append(e.classes[:i], e.classes[i+1:]...)
				break
			}
		}
	}
}

// HasClass reports whether the class list contains c.
func (e *Element) HasClass(c string) bool {
	for _, have := range e.classes {
		if have == c {
			return true
		}
	}
	return false
}

// Classes returns a copy of the class list in insertion order.
func (e *Element) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// SetStyle sets one inline style property.
func (e *Element) SetStyle(prop, value string) {
	e.style[prop] = value
}

// Style returns an inline style property or "".
func (e *Element) Style(prop string) string {
	return e.style[prop]
}

// StyleString renders the inline style sorted by property name.
func (e *Element) StyleString() string {
	props := make([]string, 0, len(e.style))
	for p := range e.style {
		props = append(props, p)
	}
	sort.Strings(props)
	parts := make([]string, 0, len(props))
	for _, p := range props {
		parts = append(parts, p+": "+e.style[p])
	}
	return strings.Join(parts, "; ")
}

// SetText replaces the element's own text.
func (e *Element) SetText(s string) {
	e.text = s
}

// Text returns the element's own text, excluding descendants.
func (e *Element) Text() string {
	return e.text
}

// TextContent returns the element's text followed by that of its descendants.
func (e *Element) TextContent() string {
	var sb strings.Builder
	e.walk(func(n *Element) bool {
		sb.WriteString(n.text)
		return true
	})
	return sb.String()
}

// Value returns the current value of an input element.
func (e *Element) Value() string {
	return e.value
}

// SetValue replaces the value without dispatching an input event.
func (e *Element) SetValue(v string) {
	e.value = v
}

// AppendChild attaches child as the last child, detaching it from any
// previous parent first.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child == e {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child and reports whether it was a child of e.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Remove detaches e from its parent, if any.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// Parent returns the parent element or nil.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// FirstElementChild returns the first child or nil.
func (e *Element) FirstElementChild() *Element {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[0]
}

// Index returns the position of e among its parent's children, or -1 when
// detached.
func (e *Element) Index() int {
	if e.parent == nil {
		return -1
	}
	for i, c := range e.parent.children {
		if c == e {
			return i
		}
	}
	return -1
}

// On registers a handler for events of the given kind.
func (e *Element) On(kind EventKind, h Handler) {
	if h == nil {
		return
	}
	e.listeners[kind] = append(e.listeners[kind], h)
}

// Dispatch delivers ev to e's handlers in registration order and returns
// once all of them have run. A zero Target is filled in with e.
func (e *Element) Dispatch(ev Event) {
	if ev.Target == nil {
		ev.Target = e
	}
	// Handlers may register further handlers; only the current set runs.
	hs := append([]Handler(nil), e.listeners[ev.Kind]...)
	for _, h := range hs {
		h(ev)
	}
}

// Click dispatches a click event on e.
func (e *Element) Click() {
	e.Dispatch(Event{Kind: EventClick})
}

// Find returns all descendants (excluding e) matching pred, in document order.
func (e *Element) Find(pred func(*Element) bool) []*Element {
	var out []*Element
	for _, c := range e.children {
		c.walk(func(n *Element) bool {
			if pred(n) {
				out = append(out, n)
			}
			return true
		})
	}
	return out
}

// FindByClass returns all descendants carrying class c.
func (e *Element) FindByClass(c string) []*Element {
	return e.Find(func(n *Element) bool { return n.HasClass(c) })
}

// walk visits e and its descendants depth-first until fn returns false.
func (e *Element) walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

func parseStyle(s string) map[string]string {
	out := make(map[string]string)
	for _, decl := range strings.Split(s, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		if prop == "" {
			continue
		}
		out[prop] = strings.TrimSpace(val)
	}
	return out
}
