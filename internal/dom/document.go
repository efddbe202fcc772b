package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document owns a root element and offers the lookups widgets use to find
// the elements they bind to.
type Document struct {
	root *Element
}

// NewDocument returns an empty document with a bare <body> root.
func NewDocument() *Document {
	return &Document{root: NewElement("body")}
}

// Parse builds a document from HTML markup. Only the <body> subtree is kept;
// comments and doctype nodes are dropped and text is attached to the
// enclosing element.
func Parse(r io.Reader) (*Document, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	body := findBody(node)
	if body == nil {
		return NewDocument(), nil
	}

	root := NewElement("body")
	copyAttrs(root, body)
	convertChildren(root, body)
	return &Document{root: root}, nil
}

// Root returns the document root.
func (d *Document) Root() *Element {
	return d.root
}

// GetElementsByName returns elements whose name attribute equals name.
func (d *Document) GetElementsByName(name string) []*Element {
	return d.root.Find(func(e *Element) bool { return e.Name() == name })
}

// GetElementByID returns the first element with the given id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	found := d.root.Find(func(e *Element) bool { return e.ID() == id })
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// FindByClass returns all elements carrying class c.
func (d *Document) FindByClass(c string) []*Element {
	return d.root.FindByClass(c)
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

func convertChildren(dst *Element, src *html.Node) {
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			el := NewElement(c.Data)
			copyAttrs(el, c)
			dst.AppendChild(el)
			convertChildren(el, c)
		case html.TextNode:
			if t := strings.TrimSpace(c.Data); t != "" {
				if dst.text != "" {
					dst.text += " "
				}
				dst.text += t
			}
		}
	}
}

func copyAttrs(dst *Element, src *html.Node) {
	for _, a := range src.Attr {
		dst.SetAttribute(a.Key, a.Val)
	}
}
