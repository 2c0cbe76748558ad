// Package svg builds SVG documents as a tree of nodes and serializes them once.
// Attribute values and text are escaped by the serializer, so callers pass raw strings.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Declaration is written before the root element.
const Declaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// Attr is a single attribute. Order of attributes is preserved on output.
type Attr struct {
	Name  string
	Value string
}

// A builds an attribute, formatting numbers the shortest way.
func A(name string, value any) Attr {
	return Attr{Name: name, Value: fmt.Sprint(value)}
}

// Node is an element with attributes, child elements and optional text.
type Node struct {
	Name     string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// New creates an element.
func New(name string, attrs ...Attr) *Node {
	return &Node{Name: name, Attrs: attrs}
}

// Add appends children and returns n.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// WithText sets the element's character data and returns n.
func (n *Node) WithText(text string) *Node {
	n.Text = text
	return n
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns every descendant of n (n included) with the given element name, in document order.
func (n *Node) Find(name string) []*Node {
	var found []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		if cur.Name == name {
			found = append(found, cur)
		}
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(n)
	return found
}

// Render serializes root as a standalone document.
func Render(root *Node) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(Declaration)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := encode(enc, root); err != nil {
		return nil, fmt.Errorf("failed to encode %s element: %w", root.Name, err)
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encode(enc *xml.Encoder, n *Node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Name}}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if n.Text != "" {
		if err := enc.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := encode(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
