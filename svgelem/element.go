package svgelem

import "strings"

// Attribute is a raw, uninterpreted SVG attribute.
// Its identity is its Name.
type Attribute struct {
	Name, Value string
}

func (a Attribute) String() string {
	return a.Name + `="` + a.Value + `"`
}

// Element is one node of the source document: a tag name and
// its attributes, in insertion order, with unique names.
// Elements carry no parent: the document is flattened
// into a sequence when read.
type Element struct {
	TagName    string
	Attributes []Attribute
}

// NewElement returns an element without attributes.
func NewElement(tagName string) *Element {
	return &Element{TagName: tagName}
}

// AddAttribute appends `attr`, or replaces the attribute
// with the same name, keeping its position.
func (e *Element) AddAttribute(attr Attribute) {
	for i, a := range e.Attributes {
		if a.Name == attr.Name {
			e.Attributes[i] = attr
			return
		}
	}
	e.Attributes = append(e.Attributes, attr)
}

// Value returns the value of the attribute `name`,
// or false if the element has no such attribute.
func (e *Element) Value(name string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// String returns a self-closed tag, useful for debugging.
func (e *Element) String() string {
	chunks := make([]string, 0, len(e.Attributes)+1)
	chunks = append(chunks, "<"+e.TagName)
	for _, a := range e.Attributes {
		chunks = append(chunks, a.String())
	}
	return strings.Join(chunks, " ") + "/>"
}
