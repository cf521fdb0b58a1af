// Package decoration models the site decoration document: a generic
// attributed tree that carries, among opaque custom content, the
// configuration blocks consumed by the skin tools.
package decoration

// Node is a read-only view of a single element of the decoration tree.
// Any tree representation can satisfy it; the loaders in this package
// produce Element trees.
type Node interface {
	// Attribute returns the value of the named attribute.
	Attribute(name string) (string, bool)

	// Child returns the first child element with the given name, or nil.
	Child(name string) Node

	// Children returns all child elements with the given name.
	Children(name string) []Node

	// Value returns the text content of the element.
	Value() string
}

// Element is the in-memory tree node produced by the descriptor loaders.
// It can also be built as a literal in tests.
type Element struct {
	Name     string
	Attrs    map[string]string
	Elements []*Element
	Text     string
}

func (e *Element) Attribute(name string) (string, bool) {
	value, ok := e.Attrs[name]
	return value, ok
}

func (e *Element) Child(name string) Node {
	for _, child := range e.Elements {
		if child.Name == name {
			return child
		}
	}

	return nil
}

func (e *Element) Children(name string) []Node {
	var children []Node

	for _, child := range e.Elements {
		if child.Name == name {
			children = append(children, child)
		}
	}

	return children
}

func (e *Element) Value() string {
	return e.Text
}

// Document is a parsed site descriptor. Custom holds the opaque custom
// subtree of the descriptor; it is nil when the descriptor has none.
type Document struct {
	Custom Node
}

const customElementName = "custom"

func documentFromRoot(root *Element) *Document {
	if root == nil {
		return &Document{}
	}

	if root.Name == customElementName {
		return &Document{Custom: root}
	}

	return &Document{Custom: root.Child(customElementName)}
}
