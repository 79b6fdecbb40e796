// Package markup implements a tiny model of HTML content used to build pages
// programmatically.
//
// Nothing in this package escapes its input. Text and attribute values are
// written exactly as declared, so every node must be built from trusted,
// hand-authored content.
package markup

// Node is something that can append its HTML representation, in UTF-8, to a
// buffer.
type Node interface {
	AppendHTML(buf []byte) []byte
}

// Raw is literal content appended without transformation.
type Raw string

// AppendHTML implements Node.
func (r Raw) AppendHTML(buf []byte) []byte { return append(buf, r...) }

// Group is an ordered list of nodes rendered one after another.
type Group []Node

// AppendHTML appends each child in declaration order.
func (g Group) AppendHTML(buf []byte) []byte {
	for _, child := range g {
		if child == nil {
			continue
		}
		buf = child.AppendHTML(buf)
	}
	return buf
}

// Func adapts a render callback to a Node.
type Func func(buf []byte) []byte

// AppendHTML implements Node.
func (f Func) AppendHTML(buf []byte) []byte {
	if f == nil {
		return buf
	}
	return f(buf)
}

// Attr is a single element attribute. An empty Value renders the attribute
// name alone.
type Attr struct {
	Key   string
	Value string
}

// Element is an HTML tag with attributes and children. Void elements never
// get a closing tag and ignore their children.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children Group
	Void     bool
}

// AppendHTML implements Node.
func (e Element) AppendHTML(buf []byte) []byte {
	buf = append(buf, '<')
	buf = append(buf, e.Tag...)
	for _, attr := range e.Attrs {
		buf = append(buf, ' ')
		buf = append(buf, attr.Key...)
		if attr.Value != "" {
			buf = append(buf, '=', '"')
			buf = append(buf, attr.Value...)
			buf = append(buf, '"')
		}
	}
	buf = append(buf, '>')
	if e.Void {
		return buf
	}
	buf = e.Children.AppendHTML(buf)
	buf = append(buf, '<', '/')
	buf = append(buf, e.Tag...)
	return append(buf, '>')
}

// Attrs builds an attribute list from alternating key/value pairs. A trailing
// key without a value becomes a bare attribute.
func Attrs(pairs ...string) []Attr {
	attrs := make([]Attr, 0, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		attr := Attr{Key: pairs[i]}
		if i+1 < len(pairs) {
			attr.Value = pairs[i+1]
		}
		attrs = append(attrs, attr)
	}
	return attrs
}

// E builds a container element.
func E(tag string, attrs []Attr, children ...Node) Element {
	return Element{Tag: tag, Attrs: attrs, Children: children}
}

// V builds a void element such as img, meta or br.
func V(tag string, attrs []Attr) Element {
	return Element{Tag: tag, Attrs: attrs, Void: true}
}

// Text is a shorthand for a group of Raw strings.
func Text(parts ...string) Group {
	group := make(Group, len(parts))
	for i, part := range parts {
		group[i] = Raw(part)
	}
	return group
}

// Br is a line break.
func Br() Node { return V("br", nil) }

// Doctype is the HTML5 document type declaration.
func Doctype() Node { return Raw("<!DOCTYPE html>") }

// Append appends the HTML of every node to buf.
func Append(buf []byte, nodes ...Node) []byte {
	return Group(nodes).AppendHTML(buf)
}

// Render renders a node into a fresh string.
func Render(n Node) string {
	if n == nil {
		return ""
	}
	return string(n.AppendHTML(make([]byte, 0, 4096)))
}
