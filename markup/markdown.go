package markup

import "html"

// Converter turns Markdown source into an HTML fragment.
type Converter interface {
	Convert(src []byte) ([]byte, error)
}

// Markdown is a node whose content is Markdown converted at render time. The
// resulting HTML is spliced in unescaped, so Source must be repo-controlled.
type Markdown struct {
	Converter Converter
	Source    string
}

// MD builds a Markdown node.
func MD(conv Converter, src string) Markdown {
	return Markdown{Converter: conv, Source: src}
}

// AppendHTML implements Node. A conversion failure leaves an HTML comment in
// place of the content.
func (m Markdown) AppendHTML(buf []byte) []byte {
	if m.Converter == nil {
		return buf
	}
	out, err := m.Converter.Convert([]byte(m.Source))
	if err != nil {
		buf = append(buf, "<!-- markdown: "...)
		buf = append(buf, html.EscapeString(err.Error())...)
		return append(buf, " -->"...)
	}
	return append(buf, out...)
}
