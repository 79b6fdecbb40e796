package renderer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlRenderer "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"golang.org/x/text/unicode/norm"
)

// Heading represents a heading found while rendering.
type Heading struct {
	ID    string
	Text  string
	Level int
}

// RenderResult wraps HTML markup and extracted metadata.
type RenderResult struct {
	HTML     []byte
	Meta     map[string]any
	Headings []Heading
}

// Renderer transforms markdown sources into HTML fragments.
type Renderer struct {
	md       goldmark.Markdown
	minifier *minifier
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMinify enables HTML minification in MinifyHTML.
func WithMinify(enabled bool) Option {
	return func(r *Renderer) {
		if enabled {
			r.minifier = newMinifier()
		} else {
			r.minifier = nil
		}
	}
}

// New constructs a renderer with GitHub-flavored markdown extensions and syntax highlighting.
// Raw HTML in the source is passed through untouched.
func New(opts ...Option) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.DefinitionList,
			extension.Footnote,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
					chromahtml.WithAllClasses(true),
					chromahtml.ClassPrefix("z-"),
					chromahtml.PreventSurroundingPre(true),
				),
				highlighting.WithWrapperRenderer(codeWrapper),
			),
			meta.Meta,
		),
		goldmark.WithParserOptions(
			parser.WithAttribute(),
		),
		goldmark.WithRendererOptions(
			htmlRenderer.WithUnsafe(),
		),
	)

	r := &Renderer{md: md}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render converts the provided markdown into HTML, collecting front matter and headings.
func (r *Renderer) Render(src []byte) (*RenderResult, error) {
	pctx := parser.NewContext()
	doc := r.md.Parser().Parse(text.NewReader(src), parser.WithContext(pctx))

	headings := make([]Heading, 0, 8)
	slugCounts := make(map[string]int)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		node, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		attr, _ := node.AttributeString("id")
		text := extractText(node, src)
		id := attributeToString(attr)
		if id == "" {
			base := slugify(text)
			count := slugCounts[base]
			if count > 0 {
				id = fmt.Sprintf("%s-%d", base, count)
			} else {
				id = base
			}
			slugCounts[base] = count + 1
			node.SetAttributeString("id", []byte(id))
		} else {
			slugCounts[id]++
		}
		headings = append(headings, Heading{ID: id, Text: text, Level: node.Level})
		return ast.WalkContinue, nil
	})

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, src, doc); err != nil {
		return nil, err
	}

	return &RenderResult{HTML: buf.Bytes(), Meta: meta.Get(pctx), Headings: headings}, nil
}

// Convert renders markdown and returns only the HTML.
func (r *Renderer) Convert(src []byte) ([]byte, error) {
	res, err := r.Render(src)
	if err != nil {
		return nil, err
	}
	return res.HTML, nil
}

// MinifyHTML optimizes raw HTML markup.
// Without WithMinify(true) it returns the input unchanged.
func (r *Renderer) MinifyHTML(raw []byte) ([]byte, error) {
	if r.minifier == nil {
		return raw, nil
	}
	return r.minifier.html(raw)
}

func extractText(root ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if n == root {
			return ast.WalkContinue, nil
		}
		if text, ok := n.(*ast.Text); ok && entering {
			sb.Write(text.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

func attributeToString(value interface{}) string {
	switch v := value.(type) {
	case []byte:
		return string(v)
	case string:
		return v
	default:
		return ""
	}
}

// slugify folds accents (é -> e) before keeping only [a-z0-9-].
func slugify(input string) string {
	input = norm.NFKD.String(strings.ToLower(strings.TrimSpace(input)))
	if input == "" {
		return "section"
	}
	var sb strings.Builder
	lastDash := false
	for _, r := range input {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-' || r == '_' || r == '.':
			if sb.Len() == 0 || lastDash {
				continue
			}
			sb.WriteByte('-')
			lastDash = true
		}
	}
	slug := strings.Trim(sb.String(), "-")
	if slug == "" {
		return "section"
	}
	return slug
}

func codeWrapper(w util.BufWriter, ctx highlighting.CodeBlockContext, entering bool) {
	lang := "text"
	if raw, ok := ctx.Language(); ok && len(raw) > 0 {
		lang = string(raw)
	}
	lang = string(util.EscapeHTML([]byte(lang)))
	if entering {
		_, _ = fmt.Fprintf(w, `<pre tabindex="0" class="z-chroma z-code language-%[1]s" data-lang="%[1]s"><code class="language-%[1]s" data-lang="%[1]s">`, lang)
		return
	}
	_, _ = w.WriteString("</code></pre>\n")
}
