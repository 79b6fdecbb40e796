package renderer

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderHeadings(t *testing.T) {
	t.Parallel()

	src := "# Hello World\n\n## Hello World\n\n## Café au lait\n\n## Explicit {#custom}\n"
	res, err := New().Render([]byte(src))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := []Heading{
		{ID: "hello-world", Text: "Hello World", Level: 1},
		{ID: "hello-world-1", Text: "Hello World", Level: 2},
		{ID: "cafe-au-lait", Text: "Café au lait", Level: 2},
		{ID: "custom", Text: "Explicit", Level: 2},
	}
	if len(res.Headings) != len(want) {
		t.Fatalf("got %d headings, want %d: %+v", len(res.Headings), len(want), res.Headings)
	}
	for i, h := range want {
		if res.Headings[i] != h {
			t.Errorf("heading %d = %+v, want %+v", i, res.Headings[i], h)
		}
	}
	if !strings.Contains(string(res.HTML), `<h2 id="cafe-au-lait">`) {
		t.Errorf("expected slug id in output, got %s", res.HTML)
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                 "section",
		"  About Me  ":     "about-me",
		"Ünïcödé Tëxt":     "unicode-text",
		"88x31 Buttons":    "88x31-buttons",
		"--dash__under..":  "dash-under",
		"!!!":              "section",
		"seed by Adrian S": "seed-by-adrian-s",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderFrontMatter(t *testing.T) {
	t.Parallel()

	src := "---\nid: thanks\n---\nSpecial thanks.\n"
	res, err := New().Render([]byte(src))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := res.Meta["id"]; got != "thanks" {
		t.Errorf("Meta[id] = %v, want thanks", got)
	}
	if got := strings.TrimSpace(string(res.HTML)); got != "<p>Special thanks.</p>" {
		t.Errorf("HTML = %q", got)
	}
}

func TestConvertPassesRawHTML(t *testing.T) {
	t.Parallel()

	out, err := New().Convert([]byte("before\n\n<div class=\"raw\">kept</div>\n"))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !bytes.Contains(out, []byte(`<div class="raw">kept</div>`)) {
		t.Errorf("raw HTML was not passed through: %s", out)
	}
}

func TestCodeHighlighting(t *testing.T) {
	t.Parallel()

	out, err := New().Convert([]byte("```go\nfmt.Println(\"human = good\")\n```\n"))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `<pre tabindex="0" class="z-chroma z-code language-go" data-lang="go">`) {
		t.Errorf("missing code wrapper: %s", html)
	}
	if !strings.Contains(html, `class="z-`) {
		t.Errorf("expected chroma token classes: %s", html)
	}
}

func TestMinifyHTML(t *testing.T) {
	t.Parallel()

	raw := []byte("<html>\n  <head>\n  </head>\n  <body>\n    <p>a</p>\n  </body>\n</html>\n")

	same, err := New().MinifyHTML(raw)
	if err != nil {
		t.Fatalf("MinifyHTML() error = %v", err)
	}
	if !bytes.Equal(same, raw) {
		t.Errorf("disabled minifier changed output: %q", same)
	}

	min, err := New(WithMinify(true)).MinifyHTML(raw)
	if err != nil {
		t.Fatalf("MinifyHTML() error = %v", err)
	}
	if len(min) >= len(raw) {
		t.Errorf("expected smaller output, got %q", min)
	}
	if !bytes.Contains(min, []byte("<p>a</p>")) {
		t.Errorf("paragraph lost: %q", min)
	}

	if r := New(WithMinify(true), WithMinify(false)); r.minifier != nil {
		t.Errorf("WithMinify(false) should disable minification")
	}
}
