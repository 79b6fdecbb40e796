package markup

import (
	"errors"
	"strings"
	"testing"
)

func TestElementRendering(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "container",
			node: E("a", Attrs("class", "underline", "href", "#downloads"), Raw("links")),
			want: `<a class="underline" href="#downloads">links</a>`,
		},
		{
			name: "void",
			node: V("img", Attrs("src", "video.png")),
			want: `<img src="video.png">`,
		},
		{
			name: "bare attribute",
			node: V("input", Attrs("type", "checkbox", "checked")),
			want: `<input type="checkbox" checked>`,
		},
		{
			name: "nested",
			node: E("ul", nil, E("li", nil, E("b", nil, Raw("I love humans!")))),
			want: `<ul><li><b>I love humans!</b></li></ul>`,
		},
		{
			name: "empty",
			node: E("div", nil),
			want: `<div></div>`,
		},
		{
			name: "doctype and break",
			node: Group{Doctype(), Br()},
			want: `<!DOCTYPE html><br>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Render(tc.node); got != tc.want {
				t.Errorf("Render() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestGroupKeepsDeclarationOrder(t *testing.T) {
	t.Parallel()

	called := 0
	node := Group{
		Raw("one "),
		nil,
		Func(func(buf []byte) []byte {
			called++
			return append(buf, "two "...)
		}),
		Text("three ", "four"),
	}
	if got, want := Render(node), "one two three four"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if called != 1 {
		t.Errorf("Func called %d times, want 1", called)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	node := E("p", Attrs("class", "text-xs"), Raw("made with <3"), Br())
	first := Render(node)
	second := Render(node)
	if first != second {
		t.Errorf("second render differs: %q vs %q", first, second)
	}
}

func TestAppendExtendsBuffer(t *testing.T) {
	t.Parallel()

	buf := []byte("prefix:")
	buf = Append(buf, Raw("a"), Raw("b"))
	if got := string(buf); got != "prefix:ab" {
		t.Errorf("Append() = %q", got)
	}
}

// Text is written verbatim; escaping is the author's responsibility.
func TestRawIsNotEscaped(t *testing.T) {
	t.Parallel()

	got := Render(E("div", Attrs("title", `say "hi"`), Raw("<script>alert('x')</script>")))
	if !strings.Contains(got, "<script>alert('x')</script>") {
		t.Errorf("expected literal script tag, got %q", got)
	}
	if !strings.Contains(got, `title="say "hi""`) {
		t.Errorf("expected attribute value verbatim, got %q", got)
	}
}

type stubConverter struct {
	out string
	err error
}

func (s stubConverter) Convert(src []byte) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.out + string(src)), nil
}

func TestMarkdownNode(t *testing.T) {
	t.Parallel()

	got := Render(Group{Raw("<div>"), MD(stubConverter{out: "html:"}, "*md*"), Raw("</div>")})
	if want := "<div>html:*md*</div>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	got = Render(MD(stubConverter{err: errors.New("bad <input>")}, "x"))
	if want := "<!-- markdown: bad &lt;input&gt; -->"; got != want {
		t.Errorf("Render() on error = %q, want %q", got, want)
	}

	if got := Render(Markdown{Source: "x"}); got != "" {
		t.Errorf("Render() without converter = %q, want empty", got)
	}
}
