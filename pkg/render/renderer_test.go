package render

import (
	"strings"
	"testing"

	"github.com/domweave/domweave/pkg/hdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(hdom.Text("Hello, World!"))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(hdom.Text("<script>alert('xss')</script>"))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := hdom.Div(hdom.Class("container"),
		hdom.H1(hdom.Text("Title")),
		hdom.P(hdom.Text("Content")),
	)
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `<div class="container">`) {
		t.Errorf("should contain div with class, got %q", html)
	}
	if !strings.Contains(html, `<h1>Title</h1>`) {
		t.Errorf("should contain h1, got %q", html)
	}
	if !strings.Contains(html, `<p>Content</p>`) {
		t.Errorf("should contain p, got %q", html)
	}
}

func TestRenderVoidElements(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *hdom.Node
		want string
	}{
		{
			name: "input",
			node: hdom.Input(hdom.Type("text"), hdom.Name("email")),
			want: `<input name="email" type="text">`,
		},
		{
			name: "br",
			node: hdom.Br(),
			want: `<br>`,
		},
		{
			name: "img",
			node: hdom.Img(hdom.Src("/x.png"), hdom.Alt("x")),
			want: `<img alt="x" src="/x.png">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
			if strings.Contains(html, "</") {
				t.Errorf("void element must not emit a closing tag: %q", html)
			}
		})
	}
}

func TestRenderBooleanAttrs(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(hdom.Input(hdom.Disabled(), hdom.Required()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, " disabled") || strings.Contains(html, `disabled="`) {
		t.Errorf("boolean attr should be bare, got %q", html)
	}
	if !strings.Contains(html, " required") {
		t.Errorf("missing required, got %q", html)
	}
}

func TestRenderAttrEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(hdom.Div(hdom.TitleAttr(`a"b<c>`)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `title="a&quot;b&lt;c&gt;"`) {
		t.Errorf("attribute not escaped: %q", html)
	}
}

func TestRenderAttrsSorted(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := hdom.Div(hdom.TitleAttr("t"), hdom.ID("i"), hdom.Class("c"))
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="c" id="i" title="t"></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderRaw(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(hdom.Div(hdom.Raw("<b>unescaped</b>")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "<b>unescaped</b>") {
		t.Errorf("raw HTML should bypass escaping, got %q", html)
	}
}

func TestRenderFragment(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	frag := hdom.Fragment(hdom.Span("a"), hdom.Span("b"))
	html, err := renderer.RenderToString(frag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<span>a</span><span>b</span>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderComponent(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	comp := hdom.Func(func() *hdom.Node { return hdom.P("from component") })
	html, err := renderer.RenderToString(hdom.Div(comp))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "<p>from component</p>") {
		t.Errorf("got %q", html)
	}
}

func TestRenderSkipsHandlers(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := hdom.Button(hdom.OnClick(func() {}), "go")
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "onclick") {
		t.Errorf("handlers must not render, got %q", html)
	}
	if html != "<button>go</button>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderNilNode(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "" {
		t.Errorf("nil renders empty, got %q", html)
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	node := hdom.Div(hdom.P(hdom.Text("x")))
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "\n") {
		t.Errorf("pretty output should contain newlines, got %q", html)
	}
	if !strings.Contains(html, "  <p>") {
		t.Errorf("pretty output should indent children, got %q", html)
	}
}
