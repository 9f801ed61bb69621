package preview

import (
	"strings"
	"testing"

	"github.com/domweave/domweave/pkg/render"
	"github.com/domweave/domweave/pkg/schema"
)

func renderReference(t *testing.T, s *schema.Schema) string {
	t.Helper()
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(BuildReferencePage(s))
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	return html
}

func TestBuildReferencePageDefaultSchema(t *testing.T) {
	s, err := schema.Default()
	if err != nil {
		t.Fatal(err)
	}

	html := renderReference(t, s)
	for _, want := range []string{
		"<h1>domweave binding reference</h1>",
		"<h2>Elements</h2>",
		"<h2>Attributes</h2>",
		"<h2>Events</h2>",
		"<code>&lt;div&gt;</code>",
		"<code>&lt;circle&gt;</code>",
		"<td>SVG</td>",
		"<td>void</td>",
		"<code>xlink:href</code>",
		"<code>OnClick(handler)</code>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestBuildReferencePageGroupOrder(t *testing.T) {
	s, err := schema.Load([]byte(`
version: 1
elements:
  - {tag: widget, ident: Widget, group: Widgets}
  - {tag: gadget, ident: Gadget, group: Gadgets}
  - {tag: sprocket, ident: Sprocket, group: Widgets}
`))
	if err != nil {
		t.Fatal(err)
	}

	html := renderReference(t, s)

	widgets := strings.Index(html, "<h3>Widgets</h3>")
	gadgets := strings.Index(html, "<h3>Gadgets</h3>")
	if widgets < 0 || gadgets < 0 {
		t.Fatalf("missing group headings:\n%s", html)
	}
	if widgets > gadgets {
		t.Error("groups not in first-appearance order")
	}
	if strings.Count(html, "<h3>Widgets</h3>") != 1 {
		t.Error("group heading duplicated")
	}
}

func TestBuildReferencePageKindSignatures(t *testing.T) {
	s, err := schema.Load([]byte(`
version: 1
attributes:
  - {key: id, ident: ID, kind: string}
  - {key: tabindex, ident: TabIndex, kind: int}
  - {key: disabled, ident: Disabled, kind: flag}
  - {key: class, ident: Class, kind: list}
`))
	if err != nil {
		t.Fatal(err)
	}

	html := renderReference(t, s)
	for _, want := range []string{
		"ID(string)",
		"TabIndex(int)",
		"Disabled()",
		"Class(...string)",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}
