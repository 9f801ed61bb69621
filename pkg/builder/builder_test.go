package builder

import (
	"strings"
	"testing"

	"github.com/microcosm-cc/bluemonday"

	"github.com/domweave/domweave/internal/errors"
	"github.com/domweave/domweave/pkg/dom"
	"github.com/domweave/domweave/pkg/dom/memdom"
)

func newTestBuilder(t *testing.T, opts ...Option) (*Builder, *memdom.Document) {
	t.Helper()
	doc := memdom.New()
	return New(doc, doc.Body(), opts...), doc
}

func bodyHTML(doc *memdom.Document) string {
	return doc.Body().InnerHTML()
}

func TestBasicStream(t *testing.T) {
	b, doc := newTestBuilder(t)

	err := b.Do(
		OpenOp{Tag: "div"},
		AttrOp{Name: "class", Value: "card"},
		OpenOp{Tag: "p"},
		TextOp{Text: "hello"},
		CloseOp{},
		CloseOp{},
	)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	got := bodyHTML(doc)
	want := `<div class="card"><p>hello</p></div>`
	if got != want {
		t.Errorf("built %q, want %q", got, want)
	}
}

func TestEntityDecoding(t *testing.T) {
	b, doc := newTestBuilder(t)

	err := b.Do(
		OpenOp{Tag: "p"},
		TextOp{Text: "Fish &amp; Chips &#60; &euro;10"},
		CloseOp{},
	)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	text := doc.Body().TextContent()
	want := "Fish & Chips < €10"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestEntityDecodingIsSingle(t *testing.T) {
	b, doc := newTestBuilder(t)

	// Double-escaped input decodes exactly once.
	if err := b.Do(OpenOp{Tag: "p"}, TextOp{Text: "&amp;amp;"}, CloseOp{}); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := doc.Body().TextContent(); got != "&amp;" {
		t.Errorf("text = %q, want %q", got, "&amp;")
	}
}

func TestPlainTextUntouched(t *testing.T) {
	b, doc := newTestBuilder(t)

	if err := b.Do(OpenOp{Tag: "p"}, TextOp{Text: "plain text"}, CloseOp{}); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := doc.Body().TextContent(); got != "plain text" {
		t.Errorf("text = %q", got)
	}
}

func TestSVGNamespaceSwitch(t *testing.T) {
	b, doc := newTestBuilder(t)

	err := b.Do(
		OpenOp{Tag: "svg"},
		AttrOp{Name: "viewBox", Value: "0 0 24 24"},
		OpenOp{Tag: "circle"},
		AttrOp{Name: "r", Value: "10"},
		CloseOp{},
		CloseOp{},
	)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	svg := doc.Body().ChildNodes()[0].(*memdom.Element)
	if svg.NamespaceURI() != dom.NamespaceSVG {
		t.Errorf("svg namespace = %q", svg.NamespaceURI())
	}
	circle := svg.ChildNodes()[0].(*memdom.Element)
	if circle.NamespaceURI() != dom.NamespaceSVG {
		t.Errorf("circle namespace = %q", circle.NamespaceURI())
	}
}

func TestForeignObjectReturnsToHTML(t *testing.T) {
	b, doc := newTestBuilder(t)

	err := b.Do(
		OpenOp{Tag: "svg"},
		OpenOp{Tag: "foreignObject"},
		OpenOp{Tag: "div"},
		CloseOp{},
		CloseOp{},
		CloseOp{},
	)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	svg := doc.Body().ChildNodes()[0].(*memdom.Element)
	fo := svg.ChildNodes()[0].(*memdom.Element)
	if fo.NamespaceURI() != dom.NamespaceSVG {
		t.Errorf("foreignObject namespace = %q", fo.NamespaceURI())
	}
	div := fo.ChildNodes()[0].(*memdom.Element)
	if div.NamespaceURI() != dom.NamespaceHTML {
		t.Errorf("div namespace = %q, want HTML", div.NamespaceURI())
	}
}

func TestMathMLNamespace(t *testing.T) {
	b, doc := newTestBuilder(t)

	err := b.Do(
		OpenOp{Tag: "math"},
		OpenOp{Tag: "mi"},
		TextOp{Text: "x"},
		CloseOp{},
		CloseOp{},
	)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	math := doc.Body().ChildNodes()[0].(*memdom.Element)
	if math.NamespaceURI() != dom.NamespaceMathML {
		t.Errorf("math namespace = %q", math.NamespaceURI())
	}
	mi := math.ChildNodes()[0].(*memdom.Element)
	if mi.NamespaceURI() != dom.NamespaceMathML {
		t.Errorf("mi namespace = %q", mi.NamespaceURI())
	}
}

func TestNamespacedAttributes(t *testing.T) {
	b, doc := newTestBuilder(t)

	err := b.Do(
		OpenOp{Tag: "svg"},
		OpenOp{Tag: "use"},
		AttrOp{Name: "xlink:href", Value: "#icon"},
		AttrOp{Name: "xml:lang", Value: "en"},
		CloseOp{},
		CloseOp{},
	)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	svg := doc.Body().ChildNodes()[0].(*memdom.Element)
	use := svg.ChildNodes()[0].(*memdom.Element)
	// getAttribute takes the qualified name, prefix included.
	if v, ok := use.GetAttribute("xlink:href"); !ok || v != "#icon" {
		t.Errorf("xlink:href = %q, %v", v, ok)
	}
}

func TestUnknownAttributePrefix(t *testing.T) {
	b, _ := newTestBuilder(t)

	if err := b.Open("div"); err != nil {
		t.Fatal(err)
	}
	err := b.Attr("custom:thing", "v")
	if !errors.IsCode(err, "E307") {
		t.Errorf("err = %v, want E307", err)
	}
}

func TestStructuralErrors(t *testing.T) {
	t.Run("close without open", func(t *testing.T) {
		b, _ := newTestBuilder(t)
		if err := b.Close(); !errors.IsCode(err, "E301") {
			t.Errorf("err = %v, want E301", err)
		}
	})

	t.Run("attr without open element", func(t *testing.T) {
		b, _ := newTestBuilder(t)
		if err := b.Attr("class", "x"); !errors.IsCode(err, "E303") {
			t.Errorf("err = %v, want E303", err)
		}
	})

	t.Run("ops after root closed", func(t *testing.T) {
		b, _ := newTestBuilder(t)
		if err := b.Do(OpenOp{Tag: "div"}, CloseOp{}); err != nil {
			t.Fatal(err)
		}
		if err := b.Open("span"); !errors.IsCode(err, "E302") {
			t.Errorf("Open err = %v, want E302", err)
		}
		if err := b.Text("x"); !errors.IsCode(err, "E302") {
			t.Errorf("Text err = %v, want E302", err)
		}
		if err := b.Close(); !errors.IsCode(err, "E302") {
			t.Errorf("Close err = %v, want E302", err)
		}
	})

	t.Run("content in void element", func(t *testing.T) {
		b, _ := newTestBuilder(t)
		if err := b.Open("img"); err != nil {
			t.Fatal(err)
		}
		if err := b.Text("x"); !errors.IsCode(err, "E304") {
			t.Errorf("Text err = %v, want E304", err)
		}
		if err := b.Open("span"); !errors.IsCode(err, "E304") {
			t.Errorf("Open err = %v, want E304", err)
		}
		if err := b.Raw("<b>x</b>"); !errors.IsCode(err, "E304") {
			t.Errorf("Raw err = %v, want E304", err)
		}
	})

	t.Run("attr on void element allowed", func(t *testing.T) {
		b, _ := newTestBuilder(t)
		if err := b.Open("img"); err != nil {
			t.Fatal(err)
		}
		if err := b.Attr("src", "/x.png"); err != nil {
			t.Errorf("Attr on void element: %v", err)
		}
	})
}

func TestEventListeners(t *testing.T) {
	b, doc := newTestBuilder(t)

	var clicks int
	err := b.Do(
		OpenOp{Tag: "button"},
		EventOp{Name: "click", Handler: func(dom.Event) { clicks++ }},
		TextOp{Text: "go"},
		CloseOp{},
	)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	btn := doc.Body().ChildNodes()[0].(*memdom.Element)
	btn.Dispatch("click")
	btn.Dispatch("click")
	if clicks != 2 {
		t.Errorf("clicks = %d, want 2", clicks)
	}

	b.Release()
	btn.Dispatch("click")
	if clicks != 2 {
		t.Error("Release should remove listeners")
	}
}

func TestNullaryHandler(t *testing.T) {
	b, doc := newTestBuilder(t)

	fired := false
	err := b.Do(
		OpenOp{Tag: "button"},
		EventOp{Name: "click", Handler: func() { fired = true }},
		CloseOp{},
	)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	doc.Body().ChildNodes()[0].(*memdom.Element).Dispatch("click")
	if !fired {
		t.Error("func() handler should fire")
	}
}

func TestUnsupportedHandlerType(t *testing.T) {
	b, _ := newTestBuilder(t)

	if err := b.Open("button"); err != nil {
		t.Fatal(err)
	}
	err := b.Event("click", "not a function")
	if !errors.IsCode(err, "E305") {
		t.Errorf("err = %v, want E305", err)
	}
}

func TestRawHTML(t *testing.T) {
	b, doc := newTestBuilder(t)

	err := b.Do(
		OpenOp{Tag: "div"},
		RawOp{HTML: `<b onclick="evil()">bold</b>`},
		CloseOp{},
	)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	got := bodyHTML(doc)
	if !strings.Contains(got, "<b") || !strings.Contains(got, "bold") {
		t.Errorf("raw fragment not injected: %q", got)
	}
}

func TestRawHTMLSanitized(t *testing.T) {
	b, doc := newTestBuilder(t, WithSanitizer(bluemonday.UGCPolicy()))

	err := b.Do(
		OpenOp{Tag: "div"},
		RawOp{HTML: `<b>ok</b><script>alert(1)</script>`},
		CloseOp{},
	)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	got := bodyHTML(doc)
	if !strings.Contains(got, "<b>ok</b>") {
		t.Errorf("sanitizer dropped safe markup: %q", got)
	}
	if strings.Contains(got, "script") {
		t.Errorf("sanitizer kept script: %q", got)
	}
}

func TestExplicitNamespaceOverride(t *testing.T) {
	b, doc := newTestBuilder(t)

	if err := b.OpenNS(dom.NamespaceSVG, "filter"); err != nil {
		t.Fatal(err)
	}
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}

	el := doc.Body().ChildNodes()[0].(*memdom.Element)
	if el.NamespaceURI() != dom.NamespaceSVG {
		t.Errorf("namespace = %q", el.NamespaceURI())
	}
}
