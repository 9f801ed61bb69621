package hdom

import (
	"testing"

	"github.com/domweave/domweave/pkg/dom"
)

func TestCreateElement(t *testing.T) {
	t.Run("basic element", func(t *testing.T) {
		node := Div()
		if node.Kind != KindElement {
			t.Errorf("Kind = %v, want KindElement", node.Kind)
		}
		if node.Tag != "div" {
			t.Errorf("Tag = %v, want div", node.Tag)
		}
		if node.Namespace != "" {
			t.Errorf("Namespace = %v, want empty", node.Namespace)
		}
	})

	t.Run("with class attribute", func(t *testing.T) {
		node := Div(Class("card"))
		if node.Props["class"] != "card" {
			t.Errorf("class = %v, want card", node.Props["class"])
		}
	})

	t.Run("with multiple attributes", func(t *testing.T) {
		node := Div(Class("card"), ID("main"))
		if node.Props["class"] != "card" {
			t.Errorf("class = %v, want card", node.Props["class"])
		}
		if node.Props["id"] != "main" {
			t.Errorf("id = %v, want main", node.Props["id"])
		}
	})

	t.Run("with attribute slice", func(t *testing.T) {
		attrs := []Attr{ID("main"), TabIndex(1)}
		node := Div(attrs)
		if node.Props["id"] != "main" {
			t.Errorf("id = %v, want main", node.Props["id"])
		}
		if node.Props["tabindex"] != 1 {
			t.Errorf("tabindex = %v, want 1", node.Props["tabindex"])
		}
	})

	t.Run("with child node", func(t *testing.T) {
		node := Div(P(Text("Hello")))
		if len(node.Children) != 1 {
			t.Fatalf("Children len = %v, want 1", len(node.Children))
		}
		if node.Children[0].Tag != "p" {
			t.Errorf("Child tag = %v, want p", node.Children[0].Tag)
		}
	})

	t.Run("with child slice", func(t *testing.T) {
		kids := []*Node{Li("a"), nil, Li("b")}
		node := Ul(kids)
		if len(node.Children) != 2 {
			t.Errorf("Children len = %v, want 2 (nil skipped)", len(node.Children))
		}
	})

	t.Run("with string shorthand", func(t *testing.T) {
		node := Div("Hello")
		if len(node.Children) != 1 {
			t.Fatalf("Children len = %v, want 1", len(node.Children))
		}
		if node.Children[0].Kind != KindText {
			t.Errorf("Child kind = %v, want KindText", node.Children[0].Kind)
		}
		if node.Children[0].Text != "Hello" {
			t.Errorf("Child text = %v, want Hello", node.Children[0].Text)
		}
	})

	t.Run("with nil ignored", func(t *testing.T) {
		node := Div(nil, Class("test"), nil)
		if node.Props["class"] != "test" {
			t.Errorf("class = %v, want test", node.Props["class"])
		}
		if len(node.Children) != 0 {
			t.Errorf("Children len = %v, want 0", len(node.Children))
		}
	})

	t.Run("with event handler", func(t *testing.T) {
		handler := func() {}
		node := Button(OnClick(handler))
		if node.Props["onclick"] == nil {
			t.Error("onclick handler not set")
		}
		if !node.HasHandlers() {
			t.Error("HasHandlers() should be true")
		}
	})

	t.Run("with component", func(t *testing.T) {
		comp := Func(func() *Node { return Span("inner") })
		node := Div(comp)
		if len(node.Children) != 1 {
			t.Fatalf("Children len = %v, want 1", len(node.Children))
		}
		if node.Children[0].Kind != KindComponent {
			t.Errorf("Child kind = %v, want KindComponent", node.Children[0].Kind)
		}
	})

	t.Run("key attribute routes to Node.Key", func(t *testing.T) {
		node := Li(Key("item-1"), "text")
		if node.Key != "item-1" {
			t.Errorf("Key = %v, want item-1", node.Key)
		}
		if _, ok := node.Props["key"]; ok {
			t.Error("key should not appear in Props")
		}
	})

	t.Run("empty attr ignored", func(t *testing.T) {
		node := Div(ClassIf(false, "hidden"))
		if _, ok := node.Props["class"]; ok {
			t.Error("empty attr should not set class")
		}
	})
}

func TestNamespacedElements(t *testing.T) {
	svg := Svg(ViewBox("0 0 24 24"), Circle(Cx("12"), Cy("12"), R("10")))
	if svg.Namespace != dom.NamespaceSVG {
		t.Errorf("Svg Namespace = %q", svg.Namespace)
	}
	if svg.Children[0].Namespace != dom.NamespaceSVG {
		t.Errorf("Circle Namespace = %q", svg.Children[0].Namespace)
	}

	math := Math(Mfrac(Mn("1"), Mn("2")))
	if math.Namespace != dom.NamespaceMathML {
		t.Errorf("Math Namespace = %q", math.Namespace)
	}
}

func TestCustomElement(t *testing.T) {
	node := CustomElement("my-widget", ID("w"))
	if node.Tag != "my-widget" {
		t.Errorf("Tag = %v", node.Tag)
	}

	ns := CustomElementNS(dom.NamespaceSVG, "feGaussianBlur")
	if ns.Namespace != dom.NamespaceSVG {
		t.Errorf("Namespace = %v", ns.Namespace)
	}
}

func TestIsVoidElement(t *testing.T) {
	voids := []string{"br", "img", "input", "meta", "hr", "wbr"}
	for _, tag := range voids {
		if !IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = false, want true", tag)
		}
	}
	for _, tag := range []string{"div", "span", "svg", "textarea"} {
		if IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = true, want false", tag)
		}
	}
}

func TestNodeKindString(t *testing.T) {
	cases := []struct {
		kind NodeKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{NodeKind(99), "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("String() = %v, want %v", got, tc.want)
		}
	}
}
