package hdom

import "testing"

func TestText(t *testing.T) {
	node := Text("Hello, World!")

	if node.Kind != KindText {
		t.Errorf("Kind = %v, want KindText", node.Kind)
	}
	if node.Text != "Hello, World!" {
		t.Errorf("Text = %v, want 'Hello, World!'", node.Text)
	}
}

func TestTextf(t *testing.T) {
	node := Textf("Count: %d", 42)

	if node.Text != "Count: 42" {
		t.Errorf("Text = %v, want 'Count: 42'", node.Text)
	}
}

func TestRaw(t *testing.T) {
	node := Raw("<strong>Bold</strong>")

	if node.Kind != KindRaw {
		t.Errorf("Kind = %v, want KindRaw", node.Kind)
	}
	if node.Text != "<strong>Bold</strong>" {
		t.Errorf("Text = %v", node.Text)
	}
}

func TestFragment(t *testing.T) {
	frag := Fragment(Div(), "text", nil, []*Node{Span(), nil})

	if frag.Kind != KindFragment {
		t.Errorf("Kind = %v, want KindFragment", frag.Kind)
	}
	if len(frag.Children) != 3 {
		t.Fatalf("Children len = %v, want 3", len(frag.Children))
	}
	if frag.Children[1].Kind != KindText {
		t.Errorf("string arg should become a text node")
	}
}

func TestIf(t *testing.T) {
	if If(true, Div()) == nil {
		t.Error("If(true) should return the node")
	}
	if If(false, Div()) != nil {
		t.Error("If(false) should return nil")
	}
}

func TestIfElse(t *testing.T) {
	a, b := Div(), Span()
	if IfElse(true, a, b) != a {
		t.Error("IfElse(true) should return first")
	}
	if IfElse(false, a, b) != b {
		t.Error("IfElse(false) should return second")
	}
}

func TestWhen(t *testing.T) {
	called := false
	When(false, func() *Node {
		called = true
		return Div()
	})
	if called {
		t.Error("When(false) must not call the function")
	}

	node := When(true, func() *Node { return Div() })
	if node == nil || node.Tag != "div" {
		t.Errorf("When(true) = %#v", node)
	}
}

func TestUnless(t *testing.T) {
	if Unless(true, Div()) != nil {
		t.Error("Unless(true) should return nil")
	}
	if Unless(false, Div()) == nil {
		t.Error("Unless(false) should return the node")
	}
}

func TestSwitch(t *testing.T) {
	node := Switch(2,
		Case_(1, Div()),
		Case_(2, Span()),
		Default[int](P()),
	)
	if node.Tag != "span" {
		t.Errorf("Switch matched %v, want span", node.Tag)
	}

	fallback := Switch(9,
		Case_(1, Div()),
		Default[int](P()),
	)
	if fallback.Tag != "p" {
		t.Errorf("Switch default = %v, want p", fallback.Tag)
	}

	if Switch(9, Case_(1, Div())) != nil {
		t.Error("Switch with no match and no default should be nil")
	}
}

func TestRange(t *testing.T) {
	items := []string{"a", "b", "c"}
	nodes := Range(items, func(s string, i int) *Node {
		if s == "b" {
			return nil
		}
		return Li(Textf("%d:%s", i, s))
	})

	if len(nodes) != 2 {
		t.Fatalf("len = %v, want 2 (nil skipped)", len(nodes))
	}
	if nodes[1].Children[0].Text != "2:c" {
		t.Errorf("second node text = %v", nodes[1].Children[0].Text)
	}
}

func TestRangeMap(t *testing.T) {
	m := map[string]int{"x": 1, "y": 2}
	nodes := RangeMap(m, func(k string, v int) *Node {
		return Li(Textf("%s=%d", k, v))
	})
	if len(nodes) != 2 {
		t.Errorf("len = %v, want 2", len(nodes))
	}
}

func TestRepeat(t *testing.T) {
	nodes := Repeat(3, func(i int) *Node { return Li(Textf("%d", i)) })
	if len(nodes) != 3 {
		t.Errorf("len = %v, want 3", len(nodes))
	}
	if Repeat(0, func(i int) *Node { return Div() }) != nil {
		t.Error("Repeat(0) should be nil")
	}
	if Repeat(-1, func(i int) *Node { return Div() }) != nil {
		t.Error("Repeat(-1) should be nil")
	}
}

func TestEither(t *testing.T) {
	a, b := Div(), Span()
	if Either(a, b) != a {
		t.Error("Either should prefer first")
	}
	if Either(nil, b) != b {
		t.Error("Either should fall back to second")
	}
	if Nothing() != nil {
		t.Error("Nothing() should be nil")
	}
}
