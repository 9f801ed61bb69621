package el

import (
	"reflect"
	"testing"

	"github.com/domweave/domweave/pkg/hdom"
)

var (
	_ hdom.Node         = Node{}
	_ hdom.NodeKind     = NodeKind(0)
	_ hdom.Props        = Props{}
	_ hdom.Attr         = Attr{}
	_ hdom.EventHandler = EventHandler{}
	_ hdom.Component    = Component(nil)
	_ hdom.Case[int]    = Case[int]{}
)

func TestElementConstructorsMatchHdom(t *testing.T) {
	args := []any{
		hdom.ID("root"),
		hdom.Class("one", "two"),
		hdom.Hidden(),
		hdom.OnClick("noop"),
		"hello",
		hdom.Span("child"),
	}

	got := Div(args...)
	want := hdom.Div(args...)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Div() mismatch:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestElementNamesMatchHdom(t *testing.T) {
	cases := []struct {
		name string
		got  *Node
		want *hdom.Node
	}{
		{"time", Time_("now"), hdom.Time_("now")},
		{"data", DataElement("value"), hdom.DataElement("value")},
		{"map", Map_(), hdom.Map_()},
		{"svg text", TextEl("label"), hdom.TextEl("label")},
		{"svg pattern", PatternEl(), hdom.PatternEl()},
	}

	for _, tc := range cases {
		if !reflect.DeepEqual(tc.got, tc.want) {
			t.Errorf("%s: mismatch:\n got: %#v\nwant: %#v", tc.name, tc.got, tc.want)
		}
	}
}

func TestNamespacedConstructors(t *testing.T) {
	circle := Circle(Cx("10"), Cy("10"), R("5"))
	if circle.Namespace != "http://www.w3.org/2000/svg" {
		t.Errorf("Circle namespace = %q", circle.Namespace)
	}

	frac := Mfrac(Mn("1"), Mn("2"))
	if frac.Namespace != "http://www.w3.org/1998/Math/MathML" {
		t.Errorf("Mfrac namespace = %q", frac.Namespace)
	}

	if div := Div(); div.Namespace != "" {
		t.Errorf("Div namespace = %q, want empty", div.Namespace)
	}
}

func TestAttributeWrappers(t *testing.T) {
	cases := []struct {
		name string
		got  Attr
		want hdom.Attr
	}{
		{"id", ID("x"), hdom.ID("x")},
		{"class", Class("a", "b"), hdom.Class("a", "b")},
		{"tabindex", TabIndex(3), hdom.TabIndex(3)},
		{"valuenow", AriaValueNow(0.5), hdom.AriaValueNow(0.5)},
		{"disabled", Disabled(), hdom.Disabled()},
		{"xlink", XLinkHref("#icon"), hdom.XLinkHref("#icon")},
	}

	for _, tc := range cases {
		if !reflect.DeepEqual(tc.got, tc.want) {
			t.Errorf("%s: got %#v, want %#v", tc.name, tc.got, tc.want)
		}
	}
}

func TestEventWrappers(t *testing.T) {
	handler := func() {}

	got := OnClick(handler)
	if got.Event != "onclick" {
		t.Errorf("OnClick event = %q", got.Event)
	}

	custom := On("myevent", handler)
	if custom.Event != "onmyevent" {
		t.Errorf("On event = %q", custom.Event)
	}
}

func TestHelperWrappers(t *testing.T) {
	if got := Text("hi"); got.Kind != hdom.KindText || got.Text != "hi" {
		t.Errorf("Text() = %#v", got)
	}

	frag := Fragment(Div(), Span())
	if frag.Kind != hdom.KindFragment || len(frag.Children) != 2 {
		t.Errorf("Fragment() = %#v", frag)
	}

	if If(false, Div()) != nil {
		t.Error("If(false) should be nil")
	}

	items := Range([]string{"a", "b"}, func(s string, i int) *Node {
		return Li(s)
	})
	if len(items) != 2 || items[0].Tag != "li" {
		t.Errorf("Range() = %#v", items)
	}

	sw := Switch("b",
		Case_("a", Div()),
		Case_("b", Span()),
		Default[string](P()),
	)
	if sw.Tag != "span" {
		t.Errorf("Switch() = %#v", sw)
	}
}
