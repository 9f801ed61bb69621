package hdom

import (
	"reflect"
	"testing"
)

func TestAttributeConstructors(t *testing.T) {
	cases := []struct {
		name string
		got  Attr
		want Attr
	}{
		{"id", ID("main"), Attr{Key: "id", Value: "main"}},
		{"class joins", Class("a", "b", "c"), Attr{Key: "class", Value: "a b c"}},
		{"style", StyleAttr("color: red"), Attr{Key: "style", Value: "color: red"}},
		{"tabindex", TabIndex(2), Attr{Key: "tabindex", Value: 2}},
		{"aria bool", AriaHidden(true), Attr{Key: "aria-hidden", Value: true}},
		{"aria float", AriaValueNow(0.25), Attr{Key: "aria-valuenow", Value: 0.25}},
		{"flag", Disabled(), Attr{Key: "disabled", Value: true}},
		{"data", Data("id", "42"), Attr{Key: "data-id", Value: "42"}},
		{"aria escape hatch", Aria("roledescription", "slide"), Attr{Key: "aria-roledescription", Value: "slide"}},
		{"xlink", XLinkHref("#icon"), Attr{Key: "xlink:href", Value: "#icon"}},
		{"xml lang", XMLLang("en"), Attr{Key: "xml:lang", Value: "en"}},
		{"xmlns", Xmlns("http://www.w3.org/2000/svg"), Attr{Key: "xmlns", Value: "http://www.w3.org/2000/svg"}},
		{"svg case preserved", ViewBox("0 0 1 1"), Attr{Key: "viewBox", Value: "0 0 1 1"}},
	}

	for _, tc := range cases {
		if !reflect.DeepEqual(tc.got, tc.want) {
			t.Errorf("%s: got %#v, want %#v", tc.name, tc.got, tc.want)
		}
	}
}

func TestClassIf(t *testing.T) {
	if got := ClassIf(true, "active"); got.Key != "class" || got.Value != "active" {
		t.Errorf("ClassIf(true) = %#v", got)
	}
	if got := ClassIf(false, "active"); !got.IsEmpty() {
		t.Errorf("ClassIf(false) = %#v, want empty", got)
	}
}

func TestAttrIf(t *testing.T) {
	a := ID("x")
	if got := AttrIf(true, a); got != a {
		t.Errorf("AttrIf(true) = %#v", got)
	}
	if got := AttrIf(false, a); !got.IsEmpty() {
		t.Errorf("AttrIf(false) = %#v, want empty", got)
	}
}

func TestClasses(t *testing.T) {
	got := Classes("base", []string{"one", ""}, map[string]bool{"active": true, "hidden": false})

	s, ok := got.Value.(string)
	if !ok {
		t.Fatalf("Classes value type %T", got.Value)
	}
	if s != "base one active" {
		t.Errorf("Classes() = %q", s)
	}
}

func TestClassesMapOrderDeterministic(t *testing.T) {
	m := map[string]bool{"zeta": true, "alpha": true, "mid": true, "off": false}
	want := "alpha mid zeta"
	for i := 0; i < 10; i++ {
		got := Classes(m)
		if s := got.Value.(string); s != want {
			t.Fatalf("run %d: Classes() = %q, want %q", i, s, want)
		}
	}
}

func TestKey(t *testing.T) {
	if got := Key("row-1"); got.Key != "key" || got.Value != "row-1" {
		t.Errorf("Key(string) = %#v", got)
	}
	if got := Key(7); got.Value != "7" {
		t.Errorf("Key(int) = %#v, want stringified", got)
	}
}

func TestOnEscapeHatch(t *testing.T) {
	h := func() {}
	got := On("pointerlockchange", h)
	if got.Event != "onpointerlockchange" {
		t.Errorf("On event = %q", got.Event)
	}
}
