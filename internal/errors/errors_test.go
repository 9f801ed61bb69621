package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	err := New("E103")
	if err.Code != "E103" {
		t.Errorf("expected code E103, got %s", err.Code)
	}
	if err.Category != CategorySchema {
		t.Errorf("expected schema category, got %s", err.Category)
	}
	if err.Message == "" {
		t.Error("expected a message from the registry")
	}
	if err.DocURL == "" {
		t.Error("expected a doc URL from the registry")
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Code != "E999" {
		t.Errorf("expected code E999, got %s", err.Code)
	}
	if err.Message != "Unknown error" {
		t.Errorf("expected unknown error message, got %q", err.Message)
	}
}

func TestErrorString(t *testing.T) {
	err := New("E301")
	want := "E301: " + registry["E301"].Message
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	noCode := Newf(CategoryBuild, "bad op at index %d", 3)
	if noCode.Error() != "bad op at index 3" {
		t.Errorf("Error() = %q", noCode.Error())
	}
}

func TestUnwrap(t *testing.T) {
	inner := fmt.Errorf("disk full")
	err := New("E203").Wrap(inner)
	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E102") != nil {
		t.Error("FromError(nil) should be nil")
	}

	we := New("E104")
	if got := FromError(we, "E102"); got != we {
		t.Error("FromError should pass WeaveError through unchanged")
	}

	plain := fmt.Errorf("yaml: line 3: mapping values")
	wrapped := FromError(plain, "E102")
	if wrapped.Code != "E102" {
		t.Errorf("expected E102, got %s", wrapped.Code)
	}
	if !errors.Is(wrapped, plain) {
		t.Error("wrapped error lost")
	}
}

func TestIsCode(t *testing.T) {
	err := New("E305")
	if !IsCode(err, "E305") {
		t.Error("IsCode should match")
	}
	if IsCode(err, "E304") {
		t.Error("IsCode should not match a different code")
	}
	if IsCode(fmt.Errorf("plain"), "E305") {
		t.Error("IsCode should reject non-WeaveError")
	}
}

func TestBuilderChain(t *testing.T) {
	err := New("E104").
		WithDetail("Href and HrefLang collide after normalization").
		WithSuggestion("Rename one row with ident:").
		WithExample("ident: HrefLang")

	if err.Detail == "" || err.Suggestion == "" || err.Example == "" {
		t.Error("builder chain dropped a field")
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E103")
	err.Location = &Location{File: "html.yaml", Line: 12}

	got := err.FormatCompact()
	if !strings.HasPrefix(got, "html.yaml:12: E103:") {
		t.Errorf("FormatCompact() = %q", got)
	}
}

func TestFormatContainsSections(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E105").
		WithSuggestion("Use one of: string, int, float, bool, flag, list").
		WithExample("kind: flag")

	out := err.Format()
	for _, want := range []string{"E105", "Hint:", "Example:", "Learn more:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("E403")
	out := err.FormatJSON()
	if !strings.Contains(out, `"code":"E403"`) {
		t.Errorf("FormatJSON() = %s", out)
	}
	if !strings.Contains(out, `"category":"cli"`) {
		t.Errorf("FormatJSON() = %s", out)
	}
}

func TestLocationString(t *testing.T) {
	cases := []struct {
		loc  *Location
		want string
	}{
		{nil, ""},
		{&Location{File: "a.yaml", Line: 3}, "a.yaml:3"},
		{&Location{File: "a.yaml", Line: 3, Column: 7}, "a.yaml:3:7"},
	}
	for _, tc := range cases {
		if got := tc.loc.String(); got != tc.want {
			t.Errorf("Location.String() = %q, want %q", got, tc.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six seven eight nine ten", 20)
	for _, line := range lines {
		if len(line) > 20 {
			t.Errorf("line too long: %q", line)
		}
	}
	if len(lines) < 2 {
		t.Error("expected wrapping to multiple lines")
	}
}
