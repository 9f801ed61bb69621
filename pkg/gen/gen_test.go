package gen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/domweave/domweave/pkg/schema"
)

func defaultGenerator(t *testing.T) *Generator {
	t.Helper()
	s, err := schema.Default()
	if err != nil {
		t.Fatalf("schema.Default: %v", err)
	}
	return New(s, Options{})
}

func fileByPath(t *testing.T, files []File, path string) []byte {
	t.Helper()
	for _, f := range files {
		if f.Path == path {
			return f.Content
		}
	}
	t.Fatalf("no generated file %s", path)
	return nil
}

func TestFilesComplete(t *testing.T) {
	g := defaultGenerator(t)

	files, err := g.Files()
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	want := []string{
		"pkg/hdom/elements_gen.go",
		"pkg/hdom/attributes_gen.go",
		"pkg/hdom/events_gen.go",
		"el/elements_gen.go",
		"el/attributes_gen.go",
		"el/events_gen.go",
	}
	if len(files) != len(want) {
		t.Fatalf("len(files) = %d, want %d", len(files), len(want))
	}
	for i, path := range want {
		if files[i].Path != path {
			t.Errorf("files[%d].Path = %s, want %s", i, files[i].Path, path)
		}
	}
}

func TestGeneratedHeaders(t *testing.T) {
	g := defaultGenerator(t)

	files, err := g.Files()
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	for _, f := range files {
		content := string(f.Content)
		if !strings.HasPrefix(content, "// Code generated by domweave gen bindings. DO NOT EDIT.") {
			t.Errorf("%s missing generated header", f.Path)
		}
		if !strings.Contains(content, "// Source: html.yaml (schema version 1)") {
			t.Errorf("%s missing source line", f.Path)
		}
	}
}

func TestDeterministicOutput(t *testing.T) {
	first, err := defaultGenerator(t).Files()
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	second, err := defaultGenerator(t).Files()
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	for i := range first {
		if !bytes.Equal(first[i].Content, second[i].Content) {
			t.Errorf("%s differs between runs", first[i].Path)
		}
	}
}

func TestGeneratedFilesUpToDate(t *testing.T) {
	g := defaultGenerator(t)

	files, err := g.Files()
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	for _, f := range files {
		onDisk, err := os.ReadFile(filepath.Join("../..", f.Path))
		if err != nil {
			t.Fatalf("read %s: %v", f.Path, err)
		}
		if diff := cmp.Diff(string(onDisk), string(f.Content)); diff != "" {
			t.Errorf("%s is stale, rerun gen bindings (-on disk +generated):\n%s", f.Path, diff)
		}
	}
}

func TestConstructorShapes(t *testing.T) {
	g := defaultGenerator(t)
	files, err := g.Files()
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	elements := string(fileByPath(t, files, "pkg/hdom/elements_gen.go"))
	for _, want := range []string{
		`func Div(args ...any) *Node { return createElement("div", args) }`,
		`func Circle(args ...any) *Node { return svgElement("circle", args) }`,
		`func Mfrac(args ...any) *Node { return mathElement("mfrac", args) }`,
		`// Br creates a void <br> element.`,
	} {
		if !strings.Contains(elements, want) {
			t.Errorf("elements_gen.go missing %q", want)
		}
	}

	attributes := string(fileByPath(t, files, "pkg/hdom/attributes_gen.go"))
	for _, want := range []string{
		`func ID(value string) Attr { return attr("id", value) }`,
		`func Class(values ...string) Attr { return attr("class", strings.Join(values, " ")) }`,
		`func TabIndex(value int) Attr { return attr("tabindex", value) }`,
		`func AriaValueNow(value float64) Attr { return attr("aria-valuenow", value) }`,
		`func Disabled() Attr { return attr("disabled", true) }`,
		`func XLinkHref(value string) Attr { return attr("xlink:href", value) }`,
	} {
		if !strings.Contains(attributes, want) {
			t.Errorf("attributes_gen.go missing %q", want)
		}
	}

	events := string(fileByPath(t, files, "pkg/hdom/events_gen.go"))
	if !strings.Contains(events, `func OnClick(handler any) EventHandler { return on("click", handler) }`) {
		t.Error("events_gen.go missing OnClick")
	}

	facade := string(fileByPath(t, files, "el/elements_gen.go"))
	for _, want := range []string{
		`import "github.com/domweave/domweave/pkg/hdom"`,
		`func Div(args ...any) *Node { return hdom.Div(args...) }`,
	} {
		if !strings.Contains(facade, want) {
			t.Errorf("el/elements_gen.go missing %q", want)
		}
	}

	facadeAttrs := string(fileByPath(t, files, "el/attributes_gen.go"))
	for _, want := range []string{
		`func Disabled() Attr { return hdom.Disabled() }`,
		`func Class(values ...string) Attr { return hdom.Class(values...) }`,
	} {
		if !strings.Contains(facadeAttrs, want) {
			t.Errorf("el/attributes_gen.go missing %q", want)
		}
	}
}

func TestCustomOptions(t *testing.T) {
	s, err := schema.Load([]byte(`
version: 1
elements:
  - {tag: widget, ident: Widget, group: Widgets}
`))
	if err != nil {
		t.Fatal(err)
	}

	g := New(s, Options{
		HdomDir:        "internal/markup",
		FacadeDir:      "ui",
		HdomImportPath: "example.com/app/internal/markup",
		SourceName:     "widgets.yaml",
	})
	files, err := g.Files()
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	elements := string(fileByPath(t, files, "internal/markup/elements_gen.go"))
	if !strings.Contains(elements, "package markup") {
		t.Errorf("wrong package clause:\n%s", elements)
	}
	if !strings.Contains(elements, "// Source: widgets.yaml (schema version 1)") {
		t.Error("custom source name not used")
	}

	facade := string(fileByPath(t, files, "ui/elements_gen.go"))
	if !strings.Contains(facade, "package ui") {
		t.Errorf("wrong facade package:\n%s", facade)
	}
	if !strings.Contains(facade, `func Widget(args ...any) *Node { return markup.Widget(args...) }`) {
		t.Errorf("facade wrapper missing:\n%s", facade)
	}
}

func TestWriteFiles(t *testing.T) {
	s, err := schema.Load([]byte(`
version: 1
elements:
  - {tag: widget, ident: Widget}
attributes:
  - {key: level, ident: Level, kind: int}
events:
  - {name: spin, ident: OnSpin}
`))
	if err != nil {
		t.Fatal(err)
	}

	root := t.TempDir()
	if err := New(s, Options{}).WriteFiles(root); err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}

	for _, path := range []string{
		"pkg/hdom/elements_gen.go",
		"pkg/hdom/attributes_gen.go",
		"pkg/hdom/events_gen.go",
		"el/elements_gen.go",
		"el/attributes_gen.go",
		"el/events_gen.go",
	} {
		if _, err := os.Stat(filepath.Join(root, path)); err != nil {
			t.Errorf("missing output %s: %v", path, err)
		}
	}
}

func TestGenerateFile(t *testing.T) {
	g := defaultGenerator(t)

	content, err := g.GenerateFile("pkg/hdom/events_gen.go")
	if err != nil {
		t.Fatalf("GenerateFile: %v", err)
	}
	if !strings.Contains(string(content), "OnKeyDown") {
		t.Error("events file incomplete")
	}

	if _, err := g.GenerateFile("nope.go"); err == nil {
		t.Error("unknown file should error")
	}
}

func TestNoJoinImportWithoutListKinds(t *testing.T) {
	s, err := schema.Load([]byte(`
version: 1
attributes:
  - {key: level, ident: Level, kind: int}
`))
	if err != nil {
		t.Fatal(err)
	}

	files, err := New(s, Options{}).Files()
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	attrs := string(fileByPath(t, files, "pkg/hdom/attributes_gen.go"))
	if strings.Contains(attrs, `"strings"`) {
		t.Errorf("strings import should be omitted:\n%s", attrs)
	}
}
