package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/domweave/domweave/internal/errors"
	"github.com/domweave/domweave/pkg/schema"
)

// Options configures generated output.
type Options struct {
	// HdomDir is the directory (relative to the module root) receiving
	// the core binding files. Its base name is the package name.
	HdomDir string

	// FacadeDir receives the facade wrapper files.
	FacadeDir string

	// HdomImportPath is the import path the facade wrappers use.
	HdomImportPath string

	// SourceName names the schema in the generated-file headers.
	SourceName string
}

func (o *Options) defaults() {
	if o.HdomDir == "" {
		o.HdomDir = "pkg/hdom"
	}
	if o.FacadeDir == "" {
		o.FacadeDir = "el"
	}
	if o.HdomImportPath == "" {
		o.HdomImportPath = "github.com/domweave/domweave/pkg/hdom"
	}
	if o.SourceName == "" {
		o.SourceName = "html.yaml"
	}
}

// File is one generated source file.
type File struct {
	Path    string // relative to the module root
	Content []byte // gofmt-clean Go source
}

// Generator emits the DSL binding sources for a schema table. Output is
// deterministic: the same schema always produces the same bytes.
type Generator struct {
	schema *schema.Schema
	opts   Options
}

// New creates a Generator. The schema must already be validated.
func New(s *schema.Schema, opts Options) *Generator {
	opts.defaults()
	return &Generator{schema: s, opts: opts}
}

// Files renders all six binding files: elements, attributes, and events
// for the core package and for the facade.
func (g *Generator) Files() ([]File, error) {
	corePkg := filepath.Base(g.opts.HdomDir)
	facadePkg := filepath.Base(g.opts.FacadeDir)

	specs := []struct {
		path string
		tmpl *template.Template
		data any
	}{
		{
			path: filepath.Join(g.opts.HdomDir, "elements_gen.go"),
			tmpl: coreElementsTmpl,
			data: g.elementsData(corePkg),
		},
		{
			path: filepath.Join(g.opts.HdomDir, "attributes_gen.go"),
			tmpl: coreAttributesTmpl,
			data: g.attributesData(corePkg),
		},
		{
			path: filepath.Join(g.opts.HdomDir, "events_gen.go"),
			tmpl: coreEventsTmpl,
			data: g.eventsData(corePkg),
		},
		{
			path: filepath.Join(g.opts.FacadeDir, "elements_gen.go"),
			tmpl: facadeElementsTmpl,
			data: g.elementsData(facadePkg),
		},
		{
			path: filepath.Join(g.opts.FacadeDir, "attributes_gen.go"),
			tmpl: facadeAttributesTmpl,
			data: g.attributesData(facadePkg),
		},
		{
			path: filepath.Join(g.opts.FacadeDir, "events_gen.go"),
			tmpl: facadeEventsTmpl,
			data: g.eventsData(facadePkg),
		},
	}

	files := make([]File, 0, len(specs))
	for _, spec := range specs {
		content, err := g.render(spec.tmpl, spec.data)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: spec.path, Content: content})
	}
	return files, nil
}

// GenerateFile renders a single named file, for tests and selective
// regeneration. Name is one of the relative paths Files returns.
func (g *Generator) GenerateFile(path string) ([]byte, error) {
	files, err := g.Files()
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if f.Path == path {
			return f.Content, nil
		}
	}
	return nil, errors.Newf(errors.CategoryCodegen, "no generated file named %s", path)
}

// WriteFiles renders everything under root.
func (g *Generator) WriteFiles(root string) error {
	files, err := g.Files()
	if err != nil {
		return err
	}
	for _, f := range files {
		target := filepath.Join(root, f.Path)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return errors.New("E203").WithDetail(target).Wrap(err)
		}
		if err := os.WriteFile(target, f.Content, 0o644); err != nil {
			return errors.New("E203").WithDetail(target).Wrap(err)
		}
	}
	return nil
}

func (g *Generator) render(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.New("E201").Wrap(err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.New("E202").
			WithDetail(fmt.Sprintf("template %s", tmpl.Name())).
			Wrap(err)
	}
	return formatted, nil
}

func (g *Generator) header() string {
	return fmt.Sprintf(
		"// Code generated by domweave gen bindings. DO NOT EDIT.\n// Source: %s (schema version %d)\n",
		g.opts.SourceName, g.schema.Version)
}
