package schema

import (
	_ "embed"
	"fmt"
	"os"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/domweave/domweave/internal/errors"
)

//go:embed html.yaml
var defaultSchema []byte

// Version is the schema table version this release understands.
const Version = 1

// Element namespaces accepted in element rows.
const (
	NamespaceHTML   = "html"
	NamespaceSVG    = "svg"
	NamespaceMathML = "mathml"
)

// Attribute kinds accepted in attribute rows. The kind selects the Go
// signature of the generated constructor.
const (
	KindString = "string" // func(value string) Attr
	KindInt    = "int"    // func(value int) Attr
	KindFloat  = "float"  // func(value float64) Attr
	KindBool   = "bool"   // func(value bool) Attr
	KindFlag   = "flag"   // func() Attr, emits value true
	KindList   = "list"   // func(values ...string) Attr, space-joined
)

// Schema is the declarative binding table the generator consumes.
type Schema struct {
	Version    int         `yaml:"version"`
	Elements   []Element   `yaml:"elements"`
	Attributes []Attribute `yaml:"attributes"`
	Events     []Event     `yaml:"events"`
}

// Element describes one tag constructor.
type Element struct {
	Tag       string `yaml:"tag"`
	Ident     string `yaml:"ident"`
	Namespace string `yaml:"namespace,omitempty"` // html (default), svg, mathml
	Void      bool   `yaml:"void,omitempty"`
	Group     string `yaml:"group,omitempty"`
}

// Attribute describes one attribute constructor.
type Attribute struct {
	Key       string `yaml:"key"`
	Ident     string `yaml:"ident"`
	Kind      string `yaml:"kind"`
	Namespace string `yaml:"namespace,omitempty"` // xlink, xml, xmlns
	Group     string `yaml:"group,omitempty"`
}

// Event describes one event-handler constructor.
type Event struct {
	Name  string `yaml:"name"`
	Ident string `yaml:"ident"`
	Group string `yaml:"group,omitempty"`
}

// Default returns the embedded schema covering the HTML living-standard
// tags plus core SVG and MathML.
func Default() (*Schema, error) {
	return Load(defaultSchema)
}

// Load parses and validates a schema table.
func Load(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.New("E102").Wrap(err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and validates a schema table from disk.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E101").WithDetail(path)
		}
		return nil, errors.FromError(err, "E101")
	}
	s, err := Load(data)
	if err != nil {
		if we, ok := err.(*errors.WeaveError); ok {
			return nil, we.WithLocation(path, 0, 0)
		}
		return nil, err
	}
	return s, nil
}

// Validate checks the table for structural problems: version, missing
// fields, bad kinds and namespaces, and colliding identifiers.
func (s *Schema) Validate() error {
	if s.Version != Version {
		return errors.New("E108").WithDetail(fmt.Sprintf("version %d", s.Version))
	}

	tags := make(map[string]bool)
	idents := make(map[string]string)

	claim := func(ident, row string) error {
		if ident == "" {
			return errors.New("E107").WithDetail(row + " has no ident")
		}
		if !isExportedIdent(ident) {
			return errors.New("E106").WithDetail(row + " ident " + ident)
		}
		if prev, ok := idents[ident]; ok {
			return errors.New("E104").
				WithDetail(fmt.Sprintf("%s and %s both generate %s", prev, row, ident))
		}
		idents[ident] = row
		return nil
	}

	for _, el := range s.Elements {
		row := "element " + el.Tag
		if el.Tag == "" {
			return errors.New("E107").WithDetail("element row with ident " + el.Ident)
		}
		ns := el.Namespace
		if ns == "" {
			ns = NamespaceHTML
		}
		if ns != NamespaceHTML && ns != NamespaceSVG && ns != NamespaceMathML {
			return errors.New("E109").WithDetail(row + " namespace " + el.Namespace)
		}
		// The same tag may exist in different namespaces (e.g. HTML a
		// and SVG a), but not twice in one.
		tagKey := ns + ":" + el.Tag
		if tags[tagKey] {
			return errors.New("E103").WithDetail(row)
		}
		tags[tagKey] = true
		if err := claim(el.Ident, row); err != nil {
			return err
		}
	}

	for _, a := range s.Attributes {
		row := "attribute " + a.Key
		if a.Key == "" {
			return errors.New("E107").WithDetail("attribute row with ident " + a.Ident)
		}
		switch a.Kind {
		case KindString, KindInt, KindFloat, KindBool, KindFlag, KindList:
		default:
			return errors.New("E105").WithDetail(row + " kind " + a.Kind)
		}
		if err := claim(a.Ident, row); err != nil {
			return err
		}
	}

	for _, ev := range s.Events {
		row := "event " + ev.Name
		if ev.Name == "" {
			return errors.New("E107").WithDetail("event row with ident " + ev.Ident)
		}
		if err := claim(ev.Ident, row); err != nil {
			return err
		}
	}

	return nil
}

// AttrKeyWithNamespace returns the full attribute key the constructor
// emits, including the namespace prefix.
func (a Attribute) AttrKeyWithNamespace() string {
	switch a.Namespace {
	case "xlink":
		return "xlink:" + a.Key
	case "xml":
		return "xml:" + a.Key
	case "xmlns":
		if a.Key == "xmlns" {
			return "xmlns"
		}
		return "xmlns:" + a.Key
	}
	return a.Key
}

// isExportedIdent reports whether s is a valid exported Go identifier.
func isExportedIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
