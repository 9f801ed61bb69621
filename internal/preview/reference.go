package preview

import (
	"bytes"

	"github.com/domweave/domweave/pkg/hdom"
	"github.com/domweave/domweave/pkg/render"
	"github.com/domweave/domweave/pkg/schema"
)

// RenderReferenceDoc renders the reference page as a standalone HTML
// document, without the live-reload client. Used by gen docs and the
// publish command.
func RenderReferenceDoc(s *schema.Schema) ([]byte, error) {
	var buf bytes.Buffer
	r := render.NewRenderer(render.RendererConfig{})
	err := r.RenderPage(&buf, render.PageData{
		Title:     "domweave binding reference",
		InlineCSS: referenceCSS,
		Body:      BuildReferencePage(s),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildReferencePage builds the schema reference page as a node tree.
// The page is built with the binding DSL itself, so the preview server
// doubles as a smoke test for the generated constructors.
func BuildReferencePage(s *schema.Schema) *hdom.Node {
	return hdom.Main(hdom.Class("reference"),
		hdom.Header(
			hdom.H1(hdom.Text("domweave binding reference")),
			hdom.P(hdom.Class("summary"), hdom.Textf(
				"Schema version %d: %d elements, %d attributes, %d events.",
				s.Version, len(s.Elements), len(s.Attributes), len(s.Events),
			)),
		),
		hdom.Nav(
			hdom.Ul(
				hdom.Li(hdom.A(hdom.Href("#elements"), hdom.Text("Elements"))),
				hdom.Li(hdom.A(hdom.Href("#attributes"), hdom.Text("Attributes"))),
				hdom.Li(hdom.A(hdom.Href("#events"), hdom.Text("Events"))),
			),
		),
		elementsSection(s.Elements),
		attributesSection(s.Attributes),
		eventsSection(s.Events),
	)
}

func elementsSection(elements []schema.Element) *hdom.Node {
	return hdom.Section(hdom.ID("elements"),
		hdom.H2(hdom.Text("Elements")),
		hdom.Range(groupNames(elements, func(e schema.Element) string { return e.Group }),
			func(group string, _ int) *hdom.Node {
				rows := filterGroup(elements, group, func(e schema.Element) string { return e.Group })
				return hdom.Fragment(
					groupHeading(group),
					hdom.Table(
						hdom.Thead(hdom.Tr(
							hdom.Th(hdom.Text("Tag")),
							hdom.Th(hdom.Text("Constructor")),
							hdom.Th(hdom.Text("Namespace")),
							hdom.Th(hdom.Text("Notes")),
						)),
						hdom.Tbody(hdom.Range(rows, func(e schema.Element, _ int) *hdom.Node {
							return hdom.Tr(
								hdom.Td(hdom.Code(hdom.Text("<"+e.Tag+">"))),
								hdom.Td(hdom.Code(hdom.Text(e.Ident))),
								hdom.Td(hdom.Text(namespaceLabel(e.Namespace))),
								hdom.Td(hdom.If(e.Void, hdom.Text("void"))),
							)
						})),
					),
				)
			}),
	)
}

func attributesSection(attributes []schema.Attribute) *hdom.Node {
	return hdom.Section(hdom.ID("attributes"),
		hdom.H2(hdom.Text("Attributes")),
		hdom.Range(groupNames(attributes, func(a schema.Attribute) string { return a.Group }),
			func(group string, _ int) *hdom.Node {
				rows := filterGroup(attributes, group, func(a schema.Attribute) string { return a.Group })
				return hdom.Fragment(
					groupHeading(group),
					hdom.Table(
						hdom.Thead(hdom.Tr(
							hdom.Th(hdom.Text("Attribute")),
							hdom.Th(hdom.Text("Constructor")),
							hdom.Th(hdom.Text("Kind")),
						)),
						hdom.Tbody(hdom.Range(rows, func(a schema.Attribute, _ int) *hdom.Node {
							return hdom.Tr(
								hdom.Td(hdom.Code(hdom.Text(a.AttrKeyWithNamespace()))),
								hdom.Td(hdom.Code(hdom.Text(a.Ident+signatureHint(a.Kind)))),
								hdom.Td(hdom.Text(a.Kind)),
							)
						})),
					),
				)
			}),
	)
}

func eventsSection(events []schema.Event) *hdom.Node {
	return hdom.Section(hdom.ID("events"),
		hdom.H2(hdom.Text("Events")),
		hdom.Range(groupNames(events, func(e schema.Event) string { return e.Group }),
			func(group string, _ int) *hdom.Node {
				rows := filterGroup(events, group, func(e schema.Event) string { return e.Group })
				return hdom.Fragment(
					groupHeading(group),
					hdom.Table(
						hdom.Thead(hdom.Tr(
							hdom.Th(hdom.Text("Event")),
							hdom.Th(hdom.Text("Constructor")),
						)),
						hdom.Tbody(hdom.Range(rows, func(e schema.Event, _ int) *hdom.Node {
							return hdom.Tr(
								hdom.Td(hdom.Code(hdom.Text(e.Name))),
								hdom.Td(hdom.Code(hdom.Text(e.Ident+"(handler)"))),
							)
						})),
					),
				)
			}),
	)
}

func groupHeading(group string) *hdom.Node {
	if group == "" {
		return nil
	}
	return hdom.H3(hdom.Text(group))
}

// groupNames returns group names in first-appearance order, matching
// the layout of the generated binding files.
func groupNames[T any](rows []T, groupOf func(T) string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, row := range rows {
		g := groupOf(row)
		if !seen[g] {
			seen[g] = true
			names = append(names, g)
		}
	}
	return names
}

func filterGroup[T any](rows []T, group string, groupOf func(T) string) []T {
	var out []T
	for _, row := range rows {
		if groupOf(row) == group {
			out = append(out, row)
		}
	}
	return out
}

func namespaceLabel(ns string) string {
	switch ns {
	case schema.NamespaceSVG:
		return "SVG"
	case schema.NamespaceMathML:
		return "MathML"
	default:
		return "HTML"
	}
}

func signatureHint(kind string) string {
	switch kind {
	case schema.KindInt:
		return "(int)"
	case schema.KindFloat:
		return "(float64)"
	case schema.KindBool:
		return "(bool)"
	case schema.KindFlag:
		return "()"
	case schema.KindList:
		return "(...string)"
	default:
		return "(string)"
	}
}

// referenceCSS styles the reference page. Kept inline so the preview
// server serves a single self-contained document.
const referenceCSS = `
:root { color-scheme: light dark; }
body { font-family: system-ui, sans-serif; margin: 0; line-height: 1.5; }
main.reference { max-width: 960px; margin: 0 auto; padding: 24px; }
header h1 { margin-bottom: 4px; }
p.summary { color: #666; margin-top: 0; }
nav ul { list-style: none; padding: 0; display: flex; gap: 16px; }
nav a { text-decoration: none; }
table { border-collapse: collapse; width: 100%; margin: 12px 0 28px; }
th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #8884; }
th { font-weight: 600; }
code { font-family: ui-monospace, monospace; font-size: 0.92em; }
h3 { margin-bottom: 0; }
`
