package gen

import "text/template"

// The templates only lay out precomputed rows; go/format normalizes
// whitespace afterwards.

var coreElementsTmpl = template.Must(template.New("core_elements").Parse(
	`{{.Header}}
package {{.Package}}
{{range .Groups}}
// {{.Name}} elements.
{{range .Rows}}
// {{.Doc}}
func {{.Ident}}(args ...any) *Node { return {{.Ctor}}("{{.Tag}}", args) }
{{end}}{{end}}`))

var coreAttributesTmpl = template.Must(template.New("core_attributes").Parse(
	`{{.Header}}
package {{.Package}}
{{if .NeedsJoin}}
import "strings"
{{end}}{{range .Groups}}
// {{.Name}} attributes.
{{range .Rows}}
// {{.Doc}}
func {{.Ident}}{{.Sig}} Attr { return {{.Body}} }
{{end}}{{end}}`))

var coreEventsTmpl = template.Must(template.New("core_events").Parse(
	`{{.Header}}
package {{.Package}}
{{range .Groups}}
// {{.Name}} events.
{{range .Rows}}
// {{.Doc}}
func {{.Ident}}(handler any) EventHandler { return on("{{.Tag}}", handler) }
{{end}}{{end}}`))

var facadeElementsTmpl = template.Must(template.New("facade_elements").Parse(
	`{{.Header}}
package {{.Package}}

import "{{.Import}}"
{{$pkg := .HdomPkg}}{{range .Groups}}
// {{.Name}} elements.
{{range .Rows}}
func {{.Ident}}(args ...any) *Node { return {{$pkg}}.{{.Ident}}(args...) }
{{end}}{{end}}`))

var facadeAttributesTmpl = template.Must(template.New("facade_attributes").Parse(
	`{{.Header}}
package {{.Package}}

import "{{.Import}}"
{{$pkg := .HdomPkg}}{{range .Groups}}
// {{.Name}} attributes.
{{range .Rows}}
func {{.Ident}}{{.Sig}} Attr { return {{$pkg}}.{{.Ident}}{{.CallArgs}} }
{{end}}{{end}}`))

var facadeEventsTmpl = template.Must(template.New("facade_events").Parse(
	`{{.Header}}
package {{.Package}}

import "{{.Import}}"
{{$pkg := .HdomPkg}}{{range .Groups}}
// {{.Name}} events.
{{range .Rows}}
func {{.Ident}}(handler any) EventHandler { return {{$pkg}}.{{.Ident}}(handler) }
{{end}}{{end}}`))
