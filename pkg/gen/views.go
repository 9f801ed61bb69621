package gen

import (
	"fmt"
	"strings"

	"github.com/domweave/domweave/pkg/schema"
)

// fileData is the root template context for every generated file.
type fileData struct {
	Header     string
	Package    string
	Import     string // hdom import path, facade files only
	HdomPkg    string // package selector for facade calls
	NeedsJoin  bool   // attributes file imports strings for list kinds
	Groups     []groupData
}

type groupData struct {
	Name string
	Rows []rowData
}

// rowData carries one precomputed constructor. Templates only do
// layout; all naming and signature logic lives here.
type rowData struct {
	Ident    string
	Doc      string
	Sig      string // parameter list, attributes only
	Body     string // return expression, core files
	CallArgs string // argument list, facade files
	Tag      string
	Ctor     string // createElement / svgElement / mathElement
}

// elementsData groups element rows in schema order.
func (g *Generator) elementsData(pkg string) fileData {
	data := fileData{
		Header:  g.header(),
		Package: pkg,
		Import:  g.opts.HdomImportPath,
		HdomPkg: importBase(g.opts.HdomImportPath),
	}

	grouped := groupRows(len(g.schema.Elements), func(i int) string {
		return elementGroupName(g.schema.Elements[i])
	}, func(i int) rowData {
		el := g.schema.Elements[i]
		return rowData{
			Ident: el.Ident,
			Doc:   elementDoc(el),
			Tag:   el.Tag,
			Ctor:  elementCtor(el),
		}
	})
	data.Groups = grouped
	return data
}

// attributesData groups attribute rows in schema order.
func (g *Generator) attributesData(pkg string) fileData {
	data := fileData{
		Header:  g.header(),
		Package: pkg,
		Import:  g.opts.HdomImportPath,
		HdomPkg: importBase(g.opts.HdomImportPath),
	}

	for _, a := range g.schema.Attributes {
		if a.Kind == schema.KindList {
			data.NeedsJoin = true
			break
		}
	}

	data.Groups = groupRows(len(g.schema.Attributes), func(i int) string {
		return attrGroupName(g.schema.Attributes[i])
	}, func(i int) rowData {
		a := g.schema.Attributes[i]
		return rowData{
			Ident:    a.Ident,
			Doc:      attrDoc(a),
			Sig:      attrSig(a.Kind),
			Body:     attrBody(a),
			CallArgs: attrCallArgs(a.Kind),
		}
	})
	return data
}

// eventsData groups event rows in schema order.
func (g *Generator) eventsData(pkg string) fileData {
	data := fileData{
		Header:  g.header(),
		Package: pkg,
		Import:  g.opts.HdomImportPath,
		HdomPkg: importBase(g.opts.HdomImportPath),
	}

	data.Groups = groupRows(len(g.schema.Events), func(i int) string {
		return eventGroupName(g.schema.Events[i])
	}, func(i int) rowData {
		ev := g.schema.Events[i]
		return rowData{
			Ident: ev.Ident,
			Doc:   fmt.Sprintf("%s handles %q events.", ev.Ident, ev.Name),
			Tag:   ev.Name,
		}
	})
	return data
}

// groupRows buckets rows by group name, preserving first-appearance
// order of groups and schema order within each group.
func groupRows(n int, groupOf func(int) string, rowOf func(int) rowData) []groupData {
	var groups []groupData
	index := make(map[string]int)

	for i := 0; i < n; i++ {
		name := groupOf(i)
		gi, ok := index[name]
		if !ok {
			gi = len(groups)
			index[name] = gi
			groups = append(groups, groupData{Name: name})
		}
		groups[gi].Rows = append(groups[gi].Rows, rowOf(i))
	}
	return groups
}

func elementGroupName(el schema.Element) string {
	if el.Group != "" {
		return el.Group
	}
	return "Other"
}

func attrGroupName(a schema.Attribute) string {
	if a.Group != "" {
		return a.Group
	}
	return "Other"
}

func eventGroupName(ev schema.Event) string {
	if ev.Group != "" {
		return ev.Group
	}
	return "Other"
}

func elementCtor(el schema.Element) string {
	switch el.Namespace {
	case schema.NamespaceSVG:
		return "svgElement"
	case schema.NamespaceMathML:
		return "mathElement"
	}
	return "createElement"
}

func elementDoc(el schema.Element) string {
	switch el.Namespace {
	case schema.NamespaceSVG:
		return fmt.Sprintf("%s creates an SVG <%s> element.", el.Ident, el.Tag)
	case schema.NamespaceMathML:
		return fmt.Sprintf("%s creates a MathML <%s> element.", el.Ident, el.Tag)
	}
	if el.Void {
		return fmt.Sprintf("%s creates a void <%s> element.", el.Ident, el.Tag)
	}
	return fmt.Sprintf("%s creates a <%s> element.", el.Ident, el.Tag)
}

func attrDoc(a schema.Attribute) string {
	key := a.AttrKeyWithNamespace()
	if a.Kind == schema.KindFlag {
		return fmt.Sprintf("%s sets the boolean %q attribute.", a.Ident, key)
	}
	return fmt.Sprintf("%s sets the %q attribute.", a.Ident, key)
}

func attrSig(kind string) string {
	switch kind {
	case schema.KindInt:
		return "(value int)"
	case schema.KindFloat:
		return "(value float64)"
	case schema.KindBool:
		return "(value bool)"
	case schema.KindFlag:
		return "()"
	case schema.KindList:
		return "(values ...string)"
	}
	return "(value string)"
}

func attrCallArgs(kind string) string {
	switch kind {
	case schema.KindFlag:
		return "()"
	case schema.KindList:
		return "(values...)"
	}
	return "(value)"
}

func attrBody(a schema.Attribute) string {
	key := a.AttrKeyWithNamespace()
	switch a.Kind {
	case schema.KindFlag:
		return fmt.Sprintf("attr(%q, true)", key)
	case schema.KindList:
		return fmt.Sprintf(`attr(%q, strings.Join(values, " "))`, key)
	}
	return fmt.Sprintf("attr(%q, value)", key)
}

func importBase(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
