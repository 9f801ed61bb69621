package builder

import (
	"strings"

	"github.com/domweave/domweave/pkg/dom"
)

// elementNamespace resolves the namespace a new element is created in.
// An explicit namespace wins. The svg and math tags switch the subtree
// into their namespace; everything else inherits the creation context.
func elementNamespace(tag, explicit, context string) string {
	if explicit != "" {
		return explicit
	}
	switch tag {
	case "svg":
		return dom.NamespaceSVG
	case "math":
		return dom.NamespaceMathML
	}
	return context
}

// childContext resolves the creation namespace for an element's children.
// foreignObject and annotation-xml host HTML content inside foreign
// subtrees.
func childContext(tag, ns string) string {
	if tag == "foreignObject" && ns == dom.NamespaceSVG {
		return dom.NamespaceHTML
	}
	if tag == "annotation-xml" && ns == dom.NamespaceMathML {
		return dom.NamespaceHTML
	}
	return ns
}

// attrNamespace maps a prefixed attribute name to its namespace URI.
// Returns ok=false for an unknown prefix.
func attrNamespace(name string) (ns string, namespaced, ok bool) {
	switch {
	case strings.HasPrefix(name, "xlink:"):
		return dom.NamespaceXLink, true, true
	case strings.HasPrefix(name, "xml:"):
		return dom.NamespaceXML, true, true
	case name == "xmlns" || strings.HasPrefix(name, "xmlns:"):
		return dom.NamespaceXMLNS, true, true
	case strings.Contains(name, ":"):
		return "", false, false
	}
	return "", false, true
}
