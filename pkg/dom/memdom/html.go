package memdom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/domweave/domweave/pkg/dom"
)

// parseFragment parses markup in the context of the given element, the way
// the browser's fragment parser would, and returns the resulting nodes.
func parseFragment(ctx *Element, markup string) ([]dom.Node, error) {
	ctxNode := &html.Node{
		Type:     html.ElementNode,
		Data:     ctx.tag,
		DataAtom: atom.Lookup([]byte(ctx.tag)),
	}
	switch ctx.ns {
	case dom.NamespaceSVG:
		ctxNode.Namespace = "svg"
	case dom.NamespaceMathML:
		ctxNode.Namespace = "math"
	}

	parsed, err := html.ParseFragment(strings.NewReader(markup), ctxNode)
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}

	var out []dom.Node
	for _, n := range parsed {
		if converted := fromHTMLNode(n); converted != nil {
			out = append(out, converted)
		}
	}
	return out, nil
}

// fromHTMLNode converts an x/net/html node tree to memdom nodes.
// Comments and doctypes are dropped.
func fromHTMLNode(n *html.Node) dom.Node {
	switch n.Type {
	case html.TextNode:
		return &Text{data: n.Data}

	case html.ElementNode:
		el := &Element{tag: n.Data, ns: namespaceURI(n.Namespace)}
		for _, a := range n.Attr {
			el.setAttr(attrNamespaceURI(a.Namespace), a.Key, a.Val)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := fromHTMLNode(c); child != nil {
				el.AppendChild(child)
			}
		}
		return el

	default:
		return nil
	}
}

// namespaceURI maps the parser's namespace prefix to a namespace URI.
func namespaceURI(prefix string) string {
	switch prefix {
	case "svg":
		return dom.NamespaceSVG
	case "math":
		return dom.NamespaceMathML
	default:
		return dom.NamespaceHTML
	}
}

// attrNamespaceURI maps an attribute namespace prefix to its URI.
func attrNamespaceURI(prefix string) string {
	switch prefix {
	case "xlink":
		return dom.NamespaceXLink
	case "xml":
		return dom.NamespaceXML
	case "xmlns":
		return dom.NamespaceXMLNS
	default:
		return ""
	}
}

// toHTMLNode converts a memdom node to an x/net/html node for rendering.
func toHTMLNode(n dom.Node) *html.Node {
	switch v := n.(type) {
	case *Text:
		return &html.Node{Type: html.TextNode, Data: v.data}

	case *Element:
		out := &html.Node{
			Type:     html.ElementNode,
			Data:     v.tag,
			DataAtom: atom.Lookup([]byte(v.tag)),
		}
		switch v.ns {
		case dom.NamespaceSVG:
			out.Namespace = "svg"
		case dom.NamespaceMathML:
			out.Namespace = "math"
		}
		for _, a := range v.attrs {
			out.Attr = append(out.Attr, html.Attribute{
				Namespace: attrPrefix(a.ns),
				Key:       a.name,
				Val:       a.value,
			})
		}
		for _, c := range v.children {
			if hc := toHTMLNode(c); hc != nil {
				out.AppendChild(hc)
			}
		}
		return out

	default:
		return nil
	}
}

// attrPrefix maps an attribute namespace URI back to the parser prefix.
func attrPrefix(ns string) string {
	switch ns {
	case dom.NamespaceXLink:
		return "xlink"
	case dom.NamespaceXML:
		return "xml"
	case dom.NamespaceXMLNS:
		return "xmlns"
	default:
		return ""
	}
}

// OuterHTML serializes the element and its subtree.
func (e *Element) OuterHTML() string {
	var b strings.Builder
	if err := html.Render(&b, toHTMLNode(e)); err != nil {
		return ""
	}
	return b.String()
}

// InnerHTML serializes the element's children.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	for _, c := range e.children {
		hn := toHTMLNode(c)
		if hn == nil {
			continue
		}
		if err := html.Render(&b, hn); err != nil {
			return ""
		}
	}
	return b.String()
}
