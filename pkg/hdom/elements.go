package hdom

import "github.com/domweave/domweave/pkg/dom"

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new Node with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *Node, []*Node, Component, string,
// EventHandler.
func createElement(tag string, args []any) *Node {
	return createElementNS("", tag, args)
}

// createElementNS creates a new Node in the given namespace.
func createElementNS(ns, tag string, args []any) *Node {
	node := &Node{
		Kind:      KindElement,
		Tag:       tag,
		Namespace: ns,
		Props:     make(Props),
		Children:  make([]*Node, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			node.applyAttr(v)

		case []Attr:
			for _, a := range v {
				node.applyAttr(a)
			}

		case *Node:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*Node:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case Component:
			node.Children = append(node.Children, &Node{
				Kind: KindComponent,
				Comp: v,
			})

		case string:
			// Shorthand for text node
			node.Children = append(node.Children, &Node{
				Kind: KindText,
				Text: v,
			})

		case EventHandler:
			node.Props[v.Event] = v.Handler
		}
	}

	return node
}

// applyAttr stores an attribute, routing the key attribute to Node.Key.
func (n *Node) applyAttr(a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			n.Key = s
		}
		return
	}
	n.Props[a.Key] = a.Value
}

// CustomElement creates an element with a custom tag name.
func CustomElement(tag string, args ...any) *Node {
	return createElement(tag, args)
}

// CustomElementNS creates an element with a custom tag in a namespace.
func CustomElementNS(ns, tag string, args ...any) *Node {
	return createElementNS(ns, tag, args)
}

// svgElement is the constructor used by generated SVG bindings.
func svgElement(tag string, args []any) *Node {
	return createElementNS(dom.NamespaceSVG, tag, args)
}

// mathElement is the constructor used by generated MathML bindings.
func mathElement(tag string, args []any) *Node {
	return createElementNS(dom.NamespaceMathML, tag, args)
}
