package hdom

import "strings"

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	KindElement   NodeKind = iota // <div>, <button>, etc.
	KindText                      // Plain text node
	KindFragment                  // Grouping without wrapper
	KindComponent                 // Nested component
	KindRaw                       // Raw HTML (dangerous)
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Node is a node in the typed HTML tree.
type Node struct {
	Kind      NodeKind // Node type
	Tag       string   // Element tag name (e.g., "div")
	Namespace string   // Namespace URI; empty means HTML
	Props     Props    // Attributes and event handlers
	Children  []*Node  // Child nodes
	Key       string   // Identity key
	Text      string   // For KindText and KindRaw
	Comp      Component
}

// Props holds attributes and event handlers. Event handlers are stored
// under keys with an "on" prefix ("onclick", "oninput", ...).
type Props map[string]any

// HasHandlers returns true if this node has event handlers.
func (n *Node) HasHandlers() bool {
	if n == nil || n.Kind != KindElement {
		return false
	}
	for key := range n.Props {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler binding.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // func(dom.Event) or func()
}

// Component is anything that can render to a Node.
type Component interface {
	Render() *Node
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *Node
}

// Render implements Component.
func (f *FuncComponent) Render() *Node {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *Node) Component {
	return &FuncComponent{render: render}
}
