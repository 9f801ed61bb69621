package dom

// Namespace URIs recognized by the builder. These are the values the
// browser expects in createElementNS and setAttributeNS calls.
const (
	NamespaceHTML   = "http://www.w3.org/1999/xhtml"
	NamespaceSVG    = "http://www.w3.org/2000/svg"
	NamespaceMathML = "http://www.w3.org/1998/Math/MathML"
	NamespaceXLink  = "http://www.w3.org/1999/xlink"
	NamespaceXML    = "http://www.w3.org/XML/1998/namespace"
	NamespaceXMLNS  = "http://www.w3.org/2000/xmlns/"
)

// Position is an insertAdjacentHTML insertion point.
type Position string

const (
	BeforeBegin Position = "beforebegin"
	AfterBegin  Position = "afterbegin"
	BeforeEnd   Position = "beforeend"
	AfterEnd    Position = "afterend"
)

// Document is the subset of the browser document used by the builder.
type Document interface {
	// CreateElement creates an element in the HTML namespace.
	CreateElement(tag string) Element

	// CreateElementNS creates an element in the given namespace.
	CreateElementNS(ns, tag string) Element

	// CreateTextNode creates a text node. The text is taken literally;
	// entity decoding happens before this call.
	CreateTextNode(text string) Node

	// ElementByID returns the element with the given id, or nil.
	ElementByID(id string) Element
}

// Node is the subset of the browser Node interface used by the builder.
type Node interface {
	// AppendChild appends child as the last child of this node.
	AppendChild(child Node)

	// RemoveChild detaches child from this node.
	RemoveChild(child Node)

	// InsertBefore inserts child before ref. A nil ref appends.
	InsertBefore(child, ref Node)

	// ParentNode returns the parent, or nil for a detached node.
	ParentNode() Node

	// TextContent returns the concatenated text of this node's subtree.
	TextContent() string
}

// Element is the subset of the browser Element interface used by the builder.
type Element interface {
	Node

	// TagName returns the element's tag name in lower case.
	TagName() string

	// NamespaceURI returns the element's namespace URI.
	NamespaceURI() string

	// SetAttribute sets a non-namespaced attribute.
	SetAttribute(name, value string)

	// SetAttributeNS sets an attribute in the given namespace
	// (xlink:href and friends).
	SetAttributeNS(ns, name, value string)

	// GetAttribute returns an attribute value and whether it is present.
	GetAttribute(name string) (string, bool)

	// RemoveAttribute removes an attribute if present.
	RemoveAttribute(name string)

	// InsertAdjacentHTML parses markup and inserts the resulting nodes
	// at the given position, exactly like the browser API.
	InsertAdjacentHTML(pos Position, markup string) error

	// AddEventListener registers a listener and returns a function that
	// removes it (and releases host resources where that matters).
	AddEventListener(event string, listener Listener) (remove func())
}

// Listener is an event callback.
type Listener func(Event)

// Event is the subset of the browser Event interface exposed to handlers.
type Event interface {
	// Type returns the event type ("click", "input", ...).
	Type() string

	// Target returns the element the event was dispatched on.
	Target() Element

	// PreventDefault cancels the event's default action.
	PreventDefault()

	// StopPropagation stops the event from bubbling further.
	StopPropagation()
}
