package builder

// Op is a single event in the build stream. A stream describes a markup
// tree in document order: Open pushes an element, Attr/Event apply to the
// innermost open element, Text/Raw append content, Close pops.
type Op interface {
	op()
}

// OpenOp opens a new element as a child of the innermost open element.
// Namespace overrides the inferred creation namespace when non-empty.
type OpenOp struct {
	Tag       string
	Namespace string
}

// AttrOp sets an attribute on the innermost open element. Names with an
// xlink:, xml:, or xmlns prefix are routed to SetAttributeNS.
type AttrOp struct {
	Name  string
	Value string
}

// EventOp attaches an event listener to the innermost open element.
// Name is the DOM event name without the "on" prefix. Handler must be a
// func(dom.Event) or func().
type EventOp struct {
	Name    string
	Handler any
}

// TextOp appends a text node. The text is entity-decoded before the
// DOM node is created.
type TextOp struct {
	Text string
}

// RawOp injects a raw HTML fragment via insertAdjacentHTML. The fragment
// bypasses escaping; a sanitizer policy can be applied per builder.
type RawOp struct {
	HTML string
}

// CloseOp closes the innermost open element.
type CloseOp struct{}

func (OpenOp) op()  {}
func (AttrOp) op()  {}
func (EventOp) op() {}
func (TextOp) op()  {}
func (RawOp) op()   {}
func (CloseOp) op() {}
