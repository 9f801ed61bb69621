// Package memdom is an in-memory implementation of the dom interfaces.
//
// It exists so the builder can run and be tested off-browser: tests mount
// into a memdom document and assert on the resulting tree or its serialized
// HTML. Raw HTML injection is backed by the golang.org/x/net/html parser,
// so insertAdjacentHTML behaves like the browser's fragment parsing.
package memdom

import (
	"fmt"
	"strings"

	"github.com/domweave/domweave/pkg/dom"
)

// Document is an in-memory document rooted at a body element.
type Document struct {
	body *Element
}

// New creates an empty document.
func New() *Document {
	return &Document{
		body: &Element{tag: "body", ns: dom.NamespaceHTML},
	}
}

// Body returns the document's body element.
func (d *Document) Body() *Element {
	return d.body
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Element {
	return &Element{tag: strings.ToLower(tag), ns: dom.NamespaceHTML}
}

// CreateElementNS implements dom.Document.
func (d *Document) CreateElementNS(ns, tag string) dom.Element {
	return &Element{tag: strings.ToLower(tag), ns: ns}
}

// CreateTextNode implements dom.Document.
func (d *Document) CreateTextNode(text string) dom.Node {
	return &Text{data: text}
}

// ElementByID implements dom.Document.
func (d *Document) ElementByID(id string) dom.Element {
	return findByID(d.body, id)
}

func findByID(e *Element, id string) dom.Element {
	if v, ok := e.GetAttribute("id"); ok && v == id {
		return e
	}
	for _, child := range e.children {
		if ce, ok := child.(*Element); ok {
			if found := findByID(ce, id); found != nil {
				return found
			}
		}
	}
	return nil
}

// parentSetter is implemented by memdom node types.
type parentSetter interface {
	setParent(dom.Node)
}

type attribute struct {
	ns    string
	name  string
	value string
}

type listenerEntry struct {
	id int
	fn dom.Listener
}

// Element is an in-memory element node.
type Element struct {
	tag        string
	ns         string
	attrs      []attribute
	children   []dom.Node
	parent     dom.Node
	listeners  map[string][]listenerEntry
	listenerID int
}

func (e *Element) setParent(p dom.Node) { e.parent = p }

// TagName implements dom.Element.
func (e *Element) TagName() string { return e.tag }

// NamespaceURI implements dom.Element.
func (e *Element) NamespaceURI() string { return e.ns }

// ChildNodes returns a copy of the child list.
func (e *Element) ChildNodes() []dom.Node {
	out := make([]dom.Node, len(e.children))
	copy(out, e.children)
	return out
}

// AppendChild implements dom.Node. Appending a node that already has a
// parent moves it, matching browser semantics.
func (e *Element) AppendChild(child dom.Node) {
	detach(child)
	e.children = append(e.children, child)
	if ps, ok := child.(parentSetter); ok {
		ps.setParent(e)
	}
}

// RemoveChild implements dom.Node.
func (e *Element) RemoveChild(child dom.Node) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			if ps, ok := child.(parentSetter); ok {
				ps.setParent(nil)
			}
			return
		}
	}
}

// InsertBefore implements dom.Node. A nil ref appends.
func (e *Element) InsertBefore(child, ref dom.Node) {
	if ref == nil {
		e.AppendChild(child)
		return
	}
	detach(child)
	for i, c := range e.children {
		if c == ref {
			e.children = append(e.children[:i], append([]dom.Node{child}, e.children[i:]...)...)
			if ps, ok := child.(parentSetter); ok {
				ps.setParent(e)
			}
			return
		}
	}
	e.AppendChild(child)
}

// ParentNode implements dom.Node.
func (e *Element) ParentNode() dom.Node { return e.parent }

// TextContent implements dom.Node.
func (e *Element) TextContent() string {
	var b strings.Builder
	for _, c := range e.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// SetAttribute implements dom.Element.
func (e *Element) SetAttribute(name, value string) {
	e.setAttr("", name, value)
}

// SetAttributeNS implements dom.Element.
func (e *Element) SetAttributeNS(ns, name, value string) {
	e.setAttr(ns, name, value)
}

func (e *Element) setAttr(ns, name, value string) {
	for i := range e.attrs {
		if e.attrs[i].name == name && e.attrs[i].ns == ns {
			e.attrs[i].value = value
			return
		}
	}
	e.attrs = append(e.attrs, attribute{ns: ns, name: name, value: value})
}

// GetAttribute implements dom.Element. Lookup ignores the namespace,
// matching getAttribute's qualified-name behavior closely enough for tests.
func (e *Element) GetAttribute(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// RemoveAttribute implements dom.Element.
func (e *Element) RemoveAttribute(name string) {
	for i, a := range e.attrs {
		if a.name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// AddEventListener implements dom.Element.
func (e *Element) AddEventListener(event string, listener dom.Listener) func() {
	if e.listeners == nil {
		e.listeners = make(map[string][]listenerEntry)
	}
	e.listenerID++
	id := e.listenerID
	e.listeners[event] = append(e.listeners[event], listenerEntry{id: id, fn: listener})

	return func() {
		entries := e.listeners[event]
		for i, entry := range entries {
			if entry.id == id {
				e.listeners[event] = append(entries[:i], entries[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of listeners for an event type.
func (e *Element) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// Dispatch fires an event of the given type at this element and bubbles
// it up the parent chain. It returns the event so tests can inspect it.
func (e *Element) Dispatch(eventType string) *Event {
	ev := &Event{typ: eventType, target: e}
	for node := dom.Node(e); node != nil; node = node.ParentNode() {
		el, ok := node.(*Element)
		if !ok {
			break
		}
		for _, entry := range el.listeners[eventType] {
			entry.fn(ev)
		}
		if ev.stopped {
			break
		}
	}
	return ev
}

// InsertAdjacentHTML implements dom.Element. The markup is parsed with the
// x/net/html fragment parser in this element's context.
func (e *Element) InsertAdjacentHTML(pos dom.Position, markup string) error {
	switch pos {
	case dom.BeforeBegin, dom.AfterEnd:
		parent, ok := e.parent.(*Element)
		if !ok {
			return fmt.Errorf("insertAdjacentHTML: %s on a node with no parent element", pos)
		}
		nodes, err := parseFragment(parent, markup)
		if err != nil {
			return err
		}
		if pos == dom.BeforeBegin {
			for _, n := range nodes {
				parent.InsertBefore(n, e)
			}
			return nil
		}
		ref := parent.nextSibling(e)
		for _, n := range nodes {
			parent.InsertBefore(n, ref)
		}
		return nil

	case dom.AfterBegin, dom.BeforeEnd:
		nodes, err := parseFragment(e, markup)
		if err != nil {
			return err
		}
		if pos == dom.AfterBegin {
			var ref dom.Node
			if len(e.children) > 0 {
				ref = e.children[0]
			}
			for _, n := range nodes {
				e.InsertBefore(n, ref)
			}
			return nil
		}
		for _, n := range nodes {
			e.AppendChild(n)
		}
		return nil

	default:
		return fmt.Errorf("insertAdjacentHTML: invalid position %q", pos)
	}
}

// nextSibling returns the child following ref, or nil.
func (e *Element) nextSibling(ref dom.Node) dom.Node {
	for i, c := range e.children {
		if c == ref && i+1 < len(e.children) {
			return e.children[i+1]
		}
	}
	return nil
}

func detach(n dom.Node) {
	if p := n.ParentNode(); p != nil {
		p.RemoveChild(n)
	}
}

// Text is an in-memory text node.
type Text struct {
	data   string
	parent dom.Node
}

func (t *Text) setParent(p dom.Node) { t.parent = p }

// Data returns the text content.
func (t *Text) Data() string { return t.data }

// AppendChild implements dom.Node. Text nodes have no children.
func (t *Text) AppendChild(dom.Node) {}

// RemoveChild implements dom.Node.
func (t *Text) RemoveChild(dom.Node) {}

// InsertBefore implements dom.Node.
func (t *Text) InsertBefore(dom.Node, dom.Node) {}

// ParentNode implements dom.Node.
func (t *Text) ParentNode() dom.Node { return t.parent }

// TextContent implements dom.Node.
func (t *Text) TextContent() string { return t.data }

// Event is the memdom dom.Event implementation.
type Event struct {
	typ       string
	target    dom.Element
	stopped   bool
	prevented bool
}

// Type implements dom.Event.
func (e *Event) Type() string { return e.typ }

// Target implements dom.Event.
func (e *Event) Target() dom.Element { return e.target }

// PreventDefault implements dom.Event.
func (e *Event) PreventDefault() { e.prevented = true }

// StopPropagation implements dom.Event.
func (e *Event) StopPropagation() { e.stopped = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.prevented }
