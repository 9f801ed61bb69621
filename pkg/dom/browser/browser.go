//go:build js && wasm

// Package browser binds the dom interfaces to the host document via
// syscall/js. Every method is a direct pass-through to the corresponding
// browser API.
package browser

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/domweave/domweave/pkg/dom"
)

// Document wraps the browser document object.
type Document struct {
	v js.Value
}

// Default returns the global document.
func Default() *Document {
	return &Document{v: js.Global().Get("document")}
}

// Wrap wraps an arbitrary document value, e.g. an iframe's contentDocument.
func Wrap(v js.Value) *Document {
	return &Document{v: v}
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Element {
	return &element{node{d.v.Call("createElement", tag)}}
}

// CreateElementNS implements dom.Document.
func (d *Document) CreateElementNS(ns, tag string) dom.Element {
	return &element{node{d.v.Call("createElementNS", ns, tag)}}
}

// CreateTextNode implements dom.Document.
func (d *Document) CreateTextNode(text string) dom.Node {
	return &node{d.v.Call("createTextNode", text)}
}

// ElementByID implements dom.Document.
func (d *Document) ElementByID(id string) dom.Element {
	v := d.v.Call("getElementById", id)
	if !v.Truthy() {
		return nil
	}
	return &element{node{v}}
}

// Body returns the document body element.
func (d *Document) Body() dom.Element {
	v := d.v.Get("body")
	if !v.Truthy() {
		return nil
	}
	return &element{node{v}}
}

// jsValuer is implemented by both node kinds so cross-node calls can
// recover the underlying js.Value.
type jsValuer interface {
	jsValue() js.Value
}

func valueOf(n dom.Node) js.Value {
	if n == nil {
		return js.Null()
	}
	if jv, ok := n.(jsValuer); ok {
		return jv.jsValue()
	}
	panic("browser: foreign dom.Node passed to a browser-backed node")
}

// wrapNode wraps a raw js node, returning an *element for element nodes.
func wrapNode(v js.Value) dom.Node {
	if !v.Truthy() {
		return nil
	}
	if v.Get("nodeType").Int() == 1 {
		return &element{node{v}}
	}
	return &node{v}
}

type node struct {
	v js.Value
}

func (n *node) jsValue() js.Value { return n.v }

// AppendChild implements dom.Node.
func (n *node) AppendChild(child dom.Node) {
	n.v.Call("appendChild", valueOf(child))
}

// RemoveChild implements dom.Node.
func (n *node) RemoveChild(child dom.Node) {
	n.v.Call("removeChild", valueOf(child))
}

// InsertBefore implements dom.Node.
func (n *node) InsertBefore(child, ref dom.Node) {
	n.v.Call("insertBefore", valueOf(child), valueOf(ref))
}

// ParentNode implements dom.Node.
func (n *node) ParentNode() dom.Node {
	return wrapNode(n.v.Get("parentNode"))
}

// TextContent implements dom.Node.
func (n *node) TextContent() string {
	return n.v.Get("textContent").String()
}

type element struct {
	node
}

// TagName implements dom.Element.
func (e *element) TagName() string {
	return strings.ToLower(e.v.Get("tagName").String())
}

// NamespaceURI implements dom.Element.
func (e *element) NamespaceURI() string {
	v := e.v.Get("namespaceURI")
	if !v.Truthy() {
		return ""
	}
	return v.String()
}

// SetAttribute implements dom.Element.
func (e *element) SetAttribute(name, value string) {
	e.v.Call("setAttribute", name, value)
}

// SetAttributeNS implements dom.Element.
func (e *element) SetAttributeNS(ns, name, value string) {
	e.v.Call("setAttributeNS", ns, name, value)
}

// GetAttribute implements dom.Element.
func (e *element) GetAttribute(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

// RemoveAttribute implements dom.Element.
func (e *element) RemoveAttribute(name string) {
	e.v.Call("removeAttribute", name)
}

// InsertAdjacentHTML implements dom.Element. A thrown DOM exception
// surfaces as a js.Error panic, converted here to a plain error.
func (e *element) InsertAdjacentHTML(pos dom.Position, markup string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("insertAdjacentHTML: %v", r)
		}
	}()
	e.v.Call("insertAdjacentHTML", string(pos), markup)
	return nil
}

// AddEventListener implements dom.Element. The returned function removes
// the listener and releases the js.Func.
func (e *element) AddEventListener(event string, listener dom.Listener) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			listener(&domEvent{v: args[0]})
		}
		return nil
	})
	e.v.Call("addEventListener", event, cb)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		e.v.Call("removeEventListener", event, cb)
		cb.Release()
	}
}

type domEvent struct {
	v js.Value
}

// Type implements dom.Event.
func (e *domEvent) Type() string {
	return e.v.Get("type").String()
}

// Target implements dom.Event.
func (e *domEvent) Target() dom.Element {
	v := e.v.Get("target")
	if !v.Truthy() {
		return nil
	}
	return &element{node{v}}
}

// PreventDefault implements dom.Event.
func (e *domEvent) PreventDefault() {
	e.v.Call("preventDefault")
}

// StopPropagation implements dom.Event.
func (e *domEvent) StopPropagation() {
	e.v.Call("stopPropagation")
}
