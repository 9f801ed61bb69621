// Package domweave is the public API for the domweave HTML DSL.
//
// This is the recommended import for most applications:
//
//	import "github.com/domweave/domweave"
//
// Usage:
//
//	card := el.Div(el.Class("card"),
//	    el.H1(el.Text("Hello")),
//	    el.Button(el.OnClick(onClick), el.Text("Go")),
//	)
//	b, err := domweave.Mount(doc, doc.Body(), card)
//	defer b.Release()
//
// Trees are plain values: build them with the constructors in el (or
// pkg/hdom), then mount them into a live DOM with Mount or serialize
// them with RenderString.
package domweave

import (
	"github.com/domweave/domweave/pkg/builder"
	"github.com/domweave/domweave/pkg/dom"
	"github.com/domweave/domweave/pkg/hdom"
	"github.com/domweave/domweave/pkg/render"
)

// =============================================================================
// Core types (re-export from pkg/hdom)
// =============================================================================

// Node is a node in the element tree.
type Node = hdom.Node

// Attr is a single element attribute.
type Attr = hdom.Attr

// EventHandler binds a handler to a DOM event.
type EventHandler = hdom.EventHandler

// Component produces a node tree when rendered.
type Component = hdom.Component

// =============================================================================
// Conveniences
// =============================================================================

// Mount builds the node tree under the mount element and returns the
// builder, which holds the registered event listeners. Call Release on
// the builder when tearing the tree down.
func Mount(doc dom.Document, mount dom.Element, node *hdom.Node, opts ...builder.Option) (*builder.Builder, error) {
	b := builder.New(doc, mount, opts...)
	if err := b.BuildTree(node); err != nil {
		b.Release()
		return nil, err
	}
	return b, nil
}

// RenderString serializes the node tree to HTML.
func RenderString(node *hdom.Node) (string, error) {
	return render.NewRenderer(render.RendererConfig{}).RenderToString(node)
}

// RenderPretty serializes the node tree to indented HTML.
func RenderPretty(node *hdom.Node) (string, error) {
	return render.NewRenderer(render.RendererConfig{Pretty: true}).RenderToString(node)
}
