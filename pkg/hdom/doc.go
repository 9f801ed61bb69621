// Package hdom provides the typed HTML tree for domweave.
//
// A tree is an immutable description of markup built from variadic
// factory functions. Nodes represent elements, text, fragments,
// components, and raw HTML. Props holds attributes and event handlers;
// Attr and EventHandler are used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// SVG and MathML constructors produce nodes carrying the corresponding
// namespace URI, which the builder uses to create namespaced DOM
// elements.
//
// # Generated bindings
//
// The element, attribute, and event constructors in the *_gen.go files
// are produced by "domweave gen bindings" from an HTML schema. Helpers
// such as Fragment, If, Range, and Classes are hand-written.
//
// Trees are materialized into a live DOM by the builder package.
package hdom
