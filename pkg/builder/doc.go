// Package builder translates markup event streams into live DOM
// mutations.
//
// A Builder is bound to a dom.Document and a mount element. Ops (Open,
// Attr, Event, Text, Raw, Close) map one-to-one onto the browser calls
// createElement, setAttribute, addEventListener, createTextNode, and
// insertAdjacentHTML. BuildTree feeds an hdom tree through the same
// pipeline.
//
// The builder tracks the creation namespace: an svg or math element
// switches its subtree into the SVG or MathML namespace, foreignObject
// and annotation-xml switch back to HTML, and xlink:/xml:/xmlns
// attributes are routed through setAttributeNS. Text content is
// entity-decoded exactly once before the text node is created.
//
// Translation is one-shot and one-directional. There is no diffing and
// no reconciliation: once the root element closes, the builder is spent.
package builder
