// Package schema loads and validates the declarative binding table
// that drives binding generation.
//
// A table is YAML with three row lists: elements (tag constructors),
// attributes (typed attribute constructors), and events (handler
// constructors). The embedded default table covers the HTML
// living-standard tags plus core SVG and MathML; projects can point
// domweave.json at a custom table instead.
package schema
