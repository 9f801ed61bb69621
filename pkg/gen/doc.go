// Package gen emits the DSL binding sources from a schema table.
//
// For each schema it renders six files: element, attribute, and event
// constructors for the core node package, plus thin wrappers for the
// facade package. Rendering goes through text/template and go/format,
// so output is always gofmt-clean, and row order follows the schema,
// so output is deterministic byte-for-byte.
package gen
