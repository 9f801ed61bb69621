// Package render serializes hdom trees to HTML text.
//
// The Renderer walks a tree and writes escaped markup: text and
// attribute values are entity-escaped, Raw nodes bypass escaping, void
// elements emit no closing tag, and boolean attributes are emitted
// bare. Output is deterministic: attributes are written in sorted key
// order.
//
// RenderPage writes a complete document around a body tree; the
// StreamingRenderer flushes the head and body sections separately when
// the destination supports http.Flusher.
//
// Event handlers carried in Props have no textual form and are skipped;
// binding handlers to a live DOM is the builder package's job.
package render
