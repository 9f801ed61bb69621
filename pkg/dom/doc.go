// Package dom defines the document interface the builder mutates.
//
// The interfaces mirror the handful of browser APIs the builder actually
// calls: createElement(NS), createTextNode, appendChild, setAttribute(NS),
// insertAdjacentHTML, and addEventListener. Two implementations ship with
// domweave:
//
//   - dom/browser binds to the real document through syscall/js and only
//     builds for js/wasm targets.
//   - dom/memdom is an in-memory document used by tests and host-side
//     tooling.
package dom
