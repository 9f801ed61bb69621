// Package el provides the HTML-building DSL for domweave.
//
// It re-exports element constructors, attribute helpers, event helpers,
// and common tree utilities from github.com/domweave/domweave/pkg/hdom.
//
// Typical usage:
//
//	import (
//	    "github.com/domweave/domweave/pkg/builder"
//	    . "github.com/domweave/domweave/el"
//	)
//
// This keeps the DSL in a dedicated package while tree construction and
// DOM binding live in hdom and builder.
package el
