// Package errors provides structured errors for domweave.
//
// Every user-facing failure carries a stable E-code, a category, and
// optional location, suggestion, and documentation link. Codes are
// registered in registry.go and constructed with New:
//
//	return errors.New("E103").
//	    WithLocation("html.yaml", 42, 0).
//	    WithSuggestion("Remove the duplicate row or rename its ident")
//
// Plumbing-level failures that never reach a user directly are wrapped
// with the standard library's fmt.Errorf("%w") instead.
package errors
