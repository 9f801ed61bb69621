package el

import "github.com/domweave/domweave/pkg/hdom"

// Type aliases for the hdom primitives used by the DSL.
type Node = hdom.Node
type NodeKind = hdom.NodeKind
type Props = hdom.Props
type Attr = hdom.Attr
type EventHandler = hdom.EventHandler
type Component = hdom.Component
type Case[T comparable] = hdom.Case[T]
