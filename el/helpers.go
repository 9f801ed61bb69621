// This file re-exports hdom helpers for the el package.
package el

import "github.com/domweave/domweave/pkg/hdom"

func IsVoidElement(tag string) bool {
	return hdom.IsVoidElement(tag)
}
func Text(content string) *Node {
	return hdom.Text(content)
}
func Textf(format string, args ...any) *Node {
	return hdom.Textf(format, args...)
}
func Raw(html string) *Node {
	return hdom.Raw(html)
}
func Fragment(children ...any) *Node {
	return hdom.Fragment(children...)
}
func Group(children ...any) *Node {
	return hdom.Group(children...)
}
func If(condition bool, node *Node) *Node {
	return hdom.If(condition, node)
}
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	return hdom.IfElse(condition, ifTrue, ifFalse)
}
func When(condition bool, fn func() *Node) *Node {
	return hdom.When(condition, fn)
}
func Unless(condition bool, node *Node) *Node {
	return hdom.Unless(condition, node)
}
func Switch[T comparable](value T, cases ...Case[T]) *Node {
	return hdom.Switch(value, cases...)
}
func Case_[T comparable](value T, node *Node) Case[T] {
	return hdom.Case_(value, node)
}
func Default[T comparable](node *Node) Case[T] {
	return hdom.Default[T](node)
}
func Range[T any](items []T, fn func(item T, index int) *Node) []*Node {
	return hdom.Range(items, fn)
}
func RangeMap[K comparable, V any](m map[K]V, fn func(key K, value V) *Node) []*Node {
	return hdom.RangeMap(m, fn)
}
func Repeat(n int, fn func(i int) *Node) []*Node {
	return hdom.Repeat(n, fn)
}
func Nothing() *Node {
	return hdom.Nothing()
}
func Either(first, second *Node) *Node {
	return hdom.Either(first, second)
}
func Func(render func() *Node) Component {
	return hdom.Func(render)
}
func CustomElement(tag string, args ...any) *Node {
	return hdom.CustomElement(tag, args...)
}
func CustomElementNS(ns, tag string, args ...any) *Node {
	return hdom.CustomElementNS(ns, tag, args...)
}
func Data(key, value string) Attr {
	return hdom.Data(key, value)
}
func Aria(key, value string) Attr {
	return hdom.Aria(key, value)
}
func Key(key any) Attr {
	return hdom.Key(key)
}
func ClassIf(condition bool, class string) Attr {
	return hdom.ClassIf(condition, class)
}
func AttrIf(condition bool, a Attr) Attr {
	return hdom.AttrIf(condition, a)
}
func Classes(classes ...any) Attr {
	return hdom.Classes(classes...)
}
func On(event string, handler any) EventHandler {
	return hdom.On(event, handler)
}
