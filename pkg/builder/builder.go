package builder

import (
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/domweave/domweave/internal/errors"
	"github.com/domweave/domweave/pkg/dom"
	"github.com/domweave/domweave/pkg/hdom"
)

// Builder translates a stream of ops into live DOM mutations under a
// mount element. Translation is one-shot: once the root element closes
// (or a tree walk finishes), the builder is spent and further ops fail.
type Builder struct {
	doc   dom.Document
	mount dom.Element

	stack      []frame
	done       bool
	walking    bool
	closedRoot bool

	sanitizer *bluemonday.Policy
	removers  []func()
}

type frame struct {
	el      dom.Element
	tag     string
	context string // creation namespace for children
}

// Option configures a Builder.
type Option func(*Builder)

// WithSanitizer applies a bluemonday policy to every raw HTML fragment
// before injection. Without it, Raw is the unsafe escape hatch.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(b *Builder) {
		b.sanitizer = policy
	}
}

// New creates a Builder that mutates the DOM under mount.
func New(doc dom.Document, mount dom.Element, opts ...Option) *Builder {
	b := &Builder{
		doc:   doc,
		mount: mount,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Open creates an element and pushes it as the insertion point.
func (b *Builder) Open(tag string) error {
	return b.OpenNS("", tag)
}

// OpenNS creates an element in an explicit namespace and pushes it.
// An empty namespace infers from the surrounding context.
func (b *Builder) OpenNS(ns, tag string) error {
	if b.done {
		return errors.New("E302").WithDetail("opening <" + tag + ">")
	}
	if err := b.checkVoidParent("<" + tag + ">"); err != nil {
		return err
	}

	elNS := elementNamespace(tag, ns, b.context())

	var el dom.Element
	if elNS == dom.NamespaceHTML {
		el = b.doc.CreateElement(tag)
	} else {
		el = b.doc.CreateElementNS(elNS, tag)
	}

	b.target().AppendChild(el)
	b.stack = append(b.stack, frame{
		el:      el,
		tag:     tag,
		context: childContext(tag, elNS),
	})
	return nil
}

// Attr sets an attribute on the innermost open element.
func (b *Builder) Attr(name, value string) error {
	if b.done {
		return errors.New("E302").WithDetail("setting attribute " + name)
	}
	if len(b.stack) == 0 {
		return errors.New("E303").WithDetail("attribute " + name)
	}

	ns, namespaced, ok := attrNamespace(name)
	if !ok {
		return errors.New("E307").WithDetail("attribute " + name)
	}

	el := b.top().el
	if namespaced {
		el.SetAttributeNS(ns, name, value)
	} else {
		el.SetAttribute(name, value)
	}
	return nil
}

// Event attaches a listener to the innermost open element. Handler must
// be a func(dom.Event) or func().
func (b *Builder) Event(name string, handler any) error {
	if b.done {
		return errors.New("E302").WithDetail("attaching " + name + " listener")
	}
	if len(b.stack) == 0 {
		return errors.New("E303").WithDetail("event " + name)
	}

	listener, err := asListener(name, handler)
	if err != nil {
		return err
	}
	remove := b.top().el.AddEventListener(name, listener)
	b.removers = append(b.removers, remove)
	return nil
}

// Text appends an entity-decoded text node at the insertion point.
func (b *Builder) Text(text string) error {
	if b.done {
		return errors.New("E302").WithDetail("appending text")
	}
	if err := b.checkVoidParent("text content"); err != nil {
		return err
	}

	b.target().AppendChild(b.doc.CreateTextNode(html.UnescapeString(text)))
	return nil
}

// Raw injects an HTML fragment at the insertion point, sanitized when a
// policy is configured.
func (b *Builder) Raw(markup string) error {
	if b.done {
		return errors.New("E302").WithDetail("injecting raw HTML")
	}
	if err := b.checkVoidParent("raw HTML"); err != nil {
		return err
	}

	if b.sanitizer != nil {
		markup = b.sanitizer.Sanitize(markup)
	}
	if err := b.target().InsertAdjacentHTML(dom.BeforeEnd, markup); err != nil {
		return errors.New("E306").Wrap(err)
	}
	return nil
}

// Close pops the innermost open element. Closing the last element
// finishes the build.
func (b *Builder) Close() error {
	if b.done {
		return errors.New("E302").WithDetail("closing an element")
	}
	if len(b.stack) == 0 {
		return errors.New("E301")
	}

	b.stack = b.stack[:len(b.stack)-1]
	if len(b.stack) == 0 {
		b.closedRoot = true
		// A tree walk may mount sibling roots; BuildTree seals the
		// builder when the whole walk finishes.
		if !b.walking {
			b.done = true
		}
	}
	return nil
}

// Do applies a stream of ops, stopping at the first failure.
func (b *Builder) Do(ops ...Op) error {
	for _, op := range ops {
		var err error
		switch v := op.(type) {
		case OpenOp:
			err = b.OpenNS(v.Namespace, v.Tag)
		case AttrOp:
			err = b.Attr(v.Name, v.Value)
		case EventOp:
			err = b.Event(v.Name, v.Handler)
		case TextOp:
			err = b.Text(v.Text)
		case RawOp:
			err = b.Raw(v.HTML)
		case CloseOp:
			err = b.Close()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Release removes every listener this builder attached. After Release
// the built tree no longer reacts to events.
func (b *Builder) Release() {
	for _, remove := range b.removers {
		remove()
	}
	b.removers = nil
}

// target is the node new content is appended to.
func (b *Builder) target() dom.Element {
	if len(b.stack) == 0 {
		return b.mount
	}
	return b.top().el
}

func (b *Builder) top() *frame {
	return &b.stack[len(b.stack)-1]
}

// context is the creation namespace at the insertion point.
func (b *Builder) context() string {
	if len(b.stack) == 0 {
		return dom.NamespaceHTML
	}
	return b.top().context
}

func (b *Builder) checkVoidParent(what string) error {
	if len(b.stack) == 0 {
		return nil
	}
	top := b.top()
	if top.context == dom.NamespaceHTML && hdom.IsVoidElement(top.tag) {
		return errors.New("E304").WithDetail(what + " inside <" + top.tag + ">")
	}
	return nil
}

// asListener normalizes the supported handler shapes to a dom.Listener.
func asListener(name string, handler any) (dom.Listener, error) {
	switch h := handler.(type) {
	case func(dom.Event):
		return h, nil
	case dom.Listener:
		return h, nil
	case func():
		return func(dom.Event) { h() }, nil
	default:
		return nil, errors.New("E305").
			WithDetail(fmt.Sprintf("%s handler has type %T", name, handler)).
			WithSuggestion("Use func(dom.Event) or func() as the handler")
	}
}
