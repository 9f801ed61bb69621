package builder

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/domweave/domweave/internal/errors"
	"github.com/domweave/domweave/pkg/hdom"
)

// BuildTree materializes an hdom tree under the builder's mount element
// by feeding the op pipeline. Attributes are applied in sorted key order
// so mutation order is deterministic. The one-shot rule applies to the
// walk as a whole: a fragment may mount several sibling roots, and the
// builder is spent once the walk has closed at least one of them.
func (b *Builder) BuildTree(node *hdom.Node) error {
	if node == nil {
		return nil
	}
	if b.done {
		return errors.New("E302").WithDetail("building a tree")
	}

	b.walking = true
	err := b.buildNode(node)
	b.walking = false
	if err != nil {
		return err
	}
	if b.closedRoot && len(b.stack) == 0 {
		b.done = true
	}
	return nil
}

func (b *Builder) buildNode(node *hdom.Node) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case hdom.KindElement:
		return b.buildElement(node)

	case hdom.KindText:
		return b.Text(node.Text)

	case hdom.KindRaw:
		return b.Raw(node.Text)

	case hdom.KindFragment:
		for _, child := range node.Children {
			if err := b.buildNode(child); err != nil {
				return err
			}
		}
		return nil

	case hdom.KindComponent:
		if node.Comp == nil {
			return nil
		}
		return b.buildNode(node.Comp.Render())

	default:
		return errors.New("E308").WithDetail(fmt.Sprintf("node kind %v", node.Kind))
	}
}

func (b *Builder) buildElement(node *hdom.Node) error {
	if err := b.OpenNS(node.Namespace, node.Tag); err != nil {
		return err
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]
		if strings.HasPrefix(key, "on") {
			if err := b.Event(strings.TrimPrefix(key, "on"), value); err != nil {
				return err
			}
			continue
		}

		text, ok := formatAttrValue(value)
		if !ok {
			continue
		}
		if err := b.Attr(key, text); err != nil {
			return err
		}
	}

	for _, child := range node.Children {
		if err := b.buildNode(child); err != nil {
			return err
		}
	}

	return b.Close()
}

// formatAttrValue converts a prop value to its attribute text. Boolean
// false drops the attribute entirely; boolean true emits the bare-attr
// empty value.
func formatAttrValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		if !v {
			return "", false
		}
		return "", true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
