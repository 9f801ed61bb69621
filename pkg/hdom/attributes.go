package hdom

import (
	"fmt"
	"sort"
	"strings"
)

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// on creates an EventHandler for the given event name.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func on(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Aria creates an aria-* attribute for the states the generated bindings
// do not cover.
func Aria(key, value string) Attr { return attr("aria-"+key, value) }

// Key creates a key attribute used for node identity.
// The key is converted to a string using fmt.Sprintf.
func Key(key any) Attr {
	return attr("key", fmt.Sprintf("%v", key))
}

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return attr("class", class)
	}
	return Attr{} // Empty attr, will be ignored
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Classes merges multiple class values.
// Accepts string, []string, and map[string]bool.
func Classes(classes ...any) Attr {
	var result []string
	for _, c := range classes {
		switch v := c.(type) {
		case string:
			if v != "" {
				result = append(result, v)
			}
		case []string:
			for _, s := range v {
				if s != "" {
					result = append(result, s)
				}
			}
		case map[string]bool:
			// Sorted so the emitted class list is stable across runs.
			var included []string
			for class, include := range v {
				if include && class != "" {
					included = append(included, class)
				}
			}
			sort.Strings(included)
			result = append(result, included...)
		}
	}
	return attr("class", strings.Join(result, " "))
}

// On creates a handler for an event the generated bindings do not cover.
func On(event string, handler any) EventHandler {
	return on(event, handler)
}
