package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/domweave/domweave/pkg/hdom"
)

// PageData describes a complete HTML document.
type PageData struct {
	// Lang is the html element language. Defaults to "en".
	Lang string

	// Title is the document title.
	Title string

	// Meta holds name -> content meta tags.
	Meta map[string]string

	// StyleSheets are external stylesheet URLs.
	StyleSheets []string

	// InlineCSS is embedded in a style element when non-empty.
	InlineCSS string

	// Scripts are external script URLs, loaded deferred.
	Scripts []string

	// InlineScript is embedded in a script element when non-empty.
	// Used by the preview server to inject the live-reload client.
	InlineScript string

	// Body is the document body content.
	Body *hdom.Node
}

// RenderPage writes a complete HTML document.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "<html lang=\"%s\">\n", escapeAttr(lang)); err != nil {
		return err
	}

	if err := r.renderHead(w, page); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "<body>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	if page.InlineScript != "" {
		if _, err := fmt.Fprintf(w, "<script>%s</script>\n", page.InlineScript); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	if _, err := io.WriteString(w, "<head>\n<meta charset=\"utf-8\">\n"); err != nil {
		return err
	}

	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", escapeText(page.Title)); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(page.Meta))
	for name := range page.Meta {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		_, err := fmt.Fprintf(w, "<meta name=\"%s\" content=\"%s\">\n",
			escapeAttr(name), escapeAttr(page.Meta[name]))
		if err != nil {
			return err
		}
	}

	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, "<link rel=\"stylesheet\" href=\"%s\">\n", escapeAttr(href)); err != nil {
			return err
		}
	}
	if page.InlineCSS != "" {
		if _, err := fmt.Fprintf(w, "<style>%s</style>\n", page.InlineCSS); err != nil {
			return err
		}
	}
	for _, src := range page.Scripts {
		if _, err := fmt.Fprintf(w, "<script src=\"%s\" defer></script>\n", escapeAttr(src)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</head>\n")
	return err
}
