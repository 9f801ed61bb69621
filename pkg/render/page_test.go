package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/domweave/domweave/pkg/hdom"
)

func TestRenderPage(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Title: "Schema Reference",
		Meta:  map[string]string{"description": "tag bindings"},
		Body:  hdom.Main(hdom.H1(hdom.Text("Reference"))),
	})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	html := buf.String()
	checks := []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		`<meta charset="utf-8">`,
		"<title>Schema Reference</title>",
		`<meta name="description" content="tag bindings">`,
		"<h1>Reference</h1>",
		"</body>",
		"</html>",
	}
	for _, want := range checks {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q:\n%s", want, html)
		}
	}
}

func TestRenderPageAssets(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Lang:         "de",
		StyleSheets:  []string{"/static/app.css"},
		InlineCSS:    "body{margin:0}",
		Scripts:      []string{"/static/app.js"},
		InlineScript: "console.log('ready')",
		Body:         hdom.Div(),
	})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	html := buf.String()
	checks := []string{
		`<html lang="de">`,
		`<link rel="stylesheet" href="/static/app.css">`,
		"<style>body{margin:0}</style>",
		`<script src="/static/app.js" defer></script>`,
		"<script>console.log('ready')</script>",
	}
	for _, want := range checks {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q:\n%s", want, html)
		}
	}
}

func TestRenderPageTitleEscaped(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Title: "<script>bad</script>",
		Body:  hdom.Div(),
	})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if strings.Contains(buf.String(), "<script>bad") {
		t.Error("title must be escaped")
	}
}
