package dom

import (
	"strings"
	"testing"

	"golang.org/x/net/html/atom"
)

const testPage = `<!doctype html><html><body><main><table id="t"><tbody><tr><td>old</td></tr></tbody></table><div id="box">x</div></main></body></html>`

func TestDocument_LookupByIDAndMain(t *testing.T) {
	t.Parallel()

	doc, err := ParseString(testPage)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.ByID("t") == nil {
		t.Fatalf("expected table by id")
	}
	if doc.ByID("missing") != nil {
		t.Fatalf("expected nil for missing id")
	}
	if doc.Main() == nil {
		t.Fatalf("expected main element")
	}
	if FindTag(doc.ByID("t"), atom.Tbody) == nil {
		t.Fatalf("expected tbody inside table")
	}
}

func TestReplace_ClearsPreviousChildren(t *testing.T) {
	t.Parallel()

	doc, err := ParseString(testPage)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	box := doc.ByID("box")
	Replace(box, El(atom.Span, Class("badge"), Text("nuevo")))

	if got := TextContent(box); got != "nuevo" {
		t.Fatalf("unexpected text content: %q", got)
	}
	if len(Children(box)) != 1 {
		t.Fatalf("expected a single child, got %d", len(Children(box)))
	}
}

func TestText_IsEscapedOnRender(t *testing.T) {
	t.Parallel()

	out, err := RenderNode(El(atom.Td, nil, Text(`<script>alert("x")</script>`)))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected escaped output, got %s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("expected entity-escaped script tag, got %s", out)
	}
}
