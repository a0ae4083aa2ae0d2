// Package dom is a small element-tree toolkit over golang.org/x/net/html.
//
// Renderers build children with El and Text only; text is always stored as
// a text node, so html.Render escapes every record field on output.
package dom

import (
	"io"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, crerr.Wrap(err, "parse html document")
	}
	return &Document{root: root}, nil
}

func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func (d *Document) Root() *html.Node {
	if d == nil {
		return nil
	}
	return d.root
}

// ByID returns the first element with the given id, or nil.
func (d *Document) ByID(id string) *html.Node {
	return FindFirst(d.Root(), func(n *html.Node) bool {
		return n.Type == html.ElementNode && Attr(n, "id") == id
	})
}

// Main returns the first <main> element, or nil.
func (d *Document) Main() *html.Node {
	return FindTag(d.Root(), atom.Main)
}

func (d *Document) Render(w io.Writer) error {
	if d == nil || d.root == nil {
		return crerr.New("render nil document")
	}
	return html.Render(w, d.root)
}

// FindFirst walks the subtree depth-first and returns the first match.
func FindFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n == nil {
		return nil
	}
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

// FindTag returns the first descendant element (or n itself) with the given tag.
func FindTag(n *html.Node, tag atom.Atom) *html.Node {
	return FindFirst(n, func(c *html.Node) bool {
		return c.Type == html.ElementNode && c.DataAtom == tag
	})
}

// Children returns the direct element children of n.
func Children(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	out := make([]*html.Node, 0, 4)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// TextContent concatenates all text below n.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

// Clear detaches every child of n.
func Clear(n *html.Node) {
	if n == nil {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

// Replace clears n and appends children in order.
func Replace(n *html.Node, children ...*html.Node) {
	Clear(n)
	Append(n, children...)
}

func Append(n *html.Node, children ...*html.Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		n.AppendChild(c)
	}
}

// El builds an element. attrs are key/value pairs.
func El(tag atom.Atom, attrs []string, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: tag,
		Data:     tag.String(),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	Append(n, children...)
	return n
}

func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Class is shorthand for a single class attribute.
func Class(name string) []string {
	return []string{"class", name}
}

// RenderNode serialises one node and its subtree.
func RenderNode(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", crerr.Wrap(err, "render node")
	}
	return b.String(), nil
}
