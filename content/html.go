package content

import (
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromParagraphs renders paragraphs as a sequence of <p> elements.
//
// Text is escaped. Empty paragraphs render as <p><br></p>, so a document made
// of one empty paragraph is exactly EmptyDocument.
func FromParagraphs(paras []string) string {
	if len(paras) == 0 {
		return EmptyDocument
	}
	var sb strings.Builder
	for _, p := range paras {
		if p == "" {
			sb.WriteString(EmptyDocument)
			continue
		}
		sb.WriteString("<p>")
		sb.WriteString(html.EscapeString(p))
		sb.WriteString("</p>")
	}
	return sb.String()
}

var blockAtoms = map[atom.Atom]bool{
	atom.P:          true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Li:         true,
	atom.Div:        true,
	atom.Blockquote: true,
	atom.Pre:        true,
}

// Paragraphs extracts the text of each block in fragment.
//
// Every block element yields at least one paragraph; <br> inside a block
// starts a new line unless it is the block's trailing break. Inline markup is
// flattened to its text. Top-level text outside any block forms its own
// paragraph. The result always has at least one element.
func Paragraphs(fragment string) []string {
	if IsEmpty(fragment) {
		return []string{""}
	}
	ctx := &xhtml.Node{Type: xhtml.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := xhtml.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		// ParseFragment only fails on reader errors.
		return []string{fragment}
	}

	var c collector
	for _, n := range nodes {
		c.walk(n)
	}
	c.flushLoose()
	if len(c.out) == 0 {
		return []string{""}
	}
	return c.out
}

type collector struct {
	out   []string
	loose strings.Builder
}

func (c *collector) walk(n *xhtml.Node) {
	switch n.Type {
	case xhtml.TextNode:
		if strings.TrimSpace(n.Data) != "" {
			c.loose.WriteString(n.Data)
		}
		return
	case xhtml.ElementNode:
		if blockAtoms[n.DataAtom] {
			if hasBlockChild(n) {
				for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
					c.walk(ch)
				}
				return
			}
			c.flushLoose()
			c.out = append(c.out, blockLines(n)...)
			return
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.walk(ch)
	}
}

func (c *collector) flushLoose() {
	if c.loose.Len() == 0 {
		return
	}
	c.out = append(c.out, c.loose.String())
	c.loose.Reset()
}

func hasBlockChild(n *xhtml.Node) bool {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == xhtml.ElementNode && blockAtoms[ch.DataAtom] {
			return true
		}
	}
	return false
}

func blockLines(n *xhtml.Node) []string {
	lines := []string{""}
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			switch {
			case ch.Type == xhtml.TextNode:
				lines[len(lines)-1] += ch.Data
			case ch.Type == xhtml.ElementNode && ch.DataAtom == atom.Br:
				lines = append(lines, "")
			default:
				walk(ch)
			}
		}
	}
	walk(n)
	// A trailing <br> is a placeholder, not a line.
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
