// Package normalize turns raw posting content into clean text and, for
// markup input, recovers whatever metadata the page head carries.
package normalize

import (
	"strings"

	"golang.org/x/net/html"
)

// CleanText strips markup and collapses whitespace so downstream extractors
// see blank-line-separated paragraphs. Plain-text input is only whitespace
// normalized. Malformed markup never raises: when parsing fails, the input
// is returned unchanged.
func CleanText(content string, markup bool) string {
	if !markup {
		return normalizeWhitespace(content)
	}
	node, err := html.Parse(strings.NewReader(content))
	if err != nil || node == nil {
		return content
	}
	root := findFirst(node, "body")
	if root == nil {
		root = node
	}
	var b strings.Builder
	collectText(&b, root)
	return normalizeWhitespace(b.String())
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

// collectText walks the tree gathering text, inserting line breaks around
// block elements and a bullet marker before list items so the bullet-based
// extractors still see list structure.
func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "iframe":
			return
		case "br", "hr":
			b.WriteString("\n")
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "ul", "ol", "div", "section", "tr":
			b.WriteString("\n")
		case "li":
			b.WriteString("\n- ")
		}
	}

	if n.Type == html.TextNode {
		data := strings.ReplaceAll(n.Data, "\t", " ")
		data = strings.ReplaceAll(data, "\r", " ")
		b.WriteString(data)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}

	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n\n")
		case "div", "section", "tr", "ul", "ol":
			b.WriteString("\n")
		}
	}
}

// normalizeWhitespace collapses space runs within lines and keeps at most
// one consecutive blank line, so paragraphs stay blank-line separated.
func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(out) == 0 || out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, collapseSpaces(trimmed))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}
