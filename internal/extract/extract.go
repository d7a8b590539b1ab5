// Package extract turns an HTML page into plain text suitable for the
// normalization pipeline. Government circulars are frequently published as
// portal pages rather than files; this adapter pulls the notice body out of
// the surrounding portal chrome. Byte-level document parsing (PDF and
// friends) stays with external collaborators.
package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Page is the extracted content of one portal page.
type Page struct {
	Title string
	Text  string
}

// FromHTML extracts the readable notice text, preferring <main> or
// <article> and falling back to <body>. Headings, paragraphs, list items
// and table rows become separate lines; navigation, footers, scripts and
// portal boilerplate are skipped.
func FromHTML(input []byte) Page {
	root, err := html.Parse(bytes.NewReader(input))
	if err != nil || root == nil {
		return Page{}
	}

	page := Page{Title: strings.TrimSpace(pageTitle(root))}

	content := firstElement(root, "main")
	if content == nil {
		content = firstElement(root, "article")
	}
	if content == nil {
		content = firstElement(root, "body")
	}
	if content == nil {
		return page
	}

	var b strings.Builder
	walk(&b, content)
	page.Text = tidyLines(b.String())
	return page
}

func pageTitle(root *html.Node) string {
	head := firstElement(root, "head")
	if head == nil {
		return ""
	}
	t := firstElement(head, "title")
	if t == nil || t.FirstChild == nil {
		return ""
	}
	return t.FirstChild.Data
}

func firstElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func walk(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		if isPortalChrome(n) {
			return
		}
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "footer", "header", "aside", "iframe", "form", "button":
			return
		case "br", "hr":
			b.WriteString("\n")
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr", "ul", "ol", "table":
			b.WriteString("\n")
		case "td", "th":
			// Separate cells within a row.
			b.WriteString(" ")
		}
	}

	if n.Type == html.TextNode {
		data := strings.ReplaceAll(n.Data, "\t", " ")
		data = strings.ReplaceAll(data, "\r", " ")
		b.WriteString(data)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(b, c)
	}

	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n\n")
		case "li", "tr":
			b.WriteString("\n")
		}
	}
}

// isPortalChrome recognizes the furniture government portals wrap notices
// in: accessibility toolbars, language switchers, breadcrumbs, cookie and
// consent banners, social/share widgets.
func isPortalChrome(n *html.Node) bool {
	for _, attr := range n.Attr {
		key := strings.ToLower(attr.Key)
		if key != "id" && key != "class" && key != "role" && key != "aria-label" && !strings.HasPrefix(key, "data-") {
			continue
		}
		val := strings.ToLower(attr.Val)
		for _, marker := range chromeMarkers {
			if strings.Contains(val, marker) {
				return true
			}
		}
	}
	return false
}

var chromeMarkers = []string{
	"cookie", "consent", "gdpr",
	"breadcrumb", "skip-link", "skiptocontent", "skip-to-content",
	"lang-switch", "language-select", "accessibility",
	"share", "social", "sitemap",
}

// tidyLines trims each line and caps blank runs at one, leaving the heavier
// whitespace and character policy to the normalizer.
func tidyLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(collapseSpaces(line))
		if trimmed == "" {
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, trimmed)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	return strings.Join(out, "\n")
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' {
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
