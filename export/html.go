package export

import (
	"fmt"
	"html"
	"strings"

	"gift-registry/models"
)

// MarshalHTML renders a static registry page: a numbered wishlist in
// descending priority order with superscript footnote markers, and a
// trailing section resolving the footnotes to full note text. Notes
// not attached to any item do not appear. The document uses CRLF line
// endings so it reads cleanly on every platform it gets shared to.
func MarshalHTML(items []models.Item) []byte {
	sorted := SortedByPriority(items)
	notes := uniqueNotes(sorted)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\r\n")
	b.WriteString("<html>\r\n")
	b.WriteString("\t<head>\r\n")
	b.WriteString("\t\t<title>Wishlist</title>\r\n")
	b.WriteString("\t\t<style>\r\n")
	b.WriteString("\t\t\tviewport {\r\n")
	b.WriteString("\t\t\t\tzoom:1.0;\r\n")
	b.WriteString("\t\t\t\twidth:device-width;\r\n")
	b.WriteString("\t\t\t}\r\n")
	b.WriteString("\t\t\t@media screen and (max-width:980px) {\r\n")
	b.WriteString("\t\t\tbody {\r\n")
	b.WriteString("\t\t\t\tfont-size:2em;\r\n")
	b.WriteString("\t\t\t}\r\n")
	b.WriteString("\t\t\t#registry li {\r\n")
	b.WriteString("\t\t\t\tmargin-bottom:20px;\r\n")
	b.WriteString("\t\t\t}\r\n")
	b.WriteString("\t\t\t}\r\n")
	b.WriteString("\t\t</style>\r\n")
	b.WriteString("\t</head>\r\n")
	b.WriteString("\t<body>\r\n")
	b.WriteString("\t\t<article>\r\n")
	b.WriteString("\t\t\t<header>\r\n")
	b.WriteString("\t\t\t\t<h1>Wishlist</h1>\r\n")
	b.WriteString("\t\t\t\t<hr>\r\n")
	b.WriteString("\t\t\t</header>\r\n")
	b.WriteString("\t\t\t<ol id=\"registry\">\r\n")
	for _, item := range sorted {
		fmt.Fprintf(&b, "\t\t\t\t<li>%s</li>\r\n", registryEntry(item, notes))
	}
	b.WriteString("\t\t\t</ol>\r\n")
	if len(notes) > 0 {
		b.WriteString("\t\t\t<footer>\r\n")
		b.WriteString("\t\t\t\t<h2>Notes</h2>\r\n")
		b.WriteString("\t\t\t\t<hr>\r\n")
		b.WriteString("\t\t\t\t<ol id=\"notes\">\r\n")
		for position, note := range notes {
			fmt.Fprintf(&b, "\t\t\t\t\t<li id=\"note%d\">%s</li>\r\n",
				position+1, html.EscapeString(note))
		}
		b.WriteString("\t\t\t\t</ol>\r\n")
		b.WriteString("\t\t\t</footer>\r\n")
	}
	b.WriteString("\t\t</article>\r\n")
	b.WriteString("\t</body>\r\n")
	b.WriteString("</html>")

	return []byte(b.String())
}

// registryEntry renders one wishlist line: optional quantity prefix,
// the name (hyperlinked when a url is set), and superscript footnote
// markers indexing into the shared note list.
func registryEntry(item models.Item, notes []string) string {
	var b strings.Builder

	if item.Quantity > 1 {
		fmt.Fprintf(&b, "%d ", item.Quantity)
	}

	name := html.EscapeString(item.Name)
	if item.URL != "" {
		fmt.Fprintf(&b, "<a href=\"%s\">%s</a>", html.EscapeString(item.URL), name)
	} else {
		b.WriteString(name)
	}

	if len(item.Notes) > 0 {
		b.WriteString(" ")
		attached := make(map[string]bool, len(item.Notes))
		for _, note := range item.Notes {
			attached[note] = true
		}
		for position, note := range notes {
			if attached[note] {
				idNumber := position + 1
				fmt.Fprintf(&b, "<sup>[<a href=\"#note%d\">%d</a>]</sup>", idNumber, idNumber)
			}
		}
	}

	return b.String()
}

// uniqueNotes collects every note referenced by the items, first seen
// first, deduplicated by content. Footnote numbering follows this
// order.
func uniqueNotes(items []models.Item) []string {
	seen := make(map[string]bool)
	notes := make([]string, 0)
	for _, item := range items {
		for _, note := range item.Notes {
			if !seen[note] {
				seen[note] = true
				notes = append(notes, note)
			}
		}
	}
	return notes
}
