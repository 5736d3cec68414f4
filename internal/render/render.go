// Package render turns portfolio entities into HTML fragments, one renderer
// per page section. Renderers are pure data-to-string functions: calling one
// twice with the same data yields the same markup, and every piece of
// data-supplied text passes through Escape before insertion.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// escaper converts markup-significant characters so untrusted JSON content
// is never interpreted as HTML.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape sanitizes data-supplied text for insertion into HTML.
func Escape(s string) string {
	return escaper.Replace(s)
}

// md renders bio/summary/description fields. Raw HTML in the source is
// escaped (no html.WithUnsafe), so markdown bodies cannot smuggle markup.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// Markdown converts a markdown body to HTML. On a conversion error the
// source is rendered as escaped paragraphs instead, so a renderer never
// fails over a formatting quibble.
func Markdown(src string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return escapedParagraphs(src)
	}
	return buf.String()
}

// escapedParagraphs splits on blank lines and wraps each chunk in <p>.
func escapedParagraphs(src string) string {
	var b strings.Builder
	for _, para := range strings.Split(src, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		fmt.Fprintf(&b, "<p>%s</p>\n", Escape(para))
	}
	return b.String()
}

// Slug converts a display name into an id-safe token, used for category
// and entry ids. Distinct names that slug identically would collide; the
// validators already require unique names.
func Slug(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
