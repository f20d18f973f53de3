// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts article bodies into HTML using goldmark.
// Bodies are written by editors through the CLI, so raw HTML inside them is
// passed through.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
		html.WithUnsafe(),
	),
)

// ToHTML converts Markdown source into HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// Render is ToHTML for templates. A body that fails to convert is shown
// escaped as plain text.
func Render(source string) template.HTML {
	out, err := ToHTML(source)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(out)
}

// Excerpt returns the text of the first block of the rendered source, with
// markup removed and whitespace collapsed, cut to at most limit runes. The
// result is plain text and must be escaped by the caller.
func Excerpt(source string, limit int) string {
	out, err := ToHTML(source)
	if err != nil {
		out = template.HTMLEscapeString(source)
	}
	text := strings.Join(strings.Fields(firstBlockText(out)), " ")

	r := []rune(text)
	if len(r) <= limit {
		return text
	}
	return strings.TrimSpace(string(r[:limit])) + "…"
}

// firstBlockText collects the text nodes of s up to the end of the first
// block element that contained any text. Script and style contents are
// skipped.
func firstBlockText(s string) string {
	var b strings.Builder
	skip := 0
	z := xhtml.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			return b.String()
		case xhtml.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Script, atom.Style:
				skip++
			case atom.Br:
				b.WriteByte(' ')
			}
		case xhtml.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if (a == atom.Script || a == atom.Style) && skip > 0 {
				skip--
				continue
			}
			if blockElements[a] && strings.TrimSpace(b.String()) != "" {
				return b.String()
			}
		}
	}
}

var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Blockquote: true, atom.Pre: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Li: true, atom.Table: true, atom.Section: true, atom.Article: true,
}
