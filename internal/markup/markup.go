// Package markup wraps fetched HTML in a queryable DOM.
//
// Parsing never fails on malformed markup: the HTML5 algorithm always yields
// a tree, and selectors that match nothing return empty selections.
package markup

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed page. Parse once, query many times.
type Document struct {
	doc *goquery.Document
}

// Parse builds a Document from raw HTML.
func Parse(content string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, err
	}
	return &Document{doc: goquery.NewDocumentFromNode(root)}, nil
}

// MustParse is Parse for fixtures and static input.
func MustParse(content string) *Document {
	d, err := Parse(content)
	if err != nil {
		panic(err)
	}
	return d
}

// Find runs a CSS selector against the whole document.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Root returns the document selection.
func (d *Document) Root() *goquery.Selection {
	return d.doc.Selection
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// Text returns the trimmed text content of sel.
func Text(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}

// CleanText is Text with inner whitespace runs collapsed to one space.
func CleanText(sel *goquery.Selection) string {
	return innerWhitespace.ReplaceAllString(Text(sel), " ")
}

// FirstAttr returns the first non-empty attribute of sel among names.
func FirstAttr(sel *goquery.Selection, names ...string) string {
	for _, n := range names {
		if v := strings.TrimSpace(sel.AttrOr(n, "")); v != "" {
			return v
		}
	}
	return ""
}

// Exists reports whether selector matches anything beneath sel.
func Exists(sel *goquery.Selection, selector string) bool {
	return sel.Find(selector).Length() > 0
}
