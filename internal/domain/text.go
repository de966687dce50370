package domain

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText strips markup from an API description and collapses whitespace.
func PlainText(description string) string {
	if !strings.ContainsAny(description, "<&") {
		return strings.Join(strings.Fields(description), " ")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return strings.Join(strings.Fields(description), " ")
	}

	doc.Find("br").ReplaceWithHtml(" ")

	return strings.Join(strings.Fields(doc.Text()), " ")
}
