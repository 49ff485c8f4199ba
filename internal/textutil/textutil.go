package textutil

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// RemoveLinks strips markdown links (keeping the link text) and bare URLs.
func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")

	return urlPattern.ReplaceAllString(input, "")
}

// CollapseWhitespace folds all whitespace runs into single spaces.
func CollapseWhitespace(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

// StripMarkdown renders markdown to HTML and returns the plain text of the
// result. LLM output often arrives with markdown formatting even when the
// prompt forbids it.
func StripMarkdown(input string) string {
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rendered))
	if err != nil {
		return CollapseWhitespace(string(rendered))
	}
	return CollapseWhitespace(doc.Text())
}
