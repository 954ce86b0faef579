package htmlutil

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	// script/style bodies are code, not page text
	if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// StripTags returns the visible text of an HTML fragment. Some sources
// capture raw markup in their full-page text field; the description
// fallback must not leak tags into stored events. Plain text passes
// through untouched.
func StripTags(fragment string) string {
	if !strings.Contains(fragment, "<") {
		return fragment
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	var buffer bytes.Buffer
	for _, node := range doc.Selection.Nodes {
		getTextRecursive(node, &buffer)
	}
	return buffer.String()
}
