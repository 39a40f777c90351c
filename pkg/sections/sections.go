// Package sections splits a model reply into the labelled parts of a
// marketing-copy package.
package sections

import "strings"

type Label struct {
	Key   string
	Title string
}

// Marker is the text that opens the label's region in a reply.
func (l Label) Marker() string {
	return l.Key + ":"
}

// Labels is the fixed output format requested from the model, in order.
var Labels = []Label{
	{"SEO_TITLE", "SEO Title"},
	{"META_DESCRIPTION", "Meta Description"},
	{"FOCUS_KEYWORD", "Focus Keyword"},
	{"SECONDARY_KEYWORDS", "Secondary Keywords"},
	{"HASHTAGS", "Hashtags"},
	{"CTA", "CTA"},
	{"CONTENT_SNIPPET", "Content Snippet"},
}

type Section struct {
	Key   string
	Title string
	Body  string
}

const boldMarkup = "**"

// Clean removes bold markup the model may emit despite being told not to.
func Clean(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, boldMarkup, ""))
}

// Parse returns the sections present in raw in canonical label order.
//
// A body starts after the first occurrence of its marker and stops at the
// nearest marker that follows, whichever label it belongs to (a repeat of the
// same label included). Missing labels are skipped. Parse never fails; text
// without any marker yields an empty slice.
func Parse(raw string) []Section {
	text := Clean(raw)
	result := []Section{}

	for _, label := range Labels {
		marker := label.Marker()
		idx := strings.Index(text, marker)
		if idx < 0 {
			continue
		}

		rest := text[idx+len(marker):]
		end := len(rest)
		for _, other := range Labels {
			if i := strings.Index(rest, other.Marker()); i >= 0 && i < end {
				end = i
			}
		}

		result = append(result, Section{
			Key:   label.Key,
			Title: label.Title,
			Body:  strings.TrimSpace(rest[:end]),
		})
	}

	return result
}
