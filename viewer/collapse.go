// Package viewer pages through the detail dataset and shapes one record for
// display: collapsible long text and the derived basic-industry table.
package viewer

import "strings"

const (
	DefaultCollapseWords = 10
	NotAvailable         = "N/A"
)

// Collapsible is a text field split into an always-visible head and a hidden
// tail. Collapsed is false when the text fits within the word limit.
type Collapsible struct {
	ID        string
	Text      string
	Visible   string
	Hidden    string
	Collapsed bool
}

// Collapse splits text after limit whitespace-delimited words. Empty text and
// the literal "undefined" render as N/A.
func Collapse(text string, limit int) Collapsible {
	if limit <= 0 {
		limit = DefaultCollapseWords
	}
	if text == "" || text == "undefined" {
		return Collapsible{Text: NotAvailable, Visible: NotAvailable}
	}

	words := strings.Fields(text)
	if len(words) <= limit {
		return Collapsible{Text: text, Visible: text}
	}
	return Collapsible{
		Text:      text,
		Visible:   strings.Join(words[:limit], " "),
		Hidden:    strings.Join(words[limit:], " "),
		Collapsed: true,
	}
}
