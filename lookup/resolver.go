package lookup

import (
	"strings"

	"aimlookup/dataset"
)

// NotCategorizedMessage is shown when a name has no exact match.
const NotCategorizedMessage = "Sorry, this company is not categorized by AIM. We will review it and update our records."

// Visual is the single visual state of the result panel.
type Visual string

const (
	VisualNone  Visual = ""
	VisualGreen Visual = "green"
	VisualRed   Visual = "red"
	VisualGrey  Visual = "grey"
)

// Result is the display state produced by a selection.
type Result struct {
	Query   string `json:"query"`
	Matched bool   `json:"matched"`
	// Categorized is false for matches whose category is neither green nor
	// red. Those keep the neutral visual but still show the real fields.
	Categorized bool   `json:"categorized"`
	CompanyName string `json:"companyName"`
	Industry    string `json:"industry"`
	Category    string `json:"category"`
	Message     string `json:"message,omitempty"`
	Visual      Visual `json:"visual"`
}

// Classes returns the CSS classes of the result panel. Exactly one state
// class is ever returned, so earlier states never stack.
func (r Result) Classes() string {
	switch r.Visual {
	case VisualGreen:
		return "green-background"
	case VisualRed:
		return "red-background"
	case VisualGrey:
		return "grey-background"
	default:
		return ""
	}
}

// Resolver resolves normalized names against the category dataset.
type Resolver struct {
	byName map[string]dataset.Company
	byFold map[string]dataset.Company
}

func NewResolver(companies []dataset.Company) *Resolver {
	byName := make(map[string]dataset.Company, len(companies))
	byFold := make(map[string]dataset.Company, len(companies))
	for _, company := range companies {
		// First row wins, matching a front-to-back find.
		if _, exists := byName[company.Name]; !exists {
			byName[company.Name] = company
		}
		if fold := foldKey(company.Name); fold != "" {
			if _, exists := byFold[fold]; !exists {
				byFold[fold] = company
			}
		}
	}
	return &Resolver{byName: byName, byFold: byFold}
}

// Resolve normalizes input and looks it up by exact match. A missing company
// is a normal outcome rendered as NotCategorizedMessage.
func (r *Resolver) Resolve(input string) Result {
	key := dataset.Normalize(input)
	company, ok := r.byName[key]
	if !ok {
		// Display names are upper-cased per word; runes such as the dotless
		// i do not lowercase back to themselves.
		company, ok = r.byFold[foldKey(key)]
	}
	if !ok || key == "" {
		return Result{
			Query:   key,
			Message: NotCategorizedMessage,
			Visual:  VisualGrey,
		}
	}

	result := Result{
		Query:       key,
		Matched:     true,
		CompanyName: dataset.ToDisplayCase(company.Name),
		Industry:    company.Industry,
		Category:    company.Category,
		Visual:      VisualNone,
	}
	switch {
	case company.IsGreen():
		result.Categorized = true
		result.Visual = VisualGreen
	case company.IsRed():
		result.Categorized = true
		result.Visual = VisualRed
	}
	return result
}

func (r *Resolver) Len() int {
	return len(r.byName)
}

// foldKey maps both sides of a ToDisplayCase round trip to the same key.
func foldKey(key string) string {
	return strings.ToLower(strings.ToUpper(key))
}
