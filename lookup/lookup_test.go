package lookup

import (
	"fmt"
	"testing"

	"aimlookup/dataset"

	"github.com/google/go-cmp/cmp"
)

func sampleCompanies() []dataset.Company {
	return []dataset.Company{
		{Name: "tesla inc", DisplayName: "Tesla Inc.", Industry: "Automobiles", Category: "Green"},
		{Name: "jbs s.a", DisplayName: "JBS S.A.", Industry: "Meat Processing", Category: "RED"},
		{Name: "teslin mining", DisplayName: "Teslin Mining", Industry: "Mining", Category: "Orange"},
		{Name: "tesla inc", DisplayName: "TESLA INC", Industry: "Duplicate", Category: "Red"},
	}
}

func TestIndex_SuggestSubstringInDatasetOrder(t *testing.T) {
	t.Parallel()

	index := CompanyIndex(sampleCompanies(), 0)
	got := index.Suggest("  TESL. ")
	want := []Suggestion{
		{Name: "tesla inc", Display: "Tesla Inc"},
		{Name: "teslin mining", Display: "Teslin Mining"},
		{Name: "tesla inc", Display: "Tesla Inc"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected suggestions (-want +got):\n%s", diff)
	}
}

func TestIndex_SuggestEmptyQuery(t *testing.T) {
	t.Parallel()

	index := CompanyIndex(sampleCompanies(), 0)
	for _, query := range []string{"", "   ", "..", " . "} {
		if got := index.Suggest(query); len(got) != 0 {
			t.Fatalf("query %q: expected no suggestions, got %v", query, got)
		}
	}
}

func TestIndex_SuggestLimit(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		names = append(names, fmt.Sprintf("acme %02d", i))
	}

	if got := NewIndex(names, 0).Suggest("acme"); len(got) != DefaultSuggestionLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultSuggestionLimit, len(got))
	}
	got := NewIndex(names, 3).Suggest("acme")
	if len(got) != 3 || got[0].Name != "acme 00" || got[2].Name != "acme 02" {
		t.Fatalf("expected first three rows, got %v", got)
	}
}

func TestIndex_EquityIndexUsesEquityNames(t *testing.T) {
	t.Parallel()

	index := EquityIndex([]dataset.Equity{
		{Name: "reliance industries ltd", DisplayName: "RELIANCE INDUSTRIES LTD."},
		{Name: "infosys ltd", DisplayName: "INFOSYS LTD"},
	}, 10)
	got := index.Suggest("ltd")
	if len(got) != 2 || got[0].Display != "Reliance Industries Ltd" {
		t.Fatalf("unexpected equity suggestions: %v", got)
	}
	if index.Len() != 2 {
		t.Fatalf("expected 2 names, got %d", index.Len())
	}
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(sampleCompanies())
	tests := []struct {
		name  string
		input string
		want  Result
	}{
		{
			name:  "green match with trailing period and spaces",
			input: "  Tesla Inc. ",
			want: Result{
				Query: "tesla inc", Matched: true, Categorized: true,
				CompanyName: "Tesla Inc", Industry: "Automobiles", Category: "Green",
				Visual: VisualGreen,
			},
		},
		{
			name:  "red match is case-insensitive",
			input: "JBS S.A.",
			want: Result{
				Query: "jbs s.a", Matched: true, Categorized: true,
				CompanyName: "Jbs S.a", Industry: "Meat Processing", Category: "RED",
				Visual: VisualRed,
			},
		},
		{
			name:  "other category keeps fields without a visual",
			input: "teslin mining",
			want: Result{
				Query: "teslin mining", Matched: true,
				CompanyName: "Teslin Mining", Industry: "Mining", Category: "Orange",
				Visual: VisualNone,
			},
		},
		{
			name:  "no match",
			input: "Unknown Corp",
			want:  Result{Query: "unknown corp", Message: NotCategorizedMessage, Visual: VisualGrey},
		},
		{
			name:  "empty input",
			input: "   ",
			want:  Result{Message: NotCategorizedMessage, Visual: VisualGrey},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, resolver.Resolve(tt.input)); diff != "" {
				t.Fatalf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolver_FirstRowWins(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(sampleCompanies())
	got := resolver.Resolve("tesla inc")
	if got.Industry != "Automobiles" || got.Visual != VisualGreen {
		t.Fatalf("expected first duplicate row, got %+v", got)
	}
	if resolver.Len() != 3 {
		t.Fatalf("expected 3 distinct names, got %d", resolver.Len())
	}
}

func TestResolver_SuggestionDisplayResolvesLikeClick(t *testing.T) {
	t.Parallel()

	companies := []dataset.Company{
		{Name: "ılık ltd", Industry: "Textiles", Category: "Green"},
		{Name: "ſtar works", Industry: "Metals", Category: "Red"},
	}
	index := CompanyIndex(companies, 10)
	resolver := NewResolver(companies)

	for _, query := range []string{"ılık", "ſtar"} {
		suggestions := index.Suggest(query)
		if len(suggestions) != 1 {
			t.Fatalf("%q: expected one suggestion, got %+v", query, suggestions)
		}
		clicked := resolver.Resolve(suggestions[0].Name)
		typed := resolver.Resolve(suggestions[0].Display)
		if !clicked.Matched || !typed.Matched {
			t.Fatalf("%q: expected both paths to match, click=%+v typed=%+v", query, clicked, typed)
		}
		if clicked.CompanyName != typed.CompanyName || clicked.Category != typed.Category || clicked.Visual != typed.Visual {
			t.Fatalf("%q: click and typed display differ: %+v vs %+v", query, clicked, typed)
		}
	}
}

func TestResult_ClassesAreExclusive(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(sampleCompanies())
	tests := map[string]string{
		"tesla inc":     "green-background",
		"jbs s.a":       "red-background",
		"teslin mining": "",
		"nobody":        "grey-background",
	}
	for input, want := range tests {
		if got := resolver.Resolve(input).Classes(); got != want {
			t.Fatalf("%q: expected classes %q, got %q", input, want, got)
		}
	}
}

func TestResolver_CrossReference(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(sampleCompanies())
	got := resolver.CrossReference([]dataset.Equity{
		{Name: "jbs s.a", DisplayName: "JBS S.A."},
		{Name: "acme ltd", DisplayName: "ACME LTD"},
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Company != "JBS S.A." || got[0].Result.Visual != VisualRed {
		t.Fatalf("unexpected first match: %+v", got[0])
	}
	if got[1].Result.Matched || got[1].Result.Message != NotCategorizedMessage {
		t.Fatalf("unexpected second match: %+v", got[1])
	}
}
