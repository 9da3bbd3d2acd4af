package classify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"aimlookup/storage"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

// Windows scoring at least this much are logged while matching.
const logScoreThreshold = 60

var supportingWords = map[string]bool{"&": true, "and": true, "-": true, "or": true}

// IndustryFile is one *_Industry_*.txt list. Its category comes from Name.
type IndustryFile struct {
	Name  string
	Lines []string
}

func ReadIndustryFile(path string) (IndustryFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return IndustryFile{}, fmt.Errorf("read industry file %s: %w", path, err)
	}
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	return IndustryFile{Name: filepath.Base(path), Lines: strings.Split(text, "\n")}, nil
}

// ReadSectorList reads one sector per line, skipping blank lines.
func ReadSectorList(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sector list %s: %w", path, err)
	}
	sectors := make([]string, 0, 64)
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			sectors = append(sectors, line)
		}
	}
	return sectors, nil
}

type Options struct {
	Threshold int
	Logger    *zap.Logger
}

// SectorResult is one output row: Industry Sector, Category, Comments and
// Match Score.
type SectorResult struct {
	Sector   string
	Category string
	Comments string
	Score    int
}

type Summary struct {
	Total         int
	Categorized   int
	Uncategorized int
	Counts        map[string]int
	MaxScore      float64
	MeanScore     float64
	MedianScore   float64
}

type match struct {
	phrase string
	score  int
	source string
	where  string
}

type matcher struct {
	words  []string
	phrase string
	logger *zap.Logger
	logged map[string]bool
}

func splitWords(text string) []string {
	words := make([]string, 0, 8)
	for _, word := range strings.Fields(text) {
		word = strings.ToLower(word)
		if supportingWords[word] {
			continue
		}
		words = append(words, word)
	}
	return words
}

func newMatcher(sector string, logger *zap.Logger) *matcher {
	words := splitWords(sector)
	return &matcher{words: words, phrase: strings.Join(words, " "), logger: logger, logged: map[string]bool{}}
}

// scan scores every window of the sector's word count in text and keeps the
// strictly best one in best.
func (m *matcher) scan(text, source, where string, best *match) {
	if len(m.words) == 0 {
		return
	}
	words := splitWords(text)
	for i := 0; i+len(m.words) <= len(words); i++ {
		window := strings.Join(words[i:i+len(m.words)], " ")
		score := Ratio(m.phrase, window)
		if score > best.score {
			*best = match{phrase: window, score: score, source: source, where: where}
		}
		if score >= logScoreThreshold {
			key := window + "\x00" + source + "\x00" + where
			if !m.logged[key] {
				m.logged[key] = true
				m.logger.Debug("sector window matched",
					zap.String("sector", m.phrase),
					zap.String("window", window),
					zap.String("file", source),
					zap.String("at", where),
					zap.Int("score", score),
				)
			}
		}
	}
}

// CategorizeSectors assigns a category to each sector by fuzzy matching it
// against the industry lists, falling back to the nature of activity of the
// category companies.
func CategorizeSectors(sectors []string, industryFiles []IndustryFile, companies []storage.CategoryCompany, opts Options) ([]SectorResult, Summary) {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultScoreThreshold
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	summary := Summary{
		Total: len(sectors),
		Counts: map[string]int{
			CategoryGreen: 0, CategoryRed: 0, CategoryOrange: 0, CategoryGrey: 0, CategoryUnknown: 0,
		},
	}
	results := make([]SectorResult, 0, len(sectors))

	for _, sector := range sectors {
		m := newMatcher(sector, logger)

		var best match
		for _, file := range industryFiles {
			for i, line := range file.Lines {
				m.scan(line, file.Name, fmt.Sprintf("line %d", i+1), &best)
			}
		}
		if best.score >= opts.Threshold {
			category := CategoryFromFileName(best.source)
			summary.Counts[category]++
			results = append(results, SectorResult{
				Sector:   sector,
				Category: category,
				Comments: fmt.Sprintf("Matched '%s' with '%s' in file '%s' at %s", sector, best.phrase, best.source, best.where),
				Score:    best.score,
			})
			continue
		}

		logger.Debug("re-categorizing sector against company activities", zap.String("sector", sector))
		var fallback match
		for _, company := range companies {
			if company.NatureOfActivity == "" {
				continue
			}
			m.scan(company.NatureOfActivity, company.SourceFile, fmt.Sprintf("company '%s'", company.CompanyName), &fallback)
		}
		if fallback.score >= opts.Threshold {
			category := CategoryFromFileName(fallback.source)
			summary.Counts[category]++
			results = append(results, SectorResult{
				Sector:   sector,
				Category: category,
				Comments: fmt.Sprintf("Matched with '%s' in file '%s' for %s", fallback.phrase, fallback.source, fallback.where),
				Score:    fallback.score,
			})
			continue
		}

		summary.Uncategorized++
		comments := "No match found"
		if fallback.score > 0 {
			comments = fmt.Sprintf("No match found in company files. The closest match was '%s' in file '%s' for %s", fallback.phrase, fallback.source, fallback.where)
		}
		results = append(results, SectorResult{Sector: sector, Comments: comments, Score: fallback.score})
	}
	summary.Categorized = summary.Total - summary.Uncategorized

	scores := make(stats.Float64Data, 0, len(results))
	for _, result := range results {
		if result.Score > 0 {
			scores = append(scores, float64(result.Score))
		}
	}
	if len(scores) > 0 {
		summary.MaxScore, _ = stats.Max(scores)
		summary.MeanScore, _ = stats.Mean(scores)
		summary.MedianScore, _ = stats.Median(scores)
	}

	logger.Info("sector categorization complete",
		zap.Int("total", summary.Total),
		zap.Int("categorized", summary.Categorized),
		zap.Int("uncategorized", summary.Uncategorized),
		zap.Any("counts", summary.Counts),
		zap.Float64("max_score", summary.MaxScore),
		zap.Float64("mean_score", summary.MeanScore),
		zap.Float64("median_score", summary.MedianScore),
	)
	return results, summary
}
