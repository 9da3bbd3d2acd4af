package output

import (
	"strconv"

	"aimlookup/internal/classify"
	"aimlookup/lookup"
)

// EquitySheet lays out a cross-reference of the equity list.
func EquitySheet(matches []lookup.EquityMatch) Sheet {
	sheet := Sheet{Headers: []string{"Company", "Matched", "Industry", "Category"}}
	for _, match := range matches {
		sheet.Rows = append(sheet.Rows, []string{
			match.Company,
			strconv.FormatBool(match.Result.Matched),
			match.Result.Industry,
			match.Result.Category,
		})
	}
	return sheet
}

func SectorSheet(results []classify.SectorResult) Sheet {
	sheet := Sheet{Headers: []string{"Industry Sector", "Category", "Comments", "Match Score"}}
	for _, result := range results {
		sheet.Rows = append(sheet.Rows, []string{
			result.Sector,
			result.Category,
			result.Comments,
			strconv.Itoa(result.Score),
		})
	}
	return sheet
}
