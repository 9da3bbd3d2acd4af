package web

import (
	"net/url"
	"strconv"

	"aimlookup/loader"
	"aimlookup/viewer"
)

// Variant names, used in routes and as loading task names.
const (
	VariantLookup  = "lookup"
	VariantEquity  = "equity"
	VariantRecords = "records"
)

type pageView struct {
	Title       string
	Variant     string
	Heading     string
	Placeholder string
	Status      loader.Status
}

// Ready and Failed select which panel the page shows.
func (p pageView) Ready() bool  { return p.Status.State == loader.StateReady }
func (p pageView) Failed() bool { return p.Status.State == loader.StateFailed }

type recordsPageView struct {
	pageView
	View     viewer.View
	PrevLink string
	NextLink string
	Position int
}

func newRecordsPage(status loader.Status, view viewer.View) recordsPageView {
	page := recordsPageView{
		pageView: pageView{Title: "AIM Company Records", Variant: VariantRecords, Heading: "AIM Company Records", Status: status},
		View:     view,
		Position: view.Index + 1,
	}
	if view.HasPrev {
		page.PrevLink = recordsLink(view.Query, view.Index-1)
	}
	if view.HasNext {
		page.NextLink = recordsLink(view.Query, view.Index+1)
	}
	return page
}

func recordsLink(query string, index int) string {
	values := url.Values{}
	if query != "" {
		values.Set("q", query)
	}
	values.Set("i", strconv.Itoa(index))
	return "/records?" + values.Encode()
}

func lookupPage(status loader.Status) pageView {
	return pageView{
		Title:       "AIM Company Lookup",
		Variant:     VariantLookup,
		Heading:     "Is your investment Ahimsak?",
		Placeholder: "Type a company name",
		Status:      status,
	}
}

func equityPage(status loader.Status) pageView {
	return pageView{
		Title:       "AIM Equity Lookup",
		Variant:     VariantEquity,
		Heading:     "Check a listed equity",
		Placeholder: "Type a listed company name",
		Status:      status,
	}
}
