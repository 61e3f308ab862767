package orderlist

import (
	"net/url"
	"time"
)

const (
	ListingPageSize         = 9
	DateRangePageSize       = 9
	SearchPageSize          = 9
	DateRangeSearchPageSize = 10
	// ClosedRangePageSize is used by the fetch issued when the picker closes,
	// for both the plain and the searched date range.
	ClosedRangePageSize = 9

	// totalPagesDivisor stays 9 in every mode, including the 10-item
	// searched range pages.
	totalPagesDivisor = 9
)

type Mode int

const (
	ModeListing Mode = iota
	ModeDateRange
	ModeSearch
	ModeDateRangeSearch
)

func (m Mode) String() string {
	switch m {
	case ModeDateRange:
		return "date_range"
	case ModeSearch:
		return "search"
	case ModeDateRangeSearch:
		return "date_range_search"
	default:
		return "listing"
	}
}

// Query describes one call to the orders service.
type Query struct {
	Mode      Mode
	PageIndex int
	PageSize  int
	StartDate string
	EndDate   string
	Search    string
}

// Navigation is the location the order list was opened with.
type Navigation struct {
	RawQuery string `json:"rawQuery"`
}

func NewNavigation(rawQuery string) Navigation {
	return Navigation{RawQuery: rawQuery}
}

// HasSearch reports whether the list was opened with any query string,
// not only with q.
func (n Navigation) HasSearch() bool {
	return n.RawQuery != ""
}

func (n Navigation) SearchTerm() string {
	values, err := url.ParseQuery(n.RawQuery)
	if err != nil {
		return ""
	}
	return values.Get("q")
}

type DateRange struct {
	Start *time.Time `json:"startDate,omitempty"`
	End   *time.Time `json:"endDate,omitempty"`
}

func (r DateRange) Complete() bool {
	return r.Start != nil && r.End != nil
}

// TotalPages derives the page count from the total carried by the first
// order of a page. It never drops below one.
func TotalPages(totalCount int) int {
	pages := (totalCount + totalPagesDivisor - 1) / totalPagesDivisor
	if pages < 1 {
		return 1
	}
	return pages
}
