// Package orderlist holds the customer order history view as a state
// machine. Update never performs I/O; it returns the commands the caller has
// to run and feed back as events.
package orderlist

import (
	"customer-portal/models"
	"fmt"
	"time"
)

const (
	DetailsPathPrefix = "/orders/details/"
	DashboardPath     = "/dashboard/customer"
)

type State struct {
	Nav           Navigation     `json:"nav"`
	Orders        []models.Order `json:"orders"`
	PageIndex     int            `json:"pageIndex"`
	TotalPages    int            `json:"totalPages"`
	HideCalendar  bool           `json:"hideCalendar"`
	Range         DateRange      `json:"range"`
	DisableButton bool           `json:"disableButton"`
	SearchQuery   string         `json:"searchQuery"`
}

// Loaded reports whether any page has been fetched successfully.
func (s State) Loaded() bool {
	return s.Orders != nil
}

func (s State) DateRangeActive() bool {
	return !s.HideCalendar && s.Range.Complete()
}

type Event interface{ isEvent() }

type (
	PageLoaded        struct{ Orders []models.Order }
	PageFailed        struct{ Err error }
	DatePickerToggled struct{}
	DatesChanged      struct{ Range DateRange }
	DatesClosed       struct{ Range DateRange }
	FirstClicked      struct{}
	PrevClicked       struct{}
	NextClicked       struct{}
	LastClicked       struct{}
	OrderClicked      struct{ ID int }
	RedoSearchClicked struct{}
)

func (PageLoaded) isEvent()        {}
func (PageFailed) isEvent()        {}
func (DatePickerToggled) isEvent() {}
func (DatesChanged) isEvent()      {}
func (DatesClosed) isEvent()       {}
func (FirstClicked) isEvent()      {}
func (PrevClicked) isEvent()       {}
func (NextClicked) isEvent()       {}
func (LastClicked) isEvent()       {}
func (OrderClicked) isEvent()      {}
func (RedoSearchClicked) isEvent() {}

type Command interface{ isCommand() }

type FetchOrders struct{ Query Query }

type Navigate struct {
	Path  string
	State *NavigationState
}

// NavigationState travels with a Navigate to the order details page.
type NavigationState struct {
	Query string `json:"query"`
}

func (FetchOrders) isCommand() {}
func (Navigate) isCommand()    {}

type Machine struct {
	zone *time.Location
}

// New returns a machine formatting picked dates in zone. A nil zone means
// time.Local.
func New(zone *time.Location) Machine {
	if zone == nil {
		zone = time.Local
	}
	return Machine{zone: zone}
}

func (m Machine) Zone() *time.Location {
	return m.zone
}

func (m Machine) Init(nav Navigation) (State, []Command) {
	s := State{
		Nav:          nav,
		TotalPages:   1,
		HideCalendar: true,
		SearchQuery:  nav.SearchTerm(),
	}
	return s, []Command{FetchOrders{Query: m.Resolve(s)}}
}

func (m Machine) Update(s State, e Event) (State, []Command) {
	switch e := e.(type) {
	case PageLoaded:
		if len(e.Orders) == 0 {
			s.DisableButton = false
			return s, nil
		}
		s.Orders = e.Orders
		s.TotalPages = TotalPages(e.Orders[0].TotalCount)
		if s.PageIndex > s.TotalPages-1 {
			s.PageIndex = s.TotalPages - 1
		}
		s.DisableButton = false
		return s, nil

	case PageFailed:
		s.DisableButton = false
		return s, nil

	case DatePickerToggled:
		if s.HideCalendar {
			s.HideCalendar = false
			return s, nil
		}
		s.HideCalendar = true
		s.Range = DateRange{}
		s.PageIndex = 0
		return s, m.fetch(s)

	case DatesChanged:
		s.Range = e.Range
		return s, nil

	case DatesClosed:
		if s.HideCalendar {
			return s, nil
		}
		s.Range = e.Range
		if !e.Range.Complete() {
			return s, nil
		}
		s.PageIndex = 0
		return s, []Command{FetchOrders{Query: m.closedRangeQuery(s)}}

	case FirstClicked:
		if s.DisableButton || s.PageIndex == 0 {
			return s, nil
		}
		s.PageIndex = 0
		s.DisableButton = true
		return s, m.fetch(s)

	case PrevClicked:
		if s.DisableButton || s.PageIndex <= 0 {
			return s, nil
		}
		s.PageIndex--
		s.DisableButton = true
		return s, m.fetch(s)

	case NextClicked:
		if s.DisableButton || s.PageIndex+1 >= s.TotalPages {
			return s, nil
		}
		s.PageIndex++
		s.DisableButton = true
		return s, m.fetch(s)

	case LastClicked:
		if s.DisableButton || s.PageIndex+1 == s.TotalPages {
			return s, nil
		}
		s.PageIndex = s.TotalPages - 1
		s.DisableButton = true
		return s, m.fetch(s)

	case OrderClicked:
		nav := Navigate{Path: fmt.Sprintf("%s%d", DetailsPathPrefix, e.ID)}
		if s.Nav.HasSearch() {
			nav.State = &NavigationState{Query: s.SearchQuery}
		}
		return s, []Command{nav}

	case RedoSearchClicked:
		return s, []Command{Navigate{Path: DashboardPath}}
	}
	return s, nil
}

func (m Machine) fetch(s State) []Command {
	return []Command{FetchOrders{Query: m.Resolve(s)}}
}

// Resolve picks the orders service call for the current state. A search in
// the URL wins over the date range, and both combine when present.
func (m Machine) Resolve(s State) Query {
	search := s.Nav.HasSearch()
	ranged := s.DateRangeActive()

	switch {
	case search && ranged:
		return Query{
			Mode:      ModeDateRangeSearch,
			PageIndex: s.PageIndex,
			PageSize:  DateRangeSearchPageSize,
			StartDate: DateInput(*s.Range.Start, m.zone),
			EndDate:   DateInput(*s.Range.End, m.zone),
			Search:    s.SearchQuery,
		}
	case search:
		return Query{
			Mode:      ModeSearch,
			PageIndex: s.PageIndex,
			PageSize:  SearchPageSize,
			Search:    s.SearchQuery,
		}
	case ranged:
		return Query{
			Mode:      ModeDateRange,
			PageIndex: s.PageIndex,
			PageSize:  DateRangePageSize,
			StartDate: DateInput(*s.Range.Start, m.zone),
			EndDate:   DateInput(*s.Range.End, m.zone),
		}
	default:
		return Query{
			Mode:      ModeListing,
			PageIndex: s.PageIndex,
			PageSize:  ListingPageSize,
		}
	}
}

func (m Machine) closedRangeQuery(s State) Query {
	q := Query{
		Mode:      ModeDateRange,
		PageIndex: 0,
		PageSize:  ClosedRangePageSize,
		StartDate: DateInput(*s.Range.Start, m.zone),
		EndDate:   DateInput(*s.Range.End, m.zone),
	}
	if s.Nav.HasSearch() {
		q.Mode = ModeDateRangeSearch
		q.Search = s.Nav.SearchTerm()
	}
	return q
}
