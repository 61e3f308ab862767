package orderlist

import (
	"customer-portal/models"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func page(totalCount int, statuses ...string) []models.Order {
	orders := make([]models.Order, 0, len(statuses))
	for i, s := range statuses {
		orders = append(orders, models.Order{ID: i + 1, Status: s, TotalCount: totalCount})
	}
	return orders
}

func onlyFetch(t *testing.T, cmds []Command) Query {
	t.Helper()
	require.Len(t, cmds, 1)
	fetch, ok := cmds[0].(FetchOrders)
	require.True(t, ok, "expected FetchOrders, got %T", cmds[0])
	return fetch.Query
}

// loaded mounts a machine and applies a first page with totalCount orders.
func loaded(t *testing.T, m Machine, nav Navigation, totalCount int) State {
	t.Helper()
	s, _ := m.Init(nav)
	s, cmds := m.Update(s, PageLoaded{Orders: page(totalCount, "shipped")})
	require.Empty(t, cmds)
	return s
}

func TestInitListing(t *testing.T) {
	m := New(time.UTC)
	s, cmds := m.Init(NewNavigation(""))

	assert.True(t, s.HideCalendar)
	assert.Equal(t, 0, s.PageIndex)
	assert.Equal(t, 1, s.TotalPages)
	assert.False(t, s.Loaded())
	assert.Equal(t, Query{Mode: ModeListing, PageIndex: 0, PageSize: 9}, onlyFetch(t, cmds))
}

func TestInitSearch(t *testing.T) {
	m := New(time.UTC)
	s, cmds := m.Init(NewNavigation("q=mug"))

	assert.Equal(t, "mug", s.SearchQuery)
	assert.Equal(t, Query{Mode: ModeSearch, PageIndex: 0, PageSize: 9, Search: "mug"}, onlyFetch(t, cmds))
}

func TestResolvePrecedence(t *testing.T) {
	m := New(time.UTC)
	rng := DateRange{Start: day(2020, time.March, 5), End: day(2020, time.April, 10)}

	tests := []struct {
		name  string
		state State
		want  Query
	}{
		{
			name:  "search within date range",
			state: State{Nav: NewNavigation("q=tea"), SearchQuery: "tea", Range: rng, PageIndex: 2},
			want: Query{Mode: ModeDateRangeSearch, PageIndex: 2, PageSize: 10,
				StartDate: "2020-03-05", EndDate: "2020-04-10", Search: "tea"},
		},
		{
			name:  "search only",
			state: State{Nav: NewNavigation("q=tea"), SearchQuery: "tea", HideCalendar: true, Range: rng, PageIndex: 1},
			want:  Query{Mode: ModeSearch, PageIndex: 1, PageSize: 9, Search: "tea"},
		},
		{
			name:  "date range only",
			state: State{Range: rng, PageIndex: 3},
			want: Query{Mode: ModeDateRange, PageIndex: 3, PageSize: 9,
				StartDate: "2020-03-05", EndDate: "2020-04-10"},
		},
		{
			name:  "calendar open without dates",
			state: State{Range: DateRange{Start: day(2020, time.March, 5)}},
			want:  Query{Mode: ModeListing, PageIndex: 0, PageSize: 9},
		},
		{
			name:  "plain listing",
			state: State{HideCalendar: true, PageIndex: 4},
			want:  Query{Mode: ModeListing, PageIndex: 4, PageSize: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Resolve(tt.state))
		})
	}
}

func TestPageLoadedComputesTotalPages(t *testing.T) {
	m := New(time.UTC)
	s := loaded(t, m, NewNavigation(""), 28)

	assert.Equal(t, 4, s.TotalPages)
	assert.True(t, s.Loaded())
	assert.False(t, s.DisableButton)
}

func TestPageLoadedEmptyKeepsPreviousOrders(t *testing.T) {
	m := New(time.UTC)
	s := loaded(t, m, NewNavigation(""), 28)
	s.DisableButton = true

	next, cmds := m.Update(s, PageLoaded{Orders: []models.Order{}})
	assert.Empty(t, cmds)
	assert.Equal(t, s.Orders, next.Orders)
	assert.Equal(t, 4, next.TotalPages)
	assert.False(t, next.DisableButton)
}

func TestPageLoadedClampsPageIndex(t *testing.T) {
	m := New(time.UTC)
	s := loaded(t, m, NewNavigation(""), 40)
	s.PageIndex = 4

	next, _ := m.Update(s, PageLoaded{Orders: page(10, "shipped")})
	assert.Equal(t, 2, next.TotalPages)
	assert.Equal(t, 1, next.PageIndex)
}

func TestPageFailedOnlyReleasesButtons(t *testing.T) {
	m := New(time.UTC)
	s, _ := m.Init(NewNavigation(""))
	s.DisableButton = true

	next, cmds := m.Update(s, PageFailed{Err: errors.New("boom")})
	assert.Empty(t, cmds)
	assert.False(t, next.DisableButton)
	assert.False(t, next.Loaded())
}

func TestNextAtLastPageIsNoop(t *testing.T) {
	m := New(time.UTC)
	s := loaded(t, m, NewNavigation(""), 28)
	s.PageIndex = 3

	next, cmds := m.Update(s, NextClicked{})
	assert.Empty(t, cmds)
	assert.Equal(t, 3, next.PageIndex)
	assert.False(t, next.DisableButton)
}

func TestNavigationButtons(t *testing.T) {
	m := New(time.UTC)
	s := loaded(t, m, NewNavigation(""), 28)

	s, cmds := m.Update(s, NextClicked{})
	assert.Equal(t, 1, s.PageIndex)
	assert.True(t, s.DisableButton)
	assert.Equal(t, Query{Mode: ModeListing, PageIndex: 1, PageSize: 9}, onlyFetch(t, cmds))

	// A second click while the fetch is in flight is swallowed.
	again, cmds := m.Update(s, NextClicked{})
	assert.Empty(t, cmds)
	assert.Equal(t, 1, again.PageIndex)

	s, _ = m.Update(s, PageLoaded{Orders: page(28, "shipped")})

	s, cmds = m.Update(s, LastClicked{})
	assert.Equal(t, 3, s.PageIndex)
	assert.Equal(t, 3, onlyFetch(t, cmds).PageIndex)
	s, _ = m.Update(s, PageLoaded{Orders: page(28, "shipped")})

	_, cmds = m.Update(s, LastClicked{})
	assert.Empty(t, cmds)

	s, cmds = m.Update(s, PrevClicked{})
	assert.Equal(t, 2, s.PageIndex)
	assert.Equal(t, 2, onlyFetch(t, cmds).PageIndex)
	s, _ = m.Update(s, PageFailed{})

	s, cmds = m.Update(s, FirstClicked{})
	assert.Equal(t, 0, s.PageIndex)
	assert.Equal(t, 0, onlyFetch(t, cmds).PageIndex)
	s, _ = m.Update(s, PageLoaded{Orders: page(28, "shipped")})

	_, cmds = m.Update(s, FirstClicked{})
	assert.Empty(t, cmds)
	_, cmds = m.Update(s, PrevClicked{})
	assert.Empty(t, cmds)
}

func TestToggleDatePicker(t *testing.T) {
	m := New(time.UTC)
	s := loaded(t, m, NewNavigation(""), 28)
	s.PageIndex = 2

	s, cmds := m.Update(s, DatePickerToggled{})
	assert.False(t, s.HideCalendar)
	assert.Empty(t, cmds)

	s, _ = m.Update(s, DatesChanged{Range: DateRange{Start: day(2020, time.March, 5), End: day(2020, time.March, 9)}})
	assert.True(t, s.DateRangeActive())

	s, cmds = m.Update(s, DatePickerToggled{})
	assert.True(t, s.HideCalendar)
	assert.Nil(t, s.Range.Start)
	assert.Nil(t, s.Range.End)
	assert.Equal(t, 0, s.PageIndex)
	assert.Equal(t, Query{Mode: ModeListing, PageIndex: 0, PageSize: 9}, onlyFetch(t, cmds))
}

func TestDatesChangedDoesNotFetch(t *testing.T) {
	m := New(time.UTC)
	s, _ := m.Init(NewNavigation(""))
	s, _ = m.Update(s, DatePickerToggled{})

	_, cmds := m.Update(s, DatesChanged{Range: DateRange{Start: day(2020, time.March, 5)}})
	assert.Empty(t, cmds)
}

func TestDatesClosed(t *testing.T) {
	m := New(time.UTC)
	rng := DateRange{Start: day(2020, time.March, 5), End: day(2020, time.March, 9)}

	s := loaded(t, m, NewNavigation(""), 28)
	s.PageIndex = 2
	s, _ = m.Update(s, DatePickerToggled{})
	s, cmds := m.Update(s, DatesClosed{Range: rng})
	assert.Equal(t, 0, s.PageIndex)
	assert.Equal(t, Query{Mode: ModeDateRange, PageIndex: 0, PageSize: 9,
		StartDate: "2020-03-05", EndDate: "2020-03-09"}, onlyFetch(t, cmds))

	s = loaded(t, m, NewNavigation("q=tea"), 28)
	s, _ = m.Update(s, DatePickerToggled{})
	s, cmds = m.Update(s, DatesClosed{Range: rng})
	assert.Equal(t, Query{Mode: ModeDateRangeSearch, PageIndex: 0, PageSize: 9,
		StartDate: "2020-03-05", EndDate: "2020-03-09", Search: "tea"}, onlyFetch(t, cmds))

	// Paging inside the searched range uses the wider page.
	s, _ = m.Update(s, PageLoaded{Orders: page(28, "shipped")})
	_, cmds = m.Update(s, NextClicked{})
	assert.Equal(t, 10, onlyFetch(t, cmds).PageSize)
}

func TestDatesClosedWithoutCompleteRange(t *testing.T) {
	m := New(time.UTC)
	s, _ := m.Init(NewNavigation(""))
	s, _ = m.Update(s, DatePickerToggled{})

	_, cmds := m.Update(s, DatesClosed{Range: DateRange{End: day(2020, time.March, 9)}})
	assert.Empty(t, cmds)
}

func TestOrderClicked(t *testing.T) {
	m := New(time.UTC)

	s, _ := m.Init(NewNavigation(""))
	_, cmds := m.Update(s, OrderClicked{ID: 42})
	assert.Equal(t, []Command{Navigate{Path: "/orders/details/42"}}, cmds)

	s, _ = m.Init(NewNavigation("q=mug"))
	_, cmds = m.Update(s, OrderClicked{ID: 42})
	assert.Equal(t, []Command{Navigate{Path: "/orders/details/42", State: &NavigationState{Query: "mug"}}}, cmds)
}

func TestRedoSearchClicked(t *testing.T) {
	m := New(time.UTC)
	s, _ := m.Init(NewNavigation("q=mug"))
	_, cmds := m.Update(s, RedoSearchClicked{})
	assert.Equal(t, []Command{Navigate{Path: "/dashboard/customer"}}, cmds)
}

func TestView(t *testing.T) {
	m := New(time.UTC)
	s, _ := m.Init(NewNavigation("q=mug"))
	s, _ = m.Update(s, PageLoaded{Orders: []models.Order{{
		ID:             7,
		DateCreated:    time.Date(2021, time.July, 4, 15, 30, 0, 0, time.UTC),
		Total:          12.5,
		Quantity:       2,
		TrackingNumber: "1Z999",
		Status:         "Refunded",
		TotalCount:     10,
	}}})

	v := m.View(s)
	assert.True(t, v.Loaded)
	assert.Equal(t, 1, v.PageNumber)
	assert.Equal(t, 2, v.TotalPages)
	assert.Equal(t, "Redo Search", v.BackLabel)
	require.Len(t, v.Rows, 1)
	assert.Equal(t, OrderRow{ID: 7, OrderDate: "7/4/2021", PurchasePrice: "$12.50", Quantity: 2,
		TrackingNumber: "1Z999", Status: "Refunded", Badge: BadgeInfo}, v.Rows[0])

	empty, _ := m.Init(NewNavigation(""))
	assert.Equal(t, "Back to Customer Dashboard", m.View(empty).BackLabel)
	assert.False(t, m.View(empty).Loaded)
}

func TestDatesClosedIgnoredWhileCalendarHidden(t *testing.T) {
	m := New(time.UTC)
	rng := DateRange{Start: day(2020, time.March, 5), End: day(2020, time.March, 9)}

	s := loaded(t, m, NewNavigation(""), 28)
	s, cmds := m.Update(s, DatesClosed{Range: rng})
	assert.Empty(t, cmds)
	assert.False(t, s.Range.Complete())

	_, cmds = m.Update(s, NextClicked{})
	assert.Equal(t, ModeListing, onlyFetch(t, cmds).Mode)
}
