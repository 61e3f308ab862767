package views

import (
	"customer-portal/dashboard"
	"customer-portal/models"
	"customer-portal/orderlist"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	return r
}

func TestRenderDashboardPhases(t *testing.T) {
	r := newTestRenderer(t)

	cases := map[string]struct {
		page dashboard.Page
		want string
	}{
		"loading":    {dashboard.Page{Phase: "loading"}, "Loading..."},
		"onboarding": {dashboard.Page{Phase: "onboarding"}, "Complete your profile"},
		"populated": {dashboard.Page{
			Phase:          "populated",
			User:           models.UserProfile{FirstName: "Ana", LastName: "Lee"},
			FullName:       "Ana Lee",
			NoResultsFound: dashboard.NoResultsFound,
		}, "There were no results found."},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			require.NoError(t, r.Instance(DashboardPage, tc.page).Render(w))
			assert.Contains(t, w.Body.String(), tc.want)
			assert.Contains(t, w.Body.String(), "<title>Customer Dashboard</title>")
		})
	}
}

func TestRenderOrders(t *testing.T) {
	r := newTestRenderer(t)
	page := orderlist.Page{
		Loaded:       true,
		PageNumber:   2,
		TotalPages:   4,
		HideCalendar: true,
		BackLabel:    "Redo Search",
		Rows: []orderlist.OrderRow{
			{ID: 7, OrderDate: "3/5/2020", PurchasePrice: "$12.50", Quantity: 2, TrackingNumber: "TRK7", Status: "Refunded", Badge: orderlist.BadgeInfo},
		},
	}

	w := httptest.NewRecorder()
	require.NoError(t, r.Instance(OrdersPage, page).Render(w))

	body := w.Body.String()
	assert.Contains(t, body, "2 of 4")
	assert.Contains(t, body, "Redo Search")
	assert.Contains(t, body, `href="/orders/7/open"`)
	assert.Contains(t, body, "badge badge-info")
	assert.NotContains(t, body, `name="start_date"`)
}

func TestRenderOrdersNotLoaded(t *testing.T) {
	r := newTestRenderer(t)
	w := httptest.NewRecorder()
	require.NoError(t, r.Instance(OrdersPage, orderlist.Page{BackLabel: "Back to Customer Dashboard"}).Render(w))
	assert.Contains(t, w.Body.String(), "There were no results found.")
}

func TestRenderUnknownPage(t *testing.T) {
	r := newTestRenderer(t)
	w := httptest.NewRecorder()
	require.NoError(t, r.Instance("missing.html", nil).Render(w))
	assert.Equal(t, "page not found", w.Body.String())
}
