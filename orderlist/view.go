package orderlist

import "fmt"

const (
	redoSearchLabel    = "Redo Search"
	backDashboardLabel = "Back to Customer Dashboard"
)

type OrderRow struct {
	ID             int    `json:"id"`
	OrderDate      string `json:"orderDate"`
	PurchasePrice  string `json:"purchasePrice"`
	Quantity       int    `json:"quantity"`
	TrackingNumber string `json:"trackingNumber"`
	Status         string `json:"status"`
	Badge          string `json:"badge"`
}

// Page is what the orders template and the JSON clients render.
type Page struct {
	Loaded        bool       `json:"loaded"`
	Rows          []OrderRow `json:"rows"`
	PageNumber    int        `json:"pageNumber"`
	TotalPages    int        `json:"totalPages"`
	DisableButton bool       `json:"disableButton"`
	HideCalendar  bool       `json:"hideCalendar"`
	StartDate     string     `json:"startDate,omitempty"`
	EndDate       string     `json:"endDate,omitempty"`
	BackLabel     string     `json:"backLabel"`
	SearchQuery   string     `json:"searchQuery,omitempty"`
}

func (m Machine) View(s State) Page {
	p := Page{
		Loaded:        s.Loaded(),
		PageNumber:    s.PageIndex + 1,
		TotalPages:    s.TotalPages,
		DisableButton: s.DisableButton,
		HideCalendar:  s.HideCalendar,
		BackLabel:     backDashboardLabel,
		SearchQuery:   s.SearchQuery,
	}
	if s.Nav.HasSearch() {
		p.BackLabel = redoSearchLabel
	}
	if s.Range.Start != nil {
		p.StartDate = DateInput(*s.Range.Start, m.zone)
	}
	if s.Range.End != nil {
		p.EndDate = DateInput(*s.Range.End, m.zone)
	}

	p.Rows = make([]OrderRow, 0, len(s.Orders))
	for _, o := range s.Orders {
		p.Rows = append(p.Rows, OrderRow{
			ID:             o.ID,
			OrderDate:      ConvertDateCreated(o.DateCreated, m.zone),
			PurchasePrice:  fmt.Sprintf("$%.2f", o.Total),
			Quantity:       o.Quantity,
			TrackingNumber: o.TrackingNumber,
			Status:         o.Status,
			Badge:          StatusBadge(o.Status),
		})
	}
	return p
}
