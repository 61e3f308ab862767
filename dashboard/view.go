package dashboard

import (
	"customer-portal/models"
	"customer-portal/orderlist"
	"time"
)

type SummaryRow struct {
	ID             int    `json:"id"`
	OrderDate      string `json:"orderDate"`
	TrackingNumber string `json:"trackingNumber"`
	Status         string `json:"status"`
	Badge          string `json:"badge"`
}

type Page struct {
	Phase          string             `json:"phase"`
	User           models.UserProfile `json:"user"`
	FullName       string             `json:"fullName"`
	Role           int                `json:"role"`
	Photo          bool               `json:"photo"`
	Orders         []SummaryRow       `json:"orders"`
	NoResultsFound string             `json:"noResultsFound"`
}

func View(s State, zone *time.Location) Page {
	p := Page{
		Phase:          s.Phase.String(),
		User:           s.User,
		FullName:       s.User.FullName(),
		Role:           s.Role,
		Photo:          s.Photo,
		NoResultsFound: s.NoResultsFound,
		Orders:         make([]SummaryRow, 0, len(s.Orders)),
	}
	for _, o := range s.Orders {
		p.Orders = append(p.Orders, SummaryRow{
			ID:             o.ID,
			OrderDate:      orderlist.ConvertDateCreated(o.DateCreated, zone),
			TrackingNumber: o.TrackingNumber,
			Status:         o.Status,
			Badge:          orderlist.StatusBadge(o.Status),
		})
	}
	return p
}
