package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Order is a row of the customer order history as served by the orders
// service. TotalCount repeats the size of the whole result set on every item.
type Order struct {
	ID             int       `json:"id"`
	DateCreated    time.Time `json:"dateCreated"`
	Total          float64   `json:"total"`
	Quantity       int       `json:"quantity"`
	TrackingNumber string    `json:"trackingNumber"`
	Status         string    `json:"status"`
	TotalCount     int       `json:"totalCount"`
}

// Timestamps without a zone are read as UTC.
var dateCreatedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func (o *Order) UnmarshalJSON(data []byte) error {
	type order Order
	aux := struct {
		*order
		DateCreated *string `json:"dateCreated"`
	}{order: (*order)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	o.DateCreated = time.Time{}
	if aux.DateCreated == nil || *aux.DateCreated == "" {
		return nil
	}
	t, err := ParseDateCreated(*aux.DateCreated)
	if err != nil {
		return err
	}
	o.DateCreated = t
	return nil
}

func ParseDateCreated(value string) (time.Time, error) {
	for _, layout := range dateCreatedLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid dateCreated %q", value)
}
