package orderlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusBadge(t *testing.T) {
	cases := map[string]string{
		"completed":        BadgeInfo,
		"REFUNDED":         BadgeInfo,
		"Failed":           BadgeDanger,
		"canceled":         BadgeDanger,
		"On Hold/ Dispute": BadgeWarning,
		"on hold/ dispute": BadgeWarning,
		"on hold/dispute":  BadgeSuccess,
		"shipped":          BadgeSuccess,
		"":                 BadgeSuccess,
	}
	for status, want := range cases {
		assert.Equal(t, want, StatusBadge(status), "status %q", status)
	}
}
