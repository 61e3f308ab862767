package orderlist

import "strings"

const (
	BadgeInfo    = "badge-info"
	BadgeDanger  = "badge-danger"
	BadgeWarning = "badge-warning"
	BadgeSuccess = "badge-success"
)

// StatusBadge maps an order status to the badge class shown in the status
// column. Matching ignores case.
func StatusBadge(status string) string {
	switch strings.ToLower(status) {
	case "completed", "refunded":
		return BadgeInfo
	case "failed", "canceled":
		return BadgeDanger
	case "on hold/ dispute":
		return BadgeWarning
	default:
		return BadgeSuccess
	}
}
