package stripe

import "strings"

// NormalizeIntentStatus maps provider payment-intent statuses onto the local
// vocabulary. Anything not definitively terminal reads as pending; the local
// record only leaves pending through webhook reconciliation.
func NormalizeIntentStatus(s string) string {
	switch strings.TrimSpace(s) {
	case "succeeded":
		return "succeeded"
	case "canceled":
		return "failed"
	default:
		return "pending"
	}
}
