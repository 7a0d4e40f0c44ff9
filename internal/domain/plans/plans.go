package plans

// Plan maps a small integer code onto a pre-configured checkout destination.
// The table is static: checkout destinations are provisioned in the provider
// dashboard, not synced at runtime.
type Plan struct {
	Code        int    `json:"code"`
	Name        string `json:"name"`
	AmountHint  int64  `json:"amountHint"`
	CheckoutURL string `json:"checkoutUrl"`
}

var table = map[int]Plan{
	1: {Code: 1, Name: "Basic", AmountHint: 1000, CheckoutURL: "https://buy.stripe.com/social-basic"},
	2: {Code: 2, Name: "Standard", AmountHint: 2000, CheckoutURL: "https://buy.stripe.com/social-standard"},
	3: {Code: 3, Name: "Premium", AmountHint: 5000, CheckoutURL: "https://buy.stripe.com/social-premium"},
}

// ByCode resolves a plan code. Unknown codes must be rejected before any
// remote charge is created.
func ByCode(code int) (Plan, bool) {
	p, ok := table[code]
	return p, ok
}

// All returns the configured plans in code order.
func All() []Plan {
	out := make([]Plan, 0, len(table))
	for code := 1; code <= len(table); code++ {
		if p, ok := table[code]; ok {
			out = append(out, p)
		}
	}
	return out
}
