package stripe

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/client"
)

// ChargeMetadata travels to the provider so webhook payloads and dashboard
// entries can be traced back to a local owner and plan.
type ChargeMetadata struct {
	OwnerID uint
	Plan    int
}

// ChargeResult is what the provider hands back for a freshly created charge.
type ChargeResult struct {
	ChargeID string
	Status   string
}

// Gateway wraps the provider's charge-creation API. Credentials are bound at
// construction; nothing here mutates package-level provider state.
type Gateway struct {
	api *client.API
}

func NewGateway(secretKey string) *Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Gateway{api: api}
}

// CreateCharge creates a PaymentIntent for amount in minor units. The remote
// call is bounded by ctx; callers should pass a deadline. Creation is not
// idempotent: a retry after a network failure may create a second remote
// charge.
func (g *Gateway) CreateCharge(ctx context.Context, amount int64, currency string, meta ChargeMetadata) (*ChargeResult, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
			Metadata: map[string]string{
				"owner_id": fmt.Sprint(meta.OwnerID),
				"plan":     fmt.Sprint(meta.Plan),
			},
		},
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent: %w", err)
	}

	return &ChargeResult{
		ChargeID: intent.ID,
		Status:   string(intent.Status),
	}, nil
}
