package payments

import "context"

// Preference is a checkout created at the payment provider.
type Preference struct {
	ID          string
	CheckoutURL string
}

type Gateway interface {
	CreatePreference(ctx context.Context, title string, amount float64, externalRef string) (*Preference, error)
}
