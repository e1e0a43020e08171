package payments

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

type MercadoPagoGateway struct {
	client preference.Client
}

// NewMercadoPago returns nil when no access token is configured; callers
// treat a nil gateway as "provider unavailable".
func NewMercadoPago(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPagoGateway{
		client: preference.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(
	ctx context.Context,
	title string,
	amount float64,
	externalRef string,
) (*Preference, error) {

	resp, err := g.client.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     title,
				Quantity:  1,
				UnitPrice: amount,
			},
		},
		ExternalReference: externalRef,
	})
	if err != nil {
		return nil, err
	}

	return &Preference{
		ID:          resp.ID,
		CheckoutURL: resp.InitPoint,
	}, nil
}

var _ Gateway = (*MercadoPagoGateway)(nil)
