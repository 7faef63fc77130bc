package payment

import (
	"context"
	"errors"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

// OmiseGateway is the production Gateway backed by the Omise API. Amounts
// are minor currency units, matching omise's own representation.
type OmiseGateway struct {
	client *omise.Client
}

func NewOmiseGateway(publicKey, secretKey string) (*OmiseGateway, error) {
	if secretKey == "" {
		return nil, errors.New("missing omise secret key")
	}
	c, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, err
	}
	c.SetDebug(false)
	return &OmiseGateway{client: c}, nil
}

func (g *OmiseGateway) CreateRefund(ctx context.Context, paymentRef string, amount int64, metadata map[string]string) (string, error) {
	meta := make(map[string]interface{}, len(metadata))
	for k, v := range metadata {
		meta[k] = v
	}

	refund := &omise.Refund{}
	req := &operations.CreateRefund{
		ChargeID: paymentRef,
		Amount:   amount,
		Metadata: meta,
	}
	if err := g.client.Do(refund, req); err != nil {
		return "", err
	}
	return refund.ID, nil
}
