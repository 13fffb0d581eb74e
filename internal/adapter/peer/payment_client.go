package peer

import (
	"context"
	"net/http"
	"time"

	"github.com/Apple-More/order-service/internal/usecase"
)

type PaymentClient struct {
	base string
	hc   *http.Client
}

func NewPaymentClient(baseURL string, timeout time.Duration) *PaymentClient {
	return &PaymentClient{base: baseURL, hc: newHTTPClient(timeout)}
}

// CreateIntent asks the payment service for a payment intent covering
// amount and returns the intent's client secret. The secret is opaque to
// this service; it is handed to the caller unchanged.
func (c *PaymentClient) CreateIntent(ctx context.Context, amount float64) (string, error) {
	req := struct {
		Amount float64 `json:"amount"`
	}{Amount: amount}

	var resp struct {
		ClientSecret string `json:"client_secret"`
	}
	url := join(c.base, "/v1/customer/payment-intent")
	if err := postJSON(ctx, c.hc, url, req, &resp); err != nil {
		return "", err
	}
	return resp.ClientSecret, nil
}

var _ usecase.PaymentClient = (*PaymentClient)(nil)
