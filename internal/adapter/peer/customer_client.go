package peer

import (
	"context"
	"net/http"
	"time"

	domain "github.com/Apple-More/order-service/internal/entity"
	"github.com/Apple-More/order-service/internal/usecase"
)

type CustomerClient struct {
	base string
	hc   *http.Client
}

func NewCustomerClient(baseURL string, timeout time.Duration) *CustomerClient {
	return &CustomerClient{base: baseURL, hc: newHTTPClient(timeout)}
}

func (c *CustomerClient) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	var resp struct {
		Status  bool            `json:"status"`
		Data    domain.Customer `json:"data"`
		Message string          `json:"message"`
	}
	url := join(c.base, "/v1/customers/"+id)
	if err := getJSON(ctx, c.hc, url, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

var _ usecase.CustomerClient = (*CustomerClient)(nil)
