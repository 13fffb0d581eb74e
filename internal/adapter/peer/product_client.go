package peer

import (
	"context"
	"net/http"
	"time"

	"github.com/Apple-More/order-service/internal/usecase"
)

type ProductClient struct {
	base string
	hc   *http.Client
}

func NewProductClient(baseURL string, timeout time.Duration) *ProductClient {
	return &ProductClient{base: baseURL, hc: newHTTPClient(timeout)}
}

// CheckAvailability posts the raw item list and returns resolved per-item
// prices plus the order total.
func (c *ProductClient) CheckAvailability(ctx context.Context, items []usecase.ItemRequest) (*usecase.PriceQuote, error) {
	var resp struct {
		Status  bool               `json:"status"`
		Data    usecase.PriceQuote `json:"data"`
		Message string             `json:"message"`
	}
	url := join(c.base, "/v1/product-variant-prices")
	if err := postJSON(ctx, c.hc, url, items, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *ProductClient) GetVariantPrice(ctx context.Context, variantID string) (float64, error) {
	var resp struct {
		Status bool `json:"status"`
		Data   struct {
			ProductVariantID string  `json:"product_variant_id"`
			Price            float64 `json:"price"`
		} `json:"data"`
		Message string `json:"message"`
	}
	url := join(c.base, "/v1/product-variants/"+variantID)
	if err := getJSON(ctx, c.hc, url, &resp); err != nil {
		return 0, err
	}
	return resp.Data.Price, nil
}

var _ usecase.ProductClient = (*ProductClient)(nil)
