package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Apple-More/order-service/internal/adapter/http/middleware"
	"github.com/Apple-More/order-service/internal/logging"
	"github.com/Apple-More/order-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	create  *usecase.CreateOrder
	confirm *usecase.ConfirmPayment
	list    *usecase.ListOrders
}

func NewOrderHandler(create *usecase.CreateOrder, confirm *usecase.ConfirmPayment, list *usecase.ListOrders) *OrderHandler {
	return &OrderHandler{create: create, confirm: confirm, list: list}
}

type createOrderReq struct {
	Order struct {
		OrderStatus       string `json:"order_status"`
		CustomerID        string `json:"customer_id"`
		ShippingAddressID string `json:"shipping_address_id"`
	} `json:"order"`
	OrderItems []usecase.ItemRequest `json:"orderItems"`
}

type orderResp struct {
	OrderID           string          `json:"order_id"`
	OrderStatus       string          `json:"order_status"`
	CustomerID        string          `json:"customer_id"`
	ShippingAddressID string          `json:"shipping_address_id"`
	CreatedAt         time.Time       `json:"created_at"`
	Items             []orderItemResp `json:"orderItems,omitempty"`
}

type orderItemResp struct {
	OrderItemID      string  `json:"order_item_id"`
	OrderID          string  `json:"order_id"`
	ProductVariantID string  `json:"product_variant_id"`
	Quantity         int     `json:"quantity"`
	Price            float64 `json:"price"`
}

type listedOrderResp struct {
	orderResp
	Customer any     `json:"customer,omitempty"`
	Total    float64 `json:"total"`
}

// CreateOrder handles POST /v1/.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, usecase.ErrInvalidRequest)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	out, err := h.create.Execute(ctx, usecase.CreateOrderInput{
		Status:            req.Order.OrderStatus,
		CustomerID:        req.Order.CustomerID,
		ShippingAddressID: req.Order.ShippingAddressID,
		Items:             req.OrderItems,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	logging.From(c).Info("order created", "order_id", out.OrderID)
	respond(c, http.StatusCreated, gin.H{
		"order_id":      out.OrderID,
		"client_secret": out.ClientSecret,
	}, "Order created successfully")
}

// ConfirmPayment handles PATCH /v1/:order_id.
func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	orderID := c.Param("order_id")

	var ident *usecase.Identity
	if id, ok := middleware.From(c); ok {
		ident = &id
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	view, err := h.confirm.Execute(ctx, orderID, ident)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, toOrderResp(view), "Order payment confirmed")
}

// ListOrders handles GET /v1/.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	orders, err := h.list.All(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toListResp(orders), "All orders retrieved")
}

// ListOrdersByUser handles GET /v1/user. The identity middleware has
// already rejected requests without a valid caller identity.
func (h *OrderHandler) ListOrdersByUser(c *gin.Context) {
	ident, _ := middleware.From(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	orders, err := h.list.ByCustomer(ctx, &ident)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toListResp(orders), "All orders retrieved")
}

func toOrderResp(v *usecase.OrderView) orderResp {
	resp := orderResp{
		OrderID:           v.Order.ID,
		OrderStatus:       v.Order.Status,
		CustomerID:        v.Order.CustomerID,
		ShippingAddressID: v.Order.ShippingAddressID,
		CreatedAt:         v.Order.CreatedAt,
	}
	for _, it := range v.Items {
		resp.Items = append(resp.Items, orderItemResp{
			OrderItemID:      it.ID,
			OrderID:          it.OrderID,
			ProductVariantID: it.ProductVariantID,
			Quantity:         it.Quantity,
			Price:            it.Price,
		})
	}
	return resp
}

func toListResp(orders []usecase.EnrichedOrder) []listedOrderResp {
	out := make([]listedOrderResp, 0, len(orders))
	for _, o := range orders {
		entry := listedOrderResp{
			orderResp: toOrderResp(&usecase.OrderView{Order: o.Order, Items: o.Items}),
			Total:     o.Total,
		}
		if o.Customer != nil {
			entry.Customer = o.Customer
		}
		out = append(out, entry)
	}
	return out
}

func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{"status": true, "data": data, "message": message})
}

// respondError maps error kinds to HTTP statuses with stable codes. The
// triggering error's text goes to the log, not the response body.
func respondError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "internal_error"
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest):
		status, code = http.StatusBadRequest, "invalid_request"
	case errors.Is(err, usecase.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, usecase.ErrDependency):
		code = "dependency_failure"
	case errors.Is(err, usecase.ErrPersistence):
		code = "persistence_failure"
	}

	if status >= http.StatusInternalServerError {
		logging.From(c).Error("request failed", "err", err)
	}
	c.JSON(status, gin.H{"status": false, "data": nil, "error": code})
}
