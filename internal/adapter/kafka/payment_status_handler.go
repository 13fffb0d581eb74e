package kafka

import (
	"context"

	domain "github.com/Apple-More/order-service/internal/entity"
	"github.com/Apple-More/order-service/internal/usecase"
)

// PaymentStatusChangedHandler applies payment outcomes reported by the
// payment service to the order store.
type PaymentStatusChangedHandler struct {
	Repo  usecase.OrderRepo
	Cache usecase.OrderCache // optional
}

func NewPaymentStatusChangedHandler(repo usecase.OrderRepo, cache usecase.OrderCache) *PaymentStatusChangedHandler {
	return &PaymentStatusChangedHandler{Repo: repo, Cache: cache}
}

func (h *PaymentStatusChangedHandler) Handle(ctx context.Context, ev usecase.PaymentStatusChangedMsg) error {
	var newStatus domain.Status
	switch ev.Status {
	case "SUCCESS":
		newStatus = domain.StatusPaymentCompleted
	default:
		newStatus = domain.StatusFailed
	}

	// Guarded transition: only pending orders move. Stale or replayed
	// events must not clobber an already-settled order.
	if _, err := h.Repo.UpdateStatusIf(ctx, ev.OrderID, string(domain.StatusPending), string(newStatus)); err != nil {
		return err
	}

	// Cache best-effort
	if h.Cache != nil {
		_ = h.Cache.SetStatus(ctx, ev.OrderID, string(newStatus))
	}
	return nil
}
