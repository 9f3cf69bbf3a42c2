package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cleancycle/cleancycle/internal/app"
	"github.com/cleancycle/cleancycle/internal/booking"
	"github.com/cleancycle/cleancycle/internal/domain"
	"github.com/cleancycle/cleancycle/internal/order"
	"github.com/cleancycle/cleancycle/internal/repository"
	"github.com/cleancycle/cleancycle/pkg/common"
)

// orderView decorates an order with its display metadata so tracking
// clients need no extra lookups.
type orderView struct {
	domain.Order
	StatusMeta        order.StatusMeta `json:"status_meta"`
	EstimatedDelivery string           `json:"estimated_delivery"`
	EstimatedDisplay  string           `json:"estimated_delivery_display"`
}

func newOrderView(o domain.Order) orderView {
	meta, _ := order.MetaFor(o.Status)
	est := order.EstimateDelivery(&o)
	return orderView{
		Order:             o,
		StatusMeta:        meta,
		EstimatedDelivery: est.Format("2006-01-02"),
		EstimatedDisplay:  common.FormatDate(est),
	}
}

func newOrderViews(orders []domain.Order) []orderView {
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, newOrderView(o))
	}
	return out
}

func (h *Handler) submitOrder(c echo.Context) error {
	var payload booking.SubmitRequest
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse order")
	}

	o, err := h.bookingSvc.Submit(c.Request().Context(), payload)
	if err != nil {
		if booking.IsValidation(err) {
			return fail(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		}
		zap.L().Error("order submission failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save order")
	}

	return c.JSON(http.StatusCreated, apiResponse{Code: 0, Data: newOrderView(*o)})
}

func (h *Handler) listOrders(c echo.Context) error {
	orders, err := h.orders.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query orders")
	}

	active, history := order.Partition(orders)
	recent := parseIntQuery(c, "recent", 5)

	return ok(c, map[string]interface{}{
		"active":        newOrderViews(active),
		"history":       newOrderViews(order.RecentHistory(history, recent)),
		"history_total": len(history),
	})
}

func (h *Handler) getOrder(c echo.Context) error {
	id, valid := parseIDParam(c, "id")
	if !valid {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid order ID")
	}

	o, err := h.orders.GetByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query order")
	}
	return ok(c, newOrderView(*o))
}

// advanceOrder moves an order one step forward. This is the operations
// side of the status machine; the customer UI only ever reads status.
func (h *Handler) advanceOrder(c echo.Context) error {
	id, valid := parseIDParam(c, "id")
	if !valid {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid order ID")
	}
	ctx := c.Request().Context()

	o, err := h.orders.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query order")
	}

	prev := o.Status
	if err := order.Advance(o, h.clock.Now()); err != nil {
		return fail(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
	}
	if err := h.orders.UpdateStatus(ctx, o.ID, o.Status, o.DeliveryDate); err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update order status")
	}

	zap.L().Info("order status advanced",
		zap.Int64("id", o.ID),
		zap.String("from", prev),
		zap.String("to", o.Status))
	if h.bus != nil {
		h.bus.Publish(app.EventOrderStatus, o, prev)
	}
	return ok(c, newOrderView(*o))
}
