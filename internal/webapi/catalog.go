package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cleancycle/cleancycle/internal/booking"
	"github.com/cleancycle/cleancycle/pkg/common"
)

func (h *Handler) listServices(c echo.Context) error {
	services, err := h.catalog.ListServices(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query catalog")
	}
	return ok(c, services)
}

func (h *Handler) listSlots(c echo.Context) error {
	slots, err := h.catalog.ListSlots(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query pickup slots")
	}
	// The earliest bookable date rides along so date pickers can set
	// their lower bound without a second request.
	return ok(c, map[string]interface{}{
		"slots":           slots,
		"min_pickup_date": booking.MinPickupDate(h.clock.Now()).Format("2006-01-02"),
	})
}

type quotePayload struct {
	Lines []booking.LineRequest `json:"lines"`
}

func (h *Handler) quote(c echo.Context) error {
	var payload quotePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse quote request")
	}
	total, err := h.bookingSvc.Quote(c.Request().Context(), payload.Lines)
	if err != nil {
		if booking.IsValidation(err) {
			return fail(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		}
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to price draft")
	}
	return ok(c, map[string]interface{}{
		"total":         total,
		"total_display": common.FormatMoney(total),
	})
}
