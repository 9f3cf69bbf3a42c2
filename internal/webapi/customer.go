package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/cleancycle/cleancycle/internal/customer"
	"github.com/cleancycle/cleancycle/internal/repository"
)

func (h *Handler) getPreferences(c echo.Context) error {
	p, err := h.customerSvc.GetPreferences(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query preferences")
	}
	return ok(c, p)
}

func (h *Handler) savePreferences(c echo.Context) error {
	var payload customer.UpdateRequest
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse preferences")
	}
	p, err := h.customerSvc.SavePreferences(c.Request().Context(), payload)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save preferences")
	}
	return ok(c, p)
}

type addressPayload struct {
	Label   string `json:"label"`
	Address string `json:"address"`
}

func (h *Handler) addAddress(c echo.Context) error {
	var payload addressPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse address")
	}
	p, err := h.customerSvc.AddAddress(c.Request().Context(), payload.Label, payload.Address)
	if err != nil {
		if customer.IsValidation(err) {
			return fail(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		}
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save address")
	}
	return c.JSON(http.StatusCreated, apiResponse{Code: 0, Data: p})
}

func (h *Handler) removeAddress(c echo.Context) error {
	id, valid := parseIDParam(c, "id")
	if !valid {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid address ID")
	}
	p, err := h.customerSvc.RemoveAddress(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Address not found")
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to remove address")
	}
	return ok(c, p)
}

func (h *Handler) setDefaultAddress(c echo.Context) error {
	id, valid := parseIDParam(c, "id")
	if !valid {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid address ID")
	}
	p, err := h.customerSvc.SetDefaultAddress(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Address not found")
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update default address")
	}
	return ok(c, p)
}
