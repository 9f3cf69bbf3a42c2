// Package webapi registers the REST handlers on the web server. The
// response envelope and error vocabulary follow one shape everywhere:
// {"code": ..., "msg": ..., "data": ...}.
package webapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

type apiResponse struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, apiResponse{Code: 0, Data: data})
}

func fail(c echo.Context, status int, code, msg string) error {
	return c.JSON(status, apiResponse{Code: statusCode(code), Msg: msg, Data: code})
}

// statusCode maps the symbolic error codes onto stable numeric values
// clients can switch on.
func statusCode(code string) int {
	switch code {
	case "INVALID_REQUEST":
		return 1001
	case "VALIDATION_FAILED":
		return 1002
	case "NOT_FOUND":
		return 1004
	case "INVALID_TRANSITION":
		return 1009
	case "DATABASE_ERROR":
		return 1500
	default:
		return 1000
	}
}

func parseIDParam(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func parseIntQuery(c echo.Context, name string, fallback int) int {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
