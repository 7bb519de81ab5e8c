package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/ipmarket/domain"
	"github.com/x-xyz/ipmarket/domain/listing"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// ErrorStatus maps a use case error to its http status
func ErrorStatus(err error) int {
	if _, ok := listing.AsRejection(err); ok {
		return http.StatusUnprocessableEntity
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidPrincipal),
		errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrLedgerRejected):
		return http.StatusConflict
	case errors.Is(err, domain.ErrLedgerUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrNotImplemented):
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		// unclassified errors keep a client error status chosen by the caller
		if mapped := ErrorStatus(err); mapped != http.StatusInternalServerError || status < 400 || status >= 500 {
			status = mapped
		}
		if r, ok := listing.AsRejection(err); ok {
			data = string(r)
		} else if status == http.StatusInternalServerError {
			// internal details stay in the logs
			data = domain.ErrInternalServerError.Error()
		} else {
			data = err.Error()
		}
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
