package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/ipmarket/base/ctx"
)

func newEcho() *echo.Echo {
	m := InitMiddleware()
	e := echo.New()
	e.Use(m.AddContext())
	e.Use(m.ResponseLogger())
	e.GET("/id", func(c echo.Context) error {
		return c.String(http.StatusOK, ctx.RequestID(c.Get("ctx").(ctx.Ctx)))
	})
	e.GET("/sellers/:principal", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Param("principal"))
	}, IsValidPrincipal("principal"))
	return e
}

func TestAddContext(t *testing.T) {
	e := newEcho()

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "req-1", rec.Body.String())
	assert.Equal(t, "req-1", rec.Header().Get(echo.HeaderXRequestID))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/id", nil))
	assert.NotEmpty(t, rec.Body.String())
	assert.Equal(t, rec.Body.String(), rec.Header().Get(echo.HeaderXRequestID))
}

func TestIsValidPrincipal(t *testing.T) {
	e := newEcho()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sellers/ryjl3-tyaaa-aaaaa-aaaba-cai", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sellers/0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
