package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/domain"
	"github.com/x-xyz/ipmarket/domain/nft"
	mNft "github.com/x-xyz/ipmarket/domain/nft/mocks"
)

func TestHandler(t *testing.T) {
	uc := mNft.NewUsecase(t)
	wrapped := 0
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, uc, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			wrapped++
			return next(c)
		}
	})

	uc.On("Get", mock.Anything, "7").Return(&nft.NFT{ID: "7"}, nil).Once()
	uc.On("Metadata", mock.Anything, "7").Return(&nft.Metadata{TokenID: "7"}, nil).Once()
	uc.On("Metadata", mock.Anything, "8").Return(nil, domain.ErrNotFound).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nfts/7", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, wrapped)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nfts/7/metadata", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, wrapped)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nfts/8/metadata", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
