package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/ipmarket/base/delivery"
	"github.com/x-xyz/ipmarket/stores/auth/delivery/http/middleware"
)

type authHandler struct{}

func New(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	handler := &authHandler{}
	g := e.Group("/auth")
	g.GET("/me", handler.me, authMiddleware.Auth())
}

// me
//
//	@Summary		Current caller
//	@Description	Principal carried by the bearer token
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	object{data=object{principal=string,short=string}}
//	@Failure		401
//	@Router			/auth/me [get]
func (h *authHandler) me(c echo.Context) error {
	p := middleware.Principal(c)
	res := struct {
		Principal string `json:"principal"`
		Short     string `json:"short"`
	}{
		Principal: p.String(),
		Short:     p.Short(),
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
