package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/delivery"
	"github.com/x-xyz/ipmarket/domain"
)

// KeyPrincipal is where the authenticated caller is stored on echo.Context
const KeyPrincipal = "principal"

type AuthMiddleware struct {
	auth   domain.AuthUsecase
	admins []domain.Principal
}

func New(auth domain.AuthUsecase, admins []string) *AuthMiddleware {
	m := &AuthMiddleware{auth: auth}
	for _, a := range admins {
		m.admins = append(m.admins, domain.Principal(a))
	}
	return m
}

func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			return len(auth) == 0
		},
		Validator: m.validateAuthToken,
	})
}

// IsAdmin must run after Auth
func (m *AuthMiddleware) IsAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := Principal(c)

			for _, admin := range m.admins {
				if admin.Equals(principal) {
					return next(c)
				}
			}

			return delivery.MakeJsonResp(c, http.StatusForbidden, "require admin privilege")
		}
	}
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if p, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Error("auth.ParseToken failed")
		return false, err
	} else {
		c.Set(KeyPrincipal, p)
		return true, nil
	}
}

// Principal returns the caller set by Auth/OptionalAuth, anonymous if none
func Principal(c echo.Context) domain.Principal {
	if p, ok := c.Get(KeyPrincipal).(domain.Principal); ok && p != "" {
		return p
	}
	return domain.AnonymousPrincipal
}
