package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/delivery"
	"github.com/x-xyz/ipmarket/base/log"
	"github.com/x-xyz/ipmarket/base/metrics"
	"github.com/x-xyz/ipmarket/base/validator"
	"github.com/x-xyz/ipmarket/domain"
)

// GoMiddleware holds the request scoped middlewares shared by every route
type GoMiddleware struct{}

func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{}
}

// AddContext puts a ctx.Ctx bound to the request into echo. The request id
// is taken from X-Request-ID or generated, and echoed back.
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, id)

			cont := ctx.WithContext(ctx.Background(), c.Request().Context())
			c.Set("ctx", ctx.WithRequestID(cont, id))
			return next(c)
		}
	}
}

// ResponseLogger writes one access log line per request. 5xx log at error,
// 4xx at warn.
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	met := metrics.New("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			timer := met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path())

			nextErr := next(c)
			if nextErr != nil {
				c.Error(nextErr)
			}
			timer.End()

			req, res := c.Request(), c.Response()
			l := c.Get("ctx").(ctx.Ctx).WithFields(log.Fields{
				"ms":         time.Since(start).Milliseconds(),
				"httpStatus": res.Status,
				"httpMethod": req.Method,
				"route":      c.Path(),
				"uri":        req.URL.RequestURI(),
				"size":       res.Size,
				"remoteIP":   c.RealIP(),
				"userAgent":  req.UserAgent(),
			})
			if p, ok := c.Get("principal").(domain.Principal); ok {
				l = l.WithField("principal", p)
			}

			switch status := res.Status; {
			case status >= http.StatusInternalServerError:
				met.BumpSum("request.fail", 1, "path", c.Path(), "status", strconv.Itoa(status))
				l.WithField("err", nextErr).Error("response")
			case status >= http.StatusBadRequest:
				met.BumpSum("request.fail", 1, "path", c.Path(), "status", strconv.Itoa(status))
				l.WithField("err", nextErr).Warn("response")
			default:
				l.Info("response")
			}
			return nil
		}
	}
}

// IsValidPrincipal rejects requests whose path param is not a textual principal
func IsValidPrincipal(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			if !validator.IsValidPrincipal(c.Param(param)) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid principal")
			}
			return next(c)
		}
	}
}
