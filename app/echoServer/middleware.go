// app/echoServer/middleware.go
package echoServer

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	authsvc "libraryapi/service/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const ctxUsername = "username"

func RegisterMiddlewares(e *echo.Echo, log *slog.Logger) {

	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(Slog(log))
}

func Slog(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler write the status before we read it
				c.Error(err)
			}
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			log.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
				"ua", c.Request().UserAgent(),
			)
			return nil
		}
	}
}

// TokenAuth admits requests whose Authorization header holds a token issued
// by Login. The header value is the raw token, without a scheme prefix.
func TokenAuth(svc authsvc.Service, log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(echo.HeaderAuthorization)
			user, err := svc.Authorize(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, authsvc.ErrUnauthorized) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: Invalid or missing token")
				}
				log.Error("token lookup failed",
					"err", err,
					"req_id", c.Response().Header().Get(echo.HeaderXRequestID),
				)
				return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
			}
			c.Set(ctxUsername, user)
			return next(c)
		}
	}
}
