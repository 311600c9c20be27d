package echoServer

import (
	"context"
	"log/slog"
	"net/http"

	"libraryapi/app/echoServer/controller/auth"
	"libraryapi/app/echoServer/controller/book"
	"libraryapi/app/echoServer/controller/member"
	authsvc "libraryapi/service/auth"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Pinger reports database reachability for /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type C struct {
	Auth   *auth.Controller
	Book   *book.Controller
	Member *member.Controller

	AuthSvc authsvc.Service
	DB      Pinger
	Log     *slog.Logger
}

func Register(e *echo.Echo, c C) {
	e.GET("/", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, echo.Map{"message": "Welcome to the Library Management System API"})
	})

	e.GET("/health", func(ctx echo.Context) error {
		if err := c.DB.Ping(ctx.Request().Context()); err != nil {
			c.Log.Error("health ping failed", "err", err)
			return ctx.JSON(http.StatusServiceUnavailable, echo.Map{
				"status":  "down",
				"message": "database unreachable",
			})
		}
		return ctx.JSON(http.StatusOK, echo.Map{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public
	e.POST("/login", c.Auth.Login)
	e.GET("/books", c.Book.List)
	e.GET("/book/:id", c.Book.Detail)

	// Members carry no auth
	e.GET("/members", c.Member.List)
	e.POST("/member", c.Member.Create)
	e.PUT("/member/:id", c.Member.Update)
	e.DELETE("/member/:id", c.Member.Delete)

	// Book writes need a token
	tokenAuth := TokenAuth(c.AuthSvc, c.Log)
	e.POST("/book", c.Book.Create, tokenAuth)
	e.PUT("/book/:id", c.Book.Update, tokenAuth)
	e.DELETE("/book/:id", c.Book.Delete, tokenAuth)
}
