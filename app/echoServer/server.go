package echoServer

import (
	"libraryapi/app/echoServer/validation"

	"github.com/labstack/echo/v4"
)

// New builds the Echo instance with middleware, validator and routes.
func New(c C) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	RegisterMiddlewares(e, c.Log)
	e.Validator = validation.New()
	Register(e, c)
	return e
}
