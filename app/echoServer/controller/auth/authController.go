// app/echoServer/controller/auth/authController.go
package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"libraryapi/model"
	authsvc "libraryapi/service/auth"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc authsvc.Service
	Log *slog.Logger
}

// Login
// @Summary      Login
// @Description  Login with the configured username + password, returns an opaque token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /login [post]
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq

	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, err := ct.Svc.Login(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, authsvc.ErrInvalidCreds):
			ct.Log.Warn("login rejected", "username", req.Username, "ip", c.RealIP())
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("login failed",
				"err", err,
				"req_id", rid,
				"path", c.Path(),
				"method", c.Request().Method,
			)
			return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
