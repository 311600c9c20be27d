// app/echoServer/controller/member/memberController.go
package member

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"libraryapi/app/echoServer/validation"
	membersvc "libraryapi/service/member"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc membersvc.Service
	Log *slog.Logger
}

// List members
// @Summary      List members
// @Tags         members
// @Produce      json
// @Success      200  {array}  model.Member
// @Router       /members [get]
func (ct *Controller) List(c echo.Context) error {
	rows, err := ct.Svc.List(c.Request().Context())
	if err != nil {
		return ct.internal(c, "member list failed", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Create member
// @Summary      Add a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        payload  body  MemberReq  true  "Member"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Router       /member [post]
func (ct *Controller) Create(c echo.Context) error {
	req, herr := ct.bind(c)
	if herr != nil {
		return herr
	}

	id, err := ct.Svc.Create(c.Request().Context(), *req.Name, *req.Email)
	if err != nil {
		if errors.Is(err, membersvc.ErrBadInput) {
			return echo.NewHTTPError(http.StatusBadRequest, "bad input")
		}
		return ct.internal(c, "member create failed", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Member added successfully", "id": id})
}

// Update member
// @Summary      Replace a member
// @Description  Both fields are required and overwrite the stored values
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id       path  int        true  "Member ID"
// @Param        payload  body  MemberReq  true  "Member"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /member/{id} [put]
func (ct *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.ErrNotFound
	}
	req, herr := ct.bind(c)
	if herr != nil {
		return herr
	}

	if err := ct.Svc.Update(c.Request().Context(), id, *req.Name, *req.Email); err != nil {
		switch {
		case errors.Is(err, membersvc.ErrNotFound):
			return echo.ErrNotFound
		case errors.Is(err, membersvc.ErrBadInput):
			return echo.NewHTTPError(http.StatusBadRequest, "bad input")
		default:
			return ct.internal(c, "member update failed", err)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Member updated successfully"})
}

// Delete member
// @Summary      Delete a member
// @Tags         members
// @Produce      json
// @Param        id  path  int  true  "Member ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /member/{id} [delete]
func (ct *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.ErrNotFound
	}
	if err := ct.Svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, membersvc.ErrNotFound) {
			return echo.ErrNotFound
		}
		return ct.internal(c, "member delete failed", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Member deleted successfully"})
}

func (ct *Controller) bind(c echo.Context) (*MemberReq, error) {
	var req MemberReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return nil, echo.NewHTTPError(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}
	return &req, nil
}

func (ct *Controller) internal(c echo.Context, msg string, err error) error {
	rid := c.Response().Header().Get(echo.HeaderXRequestID)
	ct.Log.Error(msg,
		"err", err,
		"req_id", rid,
		"path", c.Path(),
		"method", c.Request().Method,
	)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}
