package book

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"libraryapi/app/echoServer/validation"
	"libraryapi/model"
	booksvc "libraryapi/service/book"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc booksvc.Service
	Log *slog.Logger
}

// List books
// @Summary      List books
// @Description  Paginated listing with optional case-insensitive substring filters
// @Tags         books
// @Produce      json
// @Param        page      query  int     false  "page (default 1)"
// @Param        per_page  query  int     false  "page size (default 10)"
// @Param        title     query  string  false  "title contains"
// @Param        author    query  string  false  "author contains"
// @Success      200  {object}  model.BookPage
// @Failure      400  {object}  map[string]any
// @Router       /books [get]
func (h *Controller) List(c echo.Context) error {
	q := model.BookQuery{Page: booksvc.DefaultPage, PerPage: booksvc.DefaultPerPage}
	err := echo.QueryParamsBinder(c).
		Int("page", &q.Page).
		Int("per_page", &q.PerPage).
		String("title", &q.Title).
		String("author", &q.Author).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid query parameter", "errors": queryErrors(err)})
	}

	page, err := h.Svc.List(c.Request().Context(), q)
	if err != nil {
		return h.internal(c, "book list error", err)
	}
	return c.JSON(http.StatusOK, page)
}

// GET /book/:id
// @Summary      Get a book
// @Tags         books
// @Produce      json
// @Param        id  path  int  true  "Book ID"
// @Success      200  {object}  model.Book
// @Failure      404  {object}  map[string]any
// @Router       /book/{id} [get]
func (h *Controller) Detail(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return echo.ErrNotFound
	}
	b, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, booksvc.ErrNotFound) {
			return echo.ErrNotFound
		}
		return h.internal(c, "book detail error", err)
	}
	return c.JSON(http.StatusOK, b)
}

// Create book
// @Summary      Add a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        payload  body  CreateBookReq  true  "Book"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /book [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}

	id, err := h.Svc.Create(c.Request().Context(), *req.Title, *req.Author, *req.ISBN)
	if err != nil {
		if errors.Is(err, booksvc.ErrBadInput) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		}
		return h.internal(c, "book create error", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Book added successfully", "id": id})
}

// Update book
// @Summary      Update a book
// @Description  Partial update; omitted fields keep their stored value
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id       path  int            true  "Book ID"
// @Param        payload  body  UpdateBookReq  true  "Fields to change"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /book/{id} [put]
func (h *Controller) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return echo.ErrNotFound
	}
	var req UpdateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	_, err := h.Svc.Update(c.Request().Context(), id, model.BookPatch{
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.ISBN,
	})
	if err != nil {
		switch {
		case errors.Is(err, booksvc.ErrNotFound):
			return echo.ErrNotFound
		case errors.Is(err, booksvc.ErrBadInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			return h.internal(c, "book update error", err)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Book updated successfully"})
}

// Delete book
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Security     TokenAuth
// @Param        id  path  int  true  "Book ID"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /book/{id} [delete]
func (h *Controller) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return echo.ErrNotFound
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, booksvc.ErrNotFound) {
			return echo.ErrNotFound
		}
		return h.internal(c, "book delete error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Book deleted successfully"})
}

func (h *Controller) internal(c echo.Context, msg string, err error) error {
	h.Log.Error(msg,
		"err", err,
		"req_id", c.Response().Header().Get(echo.HeaderXRequestID),
		"path", c.Path(),
		"method", c.Request().Method,
	)
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
}

// pathID parses :id. A non-integer id names no resource.
func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil
}

func queryErrors(err error) map[string]string {
	var be *echo.BindingError
	if errors.As(err, &be) {
		return map[string]string{be.Field: "must be an integer"}
	}
	return nil
}
