package handler

import (
	"net/http"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/labstack/echo/v4"
)

// SearchBooks godoc
// @Summary search the catalog by title, author or category
// @Tags books
// @Produce json
// @Param q query string false "search text"
// @Success 200 {array} model.Book
// @Security BearerAuth
// @Router /books [get]
func (h *Handler) SearchBooks(c echo.Context) error {
	books, err := h.lendingSvc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// AvailableBooks godoc
// @Summary books with at least one copy on the shelf
// @Tags books
// @Produce json
// @Success 200 {array} model.Book
// @Security BearerAuth
// @Router /books/available [get]
func (h *Handler) AvailableBooks(c echo.Context) error {
	books, err := h.lendingSvc.ListAvailable(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	book, err := h.lendingSvc.GetBook(c.Request().Context(), bookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// AddBook godoc
// @Summary add a title or more copies of an existing one; copies defaults to 1
// @Tags books
// @Accept json
// @Produce json
// @Param book body model.AddBookRequest true "book"
// @Success 201 {object} model.Book
// @Failure 400 {object} echo.HTTPError
// @Security BearerAuth
// @Router /books [post]
func (h *Handler) AddBook(c echo.Context) error {
	var req model.AddBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	category, err := model.ParseCategory(req.Category)
	if err != nil {
		return httpError(err)
	}
	copies := 1
	if req.Copies != nil {
		copies = *req.Copies
	}
	book, err := h.lendingSvc.AddBook(c.Request().Context(), req.Title, req.Author, category, copies)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

// RemoveBook godoc
// @Summary remove a title that has no copies out on loan
// @Tags books
// @Param bookId path string true "book id"
// @Success 204
// @Failure 409 {object} echo.HTTPError
// @Security BearerAuth
// @Router /books/{bookId} [delete]
func (h *Handler) RemoveBook(c echo.Context) error {
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	if err := h.lendingSvc.RemoveBook(c.Request().Context(), bookID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
