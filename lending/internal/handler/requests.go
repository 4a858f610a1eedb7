package handler

import (
	"net/http"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreateRequest godoc
// @Summary ask to borrow a book
// @Tags requests
// @Accept json
// @Produce json
// @Param request body model.CreateBorrowRequest true "book to borrow"
// @Success 201 {object} model.BorrowRequest
// @Failure 409 {object} echo.HTTPError
// @Security BearerAuth
// @Router /requests [post]
func (h *Handler) CreateRequest(c echo.Context) error {
	_, userID, err := caller(c)
	if err != nil {
		return err
	}
	var req model.CreateBorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bookID := uuid.MustParse(req.BookID)

	created, err := h.lendingSvc.CreateRequest(c.Request().Context(), userID, bookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) MyRequests(c echo.Context) error {
	_, userID, err := caller(c)
	if err != nil {
		return err
	}
	list, err := h.lendingSvc.UserRequests(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// PendingRequests godoc
// @Summary pending borrow requests, oldest first
// @Tags requests
// @Produce json
// @Success 200 {array} model.BorrowRequest
// @Security BearerAuth
// @Router /requests [get]
func (h *Handler) PendingRequests(c echo.Context) error {
	list, err := h.lendingSvc.PendingRequests(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// ApproveRequest godoc
// @Summary issue the requested book
// @Tags requests
// @Produce json
// @Param requestId path string true "request id"
// @Success 201 {object} model.IssuedBook
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Security BearerAuth
// @Router /requests/{requestId}/approve [post]
func (h *Handler) ApproveRequest(c echo.Context) error {
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return err
	}
	loan, err := h.lendingSvc.ApproveRequest(c.Request().Context(), requestID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) RejectRequest(c echo.Context) error {
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return err
	}
	req, err := h.lendingSvc.RejectRequest(c.Request().Context(), requestID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, req)
}
