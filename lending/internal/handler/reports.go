package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// OverdueReport godoc
// @Summary active loans past their due date with the fine accrued so far
// @Tags reports
// @Produce json
// @Success 200 {array} model.OverdueItem
// @Security BearerAuth
// @Router /reports/overdue [get]
func (h *Handler) OverdueReport(c echo.Context) error {
	items, err := h.lendingSvc.OverdueLoans(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) IssueHistory(c echo.Context) error {
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	items, err := h.lendingSvc.IssueHistory(c.Request().Context(), bookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}
