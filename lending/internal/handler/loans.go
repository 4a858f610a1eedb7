package handler

import (
	"net/http"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/pkg/auth"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type loanResponse struct {
	model.IssuedBook
	Status      model.LoanStatus `json:"status"`
	DaysOverdue int              `json:"daysOverdue"`
}

func (h *Handler) loanResponses(loans []model.IssuedBook) []loanResponse {
	now := h.now()
	items := make([]loanResponse, 0, len(loans))
	for _, l := range loans {
		items = append(items, loanResponse{
			IssuedBook:  l,
			Status:      l.Status(now),
			DaysOverdue: l.DaysOverdue(now),
		})
	}
	return items
}

// MyLoans godoc
// @Summary the caller's active loans, nearest due date first
// @Tags loans
// @Produce json
// @Success 200 {array} loanResponse
// @Security BearerAuth
// @Router /loans/me [get]
func (h *Handler) MyLoans(c echo.Context) error {
	_, userID, err := caller(c)
	if err != nil {
		return err
	}
	loans, err := h.lendingSvc.BorrowedBooks(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, h.loanResponses(loans))
}

func (h *Handler) IssuedBooks(c echo.Context) error {
	loans, err := h.lendingSvc.IssuedBooks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, h.loanResponses(loans))
}

// ReturnBook godoc
// @Summary return a borrowed book; date defaults to now
// @Tags loans
// @Accept json
// @Produce json
// @Param issueId path string true "issue id"
// @Param body body model.ReturnBookRequest false "return date"
// @Success 200 {object} model.ReturnBookResponse
// @Failure 400 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Security BearerAuth
// @Router /loans/{issueId}/return [post]
func (h *Handler) ReturnBook(c echo.Context) error {
	issueID, err := h.ownLoan(c)
	if err != nil {
		return err
	}
	var req model.ReturnBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	returnDate := h.now()
	if req.Date != nil {
		returnDate = req.Date.Time
	}
	fine, err := h.lendingSvc.ReturnBook(c.Request().Context(), issueID, returnDate)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.ReturnBookResponse{IssueID: issueID, Fine: fine})
}

// RenewLoan godoc
// @Summary extend the due date of an active loan
// @Tags loans
// @Produce json
// @Param issueId path string true "issue id"
// @Success 200 {object} loanResponse
// @Failure 409 {object} echo.HTTPError
// @Security BearerAuth
// @Router /loans/{issueId}/renew [post]
func (h *Handler) RenewLoan(c echo.Context) error {
	issueID, err := h.ownLoan(c)
	if err != nil {
		return err
	}
	loan, err := h.lendingSvc.RenewLoan(c.Request().Context(), issueID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, h.loanResponses([]model.IssuedBook{loan})[0])
}

// ownLoan resolves the issueId path parameter. Patrons may only act on their own loans.
func (h *Handler) ownLoan(c echo.Context) (uuid.UUID, error) {
	p, userID, err := caller(c)
	if err != nil {
		return uuid.Nil, err
	}
	issueID, err := pathID(c, "issueId")
	if err != nil {
		return uuid.Nil, err
	}
	if p.Role == auth.RoleLibrarian {
		return issueID, nil
	}
	loan, err := h.lendingSvc.GetLoan(c.Request().Context(), issueID)
	if err != nil {
		return uuid.Nil, httpError(err)
	}
	if loan.UserID != userID {
		return uuid.Nil, echo.NewHTTPError(http.StatusForbidden, "loan belongs to another user")
	}
	return issueID, nil
}
