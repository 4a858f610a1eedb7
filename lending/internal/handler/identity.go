package handler

import (
	"net/http"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/labstack/echo/v4"
)

// Register godoc
// @Summary create a patron account
// @Tags auth
// @Accept json
// @Produce json
// @Param user body model.UserCreateRequest true "user"
// @Success 201 {object} model.User
// @Failure 409 {object} echo.HTTPError
// @Router /register [post]
func (h *Handler) Register(c echo.Context) error {
	var req model.UserCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Role = model.RoleUser
	user, err := h.identitySvc.RegisterUser(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Authorize godoc
// @Summary exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.AuthRequest true "credentials"
// @Success 200 {object} model.AuthResponse
// @Failure 401 {object} echo.HTTPError
// @Router /authorize [post]
func (h *Handler) Authorize(c echo.Context) error {
	var req model.AuthRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.identitySvc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}
