package handler

import (
	"net/http"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type userResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toUserResponse(u model.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

// Register godoc
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body service.RegisterParams true "user"
// @Success 201 {object} userResponse
// @Failure 400 {object} errs.ValidationErrorResponse
// @Failure 409 {object} errs.ValidationErrorResponse
// @Router /users/register [post]
func (h *Handler) Register(c echo.Context) error {
	var req service.RegisterParams
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	u, err := h.svc.Register(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, toUserResponse(u))
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login godoc
// @Summary Check user credentials
// @Tags users
// @Accept json
// @Produce json
// @Param request body loginRequest true "credentials"
// @Success 200 {object} userResponse
// @Failure 401 {object} errs.ValidationErrorResponse
// @Router /users/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	u, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

func (h *Handler) Deactivate(c echo.Context) error {
	u, err := h.svc.Deactivate(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return httpError(err)
	}
	h.log.Info("deactivated", zap.String("user", u.ID))
	return c.JSON(http.StatusOK, toUserResponse(u))
}

type roleRequest struct {
	Role model.Role `json:"role" validate:"required,oneof=ADMIN USER"`
}

// SetRole godoc
// @Summary Grant or revoke the admin role
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "user id"
// @Param request body roleRequest true "role"
// @Success 200 {object} userResponse
// @Failure 400 {object} errs.ValidationErrorResponse
// @Failure 404 {object} errs.ValidationErrorResponse
// @Router /users/{userId}/role [put]
func (h *Handler) SetRole(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	u, err := h.svc.SetRole(c.Request().Context(), c.Param("userId"), req.Role)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}
