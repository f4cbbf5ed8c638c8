package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type payRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"12.50"`
}

// PayFine godoc
// @Summary Pay a fine, partially or in full
// @Tags fines
// @Accept json
// @Produce json
// @Param media path string true "BOOK or CD"
// @Param fineId path string true "fine id"
// @Param request body payRequest true "amount"
// @Success 200 {object} model.Fine
// @Failure 400 {object} errs.ValidationErrorResponse
// @Failure 409 {object} errs.ValidationErrorResponse
// @Router /fines/{media}/{fineId}/pay [post]
func (h *Handler) PayFine(c echo.Context) error {
	media, err := mediaParam(c)
	if err != nil {
		return err
	}
	var req payRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	fineID := c.Param("fineId")
	fine, err := h.svc.Fine(media, fineID)
	if err != nil {
		return httpError(err)
	}
	if !canAccess(c, fine.UserID) {
		return errForbidden
	}

	fine, err = h.svc.PayFine(c.Request().Context(), media, fineID, req.Amount)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, fine)
}

func (h *Handler) GetUserFines(c echo.Context) error {
	userID := c.Param("userId")
	if !canAccess(c, userID) {
		return errForbidden
	}
	return c.JSON(http.StatusOK, h.svc.UserFines(userID))
}

type reminderRequest struct {
	DaysBefore int `json:"daysBefore" validate:"gte=0"`
}

// SendReminders godoc
// @Summary Send overdue and return reminders
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reminderRequest false "return reminder window"
// @Success 200 {object} service.ReminderReport
// @Router /admin/reminders [post]
func (h *Handler) SendReminders(c echo.Context) error {
	var req reminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, h.svc.SendReminders(c.Request().Context(), req.DaysBefore))
}
