package handler

import (
	"net/http"

	md "github.com/Astemirdum/lending-service/pkg/middleware"
	"github.com/labstack/echo/v4"
)

type borrowRequest struct {
	// UserID defaults to the caller; only admins may borrow for someone else.
	UserID string `json:"userId"`
	ItemID string `json:"itemId" validate:"required"`
}

// Borrow godoc
// @Summary Borrow a book or CD
// @Tags loans
// @Accept json
// @Produce json
// @Param media path string true "BOOK or CD"
// @Param request body borrowRequest true "item"
// @Success 201 {object} model.Loan
// @Failure 404 {object} errs.ValidationErrorResponse
// @Failure 409 {object} errs.ValidationErrorResponse
// @Router /loans/{media} [post]
func (h *Handler) Borrow(c echo.Context) error {
	media, err := mediaParam(c)
	if err != nil {
		return err
	}
	var req borrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.UserID == "" {
		p, _ := md.GetPrincipal(c.Request().Context())
		req.UserID = p.UserID
	}
	if !canAccess(c, req.UserID) {
		return errForbidden
	}

	loan, err := h.svc.Borrow(c.Request().Context(), media, req.UserID, req.ItemID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

// Return godoc
// @Summary Return a loan
// @Tags loans
// @Produce json
// @Param media path string true "BOOK or CD"
// @Param loanId path string true "loan id"
// @Success 200 {object} model.Loan
// @Failure 409 {object} errs.ValidationErrorResponse
// @Router /loans/{media}/{loanId}/return [post]
func (h *Handler) Return(c echo.Context) error {
	media, err := mediaParam(c)
	if err != nil {
		return err
	}
	loanID := c.Param("loanId")
	loan, err := h.svc.Loan(media, loanID)
	if err != nil {
		return httpError(err)
	}
	if !canAccess(c, loan.UserID) {
		return errForbidden
	}

	loan, err = h.svc.Return(c.Request().Context(), media, loanID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) GetUserLoans(c echo.Context) error {
	userID := c.Param("userId")
	if !canAccess(c, userID) {
		return errForbidden
	}
	return c.JSON(http.StatusOK, h.svc.UserLoans(userID))
}

func (h *Handler) GetOverdueLoans(c echo.Context) error {
	media, err := mediaParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.svc.OverdueLoans(media))
}
