package handler

import (
	"net/http"

	"github.com/Astemirdum/lending-service/lending/internal/service"
	"github.com/labstack/echo/v4"
)

func (h *Handler) AddBook(c echo.Context) error {
	var req service.BookParams
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.svc.AddBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.svc.Book(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// SearchBooks godoc
// @Summary Search books by title, author or ISBN
// @Tags books
// @Produce json
// @Param q query string false "substring"
// @Success 200 {array} model.Book
// @Router /books [get]
func (h *Handler) SearchBooks(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.SearchBooks(c.QueryParam("q")))
}

func (h *Handler) DeleteBook(c echo.Context) error {
	if err := h.svc.DeleteBook(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AddCD(c echo.Context) error {
	var req service.CDParams
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cd, err := h.svc.AddCD(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, cd)
}

func (h *Handler) GetCD(c echo.Context) error {
	cd, err := h.svc.CD(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cd)
}

// SearchCDs godoc
// @Summary Search CDs
// @Description artist and genre are exact case-insensitive filters, q is a substring match
// @Tags cds
// @Produce json
// @Param q query string false "substring"
// @Param artist query string false "artist"
// @Param genre query string false "genre"
// @Success 200 {array} model.CD
// @Router /cds [get]
func (h *Handler) SearchCDs(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.SearchCDs(c.QueryParam("q"), c.QueryParam("artist"), c.QueryParam("genre")))
}

func (h *Handler) DeleteCD(c echo.Context) error {
	if err := h.svc.DeleteCD(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
