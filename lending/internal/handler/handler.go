package handler

import (
	"net/http"

	_ "github.com/Astemirdum/lending-service/lending/docs"
	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/service"
	md "github.com/Astemirdum/lending-service/pkg/middleware"
	"github.com/Astemirdum/lending-service/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	svc LendingService
	log *zap.Logger
}

func New(svc LendingService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.POST("/users/register", h.Register)
	api.POST("/users/login", h.Login)

	api = api.Group("", md.AuthContext)
	api.GET("/books", h.SearchBooks)
	api.GET("/books/:id", h.GetBook)
	api.GET("/cds", h.SearchCDs)
	api.GET("/cds/:id", h.GetCD)

	api.POST("/loans/:media", h.Borrow)
	api.POST("/loans/:media/:loanId/return", h.Return)
	api.GET("/users/:userId/loans", h.GetUserLoans)

	api.POST("/fines/:media/:fineId/pay", h.PayFine)
	api.GET("/users/:userId/fines", h.GetUserFines)

	admin := api.Group("", md.RequireAdmin)
	admin.POST("/books", h.AddBook)
	admin.DELETE("/books/:id", h.DeleteBook)
	admin.POST("/cds", h.AddCD)
	admin.DELETE("/cds/:id", h.DeleteCD)
	admin.POST("/users/:userId/deactivate", h.Deactivate)
	admin.PUT("/users/:userId/role", h.SetRole)
	admin.GET("/loans/:media/overdue", h.GetOverdueLoans)
	admin.POST("/admin/reminders", h.SendReminders)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the error kind onto a status code.
func httpError(err error) *echo.HTTPError {
	code := http.StatusInternalServerError
	switch errs.KindOf(err) {
	case errs.KindValidation:
		code = http.StatusBadRequest
	case errs.KindNotFound:
		code = http.StatusNotFound
	case errs.KindPolicy:
		code = http.StatusConflict
	case errs.KindUnauthenticated:
		code = http.StatusUnauthorized
	}
	return echo.NewHTTPError(code, err.Error())
}

func mediaParam(c echo.Context) (model.MediaType, error) {
	m, err := service.ParseMedia(c.Param("media"))
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return m, nil
}

// canAccess allows admins everywhere and users on their own records.
func canAccess(c echo.Context, userID string) bool {
	ctx := c.Request().Context()
	if md.IsAdmin(ctx) {
		return true
	}
	p, ok := md.GetPrincipal(ctx)
	return ok && p.UserID == userID
}

var errForbidden = echo.NewHTTPError(http.StatusForbidden, "access denied")
