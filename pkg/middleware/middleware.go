package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	mw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

const (
	XUserIDHeader   = "X-User-Id"
	XUserRoleHeader = "X-User-Role"

	roleAdmin = "ADMIN"
)

type authKey struct{}

type Principal struct {
	UserID string
	Role   string
}

// AuthContext trusts the identity headers set by the upstream gateway.
func AuthContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		userID := req.Header.Get(XUserIDHeader)
		if userID == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "user id is empty")
		}
		p := Principal{UserID: userID, Role: req.Header.Get(XUserRoleHeader)}
		c.SetRequest(req.WithContext(context.WithValue(req.Context(), authKey{}, p)))
		return next(c)
	}
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !IsAdmin(c.Request().Context()) {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	}
}

func GetPrincipal(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(authKey{}).(Principal)
	return p, ok
}

func IsAdmin(ctx context.Context) bool {
	p, ok := GetPrincipal(ctx)
	return ok && p.Role == roleAdmin
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return mw.RateLimiter(mw.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig(log *zap.Logger) mw.RequestLoggerConfig {
	log = log.Named("echo")
	return mw.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v mw.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
}
