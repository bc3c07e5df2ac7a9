package middleware

import (
	"net/http"
	"room-booking-api/core/constants"
	"room-booking-api/core/controller"
	"room-booking-api/core/errors"
	"room-booking-api/core/logger"
	"room-booking-api/core/utils"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// Middleware bundles the cross-cutting echo middleware so modules can request
// them from a single place.
type Middleware struct{}

func New() *Middleware {
	return &Middleware{}
}

// RequestID attaches a short correlation id to every request.
func (m *Middleware) RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get("X-Request-ID")
			if id == "" {
				id = utils.GenerateID()
			}
			c.Set(constants.ContextRequestID, id)
			c.Response().Header().Set("X-Request-ID", id)
			return next(c)
		}
	}
}

// RequestLogger logs one line per request in the structured format the rest
// of the service uses.
func (m *Middleware) RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			requestID, _ := c.Get(constants.ContextRequestID).(string)
			logger.Info("HTTP:Request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", requestID,
			)
			return err
		}
	}
}

// AuthMiddleware guards admin routes with a bearer JWT.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "Missing authorization header")
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "Invalid authorization header format")
			}
			claims, err := utils.ValidateAndParseToken(parts[1])
			if err != nil {
				logger.Warn("Middleware:Auth:InvalidToken", "error", err)
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "Invalid or expired token")
			}
			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

// AdminOnly requires the session role to be admin. Must run after
// AuthMiddleware.
func (m *Middleware) AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
			if !ok || claims.Role != "admin" {
				return controller.NewErrorResponse(http.StatusForbidden, errors.ErrForbidden, "Admin role required")
			}
			return next(c)
		}
	}
}
