package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/vicholitvak/moai-logistics/internal/pkg/jwt"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	"github.com/vicholitvak/moai-logistics/internal/utils"
)

// actorContextKey is the echo context key the authenticated actor is stored under
const actorContextKey = "actor"

// JWTAuth validates the Authorization bearer token and stores the actor
// identity on the request context for role-aware handlers.
func JWTAuth(cfg *models.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return utils.UnauthorizedResponse(c, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return utils.UnauthorizedResponse(c, "malformed authorization header")
			}

			actor, err := jwt.ValidateToken(parts[1], cfg.JWT.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "invalid token")
			}

			c.Set(actorContextKey, *actor)
			return next(c)
		}
	}
}

// ActorFromContext returns the authenticated actor stored by JWTAuth.
// The boolean is false when the request was not authenticated.
func ActorFromContext(c echo.Context) (models.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(models.Actor)
	return actor, ok
}
