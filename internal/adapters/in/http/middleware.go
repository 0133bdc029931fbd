package http

import (
	"net/http"

	"restaurant/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// RoleHeader carries the authenticated actor's role. Authentication itself is
// the gateway's job; by the time a request reaches this service the header is
// trusted.
const RoleHeader = "X-Role"

// requireAction gates a route behind the capability policy. A missing or
// unknown role yields 401; a recognized role without the capability yields
// 403.
func requireAction(policy *auth.Policy, action auth.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			role, ok := auth.ParseRole(ctx.Request().Header.Get(RoleHeader))
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "unknown or missing role",
				})
			}

			if !policy.CanPerform(role, action) {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "role is not permitted to perform this action",
				})
			}

			return next(ctx)
		}
	}
}
