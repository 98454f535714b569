package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/kernel"
)

// Header names of the identity contract with the authenticating reverse
// proxy. Authentication itself happens upstream; the engine only consumes
// the resolved identity.
const (
	HeaderUserID         = "X-User-Id"
	HeaderUserRole       = "X-User-Role"
	HeaderUserDepartment = "X-User-Department"
)

const actorContextKey = "actor"

// Actor is the authenticated caller of a request.
type Actor struct {
	ID           kernel.UUID
	Role         account.Role
	DepartmentID *kernel.UUID
}

// ActorMiddleware resolves the caller identity from the proxy headers.
// Requests without a valid user ID and role are rejected with 401.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			userID, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderUserID))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing or invalid user identity",
				})
			}

			role, err := account.RoleFromString(ctx.Request().Header.Get(HeaderUserRole))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing or invalid user role",
				})
			}

			actor := Actor{ID: userID, Role: role}
			if dept := ctx.Request().Header.Get(HeaderUserDepartment); dept != "" {
				departmentID, err := kernel.UUIDFromString(dept)
				if err != nil {
					return ctx.JSON(http.StatusUnauthorized, Error{
						Code:    http.StatusUnauthorized,
						Message: "Invalid user department",
					})
				}
				actor.DepartmentID = &departmentID
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func actorFrom(ctx echo.Context) Actor {
	actor, _ := ctx.Get(actorContextKey).(Actor)
	return actor
}
