package http

import (
	"net/http"

	"agritrade/internal/core/domain/model/actor"
	"agritrade/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity resolution happens upstream; the gateway forwards the resolved
// identity in these headers with every request.
const (
	headerUserID        = "X-User-Id"
	headerOrgID         = "X-Organization-Id"
	headerPlatformAdmin = "X-Platform-Admin"
)

// actorFromRequest builds the acting identity from the gateway headers.
// Requests without a resolved identity are rejected before any use case runs.
func actorFromRequest(ctx echo.Context) (actor.Actor, error) {
	header := ctx.Request().Header

	userID, err := kernel.UUIDFromString(header.Get(headerUserID))
	if err != nil {
		return actor.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid "+headerUserID+" header")
	}

	orgID, err := kernel.UUIDFromString(header.Get(headerOrgID))
	if err != nil {
		return actor.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid "+headerOrgID+" header")
	}

	admin := header.Get(headerPlatformAdmin) == "true"

	a, err := actor.NewActor(userID, orgID, admin)
	if err != nil {
		return actor.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid acting identity")
	}
	return a, nil
}
