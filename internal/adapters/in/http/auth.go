package http

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"carrierops/internal/core/domain/model/identity"
	"carrierops/internal/core/domain/model/kernel"
	"carrierops/internal/pkg/errs"
)

const claimsContextKey = "identity.claims"

// tokenClaims is the JWT claim set issued by the identity provider. The
// subject is the account uid; fleetId scopes every request to one tenant;
// driverId is present only on accounts linked to a driver profile.
type tokenClaims struct {
	jwt.RegisteredClaims
	FleetID  string   `json:"fleetId"`
	Roles    []string `json:"roles"`
	DriverID *string  `json:"driverId,omitempty"`
}

// AuthMiddleware verifies the Bearer token and stores the resulting identity
// claims in the request context. Verification happens once, here; the core
// trusts the claims from this point on.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := claimsFromRequest(ctx, secret)
			if err != nil {
				return respondError(ctx, err)
			}

			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

func claimsFromRequest(ctx echo.Context, secret []byte) (identity.Claims, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	rawToken, found := strings.CutPrefix(header, "Bearer ")
	if !found || rawToken == "" {
		return identity.Claims{}, errs.NewUnauthenticatedError("missing bearer token")
	}

	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(rawToken, &parsed, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return secret, nil
	})
	if err != nil {
		return identity.Claims{}, errs.NewUnauthenticatedError("invalid token: " + err.Error())
	}

	fleetID, err := kernel.UUIDFromString(parsed.FleetID)
	if err != nil {
		return identity.Claims{}, errs.NewUnauthenticatedError("invalid fleet scope in token")
	}

	var driverID *kernel.UUID
	if parsed.DriverID != nil {
		id, idErr := kernel.UUIDFromString(*parsed.DriverID)
		if idErr != nil {
			return identity.Claims{}, errs.NewUnauthenticatedError("invalid driver reference in token")
		}
		driverID = &id
	}

	claims := identity.Claims{
		UID:      parsed.Subject,
		FleetID:  fleetID,
		Roles:    identity.RoleSetFromStrings(parsed.Roles),
		DriverID: driverID,
	}
	if err = claims.Validate(); err != nil {
		return identity.Claims{}, err
	}

	return claims, nil
}

// claimsFrom retrieves the verified claims stored by AuthMiddleware.
func claimsFrom(ctx echo.Context) (identity.Claims, error) {
	claims, ok := ctx.Get(claimsContextKey).(identity.Claims)
	if !ok {
		return identity.Claims{}, errs.NewUnauthenticatedError("no identity in request context")
	}
	return claims, nil
}
