// Package actor models the acting identity behind every order-scoped
// operation. Identity and session issuance live outside this system; the
// platform only receives a resolved user id, organization id and a
// platform-admin flag per request.
package actor

import (
	"errors"

	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// the NewActor constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is a value object describing who performs an operation:
// the user, the organization the user acts on behalf of, and whether the
// user is a platform administrator. Platform administrators bypass the
// order access policies.
type Actor struct {
	userID         kernel.UUID
	organizationID kernel.UUID
	platformAdmin  bool

	guard guard.ConstructorGuard
}

// NewActor creates an acting identity. Both the user id and the organization
// id must be valid UUIDs.
func NewActor(userID, organizationID kernel.UUID, platformAdmin bool) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}
	if err := organizationID.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		userID:         userID,
		organizationID: organizationID,
		platformAdmin:  platformAdmin,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// UserID returns the acting user's identifier.
func (a Actor) UserID() kernel.UUID {
	return a.userID
}

// OrganizationID returns the identifier of the organization the user acts for.
func (a Actor) OrganizationID() kernel.UUID {
	return a.organizationID
}

// IsPlatformAdmin reports whether the actor is a platform administrator.
func (a Actor) IsPlatformAdmin() bool {
	return a.platformAdmin
}
