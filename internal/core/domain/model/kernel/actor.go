package kernel

import (
	"errors"

	"parcelhub/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the authenticated identity behind a request: an id plus one role.
// The HTTP adapter builds it from verified token claims; the core only reads it.
type Actor struct { //nolint:recvcheck //using for validation
	id    UUID
	role  Role
	guard guard.ConstructorGuard
}

func NewActor(id UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

// Is reports whether the actor holds the given role.
func (a Actor) Is(role Role) bool {
	return a.role == role
}

// IsSelf reports whether id belongs to the actor.
func (a Actor) IsSelf(id UUID) bool {
	return a.id.IsEqual(id)
}
