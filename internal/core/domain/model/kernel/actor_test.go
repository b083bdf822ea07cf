package kernel_test

import (
	"testing"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	tests := map[string]kernel.Role{
		"Customer":       kernel.Customer,
		"User":           kernel.Customer,
		"agent":          kernel.Agent,
		"DeliveryDriver": kernel.DeliveryDriver,
		" driver ":       kernel.DeliveryDriver,
	}
	for input, want := range tests {
		got, err := kernel.RoleFromString(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := kernel.RoleFromString("Admin")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Agent", kernel.Agent.String())
	assert.Equal(t, "Unknown", kernel.Role(42).String())
}

func TestNewActor(t *testing.T) {
	id := kernel.NewUUID()

	actor, err := kernel.NewActor(id, kernel.DeliveryDriver)

	require.NoError(t, err)
	require.NoError(t, actor.Validate())
	assert.True(t, actor.Is(kernel.DeliveryDriver))
	assert.False(t, actor.Is(kernel.Agent))
	assert.True(t, actor.IsSelf(id))
	assert.False(t, actor.IsSelf(kernel.NewUUID()))
}

func TestNewActor_Invalid(t *testing.T) {
	_, err := kernel.NewActor(kernel.UUID{}, kernel.Customer)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = kernel.NewActor(kernel.NewUUID(), kernel.UnknownRole)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var literal kernel.Actor
	require.ErrorIs(t, literal.Validate(), kernel.ErrActorIsNotConstructed)
}
