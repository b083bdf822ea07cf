package guard_test

import (
	"errors"
	"testing"

	"parcelhub/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("RatingCommand must be created via NewRatingCommand")

	tests := []struct {
		name     string
		guard    guard.ConstructorGuard
		input    error
		expected error
	}{
		{"constructed_guard_ignores_custom_error", guard.NewConstructorGuard(), errNotConstructed, nil},
		{"constructed_guard_ignores_nil", guard.NewConstructorGuard(), nil, nil},
		{"zero_value_returns_custom_error", guard.ConstructorGuard{}, errNotConstructed, errNotConstructed},
		{"zero_value_falls_back_to_default", guard.ConstructorGuard{}, nil, guard.ErrDefaultConstructorGuard},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.guard.Validate(tc.input)
			if tc.expected == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tc.expected, err)
		})
	}
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type score struct {
		value int
		guard guard.ConstructorGuard
	}
	errScore := errors.New("score must be created via newScore")
	newScore := func(v int) score { return score{value: v, guard: guard.NewConstructorGuard()} }

	require.NoError(t, newScore(4).guard.Validate(errScore))

	var literal score
	assert.Equal(t, errScore, literal.guard.Validate(errScore))
}

func TestConstructorGuard_CopiesStayConstructed(t *testing.T) {
	g := guard.NewConstructorGuard()
	copied := g

	require.NoError(t, g.Validate(nil))
	require.NoError(t, copied.Validate(nil))
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}
