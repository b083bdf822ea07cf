package rating_test

import (
	"strings"
	"testing"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/rating"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	customer, driver, pkg := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	r, err := rating.NewRating(kernel.NewUUID(), customer, driver, pkg, 5, "  great  ")

	require.NoError(t, err)
	require.NoError(t, r.Validate())
	assert.Equal(t, 5, r.Score())
	assert.Equal(t, "great", r.Comment())
	assert.True(t, r.DriverID().IsEqual(driver))
	assert.True(t, r.ParcelID().IsEqual(pkg))
	assert.False(t, r.RatedAt().IsZero())
}

func TestNewRating_ScoreBounds(t *testing.T) {
	for _, score := range []int{rating.MinScore, 3, rating.MaxScore} {
		_, err := rating.NewRating(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), score, "")
		require.NoError(t, err, score)
	}

	for _, score := range []int{-1, 0, 6, 100} {
		_, err := rating.NewRating(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), score, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, score)
	}
}

func TestNewRating_MissingIDsAreInvalid(t *testing.T) {
	_, err := rating.NewRating(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, kernel.UUID{}, 4, "")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "driverId")
	assert.Contains(t, err.Error(), "packageId")
}

func TestNewRating_CommentLimit(t *testing.T) {
	long := strings.Repeat("é", rating.MaxCommentLength+1)

	_, err := rating.NewRating(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 4, long)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRating_ZeroValue(t *testing.T) {
	var r *rating.Rating
	require.ErrorIs(t, r.Validate(), rating.ErrRatingIsNotConstructed)
}
