package queries_test

import (
	"testing"
	"time"

	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		want     error
	}{
		{"GetParcel", queries.GetParcelQuery{}.Validate, queries.ErrGetParcelQueryIsNotConstructed},
		{"GetParcelHistory", queries.GetParcelHistoryQuery{}.Validate, queries.ErrGetParcelHistoryQueryIsNotConstructed},
		{"ListCustomerParcels", queries.ListCustomerParcelsQuery{}.Validate, queries.ErrListCustomerParcelsQueryIsNotConstructed},
		{"ListDriverDeliveries", queries.ListDriverDeliveriesQuery{}.Validate, queries.ErrListDriverDeliveriesQueryIsNotConstructed},
		{"ListParcels", queries.ListParcelsQuery{}.Validate, queries.ErrListParcelsQueryIsNotConstructed},
		{"FilterParcelsByDate", queries.FilterParcelsByDateQuery{}.Validate, queries.ErrFilterParcelsByDateQueryIsNotConstructed},
		{"ListDriverRatings", queries.ListDriverRatingsQuery{}.Validate, queries.ErrListDriverRatingsQueryIsNotConstructed},
		{"GetSiteStats", queries.GetSiteStatsQuery{}.Validate, queries.ErrGetSiteStatsQueryIsNotConstructed},
		{"GetTopDrivers", queries.GetTopDriversQuery{}.Validate, queries.ErrGetTopDriversQueryIsNotConstructed},
		{"GetDeliveryStats", queries.GetDeliveryStatsQuery{}.Validate, queries.ErrGetDeliveryStatsQueryIsNotConstructed},
		{"ListDeliveryDrivers", queries.ListDeliveryDriversQuery{}.Validate, queries.ErrListDeliveryDriversQueryIsNotConstructed},
		{"FindLateParcels", queries.FindLateParcelsQuery{}.Validate, queries.ErrFindLateParcelsQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.validate(), tt.want)
		})
	}
}

func TestNewGetParcelQuery_RequiresActorAndID(t *testing.T) {
	_, err := queries.NewGetParcelQuery(kernel.Actor{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewGetParcelQuery(newActor(t, kernel.Agent), kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	query, err := queries.NewGetParcelQuery(newActor(t, kernel.Agent), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewFilterParcelsByDateQuery(t *testing.T) {
	agent := newActor(t, kernel.Agent)

	t.Run("date-only upper bound covers the whole day", func(t *testing.T) {
		query, err := queries.NewFilterParcelsByDateQuery(agent, "2025-01-01", "2025-01-31")
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), query.From())
		assert.Equal(t, time.Date(2025, 1, 31, 23, 59, 59, 999999999, time.UTC), query.To())
	})

	t.Run("timestamp upper bound is kept as given", func(t *testing.T) {
		query, err := queries.NewFilterParcelsByDateQuery(agent, "2025-01-01", "2025-01-31T10:00:00Z")
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC), query.To())
	})

	t.Run("missing bounds are required", func(t *testing.T) {
		_, err := queries.NewFilterParcelsByDateQuery(agent, "", "2025-01-31")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "dateFrom")

		_, err = queries.NewFilterParcelsByDateQuery(agent, "2025-01-01", " ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "dateTo")
	})

	t.Run("garbage is invalid", func(t *testing.T) {
		_, err := queries.NewFilterParcelsByDateQuery(agent, "yesterday", "2025-01-31")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewListParcelsQuery_RejectsInvalidFilter(t *testing.T) {
	agent := newActor(t, kernel.Agent)

	status := parcel.Status(42)
	_, err := queries.NewListParcelsQuery(agent, queries.ParcelFilter{Status: &status}, queries.AllRows)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	paymentStatus := parcel.PaymentUnknown
	_, err = queries.NewListParcelsQuery(agent, queries.ParcelFilter{PaymentStatus: &paymentStatus}, queries.AllRows)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	delivered := parcel.Delivered
	query, err := queries.NewListParcelsQuery(agent, queries.ParcelFilter{Status: &delivered}, queries.Page{Number: 2, Size: 5})
	require.NoError(t, err)
	assert.Equal(t, queries.Page{Number: 2, Size: 5}, query.Page())
}
