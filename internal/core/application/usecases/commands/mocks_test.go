package commands_test

import (
	"context"
	"testing"
	"time"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/payment"
	"parcelhub/internal/core/domain/model/rating"
	"parcelhub/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

type MockRatingRepository struct{ mock.Mock }

func (m *MockRatingRepository) Add(ctx context.Context, r *rating.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRatingRepository) ExistsForCustomerParcel(ctx context.Context, customerID, parcelID kernel.UUID) (bool, error) {
	args := m.Called(ctx, customerID, parcelID)
	return args.Bool(0), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Upsert(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByCustomerParcel(
	ctx context.Context,
	customerID, parcelID kernel.UUID,
) (*payment.Payment, error) {
	args := m.Called(ctx, customerID, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

// MockUoW satisfies every unit-of-work shape the handlers depend on.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) RatingRepository() ports.RatingRepository {
	args := m.Called()
	return args.Get(0).(ports.RatingRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockRatingUoWFactory struct{ mock.Mock }

func (m *MockRatingUoWFactory) Create() commands.RatingUoW {
	args := m.Called()
	return args.Get(0).(commands.RatingUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreateIntent(ctx context.Context, req ports.IntentRequest) (ports.Intent, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.Intent), args.Error(1)
}

func (m *MockPaymentGateway) GetIntent(ctx context.Context, id string) (ports.Intent, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Intent), args.Error(1)
}

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func validContact() parcel.Contact {
	return parcel.Contact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "+44 20 7946 0000"}
}

func newPendingParcel(t *testing.T, customerID kernel.UUID) *parcel.Parcel {
	t.Helper()
	pin, err := kernel.NewGeoPoint(51.5, -0.12)
	require.NoError(t, err)
	details, err := parcel.NewDetails(validContact(), validContact(), "Box", 2.5, "1 Main St", pin, 13,
		time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	p, err := parcel.NewParcel(kernel.NewUUID(), customerID, details, nil, customerID)
	require.NoError(t, err)
	p.PopStatusChanges()
	return p
}

func newParcelOnTheWay(t *testing.T, customerID, driverID kernel.UUID) *parcel.Parcel {
	t.Helper()
	p := newPendingParcel(t, customerID)
	require.NoError(t, p.AssignDriver(driverID, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), kernel.NewUUID()))
	p.PopStatusChanges()
	return p
}

func newDeliveredParcel(t *testing.T, customerID, driverID kernel.UUID) *parcel.Parcel {
	t.Helper()
	p := newParcelOnTheWay(t, customerID, driverID)
	require.NoError(t, p.TransitionTo(parcel.Delivered, driverID))
	p.PopStatusChanges()
	return p
}

func ptr[T any](v T) *T {
	return &v
}
