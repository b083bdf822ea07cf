package commands_test

import (
	"testing"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/payment"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	parcels  *MockParcelRepository
	payments *MockPaymentRepository
	uow      *MockUoW
	factory  *MockPaymentUoWFactory
}

func newPaymentFixture() paymentFixture {
	f := paymentFixture{
		parcels:  new(MockParcelRepository),
		payments: new(MockPaymentRepository),
		uow:      new(MockUoW),
		factory:  new(MockPaymentUoWFactory),
	}
	f.factory.On("Create").Return(f.uow)
	f.uow.On("Begin", mock.Anything).Return(nil)
	f.uow.On("ParcelRepository").Return(f.parcels)
	f.uow.On("PaymentRepository").Return(f.payments)
	f.uow.On("Rollback", mock.Anything).Return(nil)
	return f
}

func TestNewConfirmPaymentCommand_MissingToken(t *testing.T) {
	_, err := commands.NewConfirmPaymentCommand(newActor(t, kernel.Customer), kernel.NewUUID(), "  ")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "paymentId")
}

func TestConfirmPaymentCommandHandler_Handle_MarksPaidAndWritesLedger(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, kernel.Customer)
	p := newPendingParcel(t, customer.ID())
	cmd, err := commands.NewConfirmPaymentCommand(customer, p.ID(), "tok_1")
	require.NoError(t, err)

	f := newPaymentFixture()
	var entry *payment.Payment
	mock.InOrder(
		f.parcels.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once(),
		f.parcels.On("Update", ctx, p).Return(nil).Once(),
		f.payments.On("Upsert", ctx, mock.AnythingOfType("*payment.Payment")).
			Run(func(args mock.Arguments) { entry = args.Get(1).(*payment.Payment) }).
			Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
	)
	gateway := new(MockPaymentGateway)

	err = commands.NewConfirmPaymentCommandHandler(f.factory, gateway, testPaymentSettings).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.PaymentCompleted, p.PaymentStatus())
	assert.Equal(t, "tok_1", p.PaymentID())
	require.NotNil(t, entry)
	assert.Equal(t, customer.ID(), entry.CustomerID())
	assert.Equal(t, p.ID(), entry.ParcelID())
	assert.InDelta(t, p.Details().Cost(), entry.Amount(), 1e-9)
	assert.Equal(t, payment.Success, entry.Status())
	assert.Equal(t, "tok_1", entry.Token())
	gateway.AssertNotCalled(t, "GetIntent", mock.Anything, mock.Anything)
	f.uow.AssertExpectations(t)
}

func TestConfirmPaymentCommandHandler_Handle_LedgerFailureAbortsTransaction(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, kernel.Customer)
	p := newPendingParcel(t, customer.ID())
	cmd, err := commands.NewConfirmPaymentCommand(customer, p.ID(), "tok_1")
	require.NoError(t, err)

	f := newPaymentFixture()
	f.parcels.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once()
	f.parcels.On("Update", ctx, p).Return(nil).Once()
	f.payments.On("Upsert", ctx, mock.Anything).Return(errs.NewDuplicateError("payment", p.ID())).Once()

	err = commands.NewConfirmPaymentCommandHandler(f.factory, new(MockPaymentGateway), testPaymentSettings).Handle(ctx, cmd)

	require.Error(t, err)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.uow.AssertCalled(t, "Rollback", ctx)
}

func TestConfirmPaymentCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewConfirmPaymentCommand(newActor(t, kernel.Customer), id, "tok_1")
	require.NoError(t, err)

	f := newPaymentFixture()
	f.parcels.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("package", id)).Once()

	err = commands.NewConfirmPaymentCommandHandler(f.factory, new(MockPaymentGateway), testPaymentSettings).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.payments.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestConfirmPaymentCommandHandler_Handle_OtherCustomersParcel(t *testing.T) {
	ctx := t.Context()
	p := newPendingParcel(t, kernel.NewUUID())
	cmd, err := commands.NewConfirmPaymentCommand(newActor(t, kernel.Customer), p.ID(), "tok_1")
	require.NoError(t, err)

	f := newPaymentFixture()
	f.parcels.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once()

	err = commands.NewConfirmPaymentCommandHandler(f.factory, new(MockPaymentGateway), testPaymentSettings).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, parcel.PaymentPending, p.PaymentStatus())
}

func TestConfirmPaymentCommandHandler_Handle_Verification(t *testing.T) {
	settings := testPaymentSettings
	settings.VerifyConfirmations = true

	customer := newActor(t, kernel.Customer)

	tests := []struct {
		name    string
		intent  func(parcelID kernel.UUID) ports.Intent
		wantErr error
	}{
		{
			name: "succeeded intent for this parcel",
			intent: func(parcelID kernel.UUID) ports.Intent {
				return ports.Intent{ID: "tok_1", Status: ports.IntentSucceeded, ParcelID: parcelID.String()}
			},
		},
		{
			name: "intent not captured",
			intent: func(parcelID kernel.UUID) ports.Intent {
				return ports.Intent{ID: "tok_1", Status: "requires_payment_method", ParcelID: parcelID.String()}
			},
			wantErr: errs.ErrInvalidState,
		},
		{
			name: "intent for another parcel",
			intent: func(kernel.UUID) ports.Intent {
				return ports.Intent{ID: "tok_1", Status: ports.IntentSucceeded, ParcelID: kernel.NewUUID().String()}
			},
			wantErr: errs.ErrInvalidState,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			p := newPendingParcel(t, customer.ID())
			cmd, err := commands.NewConfirmPaymentCommand(customer, p.ID(), "tok_1")
			require.NoError(t, err)

			gateway := new(MockPaymentGateway)
			gateway.On("GetIntent", mock.Anything, "tok_1").Return(tc.intent(p.ID()), nil).Once()

			f := newPaymentFixture()
			f.parcels.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Maybe()
			f.parcels.On("Update", ctx, p).Return(nil).Maybe()
			f.payments.On("Upsert", ctx, mock.Anything).Return(nil).Maybe()
			f.uow.On("Commit", ctx).Return(nil).Maybe()

			err = commands.NewConfirmPaymentCommandHandler(f.factory, gateway, settings).Handle(ctx, cmd)

			gateway.AssertExpectations(t)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				f.factory.AssertNotCalled(t, "Create")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, parcel.PaymentCompleted, p.PaymentStatus())
		})
	}
}
