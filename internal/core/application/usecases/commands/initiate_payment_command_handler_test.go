package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testPaymentSettings = commands.PaymentSettings{Currency: "eur", Timeout: time.Second}

func TestNewInitiatePaymentCommand_Price(t *testing.T) {
	customer := newActor(t, kernel.Customer)
	parcelID := kernel.NewUUID().String()

	tests := []struct {
		name      string
		price     *float64
		wantMinor int64
		wantErr   error
	}{
		{"rounds to nearest cent", ptr(12.345), 1235, nil},
		{"whole amount", ptr(13.0), 1300, nil},
		{"missing", nil, 0, errs.ErrValueIsRequired},
		{"zero", ptr(0.0), 0, errs.ErrValueIsInvalid},
		{"negative", ptr(-5.0), 0, errs.ErrValueIsInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := commands.NewInitiatePaymentCommand(customer, parcelID, tc.price)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantMinor, cmd.AmountMinor())
		})
	}
}

func TestInitiatePaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	cmd, err := commands.NewInitiatePaymentCommand(newActor(t, kernel.Customer), parcelID.String(), ptr(19.99))
	require.NoError(t, err)

	gateway := new(MockPaymentGateway)
	gateway.On("CreateIntent", mock.Anything, ports.IntentRequest{
		ParcelID:    parcelID,
		AmountMinor: 1999,
		Currency:    "eur",
	}).Return(ports.Intent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil).Once()

	result, err := commands.NewInitiatePaymentCommandHandler(gateway, testPaymentSettings).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret", result.ClientSecret)
	assert.Equal(t, "pi_1", result.PaymentIntentID)
	gateway.AssertExpectations(t)
}

func TestInitiatePaymentCommandHandler_Handle_AppliesDeadline(t *testing.T) {
	cmd, err := commands.NewInitiatePaymentCommand(newActor(t, kernel.Customer), kernel.NewUUID().String(), ptr(5.0))
	require.NoError(t, err)

	gateway := new(MockPaymentGateway)
	gateway.On("CreateIntent", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), mock.Anything).Return(ports.Intent{ID: "pi_2"}, nil).Once()

	_, err = commands.NewInitiatePaymentCommandHandler(gateway, testPaymentSettings).Handle(t.Context(), cmd)

	require.NoError(t, err)
	gateway.AssertExpectations(t)
}

func TestInitiatePaymentCommandHandler_Handle_GatewayFailures(t *testing.T) {
	tests := []struct {
		name        string
		gatewayErr  error
		wantTimeout bool
	}{
		{"timeout", context.DeadlineExceeded, true},
		{"refused", errors.New("connection refused"), false},
		{"already classified", errs.NewDependencyError("payment processor", errors.New("402")), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := commands.NewInitiatePaymentCommand(newActor(t, kernel.Customer), kernel.NewUUID().String(), ptr(5.0))
			require.NoError(t, err)

			gateway := new(MockPaymentGateway)
			gateway.On("CreateIntent", mock.Anything, mock.Anything).Return(ports.Intent{}, tc.gatewayErr).Once()

			_, err = commands.NewInitiatePaymentCommandHandler(gateway, testPaymentSettings).Handle(t.Context(), cmd)

			require.ErrorIs(t, err, errs.ErrDependency)
			var depErr *errs.DependencyError
			require.ErrorAs(t, err, &depErr)
			assert.Equal(t, tc.wantTimeout, depErr.Timeout)
		})
	}
}

func TestInitiatePaymentCommandHandler_Handle_OnlyCustomers(t *testing.T) {
	cmd, err := commands.NewInitiatePaymentCommand(newActor(t, kernel.DeliveryDriver), kernel.NewUUID().String(), ptr(5.0))
	require.NoError(t, err)
	gateway := new(MockPaymentGateway)

	_, err = commands.NewInitiatePaymentCommandHandler(gateway, testPaymentSettings).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	gateway.AssertNotCalled(t, "CreateIntent", mock.Anything, mock.Anything)
}
