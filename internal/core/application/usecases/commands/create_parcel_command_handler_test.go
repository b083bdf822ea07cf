package commands_test

import (
	"errors"
	"testing"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateParcelCommandHandler_Handle_CustomerBooksForSelf(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, kernel.Customer)
	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(customer, parcelID, validCreateInput())
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockUoW)
	factory := new(MockParcelUoWFactory)

	var stored *parcel.Parcel
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*parcel.Parcel) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewCreateParcelCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, parcelID, stored.ID())
	assert.Equal(t, customer.ID(), stored.CustomerID())
	assert.Equal(t, parcel.Pending, stored.Status())
	assert.Equal(t, parcel.PaymentPending, stored.PaymentStatus())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_AgentMustNameCustomer(t *testing.T) {
	ctx := t.Context()
	agent := newActor(t, kernel.Agent)
	cmd, err := commands.NewCreateParcelCommand(agent, kernel.NewUUID(), validCreateInput())
	require.NoError(t, err)

	factory := new(MockParcelUoWFactory)

	err = commands.NewCreateParcelCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "customerId")
	factory.AssertNotCalled(t, "Create")
}

func TestCreateParcelCommandHandler_Handle_AgentBooksOnBehalf(t *testing.T) {
	ctx := t.Context()
	agent := newActor(t, kernel.Agent)
	customerID := kernel.NewUUID()
	input := validCreateInput()
	input.CustomerID = customerID.String()
	cmd, err := commands.NewCreateParcelCommand(agent, kernel.NewUUID(), input)
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockUoW)
	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.MatchedBy(func(p *parcel.Parcel) bool {
		return p.CustomerID().IsEqual(customerID)
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewCreateParcelCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_CustomerCannotBookForOthers(t *testing.T) {
	input := validCreateInput()
	input.CustomerID = kernel.NewUUID().String()
	cmd, err := commands.NewCreateParcelCommand(newActor(t, kernel.Customer), kernel.NewUUID(), input)
	require.NoError(t, err)

	factory := new(MockParcelUoWFactory)

	err = commands.NewCreateParcelCommandHandler(factory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateParcelCommandHandler_Handle_DriverForbidden(t *testing.T) {
	cmd, err := commands.NewCreateParcelCommand(newActor(t, kernel.DeliveryDriver), kernel.NewUUID(), validCreateInput())
	require.NoError(t, err)

	err = commands.NewCreateParcelCommandHandler(new(MockParcelUoWFactory)).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestCreateParcelCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateParcelCommand(newActor(t, kernel.Customer), kernel.NewUUID(), validCreateInput())
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockUoW)
	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.Anything).Return(errors.New("insert failed")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewCreateParcelCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "insert failed")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockParcelUoWFactory)

	err := commands.NewCreateParcelCommandHandler(factory).Handle(t.Context(), commands.CreateParcelCommand{})

	require.ErrorIs(t, err, commands.ErrCreateParcelCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
