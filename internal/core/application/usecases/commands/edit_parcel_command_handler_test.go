package commands_test

import (
	"testing"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEditParcelCommandHandler_Handle_OwnerEditsPendingParcel(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, kernel.Customer)
	p := newPendingParcel(t, customer.ID())
	cmd, err := commands.NewEditParcelCommand(customer, p.ID(), parcel.Patch{PackageWeight: ptr(10.0)})
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockUoW)
	factory := new(MockParcelUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once(),
		repo.On("Update", ctx, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewEditParcelCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.InDelta(t, 10.0, p.Details().Weight(), 1e-9)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestEditParcelCommandHandler_Handle_RejectedOnceOnTheWay(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, kernel.Customer)
	p := newParcelOnTheWay(t, customer.ID(), kernel.NewUUID())
	before := p.Details().Weight()
	cmd, err := commands.NewEditParcelCommand(customer, p.ID(), parcel.Patch{PackageWeight: ptr(20.0)})
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockUoW)
	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewEditParcelCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.EqualError(t, err, "Package can only be updated when status is Pending")
	assert.InDelta(t, before, p.Details().Weight(), 1e-9)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestEditParcelCommandHandler_Handle_OwnershipEnforced(t *testing.T) {
	tests := []struct {
		name    string
		role    kernel.Role
		wantErr error
	}{
		{"another customer", kernel.Customer, errs.ErrForbidden},
		{"agent edits any parcel", kernel.Agent, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			p := newPendingParcel(t, kernel.NewUUID())
			cmd, err := commands.NewEditParcelCommand(newActor(t, tc.role), p.ID(), parcel.Patch{PackageType: ptr("Envelope")})
			require.NoError(t, err)

			repo := new(MockParcelRepository)
			uow := new(MockUoW)
			factory := new(MockParcelUoWFactory)
			factory.On("Create").Return(uow).Once()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("ParcelRepository").Return(repo).Once()
			repo.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once()
			repo.On("Update", ctx, p).Return(nil).Maybe()
			uow.On("Commit", ctx).Return(nil).Maybe()
			uow.On("Rollback", ctx).Return(nil).Once()

			err = commands.NewEditParcelCommandHandler(factory).Handle(ctx, cmd)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, "Box", p.Details().PackageType())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Envelope", p.Details().PackageType())
		})
	}
}

func TestEditParcelCommandHandler_Handle_DriverForbidden(t *testing.T) {
	cmd, err := commands.NewEditParcelCommand(newActor(t, kernel.DeliveryDriver), kernel.NewUUID(), parcel.Patch{})
	require.NoError(t, err)
	factory := new(MockParcelUoWFactory)

	err = commands.NewEditParcelCommandHandler(factory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestEditParcelCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewEditParcelCommand(newActor(t, kernel.Agent), id, parcel.Patch{})
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockUoW)
	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("package", id)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewEditParcelCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
