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

func TestCancelParcelCommandHandler_Handle(t *testing.T) {
	owner := newActor(t, kernel.Customer)

	tests := []struct {
		name       string
		actor      kernel.Actor
		parcel     func(t *testing.T) *parcel.Parcel
		wantErr    error
		wantStatus parcel.Status
	}{
		{
			name:       "owner cancels pending",
			actor:      owner,
			parcel:     func(t *testing.T) *parcel.Parcel { return newPendingParcel(t, owner.ID()) },
			wantStatus: parcel.Cancelled,
		},
		{
			name:       "owner cancels on the way",
			actor:      owner,
			parcel:     func(t *testing.T) *parcel.Parcel { return newParcelOnTheWay(t, owner.ID(), kernel.NewUUID()) },
			wantStatus: parcel.Cancelled,
		},
		{
			name:       "stranger refused even when pending",
			actor:      newActor(t, kernel.Customer),
			parcel:     func(t *testing.T) *parcel.Parcel { return newPendingParcel(t, owner.ID()) },
			wantErr:    errs.ErrForbidden,
			wantStatus: parcel.Pending,
		},
		{
			name:       "delivered cannot be cancelled",
			actor:      owner,
			parcel:     func(t *testing.T) *parcel.Parcel { return newDeliveredParcel(t, owner.ID(), kernel.NewUUID()) },
			wantErr:    errs.ErrInvalidState,
			wantStatus: parcel.Delivered,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			p := tc.parcel(t)
			cmd, err := commands.NewCancelParcelCommand(tc.actor, p.ID())
			require.NoError(t, err)

			repo := new(MockParcelRepository)
			uow := new(MockUoW)
			factory := new(MockParcelUoWFactory)
			factory.On("Create").Return(uow).Once()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("ParcelRepository").Return(repo).Once()
			repo.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once()
			if tc.wantErr == nil {
				repo.On("Update", ctx, p).Return(nil).Once()
				uow.On("Commit", ctx).Return(nil).Once()
			}
			uow.On("Rollback", ctx).Return(nil).Once()

			err = commands.NewCancelParcelCommandHandler(factory).Handle(ctx, cmd)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.wantStatus, p.Status())
			uow.AssertExpectations(t)
		})
	}
}

func TestCancelParcelCommandHandler_Handle_AgentForbidden(t *testing.T) {
	cmd, err := commands.NewCancelParcelCommand(newActor(t, kernel.Agent), kernel.NewUUID())
	require.NoError(t, err)
	factory := new(MockParcelUoWFactory)

	err = commands.NewCancelParcelCommandHandler(factory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
