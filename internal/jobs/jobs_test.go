package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type finderMock struct {
	mock.Mock
}

func (m *finderMock) Handle(ctx context.Context, query queries.FindLateParcelsQuery) ([]queries.ParcelView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.ParcelView)
	return views, args.Error(1)
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

var asOf = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestOverdueDeliveriesJob_Run(t *testing.T) {
	approx := asOf.Add(-90 * time.Minute)
	driver := kernel.NewUUID()
	late := []queries.ParcelView{{
		ID:                      kernel.NewUUID(),
		CustomerID:              kernel.NewUUID(),
		DriverID:                &driver,
		Status:                  parcel.OnTheWay,
		ApproximateDeliveryDate: &approx,
	}}

	finder := &finderMock{}
	finder.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.FindLateParcelsQuery) bool {
		return q.AsOf().Equal(asOf)
	})).Return(late, nil).Once()

	logger, buf := bufferLogger()
	job := NewOverdueDeliveriesJob(finder, "0 * * * * *", logger)
	job.now = func() time.Time { return asOf }

	assert.Equal(t, 1, job.Run(context.Background()))
	finder.AssertExpectations(t)

	out := buf.String()
	assert.Contains(t, out, "Delivery is overdue")
	assert.Contains(t, out, late[0].ID.String())
	assert.Contains(t, out, driver.String())
	assert.Contains(t, out, `"overdue_by":"1h30m0s"`)
}

func TestOverdueDeliveriesJob_RunLogsFailure(t *testing.T) {
	finder := &finderMock{}
	finder.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()

	logger, buf := bufferLogger()
	job := NewOverdueDeliveriesJob(finder, "0 * * * * *", logger)

	assert.Zero(t, job.Run(context.Background()))
	assert.Contains(t, buf.String(), "connection reset")
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestStalePendingJob_Run(t *testing.T) {
	stale := []queries.ParcelView{
		{ID: kernel.NewUUID(), CustomerID: kernel.NewUUID(), Status: parcel.Pending, RequestedDeliveryDate: asOf.AddDate(0, 0, -2)},
		{ID: kernel.NewUUID(), CustomerID: kernel.NewUUID(), Status: parcel.Pending, RequestedDeliveryDate: asOf.AddDate(0, 0, -1)},
	}

	finder := &finderMock{}
	finder.On("Handle", mock.Anything, mock.Anything).Return(stale, nil).Once()

	logger, buf := bufferLogger()
	job := NewStalePendingJob(finder, "0 * * * * *", logger)
	job.now = func() time.Time { return asOf }

	assert.Equal(t, 2, job.Run(context.Background()))
	assert.Equal(t, 2, strings.Count(buf.String(), "Package still pending after its requested date"))
	assert.Contains(t, buf.String(), `"requested_delivery_date":"2025-03-08"`)
}

func TestStalePendingJob_RunNothingLate(t *testing.T) {
	finder := &finderMock{}
	finder.On("Handle", mock.Anything, mock.Anything).Return([]queries.ParcelView{}, nil).Once()

	logger, buf := bufferLogger()
	job := NewStalePendingJob(finder, "0 * * * * *", logger)

	assert.Zero(t, job.Run(context.Background()))
	assert.Empty(t, buf.String())
}

func TestJobManager_StartAllRejectsBadSchedule(t *testing.T) {
	logger, _ := bufferLogger()
	finder := &finderMock{}

	jm := NewJobManager(finder, Schedules{OverdueDeliveries: "not a schedule", StalePending: "0 0 * * * *"}, logger)
	err := jm.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overdue deliveries")

	jm = NewJobManager(finder, Schedules{OverdueDeliveries: "0 0 * * * *", StalePending: "* * *"}, logger)
	err = jm.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stale pending")
}

func TestJobManager_StartStop(t *testing.T) {
	logger, buf := bufferLogger()
	finder := &finderMock{}

	jm := NewJobManager(finder, Schedules{OverdueDeliveries: "0 0 0 1 1 *", StalePending: "0 0 0 1 1 *"}, logger)
	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Contains(t, buf.String(), "Overdue deliveries job started")
	assert.Contains(t, buf.String(), "Stale pending job stopped")
	finder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}
