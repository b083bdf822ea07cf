package ratingrepo_test

import (
	"context"
	"testing"

	"parcelhub/internal/adapters/out/postgres/pgtest"
	"parcelhub/internal/adapters/out/postgres/ratingrepo"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/rating"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type RatingRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *ratingrepo.GormRatingRepository
}

func (suite *RatingRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&ratingrepo.RatingDTO{}))
}

func (suite *RatingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE ratings").Error)

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = ratingrepo.NewGormRatingRepository(suite.db, tracker)
}

func (suite *RatingRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RatingRepositoryIntegrationTestSuite) TestAdd_ProbeAndGet() {
	ctx := context.Background()
	customerID, parcelID := kernel.NewUUID(), kernel.NewUUID()
	r, err := rating.NewRating(kernel.NewUUID(), customerID, kernel.NewUUID(), parcelID, 5, "great")
	suite.Require().NoError(err)

	exists, err := suite.repository.ExistsForCustomerParcel(ctx, customerID, parcelID)
	suite.Require().NoError(err)
	suite.False(exists)

	suite.Require().NoError(suite.repository.Add(ctx, r))

	exists, err = suite.repository.ExistsForCustomerParcel(ctx, customerID, parcelID)
	suite.Require().NoError(err)
	suite.True(exists)

	loaded, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(5, loaded.Score())
	suite.Equal("great", loaded.Comment())
	suite.Equal(r.DriverID(), loaded.DriverID())
}

func (suite *RatingRepositoryIntegrationTestSuite) TestAdd_SecondRatingForSamePairIsDuplicate() {
	ctx := context.Background()
	customerID, parcelID, driverID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	first, err := rating.NewRating(kernel.NewUUID(), customerID, driverID, parcelID, 5, "great")
	suite.Require().NoError(err)
	second, err := rating.NewRating(kernel.NewUUID(), customerID, driverID, parcelID, 1, "different")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, first))
	err = suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrDuplicate)
	var count int64
	suite.Require().NoError(suite.db.Model(&ratingrepo.RatingDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func TestRatingRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RatingRepositoryIntegrationTestSuite))
}
