package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicholitvak/moai-logistics/internal/pkg/apperr"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	"github.com/vicholitvak/moai-logistics/services/drivers/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Assignment: models.AssignmentConfig{
			SearchRadiusKm: 5.0,
			MaxCandidates:  10,
		},
	}
}

func TestSetOnline_RejectsOfflineWithActiveOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	uc := NewDirectoryUC(testConfig(), mockRepo, mocks.NewMockDriverGW(ctrl))

	driverID := uuid.New()
	orderID := uuid.New()
	mockRepo.EXPECT().
		GetDriver(gomock.Any(), driverID).
		Return(&models.DriverRecord{
			DriverID:       driverID,
			IsOnline:       true,
			CurrentOrderID: uuid.NullUUID{UUID: orderID, Valid: true},
		}, nil)

	err := uc.SetOnline(context.Background(), driverID, models.VehicleCar, false)
	assert.ErrorIs(t, err, apperr.ErrHasActiveOrder)
}

func TestSetOnline_OfflineWithoutOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	uc := NewDirectoryUC(testConfig(), mockRepo, mocks.NewMockDriverGW(ctrl))

	driverID := uuid.New()
	mockRepo.EXPECT().
		GetDriver(gomock.Any(), driverID).
		Return(&models.DriverRecord{DriverID: driverID, IsOnline: true}, nil)
	mockRepo.EXPECT().
		UpsertOnline(gomock.Any(), driverID, models.VehicleCar, false).
		Return(nil)

	require.NoError(t, uc.SetOnline(context.Background(), driverID, models.VehicleCar, false))
}

func TestSetOnline_FirstTimeOnline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	uc := NewDirectoryUC(testConfig(), mockRepo, mocks.NewMockDriverGW(ctrl))

	driverID := uuid.New()
	mockRepo.EXPECT().
		UpsertOnline(gomock.Any(), driverID, models.VehicleBicycle, true).
		Return(nil)

	require.NoError(t, uc.SetOnline(context.Background(), driverID, models.VehicleBicycle, true))
}

func TestUpdateLocation_UnknownDriverIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	uc := NewDirectoryUC(testConfig(), mockRepo, mocks.NewMockDriverGW(ctrl))

	driverID := uuid.New()
	mockRepo.EXPECT().
		GetDriver(gomock.Any(), driverID).
		Return(nil, apperr.ErrDriverNotFound)

	loc := models.Coordinate{Latitude: -33.45, Longitude: -70.66}
	require.NoError(t, uc.UpdateLocation(context.Background(), driverID, loc))
}

func TestUpdateLocation_RejectsInvalidCoordinate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewDirectoryUC(testConfig(), mocks.NewMockDriverRepo(ctrl), mocks.NewMockDriverGW(ctrl))

	err := uc.UpdateLocation(context.Background(), uuid.New(), models.Coordinate{Latitude: 99, Longitude: 200})
	assert.ErrorIs(t, err, apperr.ErrInvalidCoordinate)
}

func TestUpdateLocation_ForwardsPositionToActiveOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDirectoryUC(testConfig(), mockRepo, mockGW)

	driverID := uuid.New()
	orderID := uuid.New()
	loc := models.Coordinate{Latitude: -33.45, Longitude: -70.66}

	mockRepo.EXPECT().
		GetDriver(gomock.Any(), driverID).
		Return(&models.DriverRecord{
			DriverID:       driverID,
			IsOnline:       true,
			CurrentOrderID: uuid.NullUUID{UUID: orderID, Valid: true},
		}, nil)
	mockRepo.EXPECT().
		StoreLocation(gomock.Any(), driverID, loc).
		Return(nil)
	mockGW.EXPECT().
		PublishOrderPosition(gomock.Any(), &models.OrderPositionUpdatedEvent{
			OrderID:  orderID,
			DriverID: driverID,
			Location: loc,
		}).
		Return(nil)

	require.NoError(t, uc.UpdateLocation(context.Background(), driverID, loc))
}

func TestUpdateLocation_IdleDriverDoesNotPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	uc := NewDirectoryUC(testConfig(), mockRepo, mocks.NewMockDriverGW(ctrl))

	driverID := uuid.New()
	loc := models.Coordinate{Latitude: -33.45, Longitude: -70.66}

	mockRepo.EXPECT().
		GetDriver(gomock.Any(), driverID).
		Return(&models.DriverRecord{DriverID: driverID, IsOnline: true, IsAvailable: true}, nil)
	mockRepo.EXPECT().
		StoreLocation(gomock.Any(), driverID, loc).
		Return(nil)

	require.NoError(t, uc.UpdateLocation(context.Background(), driverID, loc))
}

func TestFindAvailable_StableOrdering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	uc := NewDirectoryUC(testConfig(), mockRepo, mocks.NewMockDriverGW(ctrl))

	near := models.Coordinate{Latitude: -33.45, Longitude: -70.66}
	idA := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	idB := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	idC := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	mockRepo.EXPECT().
		FindNearby(gomock.Any(), near, 5.0, 10).
		Return([]*models.NearbyDriver{
			{DriverID: idC, DistanceKm: 1.2},
			{DriverID: idB, DistanceKm: 0.8},
			{DriverID: idA, DistanceKm: 0.8},
		}, nil)

	candidates, err := uc.FindAvailable(context.Background(), near, 5.0)
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	// Closest first; equidistant candidates order by ID
	assert.Equal(t, idA, candidates[0].DriverID)
	assert.Equal(t, idB, candidates[1].DriverID)
	assert.Equal(t, idC, candidates[2].DriverID)
}

func TestFindAvailable_EmptyIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	uc := NewDirectoryUC(testConfig(), mockRepo, mocks.NewMockDriverGW(ctrl))

	near := models.Coordinate{Latitude: -33.45, Longitude: -70.66}
	mockRepo.EXPECT().
		FindNearby(gomock.Any(), near, 5.0, 10).
		Return([]*models.NearbyDriver{}, nil)

	candidates, err := uc.FindAvailable(context.Background(), near, 5.0)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestRelease_UnknownDriverIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	uc := NewDirectoryUC(testConfig(), mockRepo, mocks.NewMockDriverGW(ctrl))

	driverID := uuid.New()
	mockRepo.EXPECT().
		ReleaseDriver(gomock.Any(), driverID).
		Return(apperr.ErrDriverNotFound)

	require.NoError(t, uc.Release(context.Background(), driverID))
}
