package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicholitvak/moai-logistics/internal/pkg/apperr"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	"github.com/vicholitvak/moai-logistics/services/tracking/mocks"
)

type trackerFixture struct {
	repo      *mocks.MockTrackerRepo
	directory *mocks.MockDriverDirectory
	orders    *mocks.MockOrderReader
	quoter    *mocks.MockQuoter
	gw        *mocks.MockTrackingGW
	uc        *TrackerUC
}

func newTrackerFixture(t *testing.T) *trackerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &trackerFixture{
		repo:      mocks.NewMockTrackerRepo(ctrl),
		directory: mocks.NewMockDriverDirectory(ctrl),
		orders:    mocks.NewMockOrderReader(ctrl),
		quoter:    mocks.NewMockQuoter(ctrl),
		gw:        mocks.NewMockTrackingGW(ctrl),
	}
	f.uc = NewTrackerUC(f.repo, f.directory, f.orders, f.quoter, f.gw)
	return f
}

var trackedLoc = models.Coordinate{Latitude: -33.4489, Longitude: -70.6693}

func TestIngest_RejectsOutOfRangeSample(t *testing.T) {
	f := newTrackerFixture(t)

	sample := &models.LocationSampleEvent{
		DriverID:   uuid.New(),
		Location:   models.Coordinate{Latitude: -95, Longitude: 10},
		CapturedAt: time.Now(),
	}
	err := f.uc.Ingest(context.Background(), sample)
	assert.ErrorIs(t, err, apperr.ErrInvalidCoordinate)
}

func TestIngest_DropsStaleSample(t *testing.T) {
	f := newTrackerFixture(t)

	driverID := uuid.New()
	newest := time.Now()
	f.repo.EXPECT().
		LastSampleAt(gomock.Any(), driverID).
		Return(newest, nil)

	// Older than the newest accepted sample; nothing else may be called
	sample := &models.LocationSampleEvent{
		DriverID:   driverID,
		Location:   trackedLoc,
		CapturedAt: newest.Add(-30 * time.Second),
	}
	require.NoError(t, f.uc.Ingest(context.Background(), sample))
}

func TestIngest_IdleDriverRecordsWithoutETA(t *testing.T) {
	f := newTrackerFixture(t)

	driverID := uuid.New()
	capturedAt := time.Now()

	f.repo.EXPECT().
		LastSampleAt(gomock.Any(), driverID).
		Return(time.Time{}, nil)
	f.repo.EXPECT().
		RecordSample(gomock.Any(), driverID, trackedLoc, capturedAt).
		Return(nil)
	f.directory.EXPECT().
		UpdateLocation(gomock.Any(), driverID, trackedLoc).
		Return(nil)
	f.directory.EXPECT().
		GetDriver(gomock.Any(), driverID).
		Return(&models.DriverRecord{DriverID: driverID, IsOnline: true, IsAvailable: true}, nil)

	sample := &models.LocationSampleEvent{DriverID: driverID, Location: trackedLoc, CapturedAt: capturedAt}
	require.NoError(t, f.uc.Ingest(context.Background(), sample))
}

func TestIngest_DeliveringDriverPublishesLiveETA(t *testing.T) {
	f := newTrackerFixture(t)

	driverID := uuid.New()
	orderID := uuid.New()
	capturedAt := time.Now()

	order := &models.Order{
		OrderID:          orderID,
		Status:           models.OrderStatusDelivering,
		DriverID:         uuid.NullUUID{UUID: driverID, Valid: true},
		DropoffLatitude:  -33.4242,
		DropoffLongitude: -70.6118,
		DeliveryFee:      4200,
	}

	f.repo.EXPECT().
		LastSampleAt(gomock.Any(), driverID).
		Return(time.Time{}, nil)
	f.repo.EXPECT().
		RecordSample(gomock.Any(), driverID, trackedLoc, capturedAt).
		Return(nil)
	f.directory.EXPECT().
		UpdateLocation(gomock.Any(), driverID, trackedLoc).
		Return(nil)
	f.directory.EXPECT().
		GetDriver(gomock.Any(), driverID).
		Return(&models.DriverRecord{
			DriverID:       driverID,
			IsOnline:       true,
			CurrentOrderID: uuid.NullUUID{UUID: orderID, Valid: true},
		}, nil)
	f.orders.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(order, nil)
	f.quoter.EXPECT().
		Quote(gomock.Any(), trackedLoc, order.Dropoff(), gomock.Any()).
		Return(&models.FeeQuote{EstimatedMinutes: 22}, nil)
	f.gw.EXPECT().
		PublishETAUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.OrderETAUpdatedEvent) error {
			assert.Equal(t, orderID, event.OrderID)
			assert.Equal(t, driverID, event.DriverID)
			assert.Equal(t, 22, event.EstimatedMinutes)
			return nil
		})

	sample := &models.LocationSampleEvent{DriverID: driverID, Location: trackedLoc, CapturedAt: capturedAt}
	require.NoError(t, f.uc.Ingest(context.Background(), sample))
}

func TestIngest_NoETAForOrderNotYetDelivering(t *testing.T) {
	f := newTrackerFixture(t)

	driverID := uuid.New()
	orderID := uuid.New()
	capturedAt := time.Now()

	f.repo.EXPECT().
		LastSampleAt(gomock.Any(), driverID).
		Return(time.Time{}, nil)
	f.repo.EXPECT().
		RecordSample(gomock.Any(), driverID, trackedLoc, capturedAt).
		Return(nil)
	f.directory.EXPECT().
		UpdateLocation(gomock.Any(), driverID, trackedLoc).
		Return(nil)
	f.directory.EXPECT().
		GetDriver(gomock.Any(), driverID).
		Return(&models.DriverRecord{
			DriverID:       driverID,
			IsOnline:       true,
			CurrentOrderID: uuid.NullUUID{UUID: orderID, Valid: true},
		}, nil)
	f.orders.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(&models.Order{OrderID: orderID, Status: models.OrderStatusReady}, nil)

	sample := &models.LocationSampleEvent{DriverID: driverID, Location: trackedLoc, CapturedAt: capturedAt}
	require.NoError(t, f.uc.Ingest(context.Background(), sample))
}
