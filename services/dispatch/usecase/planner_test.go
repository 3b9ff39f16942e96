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
	"github.com/vicholitvak/moai-logistics/services/dispatch"
	"github.com/vicholitvak/moai-logistics/services/dispatch/mocks"
)

type plannerFixture struct {
	orders  *mocks.MockOrderStore
	drivers *mocks.MockDriverFinder
	quoter  *mocks.MockQuoter
	gw      *mocks.MockDispatchGW
	uc      *PlannerUC
}

func newPlannerFixture(t *testing.T) *plannerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &plannerFixture{
		orders:  mocks.NewMockOrderStore(ctrl),
		drivers: mocks.NewMockDriverFinder(ctrl),
		quoter:  mocks.NewMockQuoter(ctrl),
		gw:      mocks.NewMockDispatchGW(ctrl),
	}
	cfg := &models.Config{
		Assignment: models.AssignmentConfig{SearchRadiusKm: 5.0, MaxCandidates: 10},
	}
	f.uc = NewPlannerUC(cfg, f.orders, f.drivers, f.quoter, f.gw)
	return f
}

func readyOrder() *models.Order {
	return &models.Order{
		OrderID:          uuid.New(),
		CustomerID:       uuid.New(),
		CookID:           uuid.New(),
		Status:           models.OrderStatusReady,
		PickupLatitude:   -33.4489,
		PickupLongitude:  -70.6693,
		DropoffLatitude:  -33.4242,
		DropoffLongitude: -70.6118,
	}
}

func TestPlanAssignment_HappyPath(t *testing.T) {
	f := newPlannerFixture(t)

	order := readyOrder()
	driverID := uuid.New()
	quote := &models.FeeQuote{TotalFee: 3800, EstimatedMinutes: 28}

	f.orders.EXPECT().GetOrder(gomock.Any(), order.OrderID).Return(order, nil)
	f.quoter.EXPECT().
		Quote(gomock.Any(), order.Pickup(), order.Dropoff(), gomock.Any()).
		Return(quote, nil)
	f.drivers.EXPECT().
		FindAvailable(gomock.Any(), order.Pickup(), 5.0).
		Return([]*models.NearbyDriver{{DriverID: driverID, DistanceKm: 1.1}}, nil)
	f.drivers.EXPECT().Claim(gomock.Any(), driverID, order.OrderID).Return(true, nil)
	f.orders.EXPECT().AssignDriver(gomock.Any(), order.OrderID, driverID, quote).Return(true, nil)
	f.orders.EXPECT().
		RequestTransition(gomock.Any(), order.OrderID, models.OrderStatusDelivering, systemActor).
		Return(order, nil)

	result, err := f.uc.PlanAssignment(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, dispatch.OutcomeAssigned, result.Outcome)
	assert.Equal(t, driverID, result.DriverID.UUID)
	assert.Equal(t, quote, result.Quote)
}

func TestPlanAssignment_FallsThroughLostClaims(t *testing.T) {
	f := newPlannerFixture(t)

	order := readyOrder()
	first := uuid.New()
	second := uuid.New()
	quote := &models.FeeQuote{TotalFee: 3800, EstimatedMinutes: 28}

	f.orders.EXPECT().GetOrder(gomock.Any(), order.OrderID).Return(order, nil)
	f.quoter.EXPECT().
		Quote(gomock.Any(), order.Pickup(), order.Dropoff(), gomock.Any()).
		Return(quote, nil)
	f.drivers.EXPECT().
		FindAvailable(gomock.Any(), order.Pickup(), 5.0).
		Return([]*models.NearbyDriver{
			{DriverID: first, DistanceKm: 0.5},
			{DriverID: second, DistanceKm: 1.8},
		}, nil)

	// The closest driver was claimed by a competing order
	f.drivers.EXPECT().Claim(gomock.Any(), first, order.OrderID).Return(false, nil)
	f.drivers.EXPECT().Claim(gomock.Any(), second, order.OrderID).Return(true, nil)
	f.orders.EXPECT().AssignDriver(gomock.Any(), order.OrderID, second, quote).Return(true, nil)
	f.orders.EXPECT().
		RequestTransition(gomock.Any(), order.OrderID, models.OrderStatusDelivering, systemActor).
		Return(order, nil)

	result, err := f.uc.PlanAssignment(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, dispatch.OutcomeAssigned, result.Outcome)
	assert.Equal(t, second, result.DriverID.UUID)
}

func TestPlanAssignment_NoDriverAvailable(t *testing.T) {
	f := newPlannerFixture(t)

	order := readyOrder()
	f.orders.EXPECT().GetOrder(gomock.Any(), order.OrderID).Return(order, nil)
	f.quoter.EXPECT().
		Quote(gomock.Any(), order.Pickup(), order.Dropoff(), gomock.Any()).
		Return(&models.FeeQuote{TotalFee: 3800}, nil)
	f.drivers.EXPECT().
		FindAvailable(gomock.Any(), order.Pickup(), 5.0).
		Return([]*models.NearbyDriver{}, nil)

	result, err := f.uc.PlanAssignment(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, dispatch.OutcomeNoDriver, result.Outcome)
	assert.False(t, result.DriverID.Valid)
}

func TestPlanAssignment_OutOfServiceAreaAlertsOperator(t *testing.T) {
	f := newPlannerFixture(t)

	order := readyOrder()
	f.orders.EXPECT().GetOrder(gomock.Any(), order.OrderID).Return(order, nil)
	f.quoter.EXPECT().
		Quote(gomock.Any(), order.Pickup(), order.Dropoff(), gomock.Any()).
		Return(nil, apperr.ErrOutOfServiceArea)
	f.gw.EXPECT().
		PublishOperatorAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.OperatorAlertEvent) error {
			assert.Equal(t, order.OrderID, event.OrderID)
			assert.NotEmpty(t, event.Reason)
			return nil
		})

	result, err := f.uc.PlanAssignment(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, dispatch.OutcomeOutOfServiceArea, result.Outcome)
}

func TestPlanAssignment_SkipsOrderNotReady(t *testing.T) {
	f := newPlannerFixture(t)

	order := readyOrder()
	order.Status = models.OrderStatusDelivering

	f.orders.EXPECT().GetOrder(gomock.Any(), order.OrderID).Return(order, nil)

	result, err := f.uc.PlanAssignment(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, dispatch.OutcomeSkipped, result.Outcome)
}

func TestPlanAssignment_ResumesPersistedAssignment(t *testing.T) {
	f := newPlannerFixture(t)

	order := readyOrder()
	driverID := uuid.New()
	order.DriverID = uuid.NullUUID{UUID: driverID, Valid: true}

	f.orders.EXPECT().GetOrder(gomock.Any(), order.OrderID).Return(order, nil)
	f.orders.EXPECT().
		RequestTransition(gomock.Any(), order.OrderID, models.OrderStatusDelivering, systemActor).
		Return(order, nil)

	result, err := f.uc.PlanAssignment(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, dispatch.OutcomeAssigned, result.Outcome)
	assert.Equal(t, driverID, result.DriverID.UUID)
}

func TestPlanAssignment_ReleasesClaimWhenOrderLeftReady(t *testing.T) {
	f := newPlannerFixture(t)

	order := readyOrder()
	driverID := uuid.New()
	quote := &models.FeeQuote{TotalFee: 3800}

	f.orders.EXPECT().GetOrder(gomock.Any(), order.OrderID).Return(order, nil)
	f.quoter.EXPECT().
		Quote(gomock.Any(), order.Pickup(), order.Dropoff(), gomock.Any()).
		Return(quote, nil)
	f.drivers.EXPECT().
		FindAvailable(gomock.Any(), order.Pickup(), 5.0).
		Return([]*models.NearbyDriver{{DriverID: driverID, DistanceKm: 0.9}}, nil)
	f.drivers.EXPECT().Claim(gomock.Any(), driverID, order.OrderID).Return(true, nil)
	// Cancelled while we were claiming
	f.orders.EXPECT().AssignDriver(gomock.Any(), order.OrderID, driverID, quote).Return(false, nil)
	f.drivers.EXPECT().Release(gomock.Any(), driverID).Return(nil)

	result, err := f.uc.PlanAssignment(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, dispatch.OutcomeSkipped, result.Outcome)
}

func TestPlanPending_PlansEveryReadyOrder(t *testing.T) {
	f := newPlannerFixture(t)

	first := readyOrder()
	second := readyOrder()

	f.orders.EXPECT().
		ListByStatus(gomock.Any(), models.OrderStatusReady).
		Return([]*models.Order{first, second}, nil)

	for _, order := range []*models.Order{first, second} {
		order := order
		f.orders.EXPECT().GetOrder(gomock.Any(), order.OrderID).Return(order, nil)
		f.quoter.EXPECT().
			Quote(gomock.Any(), order.Pickup(), order.Dropoff(), gomock.Any()).
			Return(&models.FeeQuote{TotalFee: 2500}, nil)
		f.drivers.EXPECT().
			FindAvailable(gomock.Any(), order.Pickup(), 5.0).
			Return([]*models.NearbyDriver{}, nil)
	}

	require.NoError(t, f.uc.PlanPending(context.Background()))
}
