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
	"github.com/vicholitvak/moai-logistics/services/zones/mocks"
)

var santiagoCentro = models.Coordinate{Latitude: -33.4489, Longitude: -70.6693}

func circleZone(id uuid.UUID, name string, priority int, radiusM float64) *models.DeliveryZone {
	return &models.DeliveryZone{
		ID:       id,
		Name:     name,
		Priority: priority,
		IsActive: true,
		BaseFee:  1000,
		Boundary: models.ZoneBoundary{
			Kind:    models.BoundaryCircle,
			Center:  santiagoCentro,
			RadiusM: radiusM,
		},
	}
}

func TestResolveZone_LowestPriorityWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockZoneRepo(ctrl)
	uc := NewZoneUC(mockRepo)

	z1 := circleZone(uuid.New(), "centro", 1, 5000)
	z2 := circleZone(uuid.New(), "metropolitana", 2, 20000)

	mockRepo.EXPECT().
		ListActiveZones(gomock.Any()).
		Return([]*models.DeliveryZone{z2, z1}, nil)

	zone, err := uc.ResolveZone(context.Background(), santiagoCentro)
	require.NoError(t, err)
	require.NotNil(t, zone)
	assert.Equal(t, z1.ID, zone.ID)
}

func TestResolveZone_PriorityTieBrokenBySmallestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockZoneRepo(ctrl)
	uc := NewZoneUC(mockRepo)

	idA := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	idB := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	za := circleZone(idA, "a", 1, 5000)
	zb := circleZone(idB, "b", 1, 5000)

	mockRepo.EXPECT().
		ListActiveZones(gomock.Any()).
		Return([]*models.DeliveryZone{zb, za}, nil)

	zone, err := uc.ResolveZone(context.Background(), santiagoCentro)
	require.NoError(t, err)
	require.NotNil(t, zone)
	assert.Equal(t, idA, zone.ID)
}

func TestResolveZone_OutOfServiceArea(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockZoneRepo(ctrl)
	uc := NewZoneUC(mockRepo)

	mockRepo.EXPECT().
		ListActiveZones(gomock.Any()).
		Return([]*models.DeliveryZone{circleZone(uuid.New(), "centro", 1, 5000)}, nil)

	zone, err := uc.ResolveZone(context.Background(), models.Coordinate{Latitude: 0, Longitude: 0})
	require.NoError(t, err)
	assert.Nil(t, zone)
}

func TestResolveZone_InvalidPoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewZoneUC(mocks.NewMockZoneRepo(ctrl))

	_, err := uc.ResolveZone(context.Background(), models.Coordinate{Latitude: 123, Longitude: 0})
	assert.ErrorIs(t, err, apperr.ErrInvalidCoordinate)
}

func TestResolveZone_SkipsDegenerateZones(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockZoneRepo(ctrl)
	uc := NewZoneUC(mockRepo)

	broken := &models.DeliveryZone{
		ID:       uuid.New(),
		Priority: 0,
		IsActive: true,
		Boundary: models.ZoneBoundary{
			Kind:     models.BoundaryPolygon,
			Vertices: []models.Coordinate{santiagoCentro}, // degenerate
		},
	}
	good := circleZone(uuid.New(), "centro", 1, 5000)

	mockRepo.EXPECT().
		ListActiveZones(gomock.Any()).
		Return([]*models.DeliveryZone{broken, good}, nil)

	zone, err := uc.ResolveZone(context.Background(), santiagoCentro)
	require.NoError(t, err)
	require.NotNil(t, zone)
	assert.Equal(t, good.ID, zone.ID)
}

func TestIsOperatingNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := NewZoneUC(mocks.NewMockZoneRepo(ctrl))

	at := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 15, hour, minute, 0, 0, time.Local)
	}

	tests := []struct {
		name  string
		hours *models.OperatingHours
		at    time.Time
		want  bool
	}{
		{"no hours configured", nil, at(3, 0), true},
		{"inside window", &models.OperatingHours{Opens: "10:00", Closes: "22:00"}, at(12, 30), true},
		{"before opening", &models.OperatingHours{Opens: "10:00", Closes: "22:00"}, at(9, 59), false},
		{"at closing", &models.OperatingHours{Opens: "10:00", Closes: "22:00"}, at(22, 0), false},
		{"overnight open late", &models.OperatingHours{Opens: "20:00", Closes: "02:00"}, at(23, 30), true},
		{"overnight after midnight", &models.OperatingHours{Opens: "20:00", Closes: "02:00"}, at(1, 0), true},
		{"overnight closed midday", &models.OperatingHours{Opens: "20:00", Closes: "02:00"}, at(12, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone := circleZone(uuid.New(), "z", 1, 5000)
			zone.Hours = tt.hours
			assert.Equal(t, tt.want, uc.IsOperatingNow(zone, tt.at))
		})
	}
}

func TestListActiveOperating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockZoneRepo(ctrl)
	uc := NewZoneUC(mockRepo)

	open := circleZone(uuid.New(), "open", 1, 5000)
	closed := circleZone(uuid.New(), "closed", 2, 5000)
	closed.Hours = &models.OperatingHours{Opens: "10:00", Closes: "12:00"}

	mockRepo.EXPECT().
		ListActiveZones(gomock.Any()).
		Return([]*models.DeliveryZone{open, closed}, nil)

	at := time.Date(2025, 6, 15, 15, 0, 0, 0, time.Local)
	operating, err := uc.ListActiveOperating(context.Background(), at)
	require.NoError(t, err)
	require.Len(t, operating, 1)
	assert.Equal(t, open.ID, operating[0].ID)
}

func TestCreateZone_ValidatesBoundary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewZoneUC(mocks.NewMockZoneRepo(ctrl))

	_, err := uc.CreateZone(context.Background(), &models.DeliveryZone{
		Name:     "bad",
		Boundary: models.ZoneBoundary{Kind: models.BoundaryCircle, Center: santiagoCentro, RadiusM: 0},
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidZone)

	_, err = uc.CreateZone(context.Background(), &models.DeliveryZone{
		Name: "bad polygon",
		Boundary: models.ZoneBoundary{
			Kind:     models.BoundaryPolygon,
			Vertices: []models.Coordinate{santiagoCentro, santiagoCentro},
		},
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidZone)
}

func TestCreateZone_AssignsIDAndTimestamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockZoneRepo(ctrl)
	uc := NewZoneUC(mockRepo)

	mockRepo.EXPECT().
		CreateZone(gomock.Any(), gomock.Any()).
		Return(nil)

	zone, err := uc.CreateZone(context.Background(), circleZone(uuid.Nil, "centro", 1, 5000))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, zone.ID)
	assert.False(t, zone.CreatedAt.IsZero())
}
