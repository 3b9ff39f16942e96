package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicholitvak/moai-logistics/internal/pkg/constants"
	"github.com/vicholitvak/moai-logistics/internal/pkg/database"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
)

func setupDriverRepo(t *testing.T) (*DriverRepo, sqlmock.Sqlmock, *database.RedisClient) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	redisClient := database.NewRedisClientFromAddr(mr.Addr())

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewDriverRepository(sqlxDB, redisClient), mock, redisClient
}

func TestUpsertOnline_SyncsPools(t *testing.T) {
	repo, mock, redisClient := setupDriverRepo(t)
	ctx := context.Background()
	driverID := uuid.New()

	mock.ExpectQuery(`INSERT INTO drivers`).
		WillReturnRows(sqlmock.NewRows([]string{"is_available"}).AddRow(true))

	require.NoError(t, repo.UpsertOnline(ctx, driverID, models.VehicleMotorcycle, true))

	available, err := redisClient.SIsMember(ctx, constants.KeyAvailableDrivers, driverID.String())
	require.NoError(t, err)
	assert.True(t, available)

	// Going offline leaves every pool
	mock.ExpectQuery(`INSERT INTO drivers`).
		WillReturnRows(sqlmock.NewRows([]string{"is_available"}).AddRow(false))

	require.NoError(t, repo.UpsertOnline(ctx, driverID, models.VehicleMotorcycle, false))

	available, err = redisClient.SIsMember(ctx, constants.KeyAvailableDrivers, driverID.String())
	require.NoError(t, err)
	assert.False(t, available)

	require.NoError(t, mock.ExpectationsWereMet())
}

// A driver reconnecting while still holding an order must not leak back
// into the available pool.
func TestUpsertOnline_ReconnectMidDeliveryStaysBusy(t *testing.T) {
	repo, mock, redisClient := setupDriverRepo(t)
	ctx := context.Background()
	driverID := uuid.New()

	require.NoError(t, redisClient.SAdd(ctx, constants.KeyBusyDrivers, driverID.String()))

	// The row still carries a current order, so the upsert reports unavailable
	mock.ExpectQuery(`INSERT INTO drivers`).
		WillReturnRows(sqlmock.NewRows([]string{"is_available"}).AddRow(false))

	require.NoError(t, repo.UpsertOnline(ctx, driverID, models.VehicleMotorcycle, true))

	available, err := redisClient.SIsMember(ctx, constants.KeyAvailableDrivers, driverID.String())
	require.NoError(t, err)
	assert.False(t, available)

	busy, err := redisClient.SIsMember(ctx, constants.KeyBusyDrivers, driverID.String())
	require.NoError(t, err)
	assert.True(t, busy)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimDriver_WinsWhenAvailable(t *testing.T) {
	repo, mock, redisClient := setupDriverRepo(t)
	ctx := context.Background()
	driverID := uuid.New()
	orderID := uuid.New()

	require.NoError(t, redisClient.SAdd(ctx, constants.KeyAvailableDrivers, driverID.String()))

	mock.ExpectExec(`UPDATE drivers`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	claimed, err := repo.ClaimDriver(ctx, driverID, orderID)
	require.NoError(t, err)
	assert.True(t, claimed)

	busy, err := redisClient.SIsMember(ctx, constants.KeyBusyDrivers, driverID.String())
	require.NoError(t, err)
	assert.True(t, busy)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimDriver_FalseWhenNotInPool(t *testing.T) {
	repo, _, _ := setupDriverRepo(t)

	claimed, err := repo.ClaimDriver(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.False(t, claimed)
}

func TestClaimDriver_RollsBackOnRowMismatch(t *testing.T) {
	repo, mock, redisClient := setupDriverRepo(t)
	ctx := context.Background()
	driverID := uuid.New()

	require.NoError(t, redisClient.SAdd(ctx, constants.KeyAvailableDrivers, driverID.String()))

	// Pool said available but the row disagrees; the claim must not stick
	mock.ExpectExec(`UPDATE drivers`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err := repo.ClaimDriver(ctx, driverID, uuid.New())
	require.NoError(t, err)
	assert.False(t, claimed)

	available, err := redisClient.SIsMember(ctx, constants.KeyAvailableDrivers, driverID.String())
	require.NoError(t, err)
	assert.True(t, available)
}

// TestClaimDriver_ExclusiveUnderContention races many claims for the same
// driver; the SMove gate must let exactly one through to the row update.
func TestClaimDriver_ExclusiveUnderContention(t *testing.T) {
	repo, mock, redisClient := setupDriverRepo(t)
	ctx := context.Background()
	driverID := uuid.New()

	require.NoError(t, redisClient.SAdd(ctx, constants.KeyAvailableDrivers, driverID.String()))

	// Only the single SMove winner reaches the row update
	mock.ExpectExec(`UPDATE drivers`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	const contenders = 16
	var wins int64
	var wg sync.WaitGroup
	wg.Add(contenders)
	for i := 0; i < contenders; i++ {
		go func() {
			defer wg.Done()
			claimed, err := repo.ClaimDriver(ctx, driverID, uuid.New())
			assert.NoError(t, err)
			if claimed {
				atomic.AddInt64(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), wins)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseDriver_ReentersPoolWhenOnline(t *testing.T) {
	repo, mock, redisClient := setupDriverRepo(t)
	ctx := context.Background()
	driverID := uuid.New()

	require.NoError(t, redisClient.SAdd(ctx, constants.KeyBusyDrivers, driverID.String()))

	mock.ExpectQuery(`UPDATE drivers`).
		WillReturnRows(sqlmock.NewRows([]string{"is_online"}).AddRow(true))

	require.NoError(t, repo.ReleaseDriver(ctx, driverID))

	busy, err := redisClient.SIsMember(ctx, constants.KeyBusyDrivers, driverID.String())
	require.NoError(t, err)
	assert.False(t, busy)

	available, err := redisClient.SIsMember(ctx, constants.KeyAvailableDrivers, driverID.String())
	require.NoError(t, err)
	assert.True(t, available)
}

func TestReleaseDriver_Idempotent(t *testing.T) {
	repo, mock, redisClient := setupDriverRepo(t)
	ctx := context.Background()
	driverID := uuid.New()

	mock.ExpectQuery(`UPDATE drivers`).
		WillReturnRows(sqlmock.NewRows([]string{"is_online"}).AddRow(true))
	mock.ExpectQuery(`UPDATE drivers`).
		WillReturnRows(sqlmock.NewRows([]string{"is_online"}).AddRow(true))

	require.NoError(t, repo.ReleaseDriver(ctx, driverID))
	require.NoError(t, repo.ReleaseDriver(ctx, driverID))

	available, err := redisClient.SIsMember(ctx, constants.KeyAvailableDrivers, driverID.String())
	require.NoError(t, err)
	assert.True(t, available)
}

func TestReleaseDriver_StaysOutOfPoolWhenOffline(t *testing.T) {
	repo, mock, redisClient := setupDriverRepo(t)
	ctx := context.Background()
	driverID := uuid.New()

	mock.ExpectQuery(`UPDATE drivers`).
		WillReturnRows(sqlmock.NewRows([]string{"is_online"}).AddRow(false))

	require.NoError(t, repo.ReleaseDriver(ctx, driverID))

	available, err := redisClient.SIsMember(ctx, constants.KeyAvailableDrivers, driverID.String())
	require.NoError(t, err)
	assert.False(t, available)
}

func TestFindNearby_FiltersUnavailable(t *testing.T) {
	repo, _, redisClient := setupDriverRepo(t)
	ctx := context.Background()

	near := models.Coordinate{Latitude: -33.4489, Longitude: -70.6693}
	inPool := uuid.New()
	claimed := uuid.New()

	require.NoError(t, redisClient.SAdd(ctx, constants.KeyAvailableDrivers, inPool.String()))
	require.NoError(t, redisClient.GeoAdd(ctx, constants.KeyDriverGeo, -70.6700, -33.4490, inPool.String()))
	require.NoError(t, redisClient.GeoAdd(ctx, constants.KeyDriverGeo, -70.6710, -33.4495, claimed.String()))

	nearby, err := repo.FindNearby(ctx, near, 5.0, 10)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, inPool, nearby[0].DriverID)
	assert.InDelta(t, -33.4490, nearby[0].Location.Latitude, 0.001)
}

func TestStoreLocation_WritesHashAndGeoIndex(t *testing.T) {
	repo, _, redisClient := setupDriverRepo(t)
	ctx := context.Background()
	driverID := uuid.New()
	loc := models.Coordinate{Latitude: -33.4242, Longitude: -70.6118}

	require.NoError(t, repo.StoreLocation(ctx, driverID, loc))

	nearby, err := repo.FindNearby(ctx, loc, 1.0, 10)
	require.NoError(t, err)
	// Not yet in the available pool, so the search filters it out
	assert.Empty(t, nearby)

	require.NoError(t, redisClient.SAdd(ctx, constants.KeyAvailableDrivers, driverID.String()))
	nearby, err = repo.FindNearby(ctx, loc, 1.0, 10)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, driverID, nearby[0].DriverID)
}
