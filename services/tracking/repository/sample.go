package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/vicholitvak/moai-logistics/internal/pkg/constants"
	"github.com/vicholitvak/moai-logistics/internal/pkg/database"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	"github.com/vicholitvak/moai-logistics/internal/utils"
)

// sampleTTL expires bookkeeping for drivers that stopped reporting
const sampleTTL = 10 * time.Minute

// TrackerRepo keeps per-driver sample bookkeeping in redis
type TrackerRepo struct {
	redisClient *database.RedisClient
}

// NewTrackerRepository creates a new tracker repository
func NewTrackerRepository(redisClient *database.RedisClient) *TrackerRepo {
	return &TrackerRepo{redisClient: redisClient}
}

// LastSampleAt returns the capture time of the newest accepted sample
func (r *TrackerRepo) LastSampleAt(ctx context.Context, driverID uuid.UUID) (time.Time, error) {
	key := fmt.Sprintf(constants.KeyLastSample, driverID.String())
	values, err := r.redisClient.HMGet(ctx, key, constants.FieldTimestamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read last sample: %w", err)
	}
	if len(values) == 0 || values[0] == "" {
		return time.Time{}, nil
	}

	nanos, err := strconv.ParseInt(values[0], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed sample timestamp %q: %w", values[0], err)
	}
	return time.Unix(0, nanos), nil
}

// RecordSample stores the sample's capture time and geohash cell
func (r *TrackerRepo) RecordSample(ctx context.Context, driverID uuid.UUID, loc models.Coordinate, capturedAt time.Time) error {
	key := fmt.Sprintf(constants.KeyLastSample, driverID.String())
	fields := map[string]interface{}{
		constants.FieldTimestamp: capturedAt.UnixNano(),
		constants.FieldGeohash:   utils.EncodeLocation(loc, utils.SamplePrecision),
	}
	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to record sample: %w", err)
	}
	return r.redisClient.Expire(ctx, key, sampleTTL)
}
