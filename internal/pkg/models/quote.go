package models

import "github.com/google/uuid"

// FeeQuote is an ephemeral fee and ETA estimate for a pickup/dropoff pair.
// It is never persisted as authoritative; an order stores only the snapshot
// accepted at assignment time.
type FeeQuote struct {
	ZoneID           uuid.UUID `json:"zone_id"`
	ZoneName         string    `json:"zone_name"`
	BaseFee          int64     `json:"base_fee"`
	DistanceFee      int64     `json:"distance_fee"`
	ZoneFee          int64     `json:"zone_fee"`
	TotalFee         int64     `json:"total_fee"`
	DistanceKm       float64   `json:"distance_km"`
	EstimatedMinutes int       `json:"estimated_minutes"`
}
