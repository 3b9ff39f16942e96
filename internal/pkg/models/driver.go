package models

import (
	"time"

	"github.com/google/uuid"
)

// VehicleType represents the transport a driver delivers with
type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleBicycle    VehicleType = "bicycle"
)

// DriverRecord represents a driver's dispatch state.
// Invariant: IsAvailable is true exactly when CurrentOrderID is unset.
type DriverRecord struct {
	DriverID        uuid.UUID     `json:"driver_id"`
	IsOnline        bool          `json:"is_online"`
	IsAvailable     bool          `json:"is_available"`
	VehicleType     VehicleType   `json:"vehicle_type"`
	CurrentOrderID  uuid.NullUUID `json:"current_order_id,omitempty"`
	CurrentLocation *Coordinate   `json:"current_location,omitempty"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// NearbyDriver is a driver candidate returned by an availability search,
// ordered by distance from the search point.
type NearbyDriver struct {
	DriverID    uuid.UUID   `json:"driver_id"`
	Location    Coordinate  `json:"location"`
	DistanceKm  float64     `json:"distance_km"`
	VehicleType VehicleType `json:"vehicle_type"`
}

// DriverDTO flattens DriverRecord for database operations
type DriverDTO struct {
	ID             uuid.UUID     `db:"id"`
	IsOnline       bool          `db:"is_online"`
	IsAvailable    bool          `db:"is_available"`
	VehicleType    string        `db:"vehicle_type"`
	CurrentOrderID uuid.NullUUID `db:"current_order_id"`
	UpdatedAt      time.Time     `db:"updated_at"`
}

// ToRecord converts a DriverDTO to the domain model
func (dto *DriverDTO) ToRecord() *DriverRecord {
	return &DriverRecord{
		DriverID:       dto.ID,
		IsOnline:       dto.IsOnline,
		IsAvailable:    dto.IsAvailable,
		VehicleType:    VehicleType(dto.VehicleType),
		CurrentOrderID: dto.CurrentOrderID,
		UpdatedAt:      dto.UpdatedAt,
	}
}
