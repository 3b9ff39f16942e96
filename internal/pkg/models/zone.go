package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BoundaryKind discriminates the two supported zone boundary shapes
type BoundaryKind string

const (
	BoundaryCircle  BoundaryKind = "circle"
	BoundaryPolygon BoundaryKind = "polygon"
)

// ZoneBoundary is a tagged representation of a zone's geographic extent.
// Exactly one of the circle fields or Vertices is meaningful, per Kind.
type ZoneBoundary struct {
	Kind    BoundaryKind `json:"kind"`
	Center  Coordinate   `json:"center,omitempty"`
	RadiusM float64      `json:"radius_m,omitempty"`
	// Vertices form a simple (non self-intersecting) polygon, in order.
	Vertices []Coordinate `json:"vertices,omitempty"`
}

// OperatingHours is a daily local-time window in "HH:MM" format.
// A window where Closes < Opens spans midnight.
type OperatingHours struct {
	Opens  string `json:"opens"`
	Closes string `json:"closes"`
}

// DeliveryZone represents a serviced delivery area. Zones may overlap;
// the lowest Priority value wins when resolving a point.
type DeliveryZone struct {
	ID                 uuid.UUID       `json:"zone_id"`
	Name               string          `json:"name"`
	Boundary           ZoneBoundary    `json:"boundary"`
	BaseFee            int64           `json:"base_fee"`
	Priority           int             `json:"priority"`
	IsActive           bool            `json:"is_active"`
	Hours              *OperatingHours `json:"operating_hours,omitempty"`
	MaxDeliveryTimeMin int             `json:"max_delivery_time_min,omitempty"` // 0 means no cap
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ZoneDTO flattens DeliveryZone for database operations. Polygon vertices
// are stored as parallel float8 arrays, circle fields as nullable columns.
type ZoneDTO struct {
	ID                 uuid.UUID       `db:"id"`
	Name               string          `db:"name"`
	BoundaryKind       string          `db:"boundary_kind"`
	CenterLatitude     float64         `db:"center_latitude"`
	CenterLongitude    float64         `db:"center_longitude"`
	RadiusM            float64         `db:"radius_m"`
	VertexLatitudes    pq.Float64Array `db:"vertex_latitudes"`
	VertexLongitudes   pq.Float64Array `db:"vertex_longitudes"`
	BaseFee            int64           `db:"base_fee"`
	Priority           int             `db:"priority"`
	IsActive           bool            `db:"is_active"`
	OpensAt            string          `db:"opens_at"`
	ClosesAt           string          `db:"closes_at"`
	MaxDeliveryTimeMin int             `db:"max_delivery_time_min"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

// ToDTO converts a DeliveryZone to its database representation
func (z *DeliveryZone) ToDTO() *ZoneDTO {
	dto := &ZoneDTO{
		ID:                 z.ID,
		Name:               z.Name,
		BoundaryKind:       string(z.Boundary.Kind),
		CenterLatitude:     z.Boundary.Center.Latitude,
		CenterLongitude:    z.Boundary.Center.Longitude,
		RadiusM:            z.Boundary.RadiusM,
		BaseFee:            z.BaseFee,
		Priority:           z.Priority,
		IsActive:           z.IsActive,
		MaxDeliveryTimeMin: z.MaxDeliveryTimeMin,
		CreatedAt:          z.CreatedAt,
		UpdatedAt:          z.UpdatedAt,
	}

	for _, v := range z.Boundary.Vertices {
		dto.VertexLatitudes = append(dto.VertexLatitudes, v.Latitude)
		dto.VertexLongitudes = append(dto.VertexLongitudes, v.Longitude)
	}

	if z.Hours != nil {
		dto.OpensAt = z.Hours.Opens
		dto.ClosesAt = z.Hours.Closes
	}

	return dto
}

// ToZone converts a ZoneDTO back to the domain model
func (dto *ZoneDTO) ToZone() *DeliveryZone {
	zone := &DeliveryZone{
		ID:   dto.ID,
		Name: dto.Name,
		Boundary: ZoneBoundary{
			Kind: BoundaryKind(dto.BoundaryKind),
		},
		BaseFee:            dto.BaseFee,
		Priority:           dto.Priority,
		IsActive:           dto.IsActive,
		MaxDeliveryTimeMin: dto.MaxDeliveryTimeMin,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	}

	switch zone.Boundary.Kind {
	case BoundaryCircle:
		zone.Boundary.Center = Coordinate{
			Latitude:  dto.CenterLatitude,
			Longitude: dto.CenterLongitude,
		}
		zone.Boundary.RadiusM = dto.RadiusM
	case BoundaryPolygon:
		for i := range dto.VertexLatitudes {
			zone.Boundary.Vertices = append(zone.Boundary.Vertices, Coordinate{
				Latitude:  dto.VertexLatitudes[i],
				Longitude: dto.VertexLongitudes[i],
			})
		}
	}

	if dto.OpensAt != "" && dto.ClosesAt != "" {
		zone.Hours = &OperatingHours{Opens: dto.OpensAt, Closes: dto.ClosesAt}
	}

	return zone
}
