package constants

// Redis key formats
const (
	// Driver directory
	KeyDriverLocation   = "driver:location:%s" // Format: driver:location:{driver_id}
	KeyDriverGeo        = "driver:geo"         // Geo set of available driver locations
	KeyAvailableDrivers = "drivers:available"  // Set of available driver IDs
	KeyBusyDrivers      = "drivers:busy"       // Set of drivers claimed by an order

	// Zone registry
	KeyActiveZones = "zones:active" // Cached JSON snapshot of active zones

	// Location tracker
	KeyLastSample = "driver:sample:%s" // Format: driver:sample:{driver_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldGeohash   = "gh"
	FieldOrderID   = "order_id"
)
