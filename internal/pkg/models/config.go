package models

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NATS       NATSConfig
	JWT        JWTConfig
	Pricing    PricingConfig
	Traffic    TrafficConfig
	Assignment AssignmentConfig
	Tracking   TrackingConfig
	NewRelic   NewRelicConfig
	Logger     LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// PricingConfig contains fee computation configuration.
// Fees are integer currency units (CLP); distance fees round up.
type PricingConfig struct {
	BaseFee         int64   `json:"base_fee"`
	PerKmRate       int64   `json:"per_km_rate"`
	FreeThresholdKm float64 `json:"free_threshold_km"`
	PrepTimeMinutes int     `json:"prep_time_minutes"`
	BaseSpeedKmh    float64 `json:"base_speed_kmh"`
	MinEtaMinutes   int     `json:"min_eta_minutes"`
}

// TrafficConfig defines the rush-hour windows applied to the base speed.
// Hours are local 24h clock; a window covers [start, end).
type TrafficConfig struct {
	MorningRushStart int     `json:"morning_rush_start"`
	MorningRushEnd   int     `json:"morning_rush_end"`
	EveningRushStart int     `json:"evening_rush_start"`
	EveningRushEnd   int     `json:"evening_rush_end"`
	MiddayStart      int     `json:"midday_start"`
	MiddayEnd        int     `json:"midday_end"`
	RushMultiplier   float64 `json:"rush_multiplier"`
	MiddayMultiplier float64 `json:"midday_multiplier"`
}

// AssignmentConfig contains dispatch planner configuration
type AssignmentConfig struct {
	SearchRadiusKm      float64 `json:"search_radius_km"`
	MaxCandidates       int     `json:"max_candidates"`
	PollIntervalSeconds int     `json:"poll_interval_seconds"`
}

// TrackingConfig contains location tracker configuration
type TrackingConfig struct {
	LocationTTLHours int `json:"location_ttl_hours"`
}

// NewRelicConfig contains New Relic observability configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
