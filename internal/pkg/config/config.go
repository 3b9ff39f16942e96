package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
)

// InitConfig loads configuration from an env file (local environments)
// and then from environment variables.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "moai-logistics")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "postgres")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 0)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Pricing config (integer CLP units)
	configs.Pricing.BaseFee = GetEnvAsInt64("PRICING_BASE_FEE", 1500)
	configs.Pricing.PerKmRate = GetEnvAsInt64("PRICING_PER_KM_RATE", 500)
	configs.Pricing.FreeThresholdKm = GetEnvAsFloat("PRICING_FREE_THRESHOLD_KM", 2.0)
	configs.Pricing.PrepTimeMinutes = GetEnvAsInt("PRICING_PREP_TIME_MINUTES", 15)
	configs.Pricing.BaseSpeedKmh = GetEnvAsFloat("PRICING_BASE_SPEED_KMH", 30.0)
	configs.Pricing.MinEtaMinutes = GetEnvAsInt("PRICING_MIN_ETA_MINUTES", 15)

	// Traffic config
	configs.Traffic.MorningRushStart = GetEnvAsInt("TRAFFIC_MORNING_RUSH_START", 7)
	configs.Traffic.MorningRushEnd = GetEnvAsInt("TRAFFIC_MORNING_RUSH_END", 9)
	configs.Traffic.EveningRushStart = GetEnvAsInt("TRAFFIC_EVENING_RUSH_START", 18)
	configs.Traffic.EveningRushEnd = GetEnvAsInt("TRAFFIC_EVENING_RUSH_END", 20)
	configs.Traffic.MiddayStart = GetEnvAsInt("TRAFFIC_MIDDAY_START", 12)
	configs.Traffic.MiddayEnd = GetEnvAsInt("TRAFFIC_MIDDAY_END", 14)
	configs.Traffic.RushMultiplier = GetEnvAsFloat("TRAFFIC_RUSH_MULTIPLIER", 1.5)
	configs.Traffic.MiddayMultiplier = GetEnvAsFloat("TRAFFIC_MIDDAY_MULTIPLIER", 1.2)

	// Assignment config
	configs.Assignment.SearchRadiusKm = GetEnvAsFloat("ASSIGNMENT_SEARCH_RADIUS_KM", 5.0)
	configs.Assignment.MaxCandidates = GetEnvAsInt("ASSIGNMENT_MAX_CANDIDATES", 10)
	configs.Assignment.PollIntervalSeconds = GetEnvAsInt("ASSIGNMENT_POLL_INTERVAL_SECONDS", 30)

	// Tracking config
	configs.Tracking.LocationTTLHours = GetEnvAsInt("TRACKING_LOCATION_TTL_HOURS", 24)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %f", key, defaultValue)
		return defaultValue
	}

	return value
}
