package models

import "time"

// Config represents the application configuration
type Config struct {
	Results  ResultsConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Game     GameConfig
	Table    TableConfig
}

// ResultsConfig selects where finished games are recorded
type ResultsConfig struct {
	Backend string
	Bucket  string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	PingTimeout time.Duration
}

// GameConfig holds memory game timings
type GameConfig struct {
	HoldPeriod   time.Duration
	TickInterval time.Duration
}

// TableConfig holds transactions table settings
type TableConfig struct {
	DatasetFile string
	Location    *time.Location
}
