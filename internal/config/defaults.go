package config

import "time"

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Default values applied by [StructuredConfig.applyDefaults].
const (
	DefaultTokenIssuer       = "go-blog"
	DefaultTokenDuration     = 7 * 24 * time.Hour
	DefaultMinPasswordLength = 6
	DefaultPageLimit         = 10
	DefaultMaxPageLimit      = 100
	DefaultLogLevel          = "debug"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultQueryTimeout      = 5 * time.Second
	DefaultMaxOpenConns      = 10
	DefaultMaxIdleConns      = 4
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.MinPasswordLength == 0 {
		cfg.App.MinPasswordLength = DefaultMinPasswordLength
	}
	if cfg.App.DefaultPageLimit == 0 {
		cfg.App.DefaultPageLimit = DefaultPageLimit
	}
	if cfg.App.MaxPageLimit == 0 {
		cfg.App.MaxPageLimit = DefaultMaxPageLimit
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = EnvironmentDevelopment
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Storage.DB.QueryTimeout == 0 {
		cfg.Storage.DB.QueryTimeout = DefaultQueryTimeout
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = DefaultMaxOpenConns
	}
	if cfg.Storage.DB.MaxIdleConns == 0 {
		cfg.Storage.DB.MaxIdleConns = DefaultMaxIdleConns
	}
}
