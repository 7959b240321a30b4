package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProjectionPolicyAll     = "all"
	ProjectionPolicySoonest = "soonest"

	AdjustmentDirectionIncrease = "increase"
	AdjustmentDirectionDecrease = "decrease"
)

var (
	ErrInvalidTrendWindow          = errors.New("TREND_WINDOW_DAYS must be positive")
	ErrInvalidAdjustmentDirection  = errors.New("ADJUSTMENT_DEFAULT_DIRECTION must be increase or decrease")
	ErrInvalidProjectionPolicy     = errors.New("PORTFOLIO_PROJECTION_POLICY must be all or soonest")
	ErrInvalidMaxParallel          = errors.New("ANALYTICS_MAX_PARALLEL must be positive")
	ErrMissingPublicKeyProduction  = errors.New("JWT_PUBLIC_KEY must be set in production environments")
	ErrInvalidSnapshotIsolationKey = errors.New("LEDGER_SNAPSHOT_ISOLATION must be repeatable_read or default")
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Security  SecurityConfig
	Analytics AnalyticsConfig
	LogLevel  slog.Level
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host              string
	Port              string
	User              string
	Password          string
	Name              string
	SSLMode           string
	MaxConnections    int
	MaxIdleConns      int
	ConnMaxLifetime   time.Duration
	SnapshotIsolation string
	AutoMigrate       bool
	SeedDatabase      bool

	// consecutive ledger read failures before reports fail fast, and for how long
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
}

// JWTConfig verifies bearer tokens. PrivateKey is only populated in development
// where a keypair is generated on startup.
type JWTConfig struct {
	AccessTokenDuration time.Duration
	PrivateKey          *rsa.PrivateKey
	PublicKey           *rsa.PublicKey
	Issuer              string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// AnalyticsConfig tunes the debt analytics engine
type AnalyticsConfig struct {
	TrendWindowDays            int
	AdjustmentDefaultDirection string
	PortfolioProjectionPolicy  string
	MaxParallel                int
}

func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:              getEnv("DB_HOST", "localhost"),
			Port:              getEnv("DB_PORT", "5432"),
			User:              getEnv("DB_USER", "budget_user"),
			Password:          getEnv("DB_PASSWORD", "budget_password"),
			Name:              getEnv("DB_NAME", "budget_db"),
			SSLMode:           getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:    getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:      getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime:   getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			SnapshotIsolation: strings.ToLower(getEnv("LEDGER_SNAPSHOT_ISOLATION", "repeatable_read")),
			AutoMigrate:       getBoolEnv("AUTO_MIGRATE", false),
			SeedDatabase:      getBoolEnv("SEED_DATABASE", false),

			BreakerMaxFailures:  getIntEnv("LEDGER_BREAKER_MAX_FAILURES", 5),
			BreakerResetTimeout: getDurationEnv("LEDGER_BREAKER_RESET_TIMEOUT", 30*time.Second),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
		JWT: JWTConfig{
			AccessTokenDuration: getDurationEnv("JWT_ACCESS_TOKEN_DURATION", 24*time.Hour),
			Issuer:              getEnv("JWT_ISSUER", "budget-reduction-api"),
		},
		Analytics: AnalyticsConfig{
			TrendWindowDays:            getIntEnv("TREND_WINDOW_DAYS", 30),
			AdjustmentDefaultDirection: strings.ToLower(getEnv("ADJUSTMENT_DEFAULT_DIRECTION", AdjustmentDirectionIncrease)),
			PortfolioProjectionPolicy:  strings.ToLower(getEnv("PORTFOLIO_PROJECTION_POLICY", ProjectionPolicyAll)),
			MaxParallel:                getIntEnv("ANALYTICS_MAX_PARALLEL", 4),
		},
		LogLevel: getLogLevelEnv("LOG_LEVEL", slog.LevelInfo),
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if err := config.Analytics.Validate(); err != nil {
		return nil, err
	}
	if err := config.Database.Validate(); err != nil {
		return nil, err
	}

	var err error
	config.JWT.PrivateKey, config.JWT.PublicKey, err = config.loadJWTKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to load RSA keys: %w", err)
	}

	return config, nil
}

// Validate rejects analytics settings the engine cannot honor
func (c *AnalyticsConfig) Validate() error {
	if c.TrendWindowDays <= 0 {
		return ErrInvalidTrendWindow
	}
	switch c.AdjustmentDefaultDirection {
	case AdjustmentDirectionIncrease, AdjustmentDirectionDecrease:
	default:
		return ErrInvalidAdjustmentDirection
	}
	switch c.PortfolioProjectionPolicy {
	case ProjectionPolicyAll, ProjectionPolicySoonest:
	default:
		return ErrInvalidProjectionPolicy
	}
	if c.MaxParallel <= 0 {
		return ErrInvalidMaxParallel
	}
	return nil
}

// TrendWindow is the reporting window as a duration
func (c *AnalyticsConfig) TrendWindow() time.Duration {
	return time.Duration(c.TrendWindowDays) * 24 * time.Hour
}

func (c *DatabaseConfig) Validate() error {
	switch c.SnapshotIsolation {
	case "repeatable_read", "default":
		return nil
	default:
		return ErrInvalidSnapshotIsolationKey
	}
}

// UseRepeatableRead reports whether ledger snapshots ask the driver for repeatable read isolation
func (c *DatabaseConfig) UseRepeatableRead() bool {
	return c.SnapshotIsolation == "repeatable_read"
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getLogLevelEnv(key string, defaultValue slog.Level) slog.Level {
	if value := os.Getenv(key); value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return defaultValue
}

// loadJWTKeys loads the RSA public key used to verify bearer tokens
// Priority order:
// 1. JWT_PUBLIC_KEY (base64 PEM) is used in every environment; JWT_PRIVATE_KEY is optional
// 2. Production without JWT_PUBLIC_KEY fails
// 3. Other environments generate a keypair so development tokens can be minted locally
func (c *Config) loadJWTKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	publicKeyB64 := os.Getenv("JWT_PUBLIC_KEY")
	privateKeyB64 := os.Getenv("JWT_PRIVATE_KEY")

	if publicKeyB64 != "" {
		slog.Info("loading RSA public key from environment")
		publicKey, err := decodePublicKey(publicKeyB64)
		if err != nil {
			return nil, nil, err
		}
		if privateKeyB64 == "" {
			return nil, publicKey, nil
		}
		privateKey, err := decodePrivateKey(privateKeyB64)
		if err != nil {
			return nil, nil, err
		}
		return privateKey, publicKey, nil
	}

	if c.IsProduction() {
		return nil, nil, ErrMissingPublicKeyProduction
	}

	slog.Warn("JWT_PUBLIC_KEY not set, generating an ephemeral RSA keypair")
	return GenerateRSAKeyPair()
}

func decodePublicKey(b64 string) (*rsa.PublicKey, error) {
	pemBytes, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JWT_PUBLIC_KEY: %w", err)
	}
	publicKey, err := loadRSAPublicKey(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	return publicKey, nil
}

func decodePrivateKey(b64 string) (*rsa.PrivateKey, error) {
	pemBytes, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JWT_PRIVATE_KEY: %w", err)
	}
	privateKey, err := loadRSAPrivateKey(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return privateKey, nil
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, defaulting to all origins")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// loadRSAPrivateKey loads an RSA private key from PEM format
func loadRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}

		privateKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("not an RSA private key")
		}

		return privateKey, nil
	}

	return privateKey, nil
}

// loadRSAPublicKey loads an RSA public key from PEM format
func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
