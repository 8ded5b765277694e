package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   vendor credentials, etc.), security settings
// - default: Values common across all environments (timeouts, engine cadence,
//   etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Firex   FirexConfig
	Notify  NotifyConfig
	Present PresentConfig
	Engine  EngineConfig
	Payment PaymentConfig
	Catalog CatalogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5*60*60 + 30*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// FirexConfig points at the number vendor's HTTP API.
type FirexConfig struct {
	APIKey  string        `envconfig:"FIREX_API_KEY" required:"true"`
	BaseURL string        `envconfig:"FIREX_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"FIREX_TIMEOUT" default:"15s"`
}

// NotifyConfig drives the side-channel Telegram notifier. Failures there are
// never fatal, so both values may be left empty to disable it.
type NotifyConfig struct {
	BotToken string        `envconfig:"NOTIFY_BOT_TOKEN" default:""`
	ChatID   int64         `envconfig:"NOTIFY_CHAT_ID" default:"0"`
	Timeout  time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"10s"`
}

// PresentConfig points at the messaging frontend that renders engine state
// for the end user.
type PresentConfig struct {
	BaseURL string        `envconfig:"PRESENT_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"PRESENT_TIMEOUT" default:"10s"`
}

// EngineConfig holds the order lifecycle cadence. All values are durations so
// tests can shrink the whole state machine to milliseconds.
type EngineConfig struct {
	CancelLockWindow time.Duration `envconfig:"ENGINE_CANCEL_LOCK_WINDOW" default:"2m"`
	SessionTTL       time.Duration `envconfig:"ENGINE_SESSION_TTL" default:"15m"`
	PollInterval     time.Duration `envconfig:"ENGINE_POLL_INTERVAL" default:"5s"`
	RedrawInterval   time.Duration `envconfig:"ENGINE_REDRAW_INTERVAL" default:"2s"`
}

type PaymentConfig struct {
	UPIID           string `envconfig:"UPI_ID" required:"true"`
	UPIName         string `envconfig:"UPI_NAME" required:"true"`
	NotePrefix      string `envconfig:"UPI_NOTE_PREFIX" default:"FIRE"`
	MinDepositPaise int64  `envconfig:"MIN_DEPOSIT_PAISE" default:"10000"`
	MinUTRLength    int    `envconfig:"MIN_UTR_LENGTH" default:"10"`
	ReferralPercent int    `envconfig:"REFERRAL_PERCENT" default:"5"`
}

type CatalogConfig struct {
	Path string `envconfig:"CATALOG_PATH" default:"catalog.json"`
}

type AdminConfig struct {
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func LoadAdminConfig() (AdminConfig, error) {
	var cfg AdminConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		return AdminConfig{}, fmt.Errorf("failed to process admin env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		Engine: EngineConfig{
			CancelLockWindow: 2 * time.Minute,
			SessionTTL:       15 * time.Minute,
			PollInterval:     5 * time.Second,
			RedrawInterval:   2 * time.Second,
		},
	}
}
