package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, etc.), security settings
// - default: Values common across all environments (timezone, TTLs, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Cache   CacheConfig
	Content ContentConfig
	Retry   RetryConfig
	DB      DBConfig
	Redis   RedisConfig
	Auth    AuthConfig
	Ack     AckConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type BackendConfig struct {
	BaseURL   string        `envconfig:"BACKEND_URL" required:"true"`
	Timeout   time.Duration `envconfig:"BACKEND_TIMEOUT" default:"15s"`
	RateLimit float64       `envconfig:"BACKEND_RATE_LIMIT" default:"20"` // requests per second, 0 disables
	RateBurst int           `envconfig:"BACKEND_RATE_BURST" default:"10"`
}

// Driver selects the durable store behind the cache: memory | postgres | redis.
type CacheConfig struct {
	Driver       string `envconfig:"CACHE_DRIVER" default:"memory"`
	Namespace    string `envconfig:"CACHE_NAMESPACE" default:"hotel-frontend"`
	ClearOnStart bool   `envconfig:"CACHE_CLEAR_ON_START" default:"true"`
	WarmOnStart  bool   `envconfig:"CACHE_WARM_ON_START" default:"false"`
}

type ContentConfig struct {
	HomepageTTL   time.Duration `envconfig:"CONTENT_TTL_HOMEPAGE" default:"30m"`
	OffersTTL     time.Duration `envconfig:"CONTENT_TTL_OFFERS" default:"15m"`
	AboutPageTTL  time.Duration `envconfig:"CONTENT_TTL_ABOUT_PAGE" default:"60m"`
	FacilitiesTTL time.Duration `envconfig:"CONTENT_TTL_FACILITIES" default:"45m"`
	GalleryTTL    time.Duration `envconfig:"CONTENT_TTL_GALLERY" default:"60m"`
	RoomsTTL      time.Duration `envconfig:"CONTENT_TTL_ROOMS" default:"30m"`
	MembershipTTL time.Duration `envconfig:"CONTENT_TTL_MEMBERSHIP" default:"60m"`
}

type RetryConfig struct {
	Attempts  int           `envconfig:"RETRY_ATTEMPTS" default:"3"`
	BaseDelay time.Duration `envconfig:"RETRY_BASE_DELAY" default:"500ms"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"hotel_frontend"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// AdminSecret signs tokens for the cache admin routes. Left empty, those
// routes reject every request.
type AuthConfig struct {
	AdminSecret string `envconfig:"ADMIN_JWT_SECRET" default:""`
}

// AckConfig is the hotel identity printed on acknowledgement documents.
type AckConfig struct {
	HotelName string `envconfig:"ACK_HOTEL_NAME" default:"Silver Arcade Premier"`
	Address   string `envconfig:"ACK_ADDRESS" default:"Charchpally, ITI More, Malda, West Bengal – 732101"`
	Phone     string `envconfig:"ACK_PHONE" default:"+7719381841"`
	Email     string `envconfig:"ACK_EMAIL" default:"mdshabib1993@gmail.com"`
	LogoPath  string `envconfig:"ACK_LOGO_PATH" default:""`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition,X-Cache"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:""` // json | text, empty follows GIN_MODE
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadSection fills one config section, for commands that do not need the
// server's required settings.
func LoadSection[T any]() (T, error) {
	var section T
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return section, fmt.Errorf("failed to load .env file: %w", err)
	}
	if err := envconfig.Process("", &section); err != nil {
		return section, fmt.Errorf("failed to process env config: %w", err)
	}
	return section, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Backend: BackendConfig{
			BaseURL:   "http://localhost:5000/api",
			Timeout:   5 * time.Second,
			RateLimit: 0,
			RateBurst: 1,
		},
		Cache: CacheConfig{
			Driver:       "memory",
			Namespace:    "test",
			ClearOnStart: true,
		},
		Content: ContentConfig{
			HomepageTTL:   30 * time.Minute,
			OffersTTL:     15 * time.Minute,
			AboutPageTTL:  60 * time.Minute,
			FacilitiesTTL: 45 * time.Minute,
			GalleryTTL:    60 * time.Minute,
			RoomsTTL:      30 * time.Minute,
			MembershipTTL: 60 * time.Minute,
		},
		Retry: RetryConfig{
			Attempts:  3,
			BaseDelay: 500 * time.Millisecond,
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
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Auth: AuthConfig{
			AdminSecret: "test-admin-secret",
		},
		Ack: AckConfig{
			HotelName: "Silver Arcade Premier",
			Address:   "Charchpally, ITI More, Malda, West Bengal – 732101",
			Phone:     "+7719381841",
			Email:     "mdshabib1993@gmail.com",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Idempotency-Key"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Cache"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
	}
}
