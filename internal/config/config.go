package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Freeeeeet/tutoria_notifier/internal/formatting"
	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres  = "postgres"
	StoreDriverFirestore = "firestore"

	PushDriverFCM      = "fcm"
	PushDriverTelegram = "telegram"
	PushDriverLog      = "log"

	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Environment string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	StoreDriver string `mapstructure:"STORE_DRIVER"`
	DBDSN       string `mapstructure:"DB_DSN"`

	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	PushDriver       string `mapstructure:"PUSH_DRIVER"`
	TelegramToken    string `mapstructure:"TELEGRAM_TOKEN"`
	AndroidChannelID string `mapstructure:"ANDROID_CHANNEL_ID"`

	HTTPPort  int    `mapstructure:"HTTP_PORT"`
	JWTSecret string `mapstructure:"JWT_SECRET"`

	Timezone *time.Location `mapstructure:"TIMEZONE"`

	ReminderDayInterval  time.Duration `mapstructure:"REMINDER_DAY_INTERVAL"`
	ReminderSoonInterval time.Duration `mapstructure:"REMINDER_SOON_INTERVAL"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromEnv(os.Getenv)
}

// FromEnv собирает конфиг из произвольного источника переменных
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Environment:             orDefault(getenv("ENV"), EnvDevelopment),
		LogLevel:                getenv("LOG_LEVEL"),
		StoreDriver:             orDefault(getenv("STORE_DRIVER"), StoreDriverPostgres),
		DBDSN:                   getenv("DB_DSN"),
		FirebaseProjectID:       getenv("FIREBASE_PROJECT_ID"),
		FirebaseCredentialsFile: getenv("FIREBASE_CREDENTIALS_FILE"),
		PushDriver:              orDefault(getenv("PUSH_DRIVER"), PushDriverLog),
		TelegramToken:           getenv("TELEGRAM_TOKEN"),
		AndroidChannelID:        orDefault(getenv("ANDROID_CHANNEL_ID"), "tutoring_app_channel"),
		JWTSecret:               getenv("JWT_SECRET"),
	}

	var err error
	if cfg.HTTPPort, err = intVar(getenv, "HTTP_PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.ReminderDayInterval, err = durationVar(getenv, "REMINDER_DAY_INTERVAL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.ReminderSoonInterval, err = durationVar(getenv, "REMINDER_SOON_INTERVAL", 30*time.Minute); err != nil {
		return nil, err
	}

	tz := orDefault(getenv("TIMEZONE"), formatting.DefaultTimezone)
	if cfg.Timezone, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("TIMEZONE %q: %w", tz, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DBDSN == "" {
			errs = append(errs, errors.New("DB_DSN is required but not set"))
		}
	case StoreDriverFirestore:
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}

	switch c.PushDriver {
	case PushDriverFCM, PushDriverLog:
	case PushDriverTelegram:
		if c.TelegramToken == "" {
			errs = append(errs, errors.New("TELEGRAM_TOKEN is required for telegram push driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown PUSH_DRIVER %q", c.PushDriver))
	}

	if c.JWTSecret == "" && !c.IsDevelopment() {
		errs = append(errs, errors.New("JWT_SECRET is required outside development"))
	}

	if c.ReminderDayInterval <= 0 || c.ReminderSoonInterval <= 0 {
		errs = append(errs, errors.New("reminder intervals must be positive"))
	}

	return errors.Join(errs...)
}

// NeedsFirebase нужен ли Firebase app (Firestore или FCM)
func (c *Config) NeedsFirebase() bool {
	return c.StoreDriver == StoreDriverFirestore || c.PushDriver == PushDriverFCM
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func intVar(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func durationVar(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
