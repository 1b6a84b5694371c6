package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeout, etc.), standard settings
// Optional exchange settings (reminder times, custom messages, location text)
// default to empty and are never fatal when absent.
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Exchange ExchangeConfig
	Mail     MailConfig
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
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// ExchangeConfig carries the event parameters: the two deadlines, the
// daily reminder times and the one-off custom messages for the last day.
type ExchangeConfig struct {
	TeamName           string   `envconfig:"EXCHANGE_TEAM_NAME" default:"Secret Santa"`
	SupportEmail       string   `envconfig:"EXCHANGE_SUPPORT_EMAIL" default:""`
	AssignmentDeadline string   `envconfig:"EXCHANGE_ASSIGNMENT_DEADLINE" required:"true"`
	GiftDeadline       string   `envconfig:"EXCHANGE_GIFT_DEADLINE" required:"true"`
	RecommendedPrice   int      `envconfig:"EXCHANGE_RECOMMENDED_PRICE" default:"0"`
	LocationText       string   `envconfig:"EXCHANGE_LOCATION_TEXT" default:""`
	ReminderTimes      []string `envconfig:"EXCHANGE_REMINDER_TIMES" default:""`
	// JSON list of {"time":"HH:MM","title":...,"message":...} records.
	CustomMessages string `envconfig:"EXCHANGE_CUSTOM_MESSAGES" default:""`

	AdminName      string `envconfig:"EXCHANGE_ADMIN_NAME" default:""`
	AdminEmail     string `envconfig:"EXCHANGE_ADMIN_EMAIL" default:""`
	AdminAccessKey string `envconfig:"EXCHANGE_ADMIN_ACCESS_KEY" default:""`
}

type MailConfig struct {
	CheckInterval time.Duration `envconfig:"MAIL_CHECK_INTERVAL" default:"0"`
	BatchSize     int           `envconfig:"MAIL_BATCH_SIZE" default:"5"`
	TemplateFile  string        `envconfig:"MAIL_TEMPLATE_FILE" default:""`
	From          string        `envconfig:"MAIL_FROM" default:""`
	SMTPHost      string        `envconfig:"MAIL_SMTP_HOST" default:""`
	SMTPPort      int           `envconfig:"MAIL_SMTP_PORT" default:"587"`
	SMTPUser      string        `envconfig:"MAIL_SMTP_USER" default:""`
	SMTPPassword  string        `envconfig:"MAIL_SMTP_PASSWORD" default:""`
	UseTLS        bool          `envconfig:"MAIL_SMTP_USE_TLS" default:"true"`
}

// CustomMessage is an admin-configured one-off reminder for the last day.
type CustomMessage struct {
	Time    string `json:"time"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

const deadlineLayout = "2006-01-02 15:04"

func (c *ExchangeConfig) AssignmentDeadlineAt() (time.Time, error) {
	return time.ParseInLocation(deadlineLayout, c.AssignmentDeadline, time.Local)
}

func (c *ExchangeConfig) GiftDeadlineAt() (time.Time, error) {
	return time.ParseInLocation(deadlineLayout, c.GiftDeadline, time.Local)
}

// ParsedReminderTimes turns the configured "HH:MM" values into
// durations since midnight. An empty setting yields an empty list.
func (c *ExchangeConfig) ParsedReminderTimes() ([]time.Duration, error) {
	times := make([]time.Duration, 0, len(c.ReminderTimes))
	for _, raw := range c.ReminderTimes {
		if raw == "" {
			continue
		}
		d, err := ParseTimeOfDay(raw)
		if err != nil {
			return nil, err
		}
		times = append(times, d)
	}
	return times, nil
}

func (c *ExchangeConfig) ParsedCustomMessages() ([]CustomMessage, error) {
	if c.CustomMessages == "" {
		return nil, nil
	}
	var messages []CustomMessage
	if err := json.Unmarshal([]byte(c.CustomMessages), &messages); err != nil {
		return nil, fmt.Errorf("failed to parse EXCHANGE_CUSTOM_MESSAGES: %w", err)
	}
	return messages, nil
}

// ParseTimeOfDay parses an "HH:MM" value into a duration since midnight.
func ParseTimeOfDay(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
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
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		Exchange: ExchangeConfig{
			TeamName:           "Test Team",
			AssignmentDeadline: "2026-12-10 20:00",
			GiftDeadline:       "2026-12-24 18:00",
			ReminderTimes:      []string{"09:00"},
		},
	}
}
