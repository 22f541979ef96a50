package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("invalid config")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Database  DatabaseConfig  `toml:"database"`
	Backend   BackendConfig   `toml:"backend"`
	Schedule  ScheduleConfig  `toml:"schedule"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	Notifier  NotifierConfig  `toml:"notifier"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig логирование
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig Prometheus метрики
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig Postgres для журнала прогонов. Без БД журнал отключен.
type DatabaseConfig struct {
	Enabled              bool   `toml:"enabled"`
	Host                 string `toml:"host"`
	Port                 int    `toml:"port"`
	User                 string `toml:"user"`
	Password             string `toml:"password"`
	DBName               string `toml:"dbname"`
	SSLMode              string `toml:"sslmode"`
	MaxOpenConns         int    `toml:"max_open_conns"`
	MaxIdleConns         int    `toml:"max_idle_conns"`
	ConnMaxLifetime      int    `toml:"conn_max_lifetime"`
	JournalRetentionDays int    `toml:"journal_retention_days"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// BackendConfig бэкенд салона
type BackendConfig struct {
	URL     string  `toml:"url"`
	Timeout int     `toml:"timeout"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// TemplateConfig шаблон дня для дозаполнения окна
type TemplateConfig struct {
	Start      string `toml:"start"`
	End        string `toml:"end"`
	BreakStart string `toml:"break_start"`
	BreakEnd   string `toml:"break_end"`
	Workforce  int    `toml:"workforce"`
}

// ScheduleConfig окно расписания
type ScheduleConfig struct {
	Policy              string         `toml:"policy"`
	WindowDays          int            `toml:"window_days"`
	HistoryLookbackDays int            `toml:"history_lookback_days"`
	Timezone            string         `toml:"timezone"`
	BulkBackfill        bool           `toml:"bulk_backfill"`
	Template            TemplateConfig `toml:"template"`
}

// SchedulerConfig ежедневное обновление окон
type SchedulerConfig struct {
	Enabled       bool     `toml:"enabled"`
	Spec          string   `toml:"spec"`
	Tenants       []string `toml:"tenants"`
	RunOnStart    bool     `toml:"run_on_start"`
	TenantTimeout int      `toml:"tenant_timeout"`
}

// NotifierConfig очередь detect-affected
type NotifierConfig struct {
	QueueSize int `toml:"queue_size"`
	Timeout   int `toml:"timeout"`
}

// Load читает .env (если есть), TOML файл, применяет значения по умолчанию,
// переменные окружения и проверяет результат.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 15)
	setDefault(&c.Server.WriteTimeout, 15)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 30)

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "schedule-service"
	}

	setDefault(&c.Database.Port, 5432)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	setDefault(&c.Database.MaxOpenConns, 10)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)

	setDefault(&c.Backend.Timeout, 10)

	setDefault(&c.Schedule.WindowDays, domain.DefaultWindowDays)
	setDefault(&c.Schedule.HistoryLookbackDays, domain.DefaultHistoryLookbackDays)
	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = "UTC"
	}
	if c.Schedule.Template.Start == "" && c.Schedule.Template.End == "" {
		c.Schedule.Template.Start = domain.DefaultTemplateStart.String()
		c.Schedule.Template.End = domain.DefaultTemplateEnd.String()
		if c.Schedule.Template.Workforce == 0 {
			c.Schedule.Template.Workforce = domain.DefaultTemplateWorkforce
		}
	}

	if c.Scheduler.Spec == "" {
		c.Scheduler.Spec = "5 0 * * *"
	}
	setDefault(&c.Scheduler.TenantTimeout, 120)

	setDefault(&c.Notifier.QueueSize, 100)
	setDefault(&c.Notifier.Timeout, 10)
}

// applyEnv переопределения из окружения
func (c *Config) applyEnv() error {
	if v := os.Getenv("BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("SCHEDULE_POLICY"); v != "" {
		c.Schedule.Policy = v
	}
	if v := os.Getenv("SCHEDULER_TENANTS"); v != "" {
		c.Scheduler.Tenants = splitList(v)
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q is not a number", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if strings.TrimSpace(c.Backend.URL) == "" {
		return fmt.Errorf("%w: backend.url is required", ErrInvalidConfig)
	}
	if c.Backend.RPS < 0 {
		return fmt.Errorf("%w: backend.rps must not be negative", ErrInvalidConfig)
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}
	if c.Database.Enabled && (c.Database.Host == "" || c.Database.DBName == "") {
		return fmt.Errorf("%w: database.host and database.dbname are required when the database is enabled", ErrInvalidConfig)
	}

	if _, err := c.Schedule.ParsedPolicy(); err != nil {
		return fmt.Errorf("%w: schedule.policy: %v", ErrInvalidConfig, err)
	}
	if c.Schedule.WindowDays < domain.MinWindowDays || c.Schedule.WindowDays > domain.MaxWindowDays {
		return fmt.Errorf("%w: schedule.window_days must be between %d and %d", ErrInvalidConfig, domain.MinWindowDays, domain.MaxWindowDays)
	}
	if _, err := c.Schedule.Location(); err != nil {
		return fmt.Errorf("%w: schedule.timezone: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Schedule.TemplateSchedule(); err != nil {
		return fmt.Errorf("%w: schedule.template: %v", ErrInvalidConfig, err)
	}

	if c.Scheduler.Enabled && len(c.Scheduler.Tenants) == 0 {
		return fmt.Errorf("%w: scheduler.tenants is empty", ErrInvalidConfig)
	}

	return nil
}

// ParsedPolicy политика обслуживания окна
func (s ScheduleConfig) ParsedPolicy() (domain.Policy, error) {
	return domain.ParsePolicy(s.Policy)
}

// Location часовой пояс салона
func (s ScheduleConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// TemplateSchedule шаблон дня, проверенный на корректность
func (s ScheduleConfig) TemplateSchedule() (domain.Schedule, error) {
	tmpl := domain.Schedule{
		Start:      timeOrNil(s.Template.Start),
		End:        timeOrNil(s.Template.End),
		BreakStart: timeOrNil(s.Template.BreakStart),
		BreakEnd:   timeOrNil(s.Template.BreakEnd),
		Workforce:  s.Template.Workforce,
	}

	// проверяем на произвольной дате
	probe := tmpl.ForDate("config", types.MustParseDate("2024-01-01"))
	if err := probe.Validate(); err != nil {
		return domain.Schedule{}, err
	}
	return tmpl, nil
}

func timeOrNil(s string) *types.TimeString {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	t := types.TimeString(strings.TrimSpace(s))
	return &t
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}
