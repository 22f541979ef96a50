package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[backend]
url = "http://localhost:5000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 14, cfg.Schedule.WindowDays)
	assert.Equal(t, 365, cfg.Schedule.HistoryLookbackDays)
	assert.Equal(t, "5 0 * * *", cfg.Scheduler.Spec)
	assert.Equal(t, 100, cfg.Notifier.QueueSize)

	policy, err := cfg.Schedule.ParsedPolicy()
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyCopyForward, policy)

	tmpl, err := cfg.Schedule.TemplateSchedule()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), *tmpl.Start)
	assert.Equal(t, types.TimeString("20:00"), *tmpl.End)
	assert.Nil(t, tmpl.BreakStart)
	assert.Equal(t, 3, tmpl.Workforce)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
enabled = true
host = "db"
dbname = "schedule"
user = "svc"

[backend]
url = "http://backend:5000"
rps = 5
burst = 2

[schedule]
policy = "prune_and_backfill"
window_days = 7
timezone = "Europe/Moscow"
bulk_backfill = true

[schedule.template]
start = "10:00"
end = "19:00"
break_start = "14:00"
break_end = "15:00"
workforce = 2

[scheduler]
enabled = true
tenants = ["salon-1", "salon-2"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 5.0, cfg.Backend.RPS)
	assert.True(t, cfg.Schedule.BulkBackfill)
	assert.Equal(t, []string{"salon-1", "salon-2"}, cfg.Scheduler.Tenants)
	assert.Equal(t, "host=db port=5432 user=svc password= dbname=schedule sslmode=disable", cfg.Database.DSN())

	loc, err := cfg.Schedule.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())

	tmpl, err := cfg.Schedule.TemplateSchedule()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("14:00"), *tmpl.BreakStart)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[backend]
url = "http://localhost:5000"
`)
	t.Setenv("BACKEND_URL", "http://override:6000")
	t.Setenv("SCHEDULE_POLICY", "manual_only")
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("SCHEDULER_TENANTS", " a, b ,,c ")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://override:6000", cfg.Backend.URL)
	assert.Equal(t, "manual_only", cfg.Schedule.Policy)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Scheduler.Tenants)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing backend url", `[server]
http_port = 8080`},
		{"unknown policy", `[backend]
url = "http://x"
[schedule]
policy = "auto"`},
		{"window too long", `[backend]
url = "http://x"
[schedule]
window_days = 100`},
		{"bad timezone", `[backend]
url = "http://x"
[schedule]
timezone = "Mars/Olympus"`},
		{"template start after end", `[backend]
url = "http://x"
[schedule.template]
start = "20:00"
end = "09:00"`},
		{"scheduler without tenants", `[backend]
url = "http://x"
[scheduler]
enabled = true`},
		{"database without host", `[backend]
url = "http://x"
[database]
enabled = true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_BadHTTPPortEnv(t *testing.T) {
	path := writeConfig(t, `[backend]
url = "http://x"`)
	t.Setenv("HTTP_PORT", "eighty")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
