package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 8082
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "postgres"
password = "postgres"
dbname = "pt_schedule"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/pt-schedule.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "pt-schedule-service"

[schedule]
package_sizes = [1, 5, 10, 20]
day_start_hour = 9
day_end_hour = 23
secondary_offset_hours = -4
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8082, cfg.Server.HTTPPort)
	assert.Equal(t, "pt_schedule", cfg.Database.DBName)
	assert.Equal(t, []int{1, 5, 10, 20}, cfg.Schedule.PackageSizes)
	assert.Equal(t, 9, cfg.Schedule.DayStartHour)
	assert.Equal(t, 23, cfg.Schedule.DayEndHour)
	assert.Equal(t, -4, cfg.Schedule.SecondaryOffsetHours)

	assert.Contains(t, cfg.Database.DSN(), "dbname=pt_schedule")
	assert.Contains(t, cfg.Database.DSN(), "sslmode=disable")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidSchedule(t *testing.T) {
	// Пустое меню размеров
	cfg := writeConfig(t, `
[server]
http_port = 8082
[database]
host = "localhost"
dbname = "pt_schedule"
[schedule]
package_sizes = []
day_start_hour = 9
day_end_hour = 23
`)
	_, err := Load(cfg)
	assert.Error(t, err)

	// Конец дня раньше начала
	cfg = writeConfig(t, `
[server]
http_port = 8082
[database]
host = "localhost"
dbname = "pt_schedule"
[schedule]
package_sizes = [5]
day_start_hour = 9
day_end_hour = 8
`)
	_, err = Load(cfg)
	assert.Error(t, err)
}
