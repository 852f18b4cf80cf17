package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8083
read_timeout = 10
write_timeout = 10
idle_timeout = 60
shutdown_timeout = 15

[database]
host = "localhost"
port = 5432
user = "barbershop"
password = "secret"
dbname = "barbershop_booking"
sslmode = "disable"

[logs]
file = "logs/booking-service.log"
level = "info"

[metrics]
enabled = true
service_name = "barbershop-booking-service"
path = "/metrics"

[catalog_service]
url = "http://localhost:8081"
timeout = 5

[booking]
slot_step_minutes = 15
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8083, cfg.Server.HTTPPort)
	assert.Equal(t, "barbershop_booking", cfg.Database.DBName)
	assert.Equal(t, 15, cfg.Booking.SlotStepMinutes)
	assert.Equal(t, "http://localhost:8081", cfg.Catalog.URL)
	assert.Equal(t,
		"host=localhost port=5432 user=barbershop password=secret dbname=barbershop_booking sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_DefaultSlotStep(t *testing.T) {
	content := `
[server]
http_port = 8083

[database]
host = "localhost"
dbname = "barbershop_booking"
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)
	assert.Equal(t, DefaultSlotStepMinutes, cfg.Booking.SlotStepMinutes)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing http port",
			content: `
[database]
host = "localhost"
dbname = "db"
`,
		},
		{
			name: "missing database host",
			content: `
[server]
http_port = 8083

[database]
dbname = "db"
`,
		},
		{
			name: "negative slot step",
			content: `
[server]
http_port = 8083

[database]
host = "localhost"
dbname = "db"

[booking]
slot_step_minutes = -5
`,
		},
		{
			name: "metrics enabled without path",
			content: `
[server]
http_port = 8083

[database]
host = "localhost"
dbname = "db"

[metrics]
enabled = true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
