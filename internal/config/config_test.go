package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for key := range defaults {
		t.Setenv(strings.ToUpper(key), "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "¥", cfg.CurrencySymbol)
	assert.Equal(t, int32(0), cfg.CurrencyDecimals)
	assert.Equal(t, ":3001", cfg.Address())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("PORT", "8080")
	t.Setenv("CURRENCY_SYMBOL", "$")
	t.Setenv("CURRENCY_DECIMALS", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.Equal(t, int32(2), cfg.CurrencyDecimals)
	assert.Contains(t, cfg.DSN(), "host=db.internal port=5432")
}

func TestLoad_PostgresWithoutPort(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.DSN(), "host=db.internal port=5432")
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "oracle")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "mysql",
			cfg:  Config{DBDriver: DriverMySQL, DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "3306", DBName: "d"},
			want: "u:p@tcp(h:3306)/d?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			name: "postgres",
			cfg:  Config{DBDriver: DriverPostgres, DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d"},
			want: "host=h port=5432 user=u password=p dbname=d sslmode=disable",
		},
		{
			name: "postgres default port",
			cfg:  Config{DBDriver: DriverPostgres, DBUser: "u", DBPassword: "p", DBHost: "h", DBName: "d"},
			want: "host=h port=5432 user=u password=p dbname=d sslmode=disable",
		},
		{
			name: "mysql default port",
			cfg:  Config{DBDriver: DriverMySQL, DBUser: "u", DBPassword: "p", DBHost: "h", DBName: "d"},
			want: "u:p@tcp(h:3306)/d?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			name: "sqlite",
			cfg:  Config{DBDriver: DriverSQLite, DBPath: "/tmp/db.sqlite"},
			want: "/tmp/db.sqlite?_foreign_keys=on",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
