package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBDriver   string `mapstructure:"db_driver" validate:"required,oneof=mysql postgres sqlite"`
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBPath     string `mapstructure:"db_path" validate:"required_if=DBDriver sqlite"`
	DBLogSQL   bool   `mapstructure:"db_log_sql"`

	Port     string `mapstructure:"port" validate:"required"`
	GinMode  string `mapstructure:"gin_mode" validate:"oneof=debug release test"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`

	CurrencySymbol   string `mapstructure:"currency_symbol"`
	CurrencyDecimals int32  `mapstructure:"currency_decimals" validate:"gte=0,lte=4"`
	PDFFontPath      string `mapstructure:"pdf_font_path"`
}

var defaults = map[string]any{
	"db_driver":         DriverSQLite,
	"db_host":           "localhost",
	"db_port":           "",
	"db_user":           "invoiceuser",
	"db_password":       "invoicepassword",
	"db_name":           "task_invoice",
	"db_path":           "./data/database.sqlite",
	"db_log_sql":        false,
	"port":              "3001",
	"gin_mode":          "debug",
	"log_level":         "info",
	"currency_symbol":   "¥",
	"currency_decimals": 0,
	"pdf_font_path":     "",
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory when one exists
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// DSN builds the connection string for the configured driver
func (c Config) DSN() string {
	switch c.DBDriver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser,
			c.DBPassword,
			c.DBHost,
			c.dbPort(),
			c.DBName,
		)
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			c.DBHost,
			c.dbPort(),
			c.DBUser,
			c.DBPassword,
			c.DBName,
		)
	default:
		return c.DBPath + "?_foreign_keys=on"
	}
}

// dbPort falls back to the driver's standard port when DB_PORT is unset
func (c Config) dbPort() string {
	if c.DBPort != "" {
		return c.DBPort
	}
	if c.DBDriver == DriverPostgres {
		return "5432"
	}
	return "3306"
}

// Address returns the listen address for the HTTP server
func (c Config) Address() string {
	return ":" + c.Port
}
