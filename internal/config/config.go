package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ModeHistory = "history"
	ModeFolder  = "folder"
)

// Config holds all application configuration.
type Config struct {
	Mode string `yaml:"mode"`
	Data struct {
		Dir        string   `yaml:"dir"`
		Extensions []string `yaml:"extensions"`
	} `yaml:"data"`
	Layout struct {
		Sheet      int `yaml:"sheet"`
		DateRow    int `yaml:"date_row"`
		HeaderRows int `yaml:"header_rows"`
		NameCol    int `yaml:"name_col"`
		PriceCol   int `yaml:"price_col"`
	} `yaml:"layout"`
	Denomination struct {
		Strategy   string `yaml:"strategy"`
		CutoffYear int    `yaml:"cutoff_year"`
		Threshold  int64  `yaml:"threshold"`
		Rate       int64  `yaml:"rate"`
	} `yaml:"denomination"`
	Query struct {
		Delta    float64 `yaml:"delta"`
		Currency string  `yaml:"currency"`
	} `yaml:"query"`
	Folder struct {
		Dir       string `yaml:"dir"`
		Region    string `yaml:"region"`
		Extension string `yaml:"extension"`
	} `yaml:"folder"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Database struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then .env, then environment variable overrides.
func Load(path, envPath string) (*Config, error) {
	cfg := &Config{}
	cfg.Layout.DateRow = -1
	cfg.Layout.HeaderRows = -1
	cfg.Layout.PriceCol = -1

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			log.Printf("[WARN] load %s: %v", envPath, err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TRACKER_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv("TRACKER_DATA_DIR"); v != "" {
		cfg.Data.Dir = v
		cfg.Folder.Dir = v
	}
	if v := os.Getenv("TRACKER_REGION"); v != "" {
		cfg.Folder.Region = v
	}
	if v := os.Getenv("TRACKER_CURRENCY"); v != "" {
		cfg.Query.Currency = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}

	// Defaults
	if cfg.Mode == "" {
		cfg.Mode = ModeHistory
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "./data/"
	}
	if len(cfg.Data.Extensions) == 0 {
		cfg.Data.Extensions = []string{".xlsx", ".csv"}
	}
	if cfg.Layout.DateRow < 0 {
		cfg.Layout.DateRow = 3
	}
	if cfg.Layout.HeaderRows < 0 {
		cfg.Layout.HeaderRows = 8
	}
	if cfg.Layout.PriceCol < 0 {
		cfg.Layout.PriceCol = 6
	}
	if cfg.Denomination.CutoffYear == 0 {
		cfg.Denomination.CutoffYear = 2017
	}
	if cfg.Denomination.Threshold == 0 {
		cfg.Denomination.Threshold = 1000
	}
	if cfg.Denomination.Rate == 0 {
		cfg.Denomination.Rate = 10000
	}
	if cfg.Query.Delta == 0 {
		cfg.Query.Delta = 0.2
	}
	if cfg.Query.Currency == "" {
		cfg.Query.Currency = "BYN"
	}
	if cfg.Folder.Dir == "" {
		cfg.Folder.Dir = "./data/"
	}
	if cfg.Folder.Extension == "" {
		cfg.Folder.Extension = ".csv"
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 0 9 * * *"
	}
	if cfg.Database.Driver == "sqlite" && cfg.Database.DSN == "" {
		cfg.Database.DSN = "data/price_tracker.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeHistory:
	case ModeFolder:
		if c.Folder.Region == "" {
			return fmt.Errorf("folder.region is required in folder mode")
		}
	default:
		return fmt.Errorf("mode must be %q or %q, got %q", ModeHistory, ModeFolder, c.Mode)
	}
	if c.Query.Delta < 0 {
		return fmt.Errorf("query.delta must not be negative")
	}
	if c.Denomination.Rate <= 0 {
		return fmt.Errorf("denomination.rate must be positive")
	}
	switch c.Database.Driver {
	case "", "sqlite", "postgres":
	default:
		return fmt.Errorf("database.driver must be sqlite or postgres, got %q", c.Database.Driver)
	}
	if c.Database.Driver == "postgres" && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for postgres")
	}
	return nil
}
