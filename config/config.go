package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type SystemConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
}

type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig selects the persistence adapter for the catalog
// document. Type is one of file|bolt|postgres|memory; Path applies to
// file and bolt, DSN to postgres.
type StorageConfig struct {
	Type string `yaml:"type"`
	Path string `yaml:"path"`
	DSN  string `yaml:"dsn"`
}

// SyncConfig drives the replica push: after every catalog change the
// whole document is PUT to URL, debounced by DebounceSec.
type SyncConfig struct {
	Enabled     bool   `yaml:"enabled"`
	URL         string `yaml:"url"`
	DebounceSec int    `yaml:"debounce_sec"`
}

type BackupConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Interval string `yaml:"interval"` // cron spec, e.g. "@hourly"
	Keep     int    `yaml:"keep"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode"` // production|development
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type AppConfig struct {
	System  SystemConfig  `yaml:"system"`
	Web     WebConfig     `yaml:"web"`
	Storage StorageConfig `yaml:"storage"`
	Sync    SyncConfig    `yaml:"sync"`
	Backup  BackupConfig  `yaml:"backup"`
	Logger  LoggerConfig  `yaml:"logger"`
}

// DefaultAppConfig returns the development defaults; every field can be
// overridden by the yaml file and CATALOGD_* environment variables.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SystemConfig{
			Appid:    "catalogd",
			Location: "Europe/Paris",
			Workdir:  "/var/catalogd",
		},
		Web: WebConfig{
			Host: "0.0.0.0",
			Port: 1816,
		},
		Storage: StorageConfig{
			Type: "file",
			Path: "/var/catalogd/data/products.json",
		},
		Sync: SyncConfig{
			Enabled:     false,
			DebounceSec: 1,
		},
		Backup: BackupConfig{
			Enabled:  true,
			Interval: "@hourly",
			Keep:     24,
		},
		Logger: LoggerConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "/var/catalogd/catalogd.log",
		},
	}
}

// LoadConfig reads the yaml config file when it exists, then applies
// environment overrides. A missing file is not an error: defaults
// apply.
func LoadConfig(cfile string) *AppConfig {
	cfg := DefaultAppConfig()
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}
	setEnvValues(cfg)
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = filepath.Join(cfg.System.Workdir, "data", "products.json")
	}
	return cfg
}

func setEnvValues(cfg *AppConfig) {
	setEnvString(&cfg.System.Workdir, "CATALOGD_SYSTEM_WORKDIR")
	setEnvString(&cfg.System.Location, "CATALOGD_SYSTEM_LOCATION")
	setEnvString(&cfg.Web.Host, "CATALOGD_WEB_HOST")
	setEnvInt(&cfg.Web.Port, "CATALOGD_WEB_PORT")
	setEnvString(&cfg.Storage.Type, "CATALOGD_STORAGE_TYPE")
	setEnvString(&cfg.Storage.Path, "CATALOGD_STORAGE_PATH")
	setEnvString(&cfg.Storage.DSN, "CATALOGD_STORAGE_DSN")
	setEnvBool(&cfg.Sync.Enabled, "CATALOGD_SYNC_ENABLED")
	setEnvString(&cfg.Sync.URL, "CATALOGD_SYNC_URL")
	setEnvInt(&cfg.Sync.DebounceSec, "CATALOGD_SYNC_DEBOUNCE_SEC")
	setEnvBool(&cfg.Backup.Enabled, "CATALOGD_BACKUP_ENABLED")
	setEnvString(&cfg.Backup.Interval, "CATALOGD_BACKUP_INTERVAL")
	setEnvInt(&cfg.Backup.Keep, "CATALOGD_BACKUP_KEEP")
	setEnvString(&cfg.Logger.Mode, "CATALOGD_LOGGER_MODE")
	setEnvBool(&cfg.Logger.FileEnable, "CATALOGD_LOGGER_FILE_ENABLE")
	setEnvString(&cfg.Logger.Filename, "CATALOGD_LOGGER_FILENAME")
}

func setEnvString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setEnvInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = cast.ToInt(v)
	}
}

func setEnvBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = cast.ToBool(v)
	}
}
