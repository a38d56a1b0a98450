package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "CLINIC"
	// EnvConfigFile optionally names a config file (yaml, json, toml).
	EnvConfigFile = "CLINIC_CONFIG"
)

type Config struct {
	Data   DataConfig
	Status StatusConfig
	Log    LogConfig
}

type DataConfig struct {
	Dir          string
	PatientsFile string
	StaffFile    string
	SaveOnExit   bool
	// ExportFile, when set, receives an xlsx report on exit.
	ExportFile string
}

func (d DataConfig) PatientsPath() string { return d.resolve(d.PatientsFile) }
func (d DataConfig) StaffPath() string    { return d.resolve(d.StaffFile) }

func (d DataConfig) ExportPath() string {
	if d.ExportFile == "" {
		return ""
	}
	return d.resolve(d.ExportFile)
}

func (d DataConfig) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.Dir, name)
}

type StatusConfig struct {
	// Addr enables the status server when non-empty, e.g. "127.0.0.1:9090".
	Addr            string
	ShutdownTimeout time.Duration
}

func (s StatusConfig) Enabled() bool { return s.Addr != "" }

type LogConfig struct {
	Level      string
	Format     string
	OutputPath string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", ".")
	v.SetDefault("patients_file", "patients.txt")
	v.SetDefault("staff_file", "staff.txt")
	v.SetDefault("save_on_exit", true)
	v.SetDefault("export_file", "")
	v.SetDefault("status_addr", "")
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
}

// Load reads configuration from CLINIC_* environment variables, falling
// back to the file named by CLINIC_CONFIG and then to defaults.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv(EnvConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		Data: DataConfig{
			Dir:          v.GetString("data_dir"),
			PatientsFile: v.GetString("patients_file"),
			StaffFile:    v.GetString("staff_file"),
			SaveOnExit:   v.GetBool("save_on_exit"),
			ExportFile:   v.GetString("export_file"),
		},
		Status: StatusConfig{
			Addr:            v.GetString("status_addr"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Log: LogConfig{
			Level:      v.GetString("log.level"),
			Format:     v.GetString("log.format"),
			OutputPath: v.GetString("log.output"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	var errs []string

	if cfg.Data.PatientsFile == "" {
		errs = append(errs, "patients_file is required")
	}
	if cfg.Data.StaffFile == "" {
		errs = append(errs, "staff_file is required")
	}
	if cfg.Data.PatientsFile != "" && cfg.Data.PatientsPath() == cfg.Data.StaffPath() {
		errs = append(errs, "patients_file and staff_file must differ")
	}
	if cfg.Status.ShutdownTimeout <= 0 {
		errs = append(errs, "shutdown_timeout must be positive")
	}
	switch cfg.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or console, got %q", cfg.Log.Format))
	}
	if cfg.Log.OutputPath == "" {
		errs = append(errs, "log.output is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
