// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix namespaces environment overrides, e.g. PALBENCH_PINCPU=2.
	EnvPrefix = "PALBENCH"
	// defaultCandidate is benchmarked by `run` when none is named.
	defaultCandidate = "array"
	// defaultFormat is the report format used when none is configured.
	defaultFormat = "text"
	// defaultPinCPU leaves thread placement to the scheduler.
	defaultPinCPU = -1
)

// ErrInvalidConfig marks configuration that failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the merged application configuration.
// Precedence is flags, then PALBENCH_* environment variables, then the config file, then defaults.
type Config struct {
	Debug       bool     `json:"debug"`
	LogFile     string   `json:"logFile,omitempty"`
	Candidate   string   `json:"candidate"`
	Candidates  []string `json:"candidates,omitempty"`
	Format      string   `json:"format"`
	Output      string   `json:"output,omitempty"`
	PinCPU      int      `json:"pinCpu"`
	Progress    bool     `json:"progress"`
	KeepSamples bool     `json:"keepSamples"`
	ConfigPath  string   `json:"-"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Candidate: defaultCandidate,
		Format:    defaultFormat,
		PinCPU:    defaultPinCPU,
	}
}

// SetDefaults registers the default values and environment binding on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("debug", d.Debug)
	v.SetDefault("logFile", d.LogFile)
	v.SetDefault("candidate", d.Candidate)
	v.SetDefault("candidates", d.Candidates)
	v.SetDefault("format", d.Format)
	v.SetDefault("output", d.Output)
	v.SetDefault("pinCpu", d.PinCPU)
	v.SetDefault("progress", d.Progress)
	v.SetDefault("keepSamples", d.KeepSamples)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Decode materializes the merged state of v into a validated Config.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()
	cfg.Candidates = splitList(cfg.Candidates)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the configuration file at path (JSON or YAML), validates it against the
// embedded schema and merges it over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	SetDefaults(v)

	if strings.TrimSpace(path) != "" {
		if err := ReadFile(v, path); err != nil {
			return Config{}, err
		}
	}
	return Decode(v)
}

// ReadFile validates the file at path and reads it into v.
func ReadFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("no configuration file found at %q", path)
		}
		return fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := ValidateFile(path); err != nil {
		return err
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to load config %q: %w", path, err)
	}
	return nil
}

// Validate checks values the schema cannot express.
func (c Config) Validate() error {
	if c.PinCPU < defaultPinCPU {
		return fmt.Errorf("%w: pinCpu must be %d (disabled) or a cpu index, got %d", ErrInvalidConfig, defaultPinCPU, c.PinCPU)
	}
	if strings.TrimSpace(c.Format) == "" {
		return fmt.Errorf("%w: format must not be empty", ErrInvalidConfig)
	}
	return nil
}

// LogFilePath returns the log file path; empty disables file logging.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// splitList accepts both ["a","b"] and the single comma-separated form env vars produce.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
