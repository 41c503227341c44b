package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const envPrefix = "REAXTRACE"

// newViper builds a Viper instance with reaxtrace's standard settings: YAML
// file type, REAXTRACE_ env prefix, automatic env binding, and a key
// replacer mapping "." to "_" so "chunk_size" resolves to "REAXTRACE_CHUNK_SIZE".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvs(v, Config{})
	return v
}

func bindEnvs(v *viper.Viper, iface interface{}, parts ...string) {
	ift := reflect.TypeOf(iface)
	if ift.Kind() == reflect.Ptr {
		ift = ift.Elem()
	}
	for i := 0; i < ift.NumField(); i++ {
		field := ift.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" || tag == "," {
			continue
		}
		newParts := append(parts, tag)
		if field.Type.Kind() == reflect.Struct {
			bindEnvs(v, reflect.New(field.Type).Elem().Interface(), newParts...)
		} else {
			_ = v.BindEnv(strings.Join(newParts, "."))
		}
	}
}

// Load reads the YAML file at configPath (if non-empty), merges REAXTRACE_*
// environment overrides, applies defaults, and validates the result. Use
// this when the full configuration (including Trajectory) comes from the
// file/environment alone.
func Load(configPath string) (*Config, error) {
	cfg, err := LoadFile(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// LoadFile reads the YAML file at configPath (if non-empty), merges
// REAXTRACE_* environment overrides, and applies defaults, without
// validating the result. Intended for callers (such as the CLI) that still
// need to layer flag overrides — like a positional trajectory argument — on
// top before validating.
func LoadFile(configPath string) (*Config, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
		}
	}
	return unmarshalAndApplyDefaults(v)
}

func unmarshalAndApplyDefaults(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	ApplyDefaults(cfg)
	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config. Intended for hot-reloading non-critical settings (such as
// the log level) while a run is in progress; it never reconfigures the
// scheduler.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndApplyDefaults(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}
