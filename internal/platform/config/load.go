package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	envConfigDir     = "APP_CONFIG_DIR"
	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// It takes precedence over APP_CONFIG_DIR.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// layer is one configuration source. Optional file layers are skipped when
// the file does not exist.
type layer struct {
	name     string
	provider koanf.Provider
	parser   koanf.Parser
	path     string
	optional bool
}

// Load builds the configuration for profile from these layers, later ones
// overriding earlier ones:
//
//  1. built-in defaults
//  2. {dir}/base.yaml (optional)
//  3. {dir}/{profile}.yaml
//  4. APP_* environment variables
//
// {dir} is WithConfigDir, else APP_CONFIG_DIR, else "configs". Environment
// keys are matched against the keys already loaded so underscores inside a
// field name survive:
//
//	APP_SERVER_REQUEST_TIMEOUT         -> server.request_timeout
//	APP_DATABASE_DSN                   -> database.dsn
//	APP_DATABASE_RATE_LIMIT_BURST_SIZE -> database.rate_limit.burst_size
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: os.Getenv(envConfigDir)}
	if o.configDir == "" {
		o.configDir = defaultConfigDir
	}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	basePath := filepath.Join(o.configDir, "base.yaml")
	profilePath := filepath.Join(o.configDir, profile+".yaml")
	layers := []layer{
		{name: "defaults", provider: confmap.Provider(defaults(), ".")},
		{name: "base config", provider: file.Provider(basePath), parser: yaml.Parser(), path: basePath, optional: true},
		{name: "profile config", provider: file.Provider(profilePath), parser: yaml.Parser(), path: profilePath},
	}
	for _, l := range layers {
		if err := loadLayer(k, l); err != nil {
			return nil, err
		}
	}

	// Environment keys resolve against everything loaded so far.
	if err := loadLayer(k, layer{name: "env vars", provider: envProvider(k.Keys())}); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func loadLayer(k *koanf.Koanf, l layer) error {
	if l.optional && l.path != "" {
		if _, err := os.Stat(l.path); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	}
	if err := k.Load(l.provider, l.parser); err != nil {
		if l.path != "" {
			return fmt.Errorf("loading %s %s: %w", l.name, l.path, err)
		}
		return fmt.Errorf("loading %s: %w", l.name, err)
	}
	return nil
}

func envProvider(keys []string) koanf.Provider {
	lookup := buildEnvLookup(keys)
	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if koanfKey, ok := lookup[key]; ok {
				return koanfKey, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	})
}

// validateProfile rejects empty names and anything that could escape the
// config directory.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup maps "server_read_timeout" style keys to their dotted
// koanf form.
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
