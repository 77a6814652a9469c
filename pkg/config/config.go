package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	dotrserrors "github.com/dotrs/dotrs/pkg/errors"
	"github.com/dotrs/dotrs/pkg/paths"
)

// EnvPrefix is the prefix of every environment variable read by Load
const EnvPrefix = "DOTRS_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Config is the shared configuration value consumed by every command
type Config struct {
	StageDir      string        `koanf:"stage_dir" toml:"stage_dir"`
	CacheDir      string        `koanf:"cache_dir" toml:"cache_dir"`
	HomeDir       string        `koanf:"home_dir" toml:"home_dir"`
	LogLevel      string        `koanf:"log_level" toml:"log_level"`
	DecryptionKey string        `koanf:"decryption_key" toml:"-"`
	Service       ServiceConfig `koanf:"service" toml:"service"`
}

// ServiceConfig holds the watch service timings
type ServiceConfig struct {
	ApplyDelay    time.Duration `koanf:"apply_delay" toml:"apply_delay"`
	UpdateDelay   time.Duration `koanf:"update_delay" toml:"update_delay"`
	PullFrequency time.Duration `koanf:"pull_frequency" toml:"pull_frequency"`
}

// Load reads defaults, the user config file (if present) and the environment.
// Overrides are dotted keys (e.g. "service.apply_delay") applied last, so
// command line flags win over every other layer.
func Load(overrides ...map[string]interface{}) (*Config, error) {
	return LoadFile(paths.ConfigFilePath(), overrides...)
}

// LoadFile is Load with an explicit config file path. A missing file is not
// an error.
func LoadFile(configPath string, overrides ...map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, dotrserrors.Wrap(err, dotrserrors.ErrConfigLoad, "failed to load defaults")
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
				return nil, dotrserrors.Wrapf(err, dotrserrors.ErrConfigLoad, "failed to load config from %s", configPath)
			}
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, dotrserrors.Wrap(err, dotrserrors.ErrConfigLoad, "failed to load env vars")
	}

	for _, o := range overrides {
		if len(o) == 0 {
			continue
		}
		if err := k.Load(confmap.Provider(o, "."), nil); err != nil {
			return nil, dotrserrors.Wrap(err, dotrserrors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, dotrserrors.Wrap(err, dotrserrors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps DOTRS_SERVICE__APPLY_DELAY to service.apply_delay
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// normalize fills defaults, expands ~ and makes directories absolute
func (c *Config) normalize() error {
	var err error
	if c.StageDir == "" {
		if c.StageDir, err = paths.DefaultStageDir(); err != nil {
			return err
		}
	}
	if c.CacheDir == "" {
		if c.CacheDir, err = paths.DefaultCacheDir(); err != nil {
			return err
		}
	}
	if c.HomeDir == "" {
		if c.HomeDir, err = paths.HomeDir(); err != nil {
			return err
		}
	}

	for _, dir := range []*string{&c.StageDir, &c.CacheDir, &c.HomeDir} {
		abs, err := filepath.Abs(paths.ExpandHome(*dir))
		if err != nil {
			return dotrserrors.Wrapf(err, dotrserrors.ErrConfigLoad, "failed to resolve %s", *dir)
		}
		*dir = abs
	}

	return c.Service.Validate()
}

// Validate checks that every service timing is positive
func (s ServiceConfig) Validate() error {
	for name, d := range map[string]time.Duration{
		"apply_delay":    s.ApplyDelay,
		"update_delay":   s.UpdateDelay,
		"pull_frequency": s.PullFrequency,
	} {
		if d <= 0 {
			return dotrserrors.Newf(dotrserrors.ErrConfigLoad, "service.%s must be positive, got %s", name, d)
		}
	}
	return nil
}

// String renders a short human readable summary, used in debug logs
func (c *Config) String() string {
	return fmt.Sprintf("stage=%s cache=%s home=%s", c.StageDir, c.CacheDir, c.HomeDir)
}
