package config

import (
	"github.com/pelletier/go-toml/v2"
)

type dumpView struct {
	StageDir string          `toml:"stage_dir"`
	CacheDir string          `toml:"cache_dir"`
	HomeDir  string          `toml:"home_dir"`
	LogLevel string          `toml:"log_level"`
	Service  dumpServiceView `toml:"service"`
}

type dumpServiceView struct {
	ApplyDelay    string `toml:"apply_delay"`
	UpdateDelay   string `toml:"update_delay"`
	PullFrequency string `toml:"pull_frequency"`
}

// Dump renders the effective configuration as TOML. The decryption key is
// never included.
func (c *Config) Dump() (string, error) {
	view := dumpView{
		StageDir: c.StageDir,
		CacheDir: c.CacheDir,
		HomeDir:  c.HomeDir,
		LogLevel: c.LogLevel,
		Service: dumpServiceView{
			ApplyDelay:    c.Service.ApplyDelay.String(),
			UpdateDelay:   c.Service.UpdateDelay.String(),
			PullFrequency: c.Service.PullFrequency.String(),
		},
	}
	out, err := toml.Marshal(view)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
