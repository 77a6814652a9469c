// Package config handles configuration management for dotrs.
//
// Configuration is layered with koanf: embedded defaults, then the user
// config file (TOML), then DOTRS_* environment variables. Nested keys use a
// double underscore in the environment, e.g. DOTRS_SERVICE__PULL_FREQUENCY.
package config
