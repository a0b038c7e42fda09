// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package config

import (
	"fmt"
	"slices"
	"strings"
)

// Backend names accepted in Config.Backend.
const (
	BackendInMemory = "inmemory"
	BackendBadger   = "badger"
)

// Log formats accepted in Config.LogFormat.
const (
	LogFormatText   = "text"
	LogFormatJSON   = "json"
	LogFormatPretty = "pretty"
)

// Config holds configuration for loading and serving the dataset.
type Config struct {
	// CompaniesFile is the path of the companies JSON array.
	// Default: "resources/companies.json"
	CompaniesFile string `yaml:"companies_file"`

	// PeopleFile is the path of the people JSON array.
	// Default: "resources/people.json"
	PeopleFile string `yaml:"people_file"`

	// Backend selects the repository implementation: "inmemory" or "badger".
	Backend string `yaml:"backend"`

	// BadgerPath is the BadgerDB directory. Empty means an in-memory BadgerDB.
	BadgerPath string `yaml:"badger_path"`

	// Addr is the HTTP listen address.
	// Example: ":8080", "127.0.0.1:5000"
	Addr string `yaml:"addr"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is one of text, json, pretty.
	LogFormat string `yaml:"log_format"`

	// PoolSize is the number of decode workers. Zero picks a default from the CPU count.
	PoolSize int `yaml:"pool_size"`
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithDataFiles sets the companies and people file paths.
func WithDataFiles(companies, people string) ConfigOption {
	return func(c *Config) {
		c.CompaniesFile = companies
		c.PeopleFile = people
	}
}

// WithBackend sets the repository backend.
func WithBackend(backend string) ConfigOption {
	return func(c *Config) {
		c.Backend = backend
	}
}

// WithBadgerPath selects the badger backend stored at path.
func WithBadgerPath(path string) ConfigOption {
	return func(c *Config) {
		c.Backend = BackendBadger
		c.BadgerPath = path
	}
}

// WithAddr sets the HTTP listen address.
func WithAddr(addr string) ConfigOption {
	return func(c *Config) {
		c.Addr = addr
	}
}

// WithLogLevel sets the log level name.
func WithLogLevel(level string) ConfigOption {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithLogFormat sets the log output format.
func WithLogFormat(format string) ConfigOption {
	return func(c *Config) {
		c.LogFormat = format
	}
}

// WithPoolSize sets the number of decode workers.
func WithPoolSize(size int) ConfigOption {
	return func(c *Config) {
		c.PoolSize = size
	}
}

// DefaultConfig returns a Config that serves the bundled resources from memory.
func DefaultConfig() *Config {
	return &Config{
		CompaniesFile: "resources/companies.json",
		PeopleFile:    "resources/people.json",
		Backend:       BackendInMemory,
		Addr:          ":8080",
		LogLevel:      "info",
		LogFormat:     LogFormatText,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithDataFiles("data/companies.json", "data/people.json"),
//	    WithBadgerPath("/var/lib/paranuara"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize puts the configuration in canonical form.
// Names are lower-cased and a bare port becomes a listen address.
func (c *Config) Normalize() {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.Addr = strings.TrimSpace(c.Addr)
	if c.Addr != "" && !strings.Contains(c.Addr, ":") {
		c.Addr = ":" + c.Addr
	}
}

// Validate checks that the configuration is valid and complete.
// It normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if !slices.Contains([]string{BackendInMemory, BackendBadger}, c.Backend) {
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.Backend)
	}
	if c.CompaniesFile == "" {
		return fmt.Errorf("%w: companies", ErrMissingDataFile)
	}
	if c.PeopleFile == "" {
		return fmt.Errorf("%w: people", ErrMissingDataFile)
	}
	if !slices.Contains([]string{LogFormatText, LogFormatJSON, LogFormatPretty}, c.LogFormat) {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	if c.Addr == "" || strings.ContainsAny(c.Addr, " \t") {
		return fmt.Errorf("%w: %q", ErrInvalidAddr, c.Addr)
	}
	if c.PoolSize < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPoolSize, c.PoolSize)
	}
	return nil
}
