package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by ApplyEnv.
const (
	EnvCompaniesFile = "PARANUARA_COMPANIES_FILE"
	EnvPeopleFile    = "PARANUARA_PEOPLE_FILE"
	EnvBackend       = "PARANUARA_BACKEND"
	EnvBadgerPath    = "PARANUARA_BADGER_PATH"
	EnvAddr          = "PARANUARA_ADDR"
	EnvPort          = "PORT"
	EnvLogLevel      = "PARANUARA_LOG_LEVEL"
	EnvLogFormat     = "PARANUARA_LOG_FORMAT"
	EnvPoolSize      = "PARANUARA_POOL_SIZE"
)

// ApplyEnv overrides fields from the environment. Unset or blank variables
// leave the field alone. PARANUARA_ADDR wins over PORT.
func (c *Config) ApplyEnv() error {
	setString(&c.CompaniesFile, EnvCompaniesFile)
	setString(&c.PeopleFile, EnvPeopleFile)
	setString(&c.Backend, EnvBackend)
	setString(&c.BadgerPath, EnvBadgerPath)
	setString(&c.Addr, EnvPort)
	setString(&c.Addr, EnvAddr)
	setString(&c.LogLevel, EnvLogLevel)
	setString(&c.LogFormat, EnvLogFormat)

	size, err := parseOptionalIntEnv(EnvPoolSize)
	if err != nil {
		return err
	}
	if size != nil {
		c.PoolSize = *size
	}
	return nil
}

func setString(field *string, key string) {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		*field = value
	}
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidEnv, key, raw)
	}
	return &value, nil
}
