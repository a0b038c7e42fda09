package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "resources/companies.json", cfg.CompaniesFile)
	assert.Equal(t, "resources/people.json", cfg.PeopleFile)
	assert.Equal(t, BackendInMemory, cfg.Backend)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.Zero(t, cfg.PoolSize)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		assert.Equal(t, DefaultConfig(), NewConfig())
	})

	t.Run("with data files", func(t *testing.T) {
		cfg := NewConfig(WithDataFiles("a.json", "b.json"))

		assert.Equal(t, "a.json", cfg.CompaniesFile)
		assert.Equal(t, "b.json", cfg.PeopleFile)
	})

	t.Run("with badger path selects badger", func(t *testing.T) {
		cfg := NewConfig(WithBadgerPath("/tmp/db"))

		assert.Equal(t, BackendBadger, cfg.Backend)
		assert.Equal(t, "/tmp/db", cfg.BadgerPath)
	})

	t.Run("with everything else", func(t *testing.T) {
		cfg := NewConfig(
			WithBackend(BackendBadger),
			WithAddr("127.0.0.1:5000"),
			WithLogLevel("debug"),
			WithLogFormat(LogFormatJSON),
			WithPoolSize(4),
		)

		assert.Equal(t, BackendBadger, cfg.Backend)
		assert.Equal(t, "", cfg.BadgerPath)
		assert.Equal(t, "127.0.0.1:5000", cfg.Addr)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, LogFormatJSON, cfg.LogFormat)
		assert.Equal(t, 4, cfg.PoolSize)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    []ConfigOption
		wantErr error
	}{
		{"defaults", nil, nil},
		{"badger", []ConfigOption{WithBackend("BADGER")}, nil},
		{"unknown backend", []ConfigOption{WithBackend("mongo")}, ErrInvalidBackend},
		{"missing companies", []ConfigOption{WithDataFiles("", "people.json")}, ErrMissingDataFile},
		{"missing people", []ConfigOption{WithDataFiles("companies.json", "")}, ErrMissingDataFile},
		{"unknown log format", []ConfigOption{WithLogFormat("xml")}, ErrInvalidLogFormat},
		{"empty addr", []ConfigOption{WithAddr("")}, ErrInvalidAddr},
		{"addr with spaces", []ConfigOption{WithAddr("80 80")}, ErrInvalidAddr},
		{"negative pool", []ConfigOption{WithPoolSize(-1)}, ErrInvalidPoolSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfig(tt.opts...).Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNormalize(t *testing.T) {
	cfg := NewConfig(WithBackend(" InMemory "), WithLogFormat("PRETTY"), WithLogLevel("WARN"), WithAddr("5000"))
	cfg.Normalize()

	assert.Equal(t, BackendInMemory, cfg.Backend)
	assert.Equal(t, LogFormatPretty, cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ":5000", cfg.Addr)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("overrides defaults", func(t *testing.T) {
		path := filepath.Join(dir, "paranuara.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
companies_file: data/companies.json
people_file: data/people.json
backend: badger
badger_path: /var/lib/paranuara
pool_size: 2
`), 0644))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "data/companies.json", cfg.CompaniesFile)
		assert.Equal(t, "data/people.json", cfg.PeopleFile)
		assert.Equal(t, BackendBadger, cfg.Backend)
		assert.Equal(t, "/var/lib/paranuara", cfg.BadgerPath)
		assert.Equal(t, 2, cfg.PoolSize)
		// Untouched keys keep defaults.
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, LogFormatText, cfg.LogFormat)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(dir, "typo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("backnd: badger\n"), 0644))

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "backnd")
	})

	t.Run("wrong type", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pool_size: many\n"), 0644))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Run("overrides", func(t *testing.T) {
		t.Setenv(EnvCompaniesFile, "env/companies.json")
		t.Setenv(EnvPeopleFile, "env/people.json")
		t.Setenv(EnvBackend, "badger")
		t.Setenv(EnvBadgerPath, "/data")
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvPoolSize, "3")

		cfg := DefaultConfig()
		require.NoError(t, cfg.ApplyEnv())
		assert.Equal(t, "env/companies.json", cfg.CompaniesFile)
		assert.Equal(t, "env/people.json", cfg.PeopleFile)
		assert.Equal(t, BackendBadger, cfg.Backend)
		assert.Equal(t, "/data", cfg.BadgerPath)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, LogFormatJSON, cfg.LogFormat)
		assert.Equal(t, 3, cfg.PoolSize)
	})

	t.Run("port becomes addr", func(t *testing.T) {
		t.Setenv(EnvPort, "5000")
		t.Setenv(EnvAddr, "")

		cfg := DefaultConfig()
		require.NoError(t, cfg.ApplyEnv())
		require.NoError(t, cfg.Validate())
		assert.Equal(t, ":5000", cfg.Addr)
	})

	t.Run("addr wins over port", func(t *testing.T) {
		t.Setenv(EnvPort, "5000")
		t.Setenv(EnvAddr, "127.0.0.1:9000")

		cfg := DefaultConfig()
		require.NoError(t, cfg.ApplyEnv())
		assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	})

	t.Run("blank values are ignored", func(t *testing.T) {
		t.Setenv(EnvBackend, "  ")
		t.Setenv(EnvPoolSize, "")

		cfg := DefaultConfig()
		require.NoError(t, cfg.ApplyEnv())
		assert.Equal(t, BackendInMemory, cfg.Backend)
		assert.Zero(t, cfg.PoolSize)
	})

	t.Run("invalid pool size", func(t *testing.T) {
		t.Setenv(EnvPoolSize, "lots")

		err := DefaultConfig().ApplyEnv()
		assert.ErrorIs(t, err, ErrInvalidEnv)
		assert.Contains(t, err.Error(), EnvPoolSize)
	})
}
