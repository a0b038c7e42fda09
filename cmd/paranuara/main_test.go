package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/paranuara/storage"
	"github.com/poiesic/paranuara/storage/badger"
)

var (
	companiesFile = filepath.Join("..", "..", "ingestion", "testdata", "companies.json")
	peopleFile    = filepath.Join("..", "..", "ingestion", "testdata", "people.json")
)

// run executes the CLI with the test data files and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	full := append([]string{"paranuara", "--log-level", "error", "--companies", companiesFile, "--people", peopleFile}, args...)
	err := app.Run(full)
	return stdout.String(), err
}

func TestSetup(t *testing.T) {
	t.Run("invalid log level", func(t *testing.T) {
		_, err := run(t, "--log-level", "loud", "companies")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "paranuara.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_format: json\n"), 0644))
		_, err := run(t, "--config", path, "companies")
		assert.NoError(t, err)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "companies")
		assert.Error(t, err)
	})
}

func TestCompaniesCommand(t *testing.T) {
	out, err := run(t, "companies")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0\tNETBOOK", lines[0])

	t.Run("command flag", func(t *testing.T) {
		out, err := run(t, "companies", "--companies", companiesFile)
		require.NoError(t, err)
		assert.Contains(t, out, "PERMADYNE")
	})

	t.Run("bad file", func(t *testing.T) {
		_, err := run(t, "companies", peopleFile)
		assert.Error(t, err)
	})
}

func TestFoodsCommand(t *testing.T) {
	out, err := run(t, "foods")
	require.NoError(t, err)
	assert.Contains(t, out, "apple\tfruit")
	assert.Contains(t, out, "celery\tvegetable")
}

func TestQueryCommands(t *testing.T) {
	t.Run("person", func(t *testing.T) {
		out, err := run(t, "person", "3")
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.Equal(t, float64(3), doc["id"])
	})

	t.Run("employees", func(t *testing.T) {
		out, err := run(t, "employees", "1")
		require.NoError(t, err)

		var people []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &people))
		assert.Len(t, people, 4)
	})

	t.Run("join", func(t *testing.T) {
		out, err := run(t, "join", "0", "1")
		require.NoError(t, err)

		var doc struct {
			FriendsInCommon []map[string]any `json:"friends_in_common"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		require.Len(t, doc.FriendsInCommon, 1)
		assert.Equal(t, float64(3), doc.FriendsInCommon[0]["id"])
	})

	t.Run("not found", func(t *testing.T) {
		_, err := run(t, "person", "99")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("bad arguments", func(t *testing.T) {
		_, err := run(t, "join", "0")
		assert.Error(t, err)

		_, err = run(t, "person", "-3")
		assert.Error(t, err)
	})
}

func TestSyncCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "db")
	_, err := run(t, "sync", "--db", dbPath, "--report-interval", "1")
	require.NoError(t, err)

	backend, err := badger.OpenBackend(dbPath, false)
	require.NoError(t, err)
	repo, err := badger.NewRepository(backend)
	require.NoError(t, err)
	defer repo.Close()

	counts, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, badger.Counts{Companies: 3, People: 7}, counts)
}
