package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/paranuara/codec"
	"github.com/poiesic/paranuara/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	companiesFile = "testdata/companies.json"
	peopleFile    = "testdata/people.json"
)

func newTestLoader(t *testing.T, opts ...Option) *Loader {
	t.Helper()
	loader, err := NewLoader(opts...)
	require.NoError(t, err)
	t.Cleanup(loader.Release)
	return loader
}

// companyArray renders n companies named by index.
func companyArray(n int) string {
	records := make([]string, n)
	for i := range records {
		records[i] = fmt.Sprintf(`{"index": %d, "company": "COMPANY%d"}`, i, i)
	}
	return "[" + strings.Join(records, ",") + "]"
}

func TestNewLoader(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		loader := newTestLoader(t)
		assert.GreaterOrEqual(t, loader.pool.Cap(), 1)
	})

	t.Run("with pool size", func(t *testing.T) {
		loader := newTestLoader(t, WithPoolSize(3))
		assert.Equal(t, 3, loader.pool.Cap())
	})

	t.Run("pool size below one is raised to one", func(t *testing.T) {
		loader := newTestLoader(t, WithPoolSize(0))
		assert.Equal(t, 1, loader.pool.Cap())
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		loader := newTestLoader(t, WithLogger(nil))
		assert.Equal(t, slog.Default(), loader.logger)
	})

	t.Run("failing option", func(t *testing.T) {
		_, err := NewLoader(func(*Loader) error { return assert.AnError })
		assert.Equal(t, assert.AnError, err)
	})
}

func TestLoadCompanies_KeepsOrder(t *testing.T) {
	loader := newTestLoader(t, WithPoolSize(4))

	// Several chunks so decoding really runs in parallel.
	n := decodeChunkSize*3 + 17
	companies, err := loader.LoadCompanies(context.Background(), strings.NewReader(companyArray(n)))
	require.NoError(t, err)
	require.Len(t, companies, n)
	for i, company := range companies {
		assert.Equal(t, core.CompanyID(i), company.ID)
		assert.Equal(t, fmt.Sprintf("COMPANY%d", i), company.Name)
	}
}

func TestLoadCompanies_Empty(t *testing.T) {
	loader := newTestLoader(t)

	companies, err := loader.LoadCompanies(context.Background(), strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, companies)
}

func TestLoadCompanies_MalformedRecordAbortsLoad(t *testing.T) {
	loader := newTestLoader(t, WithPoolSize(2))

	var records []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(companyArray(decodeChunkSize*2)), &records))
	bad := decodeChunkSize + 5
	records[bad] = json.RawMessage(`{"index": 1}`)
	input, err := json.Marshal(records)
	require.NoError(t, err)

	companies, err := loader.LoadCompanies(context.Background(), strings.NewReader(string(input)))
	require.Error(t, err)
	assert.Nil(t, companies)
	assert.ErrorIs(t, err, codec.ErrMalformedRecord)
	assert.Contains(t, err.Error(), fmt.Sprintf("company record %d", bad))
	assert.Contains(t, err.Error(), `"company"`)
}

func TestLoadCompanies_NotAnArray(t *testing.T) {
	loader := newTestLoader(t)

	_, err := loader.LoadCompanies(context.Background(), strings.NewReader(`{"index": 0}`))
	assert.ErrorIs(t, err, codec.ErrMalformedRecord)
}

func TestLoadCompanies_Canceled(t *testing.T) {
	loader := newTestLoader(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.LoadCompanies(ctx, strings.NewReader(companyArray(10)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadPeople(t *testing.T) {
	loader := newTestLoader(t)

	f, err := os.Open(peopleFile)
	require.NoError(t, err)
	defer f.Close()

	people, err := loader.LoadPeople(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, people, 7)

	assert.Equal(t, "Carmella Lambert", people[0].Name)
	assert.Equal(t, []core.PersonID{2, 3, 4, 5, 99}, people[0].FriendIDs)
	assert.Equal(t, "2234.5", people[1].Balance.String())
	assert.True(t, people[5].HasDied)
	assert.Nil(t, people[6].CompanyID)
}

func TestLoadFiles(t *testing.T) {
	loader := newTestLoader(t)

	dataset, err := loader.LoadFiles(context.Background(), companiesFile, peopleFile)
	require.NoError(t, err)
	assert.Len(t, dataset.Companies, 3)
	assert.Len(t, dataset.People, 7)
	assert.Equal(t, 10, dataset.Len())

	t.Run("missing companies file", func(t *testing.T) {
		_, err := loader.LoadFiles(context.Background(), "testdata/nope.json", peopleFile)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("missing people file", func(t *testing.T) {
		_, err := loader.LoadFiles(context.Background(), companiesFile, "testdata/nope.json")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file names the path", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "people.json")
		require.NoError(t, os.WriteFile(bad, []byte(`[{"index": 0}]`), 0644))

		_, err := loader.LoadFiles(context.Background(), companiesFile, bad)
		require.Error(t, err)
		assert.ErrorIs(t, err, codec.ErrMissingField)
		assert.Contains(t, err.Error(), bad)
		assert.Contains(t, err.Error(), "person record 0")
	})
}
