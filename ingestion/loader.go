package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/paranuara/codec"
	"github.com/poiesic/paranuara/core"
)

// decodeChunkSize is how many records one pool task decodes.
const decodeChunkSize = 128

// Loader decodes dataset files on a worker pool.
type Loader struct {
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader) error

// WithPoolSize sets the worker pool size for concurrent decoding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if l.pool != nil {
			l.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		l.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a new loader.
func NewLoader(opts ...Option) (*Loader, error) {
	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		pool:   pool,
		logger: slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(l); optErr != nil {
			l.Release()
			return nil, optErr
		}
	}

	return l, nil
}

// Release releases the worker pool.
// The loader should not be used after calling Release.
func (l *Loader) Release() {
	if l.pool != nil {
		l.pool.Release()
	}
}

// LoadCompanies decodes a JSON array of company records.
func (l *Loader) LoadCompanies(ctx context.Context, r io.Reader) ([]*core.Company, error) {
	records, err := codec.ReadRecords(r)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, l, records, codec.DecodeCompany, "company")
}

// LoadPeople decodes a JSON array of person records.
func (l *Loader) LoadPeople(ctx context.Context, r io.Reader) ([]*core.Person, error) {
	records, err := codec.ReadRecords(r)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, l, records, codec.DecodePerson, "person")
}

// LoadFiles reads the companies file and then the people file.
func (l *Loader) LoadFiles(ctx context.Context, companiesPath, peoplePath string) (*Dataset, error) {
	companies, err := loadFile(ctx, companiesPath, l.LoadCompanies)
	if err != nil {
		return nil, err
	}
	people, err := loadFile(ctx, peoplePath, l.LoadPeople)
	if err != nil {
		return nil, err
	}

	l.logger.Info("loaded dataset", "companies", len(companies), "people", len(people))
	return &Dataset{Companies: companies, People: people}, nil
}

func loadFile[T any](ctx context.Context, path string, load func(context.Context, io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := load(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// decodeAll decodes records in chunks on the pool, keeping input order.
// The first failing record stops the remaining work.
func decodeAll[T any](ctx context.Context, l *Loader, records []json.RawMessage, decode func(json.RawMessage) (T, error), kind string) ([]T, error) {
	out := make([]T, len(records))
	chunks := (len(records) + decodeChunkSize - 1) / decodeChunkSize
	errs := make([]error, chunks)

	var (
		wg     sync.WaitGroup
		failed atomic.Bool
	)
	for c := range chunks {
		start := c * decodeChunkSize
		end := min(start+decodeChunkSize, len(records))

		wg.Add(1)
		err := l.pool.Submit(func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				if failed.Load() || ctx.Err() != nil {
					return
				}
				v, err := decode(records[i])
				if err != nil {
					errs[c] = fmt.Errorf("%s record %d: %w", kind, i, err)
					failed.Store(true)
					return
				}
				out[i] = v
			}
		})
		if err != nil {
			wg.Done()
			failed.Store(true)
			wg.Wait()
			return nil, fmt.Errorf("%w: %w", ErrPoolSubmit, err)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	l.logger.Debug("decoded records", "kind", kind, "count", len(out))
	return out, nil
}
