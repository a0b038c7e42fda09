package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/paranuara/core"
	"github.com/poiesic/paranuara/storage"
)

// loadBatchSize is how many records Load writes per transaction.
const loadBatchSize = 500

// ProgressFunc receives the number of records written so far and the total to write.
type ProgressFunc func(done, total int)

// Repository implements storage.Repository for BadgerDB.
// Companies and people are stored as dataset documents keyed by natural id.
type Repository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.Repository = (*Repository)(nil)

// Counts reports how many records the store holds.
type Counts struct {
	Companies int
	People    int
}

// NewRepository creates a new Repository over an open backend.
// The repository takes ownership of the backend and closes it on Close.
func NewRepository(backend *Backend) (*Repository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &Repository{
		backend: backend,
		logger:  backend.logger.With("component", "document-store"),
	}, nil
}

// Close closes the underlying backend.
func (r *Repository) Close() error {
	if r.backend.IsClosed() {
		return nil
	}
	return r.backend.Close()
}

// Load upserts every company and then every person, keyed by natural id.
// Loading the same records twice leaves the store unchanged. progress may be nil.
// Returns storage.ErrDuplicateKey, before writing anything, if two companies or
// two people in the same call share an id.
func (r *Repository) Load(ctx context.Context, companies []*core.Company, people []*core.Person, progress ProgressFunc) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if err := storage.CheckUniqueIDs(companies, people); err != nil {
		return err
	}

	total := len(companies) + len(people)
	done := 0
	report := func(n int) {
		done += n
		if progress != nil {
			progress(done, total)
		}
	}

	for start := 0; start < len(companies); start += loadBatchSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		batch := companies[start:min(start+loadBatchSize, len(companies))]
		if err := retryConflicts(ctx, r.logger, func() error { return r.putCompanies(batch) }); err != nil {
			return err
		}
		report(len(batch))
	}

	for start := 0; start < len(people); start += loadBatchSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		batch := people[start:min(start+loadBatchSize, len(people))]
		if err := retryConflicts(ctx, r.logger, func() error { return r.putPeople(batch) }); err != nil {
			return err
		}
		report(len(batch))
	}

	r.logger.Debug("load complete", "companies", len(companies), "people", len(people))
	return nil
}

func (r *Repository) putCompanies(companies []*core.Company) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, company := range companies {
			if err := core.ValidateCompany(company); err != nil {
				return err
			}
			value, err := storage.MarshalCompany(company)
			if err != nil {
				return err
			}
			if err := tx.Set(makeCompanyKey(company.ID), value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

func (r *Repository) putPeople(people []*core.Person) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, person := range people {
			if err := core.ValidatePerson(person); err != nil {
				return err
			}
			key := makePersonKey(person.ID)

			// Drop the employer index entry if the person changed company
			old, err := readPerson(tx, key)
			if err != nil {
				return err
			}
			if old != nil && old.CompanyID != nil && !person.WorksAt(*old.CompanyID) {
				if err := tx.Delete(makePersonCompanyKey(*old.CompanyID, old.ID)); err != nil {
					return err
				}
			}

			value, err := storage.MarshalPerson(person)
			if err != nil {
				return err
			}
			if err := tx.Set(key, value); err != nil {
				return err
			}

			if person.CompanyID != nil {
				indexKey := makePersonCompanyKey(*person.CompanyID, person.ID)
				if err := tx.Set(indexKey, storage.MarshalID(person.ID)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)
}

// FetchCompany retrieves a single company by id.
func (r *Repository) FetchCompany(ctx context.Context, id core.CompanyID) (*core.Company, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	var result *core.Company
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readCompany(tx, makeCompanyKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return fmt.Errorf("%w: %d", storage.ErrCompanyNotFound, id)
		}
		return nil
	}, false)
	return result, err
}

// FetchPeopleByCompany scans the employer index. People come back in ascending id order.
func (r *Repository) FetchPeopleByCompany(ctx context.Context, id core.CompanyID) ([]*core.Person, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	results := []*core.Person{}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialPersonCompanyKey(id)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			// Read the person ID from the index
			var personID core.PersonID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				personID, err = storage.UnmarshalID[core.PersonID](val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			person, err := readPerson(tx, makePersonKey(personID))
			if err != nil {
				return err
			}
			if person != nil {
				results = append(results, person)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// FetchPerson retrieves a single person by id.
func (r *Repository) FetchPerson(ctx context.Context, id core.PersonID) (*core.Person, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	var result *core.Person
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readPerson(tx, makePersonKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return fmt.Errorf("%w: %d", storage.ErrPersonNotFound, id)
		}
		return nil
	}, false)
	return result, err
}

// FetchPeopleByIDs retrieves people in the order of ids.
// Each id is a separate point lookup, so the cost grows with len(ids).
func (r *Repository) FetchPeopleByIDs(ctx context.Context, ids ...core.PersonID) ([]*core.Person, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	results := make([]*core.Person, 0, len(ids))
	for _, id := range ids {
		person, err := r.FetchPerson(ctx, id)
		if errors.Is(err, storage.ErrPersonNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		results = append(results, person)
	}
	return results, nil
}

// Count reports how many companies and people are stored.
func (r *Repository) Count(ctx context.Context) (Counts, error) {
	var counts Counts
	if err := r.check(ctx); err != nil {
		return counts, err
	}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		if counts.Companies, err = countPrefix(tx, companyPrefix+":"); err != nil {
			return err
		}
		counts.People, err = countPrefix(tx, personPrefix+":")
		return err
	}, false)
	return counts, err
}

func (r *Repository) check(ctx context.Context) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	return ctx.Err()
}

// Helper methods

// readCompany reads a company from the transaction.
// Returns nil, nil if the key does not exist.
func readCompany(tx *badger.Txn, key []byte) (*core.Company, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var company *core.Company
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		company, unmarshalErr = storage.UnmarshalCompany(val)
		return unmarshalErr
	})
	return company, err
}

// readPerson reads a person from the transaction.
// Returns nil, nil if the key does not exist.
func readPerson(tx *badger.Txn, key []byte) (*core.Person, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var person *core.Person
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		person, unmarshalErr = storage.UnmarshalPerson(val)
		return unmarshalErr
	})
	return person, err
}

// countPrefix counts keys under prefix without reading values.
func countPrefix(tx *badger.Txn, prefix string) (int, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)
	defer iter.Close()

	count := 0
	for iter.Rewind(); iter.Valid(); iter.Next() {
		count++
	}
	return count, nil
}
