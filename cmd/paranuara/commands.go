package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/paranuara"
	"github.com/poiesic/paranuara/config"
	"github.com/poiesic/paranuara/core"
	"github.com/poiesic/paranuara/ingestion"
	"github.com/poiesic/paranuara/server"
	"github.com/poiesic/paranuara/storage/badger"
)

func serveCommand(c *cli.Context) error {
	cfg, err := configFrom(c)
	if err != nil {
		return err
	}
	if c.IsSet("addr") {
		cfg.Addr = c.String("addr")
	}
	if c.IsSet("backend") {
		cfg.Backend = c.String("backend")
	}
	if c.IsSet("db") {
		cfg.BadgerPath = c.String("db")
		cfg.Backend = config.BackendBadger
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := paranuara.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open dataset: %w", err)
	}
	defer db.Close()

	router, err := server.NewRouter(db.Query(), slog.Default())
	if err != nil {
		return err
	}
	return server.Run(ctx, cfg.Addr, router)
}

func syncCommand(c *cli.Context) error {
	cfg, err := configFrom(c)
	if err != nil {
		return err
	}
	ctx := c.Context
	dbPath := c.String("db")

	dataset, err := paranuara.LoadDataset(ctx, cfg, slog.Default())
	if err != nil {
		return err
	}

	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	repo, err := badger.NewRepository(backend)
	if err != nil {
		backend.Close()
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	fmt.Fprintf(c.App.ErrWriter, "Database: %s\n", dbPath)
	fmt.Fprintf(c.App.ErrWriter, "Companies: %d, people: %d\n", len(dataset.Companies), len(dataset.People))

	progress := ingestion.NewProgressTracker(c.App.ErrWriter, dataset.Len(), c.Int("report-interval"))
	progress.Start()
	if err := repo.Load(ctx, dataset.Companies, dataset.People, progress.Observe); err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	progress.Finish()

	counts, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	slog.Info("sync complete", "companies", counts.Companies, "people", counts.People, "elapsed", progress.Elapsed())
	return nil
}

func companiesCommand(c *cli.Context) error {
	cfg, err := configFrom(c)
	if err != nil {
		return err
	}
	path := cfg.CompaniesFile
	if c.IsSet("companies") {
		path = c.String("companies")
	}
	if c.Args().Present() {
		path = c.Args().First()
	}

	loader, err := newLoader(cfg)
	if err != nil {
		return err
	}
	defer loader.Release()

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	companies, err := loader.LoadCompanies(c.Context, f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, company := range companies {
		fmt.Fprintf(c.App.Writer, "%d\t%s\n", company.ID, company.Name)
	}
	return nil
}

func foodsCommand(c *cli.Context) error {
	cfg, err := configFrom(c)
	if err != nil {
		return err
	}
	path := cfg.PeopleFile
	if c.IsSet("people") {
		path = c.String("people")
	}
	if c.Args().Present() {
		path = c.Args().First()
	}

	loader, err := newLoader(cfg)
	if err != nil {
		return err
	}
	defer loader.Release()

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	people, err := loader.LoadPeople(c.Context, f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	dataset := &ingestion.Dataset{People: people}
	for _, food := range dataset.Foods() {
		kind := "other"
		switch {
		case core.IsFruit(food):
			kind = "fruit"
		case core.IsVegetable(food):
			kind = "vegetable"
		}
		fmt.Fprintf(c.App.Writer, "%s\t%s\n", food, kind)
	}
	return nil
}

func employeesCommand(c *cli.Context) error {
	ids, err := parseIDs(c, 1)
	if err != nil {
		return err
	}
	return withDatabase(c, func(ctx context.Context, db *paranuara.Database) error {
		people, err := db.Query().CompanyEmployees(ctx, core.CompanyID(ids[0]))
		if err != nil {
			return err
		}
		return printJSON(c, server.NewPeopleView(people))
	})
}

func personCommand(c *cli.Context) error {
	ids, err := parseIDs(c, 1)
	if err != nil {
		return err
	}
	return withDatabase(c, func(ctx context.Context, db *paranuara.Database) error {
		person, err := db.Query().Person(ctx, core.PersonID(ids[0]))
		if err != nil {
			return err
		}
		return printJSON(c, server.NewPersonView(person))
	})
}

func joinCommand(c *cli.Context) error {
	ids, err := parseIDs(c, 2)
	if err != nil {
		return err
	}
	return withDatabase(c, func(ctx context.Context, db *paranuara.Database) error {
		result, err := db.Query().JoinFriends(ctx, core.PersonID(ids[0]), core.PersonID(ids[1]))
		if err != nil {
			return err
		}
		return printJSON(c, server.NewJoinView(result))
	})
}

func withDatabase(c *cli.Context, fn func(context.Context, *paranuara.Database) error) error {
	cfg, err := configFrom(c)
	if err != nil {
		return err
	}
	db, err := paranuara.Open(c.Context, cfg)
	if err != nil {
		return fmt.Errorf("failed to open dataset: %w", err)
	}
	defer db.Close()
	return fn(c.Context, db)
}

func newLoader(cfg *config.Config) (*ingestion.Loader, error) {
	var opts []ingestion.Option
	if cfg.PoolSize > 0 {
		opts = append(opts, ingestion.WithPoolSize(cfg.PoolSize))
	}
	return ingestion.NewLoader(opts...)
}

// parseIDs reads exactly n non-negative integer arguments.
func parseIDs(c *cli.Context, n int) ([]int64, error) {
	if c.NArg() != n {
		return nil, fmt.Errorf("expected %d id argument(s), got %d", n, c.NArg())
	}
	ids := make([]int64, n)
	for i := range n {
		id, err := strconv.ParseInt(c.Args().Get(i), 10, 64)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("invalid id %q", c.Args().Get(i))
		}
		ids[i] = id
	}
	return ids, nil
}

func printJSON(c *cli.Context, v any) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
