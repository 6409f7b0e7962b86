// Package generator builds one fixture database: it drops the variant's
// tables, migrates them, seeds them and writes a summary manifest.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yukikurage/demodb/internal/database"
	"github.com/yukikurage/demodb/internal/schema"
	"github.com/yukikurage/demodb/internal/seeder"
)

// ErrConfirmationRequired is returned when tables exist and nobody can be
// asked whether to drop them.
var ErrConfirmationRequired = errors.New("existing tables found; rerun with --yes-to-all to drop them")

// ConfirmFunc asks whether the listed tables may be dropped.
type ConfirmFunc func(tables []string) (bool, error)

// Options configures a run.
type Options struct {
	Schema           string
	Provider         string
	ConnectionString string
	// Output is the directory for the SQLite file and the manifest.
	Output   string
	YesToAll bool
	Verbose  bool
	// Seed makes the data reproducible. Zero picks one at random.
	Seed    uint64
	Confirm ConfirmFunc
	Logger  *slog.Logger
}

// Result describes a finished run.
type Result struct {
	Schema   string
	Provider database.Provider
	Target   string
	Seed     uint64
	Summary  seeder.Summary
	Manifest string
	// Declined is set when the user refused to drop existing tables.
	// Nothing was written in that case; Manifest names the one left by an
	// earlier run, if any.
	Declined bool
}

// Manifest is the YAML summary written next to the generated data.
type Manifest struct {
	Schema      string         `yaml:"schema"`
	Provider    string         `yaml:"provider"`
	Target      string         `yaml:"target,omitempty"`
	Seed        uint64         `yaml:"seed"`
	GeneratedAt time.Time      `yaml:"generated_at"`
	Tables      seeder.Summary `yaml:"tables"`
	TotalRows   int            `yaml:"total_rows"`
}

// Run generates the fixture described by opts.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	variant, err := schema.Lookup(opts.Schema)
	if err != nil {
		return nil, err
	}
	provider, err := database.ParseProvider(opts.Provider)
	if err != nil {
		return nil, err
	}

	output := opts.Output
	if output == "" {
		output = "."
	}
	if err := os.MkdirAll(output, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	dsn := opts.ConnectionString
	if dsn == "" {
		if provider != database.SQLite {
			return nil, fmt.Errorf("--connection-string is required for provider %s", provider)
		}
		dsn = filepath.Join(output, variant.Name+".sqlite")
	}

	result := &Result{
		Schema:   variant.Name,
		Provider: provider,
		Seed:     opts.Seed,
		Manifest: filepath.Join(output, variant.Name+".seed.yaml"),
	}
	if provider == database.SQLite {
		result.Target = dsn
	}

	log.Debug("opening database", "provider", provider, "schema", variant.Name)
	db, err := database.Open(provider, dsn, database.Options{Verbose: opts.Verbose, Logger: log})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("failed to close database", "error", err)
		}
	}()

	existing, err := database.ExistingTables(db, variant.Models...)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 && !opts.YesToAll {
		if opts.Confirm == nil {
			return nil, ErrConfirmationRequired
		}
		ok, err := opts.Confirm(existing)
		if err != nil {
			return nil, fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			log.Info("keeping existing tables", "tables", existing)
			result.Declined = true
			return result, nil
		}
	}

	if len(existing) > 0 {
		log.Info("dropping existing tables", "tables", existing)
		if err := database.Drop(db, variant.Models...); err != nil {
			return nil, err
		}
	}

	log.Debug("migrating schema", "schema", variant.Name)
	if err := database.Migrate(db, variant.Models...); err != nil {
		return nil, err
	}

	if result.Seed == 0 {
		result.Seed = seeder.RandomSeed()
	}
	log.Debug("seeding", "schema", variant.Name, "seed", result.Seed)
	summary, err := variant.Seed(ctx, db, seeder.Options{Seed: result.Seed})
	if err != nil {
		return nil, err
	}
	result.Summary = summary

	if err := writeManifest(result.Manifest, Manifest{
		Schema:      result.Schema,
		Provider:    string(provider),
		Target:      result.Target,
		Seed:        result.Seed,
		GeneratedAt: database.Now(),
		Tables:      summary,
		TotalRows:   summary.Total(),
	}); err != nil {
		return nil, err
	}

	log.Info("database generated", "schema", variant.Name, "rows", summary.Total())
	return result, nil
}

func writeManifest(path string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a manifest written by Run.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return &m, nil
}
