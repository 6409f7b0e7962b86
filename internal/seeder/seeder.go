// Package seeder fills an empty store with a random but self-consistent
// dataset. Tables are written parents first, one batch per table, so each
// phase can reference the ids assigned by the one before it. Any failure
// aborts the run.
package seeder

import (
	"time"

	"github.com/yukikurage/demodb/internal/database"
	"github.com/yukikurage/demodb/internal/models"
)

// Options controls a seeding run.
type Options struct {
	// Seed makes the run reproducible. Zero picks a random seed.
	Seed uint64
	// Now anchors every generated time window. Zero means the store clock.
	Now time.Time
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return database.Now()
	}
	return o.Now.UTC().Truncate(time.Millisecond)
}

// TableCount is the number of rows written to one table.
type TableCount struct {
	Table string `yaml:"table" json:"table"`
	Rows  int    `yaml:"rows" json:"rows"`
}

// Summary lists the rows written per table, in insertion order.
type Summary []TableCount

func (s *Summary) add(table string, rows int) {
	*s = append(*s, TableCount{Table: table, Rows: rows})
}

// Total is the number of rows written across all tables.
func (s Summary) Total() int {
	total := 0
	for _, t := range s {
		total += t.Rows
	}
	return total
}

// Rows returns the count recorded for table.
func (s Summary) Rows(table string) int {
	for _, t := range s {
		if t.Table == table {
			return t.Rows
		}
	}
	return 0
}

// stamps draws created_at from [from, to] and updated_at from [created_at, now].
func stamps(f *Faker, from, to, now time.Time) models.Timestamps {
	created := f.Between(from, to)
	return models.Timestamps{CreatedAt: created, UpdatedAt: f.Between(created, now)}
}

func ptr[T any](v T) *T {
	return &v
}
