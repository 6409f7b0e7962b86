package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yukikurage/demodb/internal/constants"
	"github.com/yukikurage/demodb/internal/database"
	apierrors "github.com/yukikurage/demodb/internal/errors"
	"github.com/yukikurage/demodb/internal/models"
)

// BatchSize is the number of rows per INSERT statement in CreateBatch.
const BatchSize = 200

// ErrUnlisted is returned by List and Lookup on a table built without a
// label column.
var ErrUnlisted = errors.New("table has no list or lookup")

// Table is the store access for one timestamped entity. The store owns
// created_at and updated_at: it stamps them on insert and advances
// updated_at on every replace.
type Table[T any, P interface {
	*T
	models.Record
}] struct {
	db     *gorm.DB
	label  string
	search []string
}

// NewTable returns a Table over db. label is the text column shown by Lookup
// and search lists the text columns List filters on, defaulting to label.
// An empty label builds a table that is only reached by id.
func NewTable[T any, P interface {
	*T
	models.Record
}](db *gorm.DB, label string, search ...string) *Table[T, P] {
	if len(search) == 0 && label != "" {
		search = []string{label}
	}
	return &Table[T, P]{db: db, label: label, search: search}
}

// Create inserts row and assigns its id. Zero timestamps are set to the
// store clock.
func (t *Table[T, P]) Create(ctx context.Context, row *T) error {
	if err := stamp(P(row).Stamps()); err != nil {
		return err
	}
	if err := t.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return Translate(err)
	}
	return nil
}

// CreateBatch inserts rows in a single transaction, BatchSize rows per
// statement, and assigns their ids.
func (t *Table[T, P]) CreateBatch(ctx context.Context, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		if err := stamp(P(&rows[i]).Stamps()); err != nil {
			return err
		}
	}
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).CreateInBatches(&rows, BatchSize).Error
	})
	return Translate(err)
}

// FindByID returns the row with id, preloading the named relations.
func (t *Table[T, P]) FindByID(ctx context.Context, id uint64, preload ...string) (*T, error) {
	var row T
	query := t.db.WithContext(ctx)
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&row, id).Error; err != nil {
		return nil, Translate(err)
	}
	return &row, nil
}

// List returns one page of rows matching filter, newest first.
func (t *Table[T, P]) List(ctx context.Context, filter string, page int) ([]T, error) {
	if t.label == "" {
		return nil, ErrUnlisted
	}
	rows := []T{}
	err := t.db.WithContext(ctx).
		Scopes(database.Search(filter, t.search...), database.Paginate(page)).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, Translate(err)
	}
	return rows, nil
}

// Lookup returns id/label options whose label contains query, ordered by label.
func (t *Table[T, P]) Lookup(ctx context.Context, query string) ([]models.Option, error) {
	if t.label == "" {
		return nil, ErrUnlisted
	}
	options := []models.Option{}
	err := t.db.WithContext(ctx).
		Model(new(T)).
		Select(fmt.Sprintf("id AS value, %s AS label", t.label)).
		Scopes(database.Search(query, t.label)).
		Order(t.label).Order("id").
		Limit(constants.PageSize).
		Scan(&options).Error
	if err != nil {
		return nil, Translate(err)
	}
	return options, nil
}

// Count returns the number of rows in the table.
func (t *Table[T, P]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := t.db.WithContext(ctx).Model(new(T)).Count(&n).Error; err != nil {
		return 0, Translate(err)
	}
	return n, nil
}

// Replace overwrites every column of the row with id. The stored created_at
// is kept and updated_at moves forward. On success row holds the stored row.
func (t *Table[T, P]) Replace(ctx context.Context, id uint64, row *T) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := t.current(tx, id)
		if err != nil {
			return err
		}
		return t.write(tx, id, row, current, false)
	})
}

// ReplaceIfUnchanged is Replace guarded by the updated_at concurrency token.
// It fails with ErrConflict when the stored updated_at differs from token,
// including when another writer commits between the read and the update.
func (t *Table[T, P]) ReplaceIfUnchanged(ctx context.Context, id uint64, token time.Time, row *T) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := t.current(tx, id)
		if err != nil {
			return err
		}
		if !current.UpdatedAt.Equal(token.UTC().Truncate(time.Millisecond)) {
			return fmt.Errorf("%w: expected updated_at %s, stored %s",
				apierrors.ErrConflict,
				token.UTC().Format(time.RFC3339Nano),
				current.UpdatedAt.Format(time.RFC3339Nano))
		}
		return t.write(tx, id, row, current, true)
	})
}

// Delete removes the row with id. Dependent rows follow the foreign keys'
// delete rules.
func (t *Table[T, P]) Delete(ctx context.Context, id uint64) error {
	result := t.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apierrors.ErrNotFound
	}
	return nil
}

func (t *Table[T, P]) current(tx *gorm.DB, id uint64) (models.Timestamps, error) {
	var stored T
	if err := tx.First(&stored, id).Error; err != nil {
		return models.Timestamps{}, Translate(err)
	}
	return *P(&stored).Stamps(), nil
}

func (t *Table[T, P]) write(tx *gorm.DB, id uint64, row *T, prev models.Timestamps, guarded bool) error {
	ts := P(row).Stamps()
	ts.CreatedAt = prev.CreatedAt
	ts.UpdatedAt = next(prev.UpdatedAt)

	query := tx.Model(new(T)).Where("id = ?", id)
	if guarded {
		query = query.Where("updated_at = ?", prev.UpdatedAt)
	}

	result := query.Select("*").Omit("id", clause.Associations).Updates(row)
	if result.Error != nil {
		return Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		if guarded {
			return fmt.Errorf("%w: row %d changed during update", apierrors.ErrConflict, id)
		}
		return apierrors.ErrNotFound
	}

	var stored T
	if err := tx.First(&stored, id).Error; err != nil {
		return Translate(err)
	}
	*row = stored
	return nil
}

// stamp normalises ts to the store clock's precision and fills zero values.
func stamp(ts *models.Timestamps) error {
	now := database.Now()
	if ts.CreatedAt.IsZero() {
		ts.CreatedAt = now
	}
	ts.CreatedAt = ts.CreatedAt.UTC().Truncate(time.Millisecond)
	if ts.UpdatedAt.IsZero() {
		ts.UpdatedAt = ts.CreatedAt
		if now.After(ts.UpdatedAt) {
			ts.UpdatedAt = now
		}
	}
	ts.UpdatedAt = ts.UpdatedAt.UTC().Truncate(time.Millisecond)
	if ts.UpdatedAt.Before(ts.CreatedAt) {
		return fmt.Errorf("%w: updated_at is before created_at", apierrors.ErrInvalid)
	}
	return nil
}

// next is the updated_at that follows prev: now, or one millisecond past
// prev when the clock has not advanced.
func next(prev time.Time) time.Time {
	now := database.Now()
	if floor := prev.Add(time.Millisecond); now.Before(floor) {
		return floor
	}
	return now
}
