package database

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type widget struct {
	ID   uint64 `gorm:"primarykey"`
	Name string
}

type part struct {
	ID       uint64 `gorm:"primarykey"`
	WidgetID uint64 `gorm:"not null"`
	Widget   *widget
}

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(SQLite, ":memory:", Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestParseProvider(t *testing.T) {
	cases := map[string]Provider{
		"":           SQLite,
		"sqlite":     SQLite,
		"SQLite3":    SQLite,
		"postgres":   Postgres,
		"PostgreSQL": Postgres,
		" mysql ":    MySQL,
	}
	for in, want := range cases {
		got, err := ParseProvider(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseProvider("sqlserver")
	assert.ErrorContains(t, err, "unsupported data provider")
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "demo.sqlite?_foreign_keys=on", sqliteDSN("demo.sqlite"))
	assert.Equal(t, "file:demo.sqlite?cache=shared&_foreign_keys=on", sqliteDSN("file:demo.sqlite?cache=shared"))
	assert.Equal(t, "demo.sqlite?_fk=1", sqliteDSN("demo.sqlite?_fk=1"))
}

func TestMySQLDSN(t *testing.T) {
	assert.Equal(t, "user:pw@tcp(db:3306)/demo?parseTime=true&loc=UTC", mysqlDSN("user:pw@tcp(db:3306)/demo"))
	assert.Equal(t, "user:pw@tcp(db:3306)/demo?charset=utf8mb4&parseTime=true&loc=UTC", mysqlDSN("user:pw@tcp(db:3306)/demo?charset=utf8mb4"))
	assert.Equal(t, "u@/demo?parseTime=True&loc=UTC", mysqlDSN("u@/demo?parseTime=True"))
	assert.Equal(t, "u@/demo?parseTime=true&loc=Local", mysqlDSN("u@/demo?parseTime=true&loc=Local"))
}

func TestFoldLower(t *testing.T) {
	assert.Equal(t, "äuth", foldLower("ÄUTH"))
	assert.Equal(t, []byte("abc"), foldLower([]byte("ABC")))
	assert.Nil(t, foldLower([]byte(nil)))
	assert.Equal(t, int64(7), foldLower(int64(7)))
}

func TestNow(t *testing.T) {
	now := Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Millisecond))
}

func TestOpen_ForeignKeysEnforced(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, Migrate(db, &widget{}, &part{}))

	err := db.Create(&part{WidgetID: 42}).Error
	assert.Error(t, err)
}

func TestMigrateDropAndExistingTables(t *testing.T) {
	db := openMemory(t)
	models := []any{&widget{}, &part{}}

	assert.False(t, HasAnyTable(db, models...))

	require.NoError(t, Migrate(db, models...))
	assert.True(t, HasAnyTable(db, models...))

	tables, err := ExistingTables(db, models...)
	require.NoError(t, err)
	assert.Equal(t, []string{"widgets", "parts"}, tables)
	name, err := TableName(db, &part{})
	require.NoError(t, err)
	assert.Equal(t, "parts", name)

	require.NoError(t, Drop(db, models...))
	assert.False(t, HasAnyTable(db, models...))

	// Dropping again is a no-op
	require.NoError(t, Drop(db, models...))
}
