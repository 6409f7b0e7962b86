package database

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Provider names a supported database backend.
type Provider string

const (
	SQLite   Provider = "sqlite"
	Postgres Provider = "postgres"
	MySQL    Provider = "mysql"
)

// ParseProvider accepts a provider name or one of its common aliases.
func ParseProvider(name string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql", "pgsql":
		return Postgres, nil
	case "mysql", "mariadb":
		return MySQL, nil
	default:
		return "", fmt.Errorf("unsupported data provider %q (want sqlite, postgres or mysql)", name)
	}
}

// sqliteDriver is go-sqlite3 with LOWER replaced by a Unicode-aware fold,
// so that Search matches non-ASCII text the way Postgres and MySQL do.
const sqliteDriver = "sqlite3_demodb"

func init() {
	sql.Register(sqliteDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", foldLower, true)
		},
	})
}

func foldLower(v any) any {
	switch s := v.(type) {
	case string:
		return strings.ToLower(s)
	case []byte:
		if s == nil {
			return nil
		}
		return bytes.ToLower(s)
	default:
		return v
	}
}

// Options tunes a connection.
type Options struct {
	// Verbose logs every SQL statement.
	Verbose bool
	Logger  *slog.Logger
}

// Now is the store clock. Timestamps are kept in UTC at millisecond
// precision so that values read back compare equal on every provider.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Dialector builds the GORM dialector for a provider and DSN.
func Dialector(provider Provider, dsn string) (gorm.Dialector, error) {
	switch provider {
	case SQLite:
		return sqlite.New(sqlite.Config{DriverName: sqliteDriver, DSN: sqliteDSN(dsn)}), nil
	case Postgres:
		return postgres.Open(dsn), nil
	case MySQL:
		return mysql.Open(mysqlDSN(dsn)), nil
	default:
		return nil, fmt.Errorf("unsupported data provider %q", provider)
	}
}

// Open connects to the store and verifies the connection.
func Open(provider Provider, dsn string, opts Options) (*gorm.DB, error) {
	dialector, err := Dialector(provider, dsn)
	if err != nil {
		return nil, err
	}

	db, err := OpenDialector(dialector, opts)
	if err != nil {
		return nil, err
	}

	if provider == SQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		// One connection keeps :memory: databases and the foreign_keys pragma consistent.
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	return db, nil
}

// OpenDialector opens GORM over an already built dialector.
func OpenDialector(dialector gorm.Dialector, opts Options) (*gorm.DB, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	level := logger.Warn
	if opts.Verbose {
		level = logger.Info
	}

	gormLogger := logger.New(
		&slogWriter{log: log},
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		NowFunc:        Now,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// mysqlDSN makes the driver scan DATETIME columns into time.Time in UTC.
func mysqlDSN(dsn string) string {
	lower := strings.ToLower(dsn)
	var params []string
	if !strings.Contains(lower, "parsetime=") {
		params = append(params, "parseTime=true")
	}
	if !strings.Contains(lower, "loc=") {
		params = append(params, "loc=UTC")
	}
	if len(params) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

// slogWriter routes GORM's log lines into slog.
type slogWriter struct {
	log *slog.Logger
}

func (w *slogWriter) Printf(format string, args ...interface{}) {
	w.log.Info(strings.TrimSpace(fmt.Sprintf(format, args...)), "component", "gorm")
}
