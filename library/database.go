package library

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const catalogTable = "catalog_items"

var catalogColumns = []string{
	"item_uid", "position", "title", "author", "genre",
	"page_count", "kind", "cover", "format", "status",
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Database stores the catalog fixture in SQLite. It implements CatalogSource.
type Database struct {
	db  *sqlx.DB
	log *zap.Logger
}

// NewDatabase opens (or creates) the SQLite database at dbPath and applies
// schema migrations.
func NewDatabase(dbPath string, log *zap.Logger) (*Database, error) {
	if log == nil {
		log = zap.NewNop()
	}
	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create db dir")
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1&_journal_mode=WAL", dbPath)
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}

	if err := applyMigrations(db, log); err != nil {
		db.Close()
		return nil, err
	}
	return &Database{db: db, log: log.Named("db")}, nil
}

// Close closes the DB.
func (d *Database) Close() error { return d.db.Close() }

// ---------------------------------------------------------------------------
// Schema migration
// ---------------------------------------------------------------------------

type gooseLogger struct{ *zap.SugaredLogger }

func (l gooseLogger) Printf(format string, v ...interface{}) { l.Debugf(format, v...) }

func applyMigrations(db *sqlx.DB, log *zap.Logger) error {
	goose.SetBaseFS(migrationFiles)
	goose.SetLogger(gooseLogger{log.Named("migrate").Sugar()})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return errors.Wrap(err, "goose dialect")
	}
	if err := goose.Up(db.DB, "migrations"); err != nil {
		return errors.Wrap(err, "apply migrations")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Fixture
// ---------------------------------------------------------------------------

// SaveItems replaces the stored fixture with items, in order, in one
// transaction.
func (d *Database) SaveItems(ctx context.Context, items []*Item) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	del, args, err := qb.Delete(catalogTable).ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, del, args...); err != nil {
		return errors.Wrap(err, "clear catalog")
	}

	if len(items) > 0 {
		ins := qb.Insert(catalogTable).Columns(catalogColumns...)
		for i, it := range items {
			r := NewCatalogRecord(i, it)
			ins = ins.Values(r.ItemUID, r.Position, r.Title, r.Author, r.Genre,
				r.PageCount, r.Kind, r.Cover, r.Format, r.Status)
		}
		query, args, err := ins.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrap(err, "insert catalog")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit")
	}
	d.log.Info("catalog saved", zap.Int("items", len(items)))
	return nil
}

// LoadItems returns fresh items built from the stored fixture, in position
// order.
func (d *Database) LoadItems(ctx context.Context) ([]*Item, error) {
	query, args, err := qb.Select(catalogColumns...).
		From(catalogTable).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, err
	}

	var records []CatalogRecord
	if err := d.db.SelectContext(ctx, &records, query, args...); err != nil {
		d.log.Error("LoadItems", zap.String("q", query), zap.Error(err))
		return nil, errors.Wrap(err, "select catalog")
	}

	items := make([]*Item, 0, len(records))
	for _, r := range records {
		it, err := r.Item()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// CountItems reports how many items the fixture holds.
func (d *Database) CountItems(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From(catalogTable).ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := d.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, errors.Wrap(err, "count catalog")
	}
	return n, nil
}
