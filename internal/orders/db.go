package orders

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/foodchat/internal/dbx"
	"github.com/dmitrijs2005/foodchat/internal/logging"
	"github.com/dmitrijs2005/foodchat/internal/orders/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager wires SQLiteRepository and the embedded migrations.
type SQLiteRepositoryManager struct {
	logger logging.Logger
}

func NewSQLiteRepositoryManager(logger logging.Logger) *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{logger: logger.With("module", "migrations")}
}

func (m *SQLiteRepositoryManager) Orders(db dbx.DBTX) Repository {
	return NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(&gooseLogger{ctx: ctx, l: m.logger})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens the sqlite database at dsn and brings the schema up to date.
// The pool is pinned to one connection: an in-memory database exists per
// connection, and the order store must see a single one.
func Open(ctx context.Context, dsn string, m RepositoryManager) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return db, nil
}

// gooseLogger routes goose output into the application logger instead of
// stdout, where it would land in the chat view.
type gooseLogger struct {
	ctx context.Context
	l   logging.Logger
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.l.Debug(g.ctx, fmt.Sprintf(format, v...))
}

func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(g.ctx, fmt.Sprintf(format, v...))
}
