package orders

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/foodchat/internal/dbx"
)

// Repository reads and writes order records.
type Repository interface {
	ListByOwner(ctx context.Context, owner string) ([]Order, error)
	Insert(ctx context.Context, o Order) error
}

// RepositoryManager builds repositories bound to a connection or a
// transaction, and owns the schema.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Orders(db dbx.DBTX) Repository
}
