package orders

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/foodchat/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ListByOwner(ctx context.Context, owner string) ([]Order, error) {
	query :=
		`SELECT id, owner, item, status, eta FROM orders
		 WHERE owner = ?
		 ORDER BY rowid
		 `

	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]Order, 0)
	for rows.Next() {
		var o Order
		var status string
		if err := rows.Scan(&o.ID, &o.Owner, &o.Item, &status, &o.ETA); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		o.Status = Status(status)
		result = append(result, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, o Order) error {
	query :=
		`INSERT INTO orders (id, owner, item, status, eta)
		 VALUES (?, ?, ?, ?, ?)
		 `

	_, err := r.db.ExecContext(ctx, query, o.ID, o.Owner, o.Item, string(o.Status), o.ETA)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
