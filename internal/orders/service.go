// Package orders is the mocked order collaborator: it lists a user's order
// records from an in-memory sqlite store. The dialogue engine never calls it;
// the shell queries it freshly every time it draws the orders view.
package orders

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/foodchat/internal/common"
	"github.com/dmitrijs2005/foodchat/internal/dbx"
	"github.com/dmitrijs2005/foodchat/internal/logging"
	"github.com/google/uuid"
)

// Service lists orders per identity. With demo seeding on, an identity that
// has no orders yet gets the two demo records on first lookup.
type Service struct {
	db       *sql.DB
	manager  RepositoryManager
	logger   logging.Logger
	seedDemo bool

	seedMu sync.Mutex
	newID  func() string
}

func NewService(db *sql.DB, m RepositoryManager, logger logging.Logger, seedDemo bool) *Service {
	return &Service{
		db:       db,
		manager:  m,
		logger:   logger.With("module", "orders"),
		seedDemo: seedDemo,
		newID:    newOrderID,
	}
}

func newOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// DemoOrders returns the demo records for owner: one in progress with an
// ETA, one delivered without.
func DemoOrders(owner string, newID func() string) []Order {
	return []Order{
		{
			ID:     newID(),
			Owner:  owner,
			Item:   "Margherita Pizza",
			Status: StatusPreparing,
			ETA:    sql.NullString{String: "25 min", Valid: true},
		},
		{
			ID:     newID(),
			Owner:  owner,
			Item:   "Veg Biryani",
			Status: StatusDelivered,
		},
	}
}

// ListOrders returns identity's orders in insertion order. It may return an
// empty slice; an identity without "@" yields ErrInvalidCredentialFormat.
// Storage failures are wrapped with common.ErrorInternal.
func (s *Service) ListOrders(ctx context.Context, identity string) ([]Order, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" || !strings.Contains(identity, common.IdentityMarker) {
		return nil, fmt.Errorf("list orders: %w", common.ErrInvalidCredentialFormat)
	}

	result, err := s.manager.Orders(s.db).ListByOwner(ctx, identity)
	if err != nil {
		s.logger.Error(ctx, "list orders failed", "identity", identity, "error", err)
		return nil, fmt.Errorf("list orders: %w: %w", common.ErrorInternal, err)
	}

	if len(result) > 0 || !s.seedDemo {
		return result, nil
	}

	return s.seed(ctx, identity)
}

func (s *Service) seed(ctx context.Context, identity string) ([]Order, error) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	// another caller may have seeded while we waited
	existing, err := s.manager.Orders(s.db).ListByOwner(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w: %w", common.ErrorInternal, err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	demo := DemoOrders(identity, s.newID)

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.manager.Orders(tx)
		for _, o := range demo {
			if err := repo.Insert(ctx, o); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "seeding demo orders failed", "identity", identity, "error", err)
		return nil, fmt.Errorf("seed demo orders: %w: %w", common.ErrorInternal, err)
	}

	s.logger.Info(ctx, "demo orders seeded", "identity", identity, "count", len(demo))
	return demo, nil
}
