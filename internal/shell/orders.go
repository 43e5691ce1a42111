package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/foodchat/internal/common"
)

// ShowOrders queries the order collaborator and draws the orders panel.
func (a *App) ShowOrders(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.renderer.Warning("Please log in first: /login you@example.com")
		return nil
	}

	list, err := a.orders.ListOrders(ctx, a.session.Identity())
	if errors.Is(err, common.ErrorInternal) {
		a.logger.Error(ctx, "order store failed", "error", err)
		a.renderer.Warning("Your orders are unavailable right now. Please try again later.")
		return nil
	}
	if err != nil {
		a.logger.Error(ctx, "list orders failed", "error", err)
		return fmt.Errorf("orders unavailable: %w", err)
	}

	a.renderer.Orders(list)
	return nil
}
