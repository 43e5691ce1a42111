package shell

import (
	"context"
	"fmt"
)

// Chat sends text to the assistant and draws the exchange. When the reply
// refreshed the user's orders, the notice is shown once, followed by a
// freshly queried orders panel.
func (a *App) Chat(ctx context.Context, text string) error {
	if !a.isLoggedIn() {
		a.renderer.Warning("Please log in first: /login you@example.com")
		return nil
	}

	if a.interactive && a.config.TypingDelay > 0 {
		a.renderer.Typing()
		if err := sleepFn(ctx, a.config.TypingDelay); err != nil {
			return err
		}
	}

	ex, err := a.engine.Submit(ctx, a.session, text)
	if err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	a.renderer.Message(ex.User)
	a.renderer.Message(ex.Assistant)

	if notice, ok := a.engine.PeekAndClearNotice(a.session); ok {
		a.renderer.Notice(notice)
		return a.ShowOrders(ctx)
	}
	return nil
}

// ShowHistory redraws the whole transcript.
func (a *App) ShowHistory(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.renderer.Warning("Please log in first: /login you@example.com")
		return nil
	}
	a.renderer.Transcript(a.session.Transcript())
	return nil
}
