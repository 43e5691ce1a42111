package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/foodchat/internal/common"
	"github.com/dmitrijs2005/foodchat/internal/dialogue"
)

// Login starts a session for the email in args, prompting for it when args
// is empty. A malformed email is reported and any current session is kept.
func (a *App) Login(ctx context.Context, args []string) error {
	var email string
	if len(args) > 0 {
		email = args[0]
	} else {
		var err error
		email, err = GetSimpleText(ctx, a.lines, "-Enter email", a.out)
		if err != nil {
			return fmt.Errorf("read email: %w", err)
		}
	}

	s, err := a.engine.Login(ctx, email)
	if errors.Is(err, common.ErrInvalidCredentialFormat) {
		a.renderer.Warning("Please enter a valid email address (it must contain \"@\").")
		return nil
	}
	if err != nil {
		return err
	}

	if a.isLoggedIn() {
		a.engine.Logout(ctx, a.session)
	}
	a.session = s

	a.renderer.Info(fmt.Sprintf("Logged in as %s. Ask about your order, the menu or today's offers.",
		dialogue.DisplayName(s.Identity())))
	return nil
}

// Logout ends the current session.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return nil
	}
	a.engine.Logout(ctx, a.session)
	a.session = nil
	a.renderer.Info("Logged out.")
	return nil
}
