package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/foodchat/internal/config"
	"github.com/dmitrijs2005/foodchat/internal/dialogue"
	"github.com/dmitrijs2005/foodchat/internal/logging"
	"github.com/dmitrijs2005/foodchat/internal/orders"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// sleepFn waits for d or until ctx is done. Tests replace it to skip the wait.
var sleepFn = func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OrderLister is the order collaborator as the shell sees it.
type OrderLister interface {
	ListOrders(ctx context.Context, identity string) ([]orders.Order, error)
}

type App struct {
	config      *config.Config
	engine      *dialogue.Engine
	orders      OrderLister
	logger      logging.Logger
	session     *dialogue.Session
	in          io.Reader
	out         io.Writer
	renderer    *Renderer
	interactive bool
	lines       *lineSource
}

// NewApp builds the shell around in and out. Prompts and the typing
// indicator are shown only when in is a terminal.
func NewApp(c *config.Config, engine *dialogue.Engine, ol OrderLister, logger logging.Logger, in io.Reader, out io.Writer) *App {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = isTerminal(int(f.Fd()))
	}

	return &App{
		config:      c,
		engine:      engine,
		orders:      ol,
		logger:      logger.With("module", "shell"),
		in:          in,
		out:         out,
		renderer:    NewRenderer(out),
		interactive: interactive,
	}
}

func (a *App) initSignalHandler(cancelFunc context.CancelFunc) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigs:
			cancelFunc()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

// Run starts the REPL and blocks until /exit, end of input, or SIGINT/SIGTERM.
// The session is logged out on the way out.
func (a *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	stop := a.initSignalHandler(cancelFunc)
	defer stop()

	a.logger.Info(ctx, "shell started", "interactive", a.interactive)
	fmt.Fprintln(a.out, "Welcome to foodchat (type /help for commands)")

	a.lines = newLineSource(ctx, a.in)
	runREPL(ctx, a, a.prompt, a.lines, a.out)

	// the run context may already be cancelled here
	_ = a.Logout(context.WithoutCancel(ctx))
	a.logger.Info(ctx, "shell stopped")
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

func (a *App) prompt() string {
	if !a.interactive {
		return ""
	}
	if a.isLoggedIn() {
		return fmt.Sprintf("foodchat (%s)> ", dialogue.DisplayName(a.session.Identity()))
	}
	return "foodchat> "
}
