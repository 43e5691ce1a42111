package shell

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
	Chat(ctx context.Context, text string) error
	ShowOrders(ctx context.Context) error
	ShowHistory(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: /login [email], /help, /exit"
	helpLoggedIn  = "Type a message to chat, or use: /orders, /history, /logout, /help, /exit"
)

// runREPL reads lines from src and dispatches them to a until the user types
// /exit or /quit, input ends, or ctx is cancelled.
//
// Lines starting with "/" are commands; every other non-blank line is a chat
// message. promptFn supplies the prompt; an empty prompt is not printed.
// Handler errors are reported to w and the loop carries on.
func runREPL(ctx context.Context, a execIface, promptFn func() string, src *lineSource, w io.Writer) {
	say := func(args ...any) { fmt.Fprintln(w, args...) }

	for {
		if p := promptFn(); p != "" {
			say(p)
		}

		line, err := src.Next(ctx)
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, "/") {
			report(w, a.Chat(ctx, line))
			continue
		}

		parts := strings.Fields(line)
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "/help":
			if a.isLoggedIn() {
				say(helpLoggedIn)
			} else {
				say(helpLoggedOut)
			}

		case "/login":
			report(w, a.Login(ctx, args))

		case "/logout":
			report(w, a.Logout(ctx))

		case "/orders":
			report(w, a.ShowOrders(ctx))

		case "/history":
			report(w, a.ShowHistory(ctx))

		case "/exit", "/quit":
			say("Bye!")
			return

		default:
			say("Unknown command:", cmd)
		}
	}
}

func report(w io.Writer, err error) {
	if err != nil {
		fmt.Fprintln(w, "Error:", err)
	}
}
