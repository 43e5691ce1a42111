package shell

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls   []string
	chatted []string
	failOn  string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	if name == f.failOn {
		return errors.New(name + " failed")
	}
	return nil
}

func (f *fakeExec) Login(ctx context.Context, args []string) error {
	f.loggedIn = true
	return f.record("login " + strings.Join(args, " "))
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Chat(ctx context.Context, text string) error {
	f.chatted = append(f.chatted, text)
	return f.record("chat")
}
func (f *fakeExec) ShowOrders(ctx context.Context) error  { return f.record("orders") }
func (f *fakeExec) ShowHistory(ctx context.Context) error { return f.record("history") }

// outputLines splits REPL output into lines without the trailing newline.
func outputLines(buf *bytes.Buffer) []string {
	s := strings.TrimSuffix(buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func runWithInput(t *testing.T, exec execIface, lines ...string) []string {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var buf bytes.Buffer
	src := newLineSource(ctx, strings.NewReader(strings.Join(lines, "\n")))
	runREPL(ctx, exec, func() string { return "" }, src, &buf)
	return outputLines(&buf)
}

func TestRunREPL_CommandsAndChat(t *testing.T) {
	exec := &fakeExec{}

	out := runWithInput(t, exec,
		"/help",
		"/login a@b.com",
		"/help",
		"  where is my order  ",
		"",
		"/orders",
		"/HISTORY",
		"/logout",
		"/foobar",
		"/exit",
		"never read",
	)

	assert.Equal(t, []string{"login a@b.com", "chat", "orders", "history", "logout"}, exec.calls)
	assert.Equal(t, []string{"where is my order"}, exec.chatted)
	assert.Contains(t, out, helpLoggedOut)
	assert.Contains(t, out, helpLoggedIn)
	assert.Contains(t, out, "Unknown command: /foobar")
	assert.Equal(t, "Bye!", out[len(out)-1])
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	exec := &fakeExec{loggedIn: true}

	runWithInput(t, exec, "hello", "menu")

	assert.Equal(t, []string{"hello", "menu"}, exec.chatted)
}

func TestRunREPL_HandlerErrorIsReported(t *testing.T) {
	exec := &fakeExec{loggedIn: true, failOn: "orders"}

	out := runWithInput(t, exec, "/orders", "/history", "/quit")

	assert.Equal(t, []string{"orders", "history"}, exec.calls)
	assert.Contains(t, out, "Error: orders failed")
}

func TestRunREPL_PromptShownWhenNonEmpty(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	src := newLineSource(ctx, strings.NewReader("/exit\n"))
	runREPL(ctx, &fakeExec{}, func() string { return "foodchat> " }, src, &buf)

	assert.Equal(t, []string{"foodchat> ", "Bye!"}, outputLines(&buf))
}

func TestRunREPL_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// a source that never yields
	src := &lineSource{lines: make(chan string)}
	exec := &fakeExec{}
	var buf bytes.Buffer
	runREPL(ctx, exec, func() string { return "" }, src, &buf)

	assert.Empty(t, exec.calls)
	assert.Empty(t, buf.String())
}
