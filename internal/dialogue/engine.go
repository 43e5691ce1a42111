// Package dialogue is the session and reply-dispatch core of foodchat.
//
// A Session holds the logged-in identity, the append-only transcript and a
// read-once notice. The Engine turns each submitted utterance into exactly
// one assistant reply by walking an ordered keyword table (first match wins)
// and appends both messages in one step, so a caller re-reading the
// transcript never sees a user message without its reply.
//
// The engine performs no I/O. Order data is never placed in reply text; an
// order-related message only sets the notice and flags the Exchange so the
// shell can show the separate orders view.
package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/foodchat/internal/common"
	"github.com/dmitrijs2005/foodchat/internal/logging"
	"github.com/google/uuid"
)

type Engine struct {
	rules  []Rule
	logger logging.Logger
	newID  func() string
}

// NewEngine creates an Engine with the given reply table. A nil or empty
// table means DefaultRules.
func NewEngine(logger logging.Logger, rules []Rule) *Engine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Engine{
		rules:  rules,
		logger: logger.With("module", "dialogue"),
		newID:  uuid.NewString,
	}
}

// Login starts a fresh session for identity. The identity is trimmed and
// must be non-empty and contain "@"; otherwise ErrInvalidCredentialFormat is
// returned and no session is created.
func (e *Engine) Login(ctx context.Context, identity string) (*Session, error) {
	identity = strings.TrimSpace(identity)
	if !ValidIdentity(identity) {
		e.logger.Warn(ctx, "login rejected", "reason", "identity must contain @")
		return nil, fmt.Errorf("login: %w", common.ErrInvalidCredentialFormat)
	}

	e.logger.Info(ctx, "session started", "identity", identity)
	return &Session{identity: identity}, nil
}

// Logout discards everything the session holds. Logging out a nil or
// already logged-out session does nothing.
func (e *Engine) Logout(ctx context.Context, s *Session) {
	if s == nil {
		return
	}

	s.mu.Lock()
	identity := s.identity
	s.identity = ""
	s.transcript = nil
	s.notice = ""
	s.mu.Unlock()

	if identity != "" {
		e.logger.Info(ctx, "session ended", "identity", identity)
	}
}

// Submit appends the trimmed utterance and the assistant's reply to the
// transcript. A blank utterance or a session without identity yields
// ErrInvalidInput and leaves the session untouched.
//
// When the utterance is order-related the pending notice is (re)set to
// OrderNotice; otherwise the notice is left as it was.
func (e *Engine) Submit(ctx context.Context, s *Session, utterance string) (*Exchange, error) {
	text := strings.TrimSpace(utterance)
	if text == "" {
		return nil, fmt.Errorf("submit: empty utterance: %w", common.ErrInvalidInput)
	}
	if s == nil {
		return nil, fmt.Errorf("submit: no session: %w", common.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == "" {
		return nil, fmt.Errorf("submit: not logged in: %w", common.ErrInvalidInput)
	}

	c := classify(e.rules, s.identity, text)

	ex := &Exchange{
		User:         Message{ID: e.newID(), Speaker: SpeakerUser, Text: text},
		Assistant:    Message{ID: e.newID(), Speaker: SpeakerAssistant, Text: c.Reply},
		Intent:       c.Intent,
		OrderRelated: c.OrderRelated,
	}

	s.transcript = append(s.transcript, ex.User, ex.Assistant)
	if c.OrderRelated {
		s.notice = OrderNotice
	}

	e.logger.Debug(ctx, "message submitted",
		"identity", s.identity,
		"intent", c.Intent,
		"transcript_len", len(s.transcript),
	)

	return ex, nil
}

// Classify returns the reply the engine would give identity for utterance,
// without touching any session.
func (e *Engine) Classify(identity, utterance string) Classification {
	return classify(e.rules, strings.TrimSpace(identity), strings.TrimSpace(utterance))
}

// PeekAndClearNotice returns the pending notice and clears it, so each
// notice is delivered exactly once.
func (e *Engine) PeekAndClearNotice(s *Session) (string, bool) {
	if s == nil {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.notice
	s.notice = ""
	return n, n != ""
}
