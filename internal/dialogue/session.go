package dialogue

import "sync"

// Session is one user's chat state. It is created by Engine.Login, owned by
// the caller, and mutated only through Engine methods. The mutex serializes
// concurrent Submit calls on the same session.
type Session struct {
	mu         sync.Mutex
	identity   string
	transcript []Message
	notice     string
}

// Identity returns the login identity, or "" once the session is logged out.
func (s *Session) Identity() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// LoggedIn reports whether the session still carries an identity.
func (s *Session) LoggedIn() bool {
	return s.Identity() != ""
}

// Transcript returns a copy of the messages in insertion order.
func (s *Session) Transcript() []Message {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Len returns the number of messages in the transcript.
func (s *Session) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transcript)
}

// HasNotice reports whether a notice is pending, without consuming it.
func (s *Session) HasNotice() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice != ""
}
