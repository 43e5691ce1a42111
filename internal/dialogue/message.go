package dialogue

// Speaker tags who produced a message. The set is closed.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Valid reports whether s is one of the known speakers.
func (s Speaker) Valid() bool {
	return s == SpeakerUser || s == SpeakerAssistant
}

// Message is one transcript line. Messages are never modified after they are
// appended; the session only hands out copies of its transcript.
type Message struct {
	ID      string
	Speaker Speaker
	Text    string
}

// Exchange is what a successful Submit appended: the user's message and the
// assistant's reply, always as a pair.
type Exchange struct {
	User      Message
	Assistant Message
	Intent    Intent

	// OrderRelated tells the shell to show the orders view, queried fresh
	// from the order collaborator.
	OrderRelated bool
}
