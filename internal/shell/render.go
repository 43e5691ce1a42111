package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/foodchat/internal/dialogue"
	"github.com/dmitrijs2005/foodchat/internal/orders"
)

const progressWidth = 10

// Renderer draws chat output onto one writer. Colors follow the writer's
// terminal capabilities; a plain buffer gets unstyled text.
type Renderer struct {
	w io.Writer

	user      lipgloss.Style
	assistant lipgloss.Style
	notice    lipgloss.Style
	warning   lipgloss.Style
	muted     lipgloss.Style
	panel     lipgloss.Style
	title     lipgloss.Style
}

func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		w: w,
		user: r.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true),
		assistant: r.NewStyle().
			Foreground(lipgloss.Color("10")),
		notice: r.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true),
		warning: r.NewStyle().
			Foreground(lipgloss.Color("9")),
		muted: r.NewStyle().
			Foreground(lipgloss.Color("8")).
			Italic(true),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		title: r.NewStyle().
			Bold(true),
	}
}

func (r *Renderer) line(s string) {
	fmt.Fprintln(r.w, s)
}

// Message draws one transcript entry, labelled by speaker.
func (r *Renderer) Message(m dialogue.Message) {
	switch m.Speaker {
	case dialogue.SpeakerUser:
		r.line(r.user.Render("You: " + m.Text))
	default:
		r.line(r.assistant.Render("Assistant: " + m.Text))
	}
}

// Transcript draws every message in order.
func (r *Renderer) Transcript(msgs []dialogue.Message) {
	if len(msgs) == 0 {
		r.Info("No messages yet.")
		return
	}
	for _, m := range msgs {
		r.Message(m)
	}
}

func (r *Renderer) Notice(text string) {
	r.line(r.notice.Render("» " + text))
}

func (r *Renderer) Warning(text string) {
	r.line(r.warning.Render(text))
}

func (r *Renderer) Info(text string) {
	r.line(r.muted.Render(text))
}

// Typing draws the cosmetic "assistant is typing" indicator.
func (r *Renderer) Typing() {
	r.line(r.muted.Render("Assistant is typing…"))
}

// Orders draws the orders panel: one row per order with a progress bar and
// either the ETA or, when no ETA is known, "delivered".
func (r *Renderer) Orders(list []orders.Order) {
	var b strings.Builder
	b.WriteString(r.title.Render("Your orders"))
	if len(list) == 0 {
		b.WriteString("\nNo orders yet.")
	}
	for _, o := range list {
		b.WriteString("\n")
		b.WriteString(orderRow(o))
	}
	r.line(r.panel.Render(b.String()))
}

func orderRow(o orders.Order) string {
	tail := "delivered"
	if o.HasETA() {
		tail = "ETA " + o.ETA.String
	}
	return fmt.Sprintf("%s  %-20s %-17s %s  %s", o.ID, o.Item, o.Status, progressBar(o.Status.Progress()), tail)
}

// progressBar renders pct (clamped to 0–100) as a fixed-width text bar.
func progressBar(pct int) string {
	pct = max(0, min(100, pct))
	filled := pct * progressWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", progressWidth-filled) + fmt.Sprintf("] %3d%%", pct)
}
