package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	ai "github.com/spetersoncode/visualizer"
)

// Bubble bodies for model messages with no text.
const (
	imageCreatedText = "Image created."
	emptyBodyText    = "..."
)

// messageBody returns the text shown inside a bubble.
func messageBody(msg ai.Message) string {
	if msg.Text != "" {
		return msg.Text
	}
	if msg.HasImage() {
		return imageCreatedText
	}
	return emptyBodyText
}

// renderMessage draws one chat bubble. User bubbles sit on the right and
// model bubbles on the left; each carries an HH:MM timestamp.
func renderMessage(msg ai.Message, width int) string {
	maxBubble := width * 4 / 5
	if maxBubble < 10 {
		maxBubble = 10
	}

	body := wordwrap.String(messageBody(msg), maxBubble-2)
	if msg.HasImage() && msg.Text != "" {
		body += "\n" + mutedStyle.Render("[image]")
	}

	style := modelBubbleStyle
	pos := lipgloss.Left
	if msg.Role == ai.RoleUser {
		style = userBubbleStyle
		pos = lipgloss.Right
	}

	bubble := lipgloss.JoinVertical(pos,
		style.Render(body),
		timestampStyle.Render(msg.Time().Format("15:04")),
	)
	return lipgloss.PlaceHorizontal(width, pos, bubble)
}

func renderHistory(messages []ai.Message, width int) string {
	rendered := make([]string, 0, len(messages))
	for _, msg := range messages {
		rendered = append(rendered, renderMessage(msg, width))
	}
	return strings.Join(rendered, "\n\n")
}
