package visualizer

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the author of a message in a conversation.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is a single entry in the conversation log.
// Messages are immutable once appended.
type Message struct {
	// ID is an opaque identifier, unique within a conversation.
	ID   string `json:"id"`
	Role Role   `json:"role"`
	// Text is the body of the message. May be empty for image-only replies.
	Text string `json:"text,omitempty"`
	// Image is an encoded-image reference (data URL) attached to the message.
	Image string `json:"image,omitempty"`
	// Timestamp is the creation time in epoch milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// GenerateMessageID creates a unique message identifier.
func GenerateMessageID() string {
	return "msg-" + uuid.New().String()
}

// HasImage returns true if the message carries an image.
func (m Message) HasImage() bool {
	return m.Image != ""
}

// Time returns the message timestamp as a time.Time.
func (m Message) Time() time.Time {
	return time.UnixMilli(m.Timestamp)
}
