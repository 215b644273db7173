package conversation

import (
	"time"

	ai "github.com/spetersoncode/visualizer"
	"go.uber.org/zap"
)

// Option configures a Conversation.
type Option func(*Conversation)

// WithClock sets the time source used for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Conversation) {
		c.now = now
	}
}

// WithIDGenerator sets the function that assigns message identifiers.
func WithIDGenerator(newID func() string) Option {
	return func(c *Conversation) {
		c.newID = newID
	}
}

// WithGreeting replaces the seeded greeting text.
func WithGreeting(text string) Option {
	return func(c *Conversation) {
		c.greeting = text
	}
}

// WithLogger sets the logger for cycle diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Conversation) {
		c.logger = logger
	}
}

// WithGenerateOptions sets options forwarded on every generator call.
func WithGenerateOptions(opts ...ai.Option) Option {
	return func(c *Conversation) {
		c.genOpts = append(c.genOpts, opts...)
	}
}
