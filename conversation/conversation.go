package conversation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	ai "github.com/spetersoncode/visualizer"
	"go.uber.org/zap"
)

// Status is the generation state of a conversation.
type Status string

const (
	// StatusIdle accepts a new submission.
	StatusIdle Status = "idle"
	// StatusGenerating has exactly one request in flight.
	StatusGenerating Status = "generating"
)

// Fixed model replies.
const (
	DefaultGreeting      = `Hi! I'll help you design your website. Describe what you'd like to see (for example: "a landing page for a coffee shop in dark tones").`
	ImageReadyText       = "Done! Here is the result."
	NothingGeneratedText = "Hmm, I couldn't generate anything."
	ErrorText            = "Something went wrong while generating. Please try again."
)

// GreetingID is the identifier of the seeded greeting message.
const GreetingID = "welcome"

var (
	// ErrGenerating is returned when a submission arrives while a request is in flight.
	ErrGenerating = errors.New("generation already in progress")

	// ErrIdle is returned when a completion arrives with no request in flight.
	ErrIdle = errors.New("no generation in progress")

	// ErrNoGenerator is reported through ErrorText when no backend is configured.
	ErrNoGenerator = errors.New("no generator configured")
)

// Snapshot is an immutable view of a conversation.
type Snapshot struct {
	Messages     []ai.Message
	CurrentImage string
	Status       Status
}

// Generating returns true while a request is in flight.
func (s Snapshot) Generating() bool {
	return s.Status == StatusGenerating
}

// HasImage returns true once any generation has produced an image.
func (s Snapshot) HasImage() bool {
	return s.CurrentImage != ""
}

// Last returns the most recent message.
func (s Snapshot) Last() (ai.Message, bool) {
	if len(s.Messages) == 0 {
		return ai.Message{}, false
	}
	return s.Messages[len(s.Messages)-1], true
}

// Conversation owns the message log, the current image and the
// idle/generating gate. All methods are safe for concurrent use; each
// transition is applied atomically.
type Conversation struct {
	generator ai.Generator
	genOpts   []ai.Option
	now       func() time.Time
	newID     func() string
	greeting  string
	logger    *zap.Logger

	mu           sync.Mutex
	messages     []ai.Message
	currentImage string
	status       Status

	subMu       sync.Mutex
	subscribers map[int]func(Snapshot)
	nextSub     int
}

// New creates an idle conversation seeded with a greeting.
func New(generator ai.Generator, opts ...Option) *Conversation {
	c := &Conversation{
		generator:   generator,
		now:         time.Now,
		newID:       ai.GenerateMessageID,
		greeting:    DefaultGreeting,
		logger:      zap.NewNop(),
		status:      StatusIdle,
		subscribers: make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.messages = []ai.Message{{
		ID:        GreetingID,
		Role:      ai.RoleModel,
		Text:      c.greeting,
		Timestamp: c.now().UnixMilli(),
	}}
	return c
}

// Snapshot returns a copy of the current state.
func (c *Conversation) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Conversation) snapshotLocked() Snapshot {
	messages := make([]ai.Message, len(c.messages))
	copy(messages, c.messages)
	return Snapshot{
		Messages:     messages,
		CurrentImage: c.currentImage,
		Status:       c.status,
	}
}

// Status returns the current generation state.
func (c *Conversation) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// CurrentImage returns the most recent generated image, or "".
func (c *Conversation) CurrentImage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentImage
}

// Subscribe registers fn to receive a snapshot after every transition.
// The returned func removes the subscription.
func (c *Conversation) Subscribe(fn func(Snapshot)) func() {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = fn
	return func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		delete(c.subscribers, id)
	}
}

func (c *Conversation) notify(s Snapshot) {
	c.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(c.subscribers))
	for i := 0; i < c.nextSub; i++ {
		if fn, ok := c.subscribers[i]; ok {
			fns = append(fns, fn)
		}
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

func (c *Conversation) appendLocked(role ai.Role, text, image string) ai.Message {
	msg := ai.Message{
		ID:        c.newID(),
		Role:      role,
		Text:      text,
		Image:     image,
		Timestamp: c.now().UnixMilli(),
	}
	c.messages = append(c.messages, msg)
	return msg
}

// Begin starts a generation cycle. It appends the user message, moves to
// generating and returns the request to send. The prompt is recorded as typed;
// it only has to be non-empty after trimming.
func (c *Conversation) Begin(prompt string) (ai.GenerationRequest, error) {
	if strings.TrimSpace(prompt) == "" {
		return ai.GenerationRequest{}, ai.ErrEmptyPrompt
	}

	c.mu.Lock()
	if c.status == StatusGenerating {
		c.mu.Unlock()
		return ai.GenerationRequest{}, ErrGenerating
	}
	msg := c.appendLocked(ai.RoleUser, prompt, "")
	c.status = StatusGenerating
	req := ai.GenerationRequest{
		Prompt:         prompt,
		ReferenceImage: c.currentImage,
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("generation cycle started",
		zap.String("message_id", msg.ID),
		zap.Bool("reference", req.HasReference()),
	)
	c.notify(snap)
	return req, nil
}

// Succeed completes the in-flight cycle with a backend result.
func (c *Conversation) Succeed(res *ai.GenerationResult) error {
	if res == nil {
		res = &ai.GenerationResult{}
	}

	c.mu.Lock()
	if c.status != StatusGenerating {
		c.mu.Unlock()
		return ErrIdle
	}
	msg := c.appendLocked(ai.RoleModel, replyText(res), res.Image)
	if res.HasImage() {
		c.currentImage = res.Image
	}
	c.status = StatusIdle
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("generation cycle succeeded",
		zap.String("message_id", msg.ID),
		zap.Bool("image", res.HasImage()),
	)
	c.notify(snap)
	return nil
}

// Fail completes the in-flight cycle with the fixed error reply.
// The current image is left untouched.
func (c *Conversation) Fail(cause error) error {
	c.mu.Lock()
	if c.status != StatusGenerating {
		c.mu.Unlock()
		return ErrIdle
	}
	msg := c.appendLocked(ai.RoleModel, ErrorText, "")
	c.status = StatusIdle
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Warn("generation cycle failed",
		zap.String("message_id", msg.ID),
		zap.String("category", string(ai.CategoryOf(cause))),
		zap.Error(cause),
	)
	c.notify(snap)
	return nil
}

// Complete routes a backend outcome to Succeed or Fail.
func (c *Conversation) Complete(res *ai.GenerationResult, err error) error {
	if err != nil {
		return c.Fail(err)
	}
	return c.Succeed(res)
}

// Generate performs the backend call for a request returned by Begin.
// It does not touch conversation state; pass the outcome to Complete.
func (c *Conversation) Generate(ctx context.Context, req ai.GenerationRequest) (*ai.GenerationResult, error) {
	if c.generator == nil {
		return nil, ErrNoGenerator
	}
	return c.generator.Generate(ctx, req, c.genOpts...)
}

// Submit runs a whole generation cycle and blocks until it completes.
// Only validation errors are returned: ErrEmptyPrompt or ErrGenerating.
// Backend failures are absorbed into an ErrorText reply.
func (c *Conversation) Submit(ctx context.Context, prompt string) error {
	req, err := c.Begin(prompt)
	if err != nil {
		return err
	}
	res, genErr := c.Generate(ctx, req)
	return c.Complete(res, genErr)
}

func replyText(res *ai.GenerationResult) string {
	switch {
	case res.Text != "":
		return res.Text
	case res.HasImage():
		return ImageReadyText
	default:
		return NothingGeneratedText
	}
}
