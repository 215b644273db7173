// Package view routes between the landing and editor screens.
//
// The router is pure data: it tracks which screen is active and owns the
// editor's conversation for as long as the editor is shown. Rendering layers
// subscribe and redraw on change.
package view

import (
	"sync"

	"github.com/spetersoncode/visualizer/conversation"
)

// Screen identifies a top-level view.
type Screen string

const (
	ScreenLanding Screen = "landing"
	ScreenEditor  Screen = "editor"
)

// Factory creates the conversation for a new editor session.
type Factory func() *conversation.Conversation

// State is what a subscriber sees after a screen change.
type State struct {
	Screen       Screen
	Conversation *conversation.Conversation
}

// Router holds the active screen. Transitions from the wrong screen are
// ignored.
type Router struct {
	factory Factory

	mu     sync.Mutex
	screen Screen
	conv   *conversation.Conversation

	subMu       sync.Mutex
	subscribers map[int]func(State)
	nextSub     int
}

// NewRouter creates a router on the landing screen.
func NewRouter(factory Factory) *Router {
	return &Router{
		factory:     factory,
		screen:      ScreenLanding,
		subscribers: make(map[int]func(State)),
	}
}

// Screen returns the active screen.
func (r *Router) Screen() Screen {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.screen
}

// Conversation returns the editor's conversation, or nil on the landing screen.
func (r *Router) Conversation() *conversation.Conversation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conv
}

// Start moves from landing to editor with a fresh conversation.
// It reports whether the screen changed.
func (r *Router) Start() bool {
	r.mu.Lock()
	if r.screen != ScreenLanding {
		r.mu.Unlock()
		return false
	}
	r.screen = ScreenEditor
	r.conv = r.factory()
	state := State{Screen: r.screen, Conversation: r.conv}
	r.mu.Unlock()

	r.notify(state)
	return true
}

// Back moves from editor to landing and drops the conversation with
// everything in it. It reports whether the screen changed.
func (r *Router) Back() bool {
	r.mu.Lock()
	if r.screen != ScreenEditor {
		r.mu.Unlock()
		return false
	}
	r.screen = ScreenLanding
	r.conv = nil
	state := State{Screen: r.screen}
	r.mu.Unlock()

	r.notify(state)
	return true
}

// Subscribe registers fn for screen changes and returns a func that removes it.
func (r *Router) Subscribe(fn func(State)) func() {
	r.subMu.Lock()
	defer r.subMu.Unlock()
	id := r.nextSub
	r.nextSub++
	r.subscribers[id] = fn
	return func() {
		r.subMu.Lock()
		defer r.subMu.Unlock()
		delete(r.subscribers, id)
	}
}

func (r *Router) notify(s State) {
	r.subMu.Lock()
	fns := make([]func(State), 0, len(r.subscribers))
	for i := 0; i < r.nextSub; i++ {
		if fn, ok := r.subscribers[i]; ok {
			fns = append(fns, fn)
		}
	}
	r.subMu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}
