package view

import (
	"context"
	"testing"

	ai "github.com/spetersoncode/visualizer"
	"github.com/spetersoncode/visualizer/conversation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticGenerator struct {
	res *ai.GenerationResult
}

func (g staticGenerator) Generate(ctx context.Context, req ai.GenerationRequest, opts ...ai.Option) (*ai.GenerationResult, error) {
	return g.res, nil
}

func newFactory(created *int) Factory {
	return func() *conversation.Conversation {
		*created++
		return conversation.New(staticGenerator{res: &ai.GenerationResult{Image: ai.NewDataURL("AAAA")}})
	}
}

func TestNewRouter(t *testing.T) {
	var created int
	r := NewRouter(newFactory(&created))

	assert.Equal(t, ScreenLanding, r.Screen())
	assert.Nil(t, r.Conversation())
	assert.Equal(t, 0, created)
}

func TestRouter_StartAndBack(t *testing.T) {
	var created int
	r := NewRouter(newFactory(&created))

	require.True(t, r.Start())
	assert.Equal(t, ScreenEditor, r.Screen())
	require.NotNil(t, r.Conversation())
	assert.Equal(t, 1, created)

	require.True(t, r.Back())
	assert.Equal(t, ScreenLanding, r.Screen())
	assert.Nil(t, r.Conversation())
}

func TestRouter_WrongScreenIsNoop(t *testing.T) {
	var created int
	r := NewRouter(newFactory(&created))

	assert.False(t, r.Back())
	assert.Equal(t, ScreenLanding, r.Screen())

	require.True(t, r.Start())
	conv := r.Conversation()
	assert.False(t, r.Start())
	assert.Same(t, conv, r.Conversation())
	assert.Equal(t, 1, created)
}

func TestRouter_BackDiscardsConversation(t *testing.T) {
	var created int
	r := NewRouter(newFactory(&created))

	require.True(t, r.Start())
	first := r.Conversation()
	require.NoError(t, first.Submit(context.Background(), "coffee shop"))
	require.Len(t, first.Snapshot().Messages, 3)
	require.True(t, first.Snapshot().HasImage())

	r.Back()
	r.Start()

	second := r.Conversation()
	assert.NotSame(t, first, second)
	s := second.Snapshot()
	assert.Len(t, s.Messages, 1)
	assert.False(t, s.HasImage())
	assert.Equal(t, 2, created)
}

func TestRouter_Subscribe(t *testing.T) {
	var created int
	r := NewRouter(newFactory(&created))

	var states []State
	unsubscribe := r.Subscribe(func(s State) { states = append(states, s) })

	r.Back()
	r.Start()
	r.Start()
	r.Back()

	require.Len(t, states, 2)
	assert.Equal(t, ScreenEditor, states[0].Screen)
	assert.NotNil(t, states[0].Conversation)
	assert.Equal(t, ScreenLanding, states[1].Screen)
	assert.Nil(t, states[1].Conversation)

	unsubscribe()
	r.Start()
	assert.Len(t, states, 2)
}
