package main

import (
	"errors"
	"testing"
	"time"

	ai "github.com/spetersoncode/visualizer"
	"github.com/spetersoncode/visualizer/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogEvents_FlushesBufferedEventsOnDone(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	events := make(chan client.Event, 4)
	events <- client.Event{Type: client.EventRequestStart, Provider: ai.ProviderGoogle, Model: "m"}
	events <- client.Event{Type: client.EventRequestComplete, Provider: ai.ProviderGoogle, Model: "m", Duration: time.Second}
	events <- client.Event{Type: client.EventRequestError, Provider: ai.ProviderGoogle, Model: "m", Error: errors.New("boom")}

	done := make(chan struct{})
	close(done)

	returned := make(chan struct{})
	go func() {
		defer close(returned)
		logEvents(zap.New(core), events, done)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("logEvents did not return after done was closed")
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "request started", entries[0].Message)
	assert.Equal(t, "request completed", entries[1].Message)
	assert.Equal(t, "request failed", entries[2].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
}

func TestLogEvents_LogsUntilDone(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	events := make(chan client.Event)
	done := make(chan struct{})

	returned := make(chan struct{})
	go func() {
		defer close(returned)
		logEvents(zap.New(core), events, done)
	}()

	events <- client.Event{Type: client.EventRequestComplete, Provider: ai.ProviderOpenAI, Model: "gpt-image-1"}
	close(done)
	<-returned

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "gpt-image-1", logs.All()[0].ContextMap()["model"])
}
