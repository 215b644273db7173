package tui

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	ai "github.com/spetersoncode/visualizer"
	"github.com/spetersoncode/visualizer/conversation"
	"github.com/spetersoncode/visualizer/export"
	"github.com/spetersoncode/visualizer/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	mu    sync.Mutex
	calls []ai.GenerationRequest
	res   *ai.GenerationResult
	err   error
}

func (f *fakeGenerator) Generate(ctx context.Context, req ai.GenerationRequest, opts ...ai.Option) (*ai.GenerationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	return f.res, f.err
}

func pngDataURL(t *testing.T, w, h int) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return ai.EncodeDataURL(buf.Bytes())
}

type harness struct {
	gen *fakeGenerator
	fs  afero.Fs
	m   Model
}

func newHarness(t *testing.T, gen *fakeGenerator) *harness {
	t.Helper()
	router := view.NewRouter(func() *conversation.Conversation {
		return conversation.New(gen)
	})
	fs := afero.NewMemMapFs()
	exporter := export.New("out", export.WithFs(fs), export.WithClock(func() time.Time {
		return time.UnixMilli(1700000000000)
	}))

	h := &harness{gen: gen, fs: fs, m: New(context.Background(), router, exporter)}
	h.apply(t, tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

// apply feeds msg to the model and returns the resulting command.
func (h *harness) apply(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := h.m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok, "Update returned %T, want Model", next)
	h.m = got
	return cmd
}

func (h *harness) press(t *testing.T, k tea.KeyType) tea.Cmd {
	t.Helper()
	return h.apply(t, tea.KeyMsg{Type: k})
}

func (h *harness) typeText(t *testing.T, s string) {
	t.Helper()
	h.apply(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// run executes cmd, expanding batches, and feeds back the messages the
// model produces for itself.
func (h *harness) run(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(t, c)
		}
	case generationDoneMsg, exportDoneMsg:
		h.apply(t, msg)
	}
}

func (h *harness) conv() *conversation.Conversation {
	return h.m.router.Conversation()
}

func TestLanding(t *testing.T) {
	h := newHarness(t, &fakeGenerator{})

	out := h.m.View()
	assert.Contains(t, out, "Visualizer")
	assert.Contains(t, out, "press enter to start")
	assert.Nil(t, h.conv())

	h.press(t, tea.KeyEsc)
	assert.Equal(t, view.ScreenLanding, h.m.router.Screen())
}

func TestStartShowsGreeting(t *testing.T) {
	h := newHarness(t, &fakeGenerator{})

	h.press(t, tea.KeyEnter)
	require.Equal(t, view.ScreenEditor, h.m.router.Screen())
	require.NotNil(t, h.conv())

	out := h.m.View()
	assert.Contains(t, out, "Editor")
	assert.Contains(t, out, placeholderTitle)
	assert.Contains(t, out, "Hi!")
}

func TestSubmitFlow(t *testing.T) {
	img := pngDataURL(t, 3, 2)
	gen := &fakeGenerator{res: &ai.GenerationResult{Image: img}}
	h := newHarness(t, gen)

	h.press(t, tea.KeyEnter)
	h.typeText(t, "coffee shop")
	cmd := h.press(t, tea.KeyEnter)
	require.NotNil(t, cmd)

	assert.Equal(t, conversation.StatusGenerating, h.conv().Status())
	assert.Empty(t, h.m.input.Value())
	assert.Contains(t, h.m.View(), generatingHint)

	h.run(t, cmd)

	s := h.conv().Snapshot()
	require.Len(t, s.Messages, 3)
	assert.Equal(t, "coffee shop", s.Messages[1].Text)
	assert.Equal(t, img, s.CurrentImage)
	assert.Equal(t, conversation.StatusIdle, s.Status)
	assert.True(t, h.m.input.Focused())

	out := h.m.View()
	assert.Contains(t, out, "Pixels  3 x 2")
	assert.Contains(t, out, "Format  png")
	assert.NotContains(t, out, placeholderTitle)
}

func TestLongPromptIsNotTruncated(t *testing.T) {
	gen := &fakeGenerator{res: &ai.GenerationResult{Text: "ok"}}
	h := newHarness(t, gen)
	prompt := strings.Repeat("a wide hero section with a bold header ", 100)

	h.press(t, tea.KeyEnter)
	h.typeText(t, prompt)
	h.run(t, h.press(t, tea.KeyEnter))

	require.Len(t, gen.calls, 1)
	assert.Equal(t, prompt, gen.calls[0].Prompt)
	assert.Equal(t, prompt, h.conv().Snapshot().Messages[1].Text)
}

func TestSubmitIgnoredWhileGenerating(t *testing.T) {
	gen := &fakeGenerator{res: &ai.GenerationResult{Text: "ok"}}
	h := newHarness(t, gen)

	h.press(t, tea.KeyEnter)
	h.typeText(t, "first")
	pending := h.press(t, tea.KeyEnter)

	h.typeText(t, "second")
	assert.Nil(t, h.press(t, tea.KeyEnter))
	assert.Len(t, h.conv().Snapshot().Messages, 2)

	h.run(t, pending)
	assert.Len(t, h.conv().Snapshot().Messages, 3)
	assert.Len(t, gen.calls, 1)
}

func TestEmptySubmitIsIgnored(t *testing.T) {
	gen := &fakeGenerator{}
	h := newHarness(t, gen)

	h.press(t, tea.KeyEnter)
	h.typeText(t, "   ")
	assert.Nil(t, h.press(t, tea.KeyEnter))
	assert.Len(t, h.conv().Snapshot().Messages, 1)
	assert.Empty(t, gen.calls)
}

func TestGenerationErrorShowsReply(t *testing.T) {
	h := newHarness(t, &fakeGenerator{err: errors.New("connection refused")})

	h.press(t, tea.KeyEnter)
	h.typeText(t, "coffee shop")
	h.run(t, h.press(t, tea.KeyEnter))

	last, _ := h.conv().Snapshot().Last()
	assert.Equal(t, conversation.ErrorText, last.Text)
	assert.Contains(t, h.m.View(), placeholderTitle)
}

func TestBackDiscardsConversation(t *testing.T) {
	h := newHarness(t, &fakeGenerator{res: &ai.GenerationResult{Image: pngDataURL(t, 1, 1)}})

	h.press(t, tea.KeyEnter)
	h.typeText(t, "coffee shop")
	h.run(t, h.press(t, tea.KeyEnter))
	require.True(t, h.conv().Snapshot().HasImage())

	h.press(t, tea.KeyEsc)
	assert.Equal(t, view.ScreenLanding, h.m.router.Screen())
	assert.Nil(t, h.conv())

	h.press(t, tea.KeyEnter)
	s := h.conv().Snapshot()
	assert.Len(t, s.Messages, 1)
	assert.False(t, s.HasImage())
}

func TestStaleResultAfterBack(t *testing.T) {
	h := newHarness(t, &fakeGenerator{res: &ai.GenerationResult{Image: pngDataURL(t, 1, 1)}})

	h.press(t, tea.KeyEnter)
	h.typeText(t, "coffee shop")
	pending := h.press(t, tea.KeyEnter)

	h.press(t, tea.KeyEsc)
	h.press(t, tea.KeyEnter)
	fresh := h.conv()

	h.run(t, pending)
	s := fresh.Snapshot()
	assert.Len(t, s.Messages, 1)
	assert.False(t, s.HasImage())
}

func TestDownload(t *testing.T) {
	raw := pngDataURL(t, 2, 2)
	h := newHarness(t, &fakeGenerator{res: &ai.GenerationResult{Image: raw}})

	h.press(t, tea.KeyEnter)
	assert.Nil(t, h.press(t, tea.KeyCtrlS), "no image yet")

	h.typeText(t, "coffee shop")
	h.run(t, h.press(t, tea.KeyEnter))
	h.run(t, h.press(t, tea.KeyCtrlS))

	want, err := ai.DecodeDataURL(raw)
	require.NoError(t, err)
	got, err := afero.ReadFile(h.fs, "out/generated-design-1700000000000.png")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Contains(t, h.m.View(), "Saved out/generated-design-1700000000000.png")
}

func TestDownloadFailure(t *testing.T) {
	h := newHarness(t, &fakeGenerator{})
	h.press(t, tea.KeyEnter)

	h.apply(t, exportDoneMsg{err: errors.New("disk full")})
	assert.True(t, h.m.failed)
	assert.Contains(t, h.m.View(), "Download failed")
}

func TestQuit(t *testing.T) {
	h := newHarness(t, &fakeGenerator{})
	cmd := h.press(t, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMessageBody(t *testing.T) {
	tests := []struct {
		name string
		msg  ai.Message
		want string
	}{
		{name: "text", msg: ai.Message{Text: "hello", Image: "x"}, want: "hello"},
		{name: "image only", msg: ai.Message{Image: ai.NewDataURL("AAAA")}, want: imageCreatedText},
		{name: "empty", msg: ai.Message{}, want: emptyBodyText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messageBody(tt.msg))
		})
	}
}

func TestRenderMessage(t *testing.T) {
	ts := time.Date(2025, 1, 2, 14, 5, 0, 0, time.Local).UnixMilli()

	user := renderMessage(ai.Message{Role: ai.RoleUser, Text: "blue header", Timestamp: ts}, 40)
	assert.Contains(t, user, "blue header")
	assert.Contains(t, user, "14:05")

	firstLine := strings.Split(user, "\n")[0]
	assert.True(t, strings.HasPrefix(firstLine, " "), "user bubbles are right-aligned")
}

func TestInspectImage(t *testing.T) {
	ref := pngDataURL(t, 640, 480)
	info, err := inspectImage(ref)
	require.NoError(t, err)
	assert.Equal(t, "png", info.Format)
	assert.Equal(t, 640, info.Width)
	assert.Equal(t, 480, info.Height)
	assert.Positive(t, info.Size)

	_, err = inspectImage(ai.NewDataURL("bm90IGFuIGltYWdl"))
	var imgErr *ai.ImageError
	assert.ErrorAs(t, err, &imgErr)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "1.5 KiB", formatSize(1536))
	assert.Equal(t, "2.0 MiB", formatSize(2*1024*1024))
}
