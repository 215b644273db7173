// Package tui is the terminal front-end: a landing screen and an editor with
// a chat column and an image preview panel.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ai "github.com/spetersoncode/visualizer"
	"github.com/spetersoncode/visualizer/conversation"
	"github.com/spetersoncode/visualizer/export"
	"github.com/spetersoncode/visualizer/view"
	"go.uber.org/zap"
)

const (
	tagline        = "Create and edit website designs through conversation. Describe what you want to see, or ask to change the details."
	inputHint      = "Describe the changes..."
	editorTitle    = "Editor"
	defaultWidth   = 100
	defaultHeight  = 30
	chatMinWidth   = 36
	chatMaxWidth   = 56
	chromeHeight   = 6
	generatingHint = "Generating..."
)

// generationDoneMsg carries a finished backend call back to the update loop.
type generationDoneMsg struct {
	conv *conversation.Conversation
	res  *ai.GenerationResult
	err  error
}

type exportDoneMsg struct {
	path string
	err  error
}

// Model is the root bubbletea model.
type Model struct {
	ctx      context.Context
	router   *view.Router
	exporter *export.Exporter
	logger   *zap.Logger
	tagline  string

	keys     keyMap
	help     help.Model
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	width  int
	height int
	notice string
	failed bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithTagline sets the line under the landing title, typically naming the model.
func WithTagline(s string) Option {
	return func(m *Model) {
		m.tagline = s
	}
}

// New creates the root model. ctx is passed to every generation call.
func New(ctx context.Context, router *view.Router, exporter *export.Exporter, opts ...Option) Model {
	input := textinput.New()
	input.Placeholder = inputHint
	input.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	m := Model{
		ctx:      ctx,
		router:   router,
		exporter: exporter,
		logger:   zap.NewNop(),
		keys:     newKeyMap(),
		help:     help.New(),
		input:    input,
		viewport: viewport.New(chatMinWidth, defaultHeight-chromeHeight),
		spinner:  sp,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}

	logger := m.logger
	router.Subscribe(func(s view.State) {
		logger.Debug("screen changed", zap.String("screen", string(s.Screen)))
	})
	m.resize()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.router.Screen() == view.ScreenLanding {
			return m.updateLanding(msg)
		}
		return m.updateEditor(msg)

	case generationDoneMsg:
		if err := msg.conv.Complete(msg.res, msg.err); err != nil {
			m.logger.Warn("dropped generation result", zap.Error(err))
		}
		if msg.conv != m.router.Conversation() {
			return m, nil
		}
		m.refresh()
		return m, m.input.Focus()

	case exportDoneMsg:
		if msg.err != nil {
			m.logger.Error("export failed", zap.Error(msg.err))
			m.notice, m.failed = "Download failed: "+msg.err.Error(), true
		} else {
			m.notice, m.failed = "Saved "+msg.path, false
		}
		return m, nil

	case spinner.TickMsg:
		if !m.generating() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.router.Screen() == view.ScreenEditor {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateLanding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Start) {
		return m, nil
	}
	m.router.Start()
	m.notice = ""
	m.input.Reset()
	m.refresh()
	return m, tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	conv := m.router.Conversation()

	switch {
	case key.Matches(msg, m.keys.Back):
		m.router.Back()
		m.input.Reset()
		m.input.Blur()
		m.notice = ""
		return m, nil

	case key.Matches(msg, m.keys.Download):
		image := conv.CurrentImage()
		if image == "" {
			return m, nil
		}
		return m, exportCmd(m.exporter, image)

	case key.Matches(msg, m.keys.Send):
		return m.submit(conv)

	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if conv.Status() == conversation.StatusGenerating {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit(conv *conversation.Conversation) (tea.Model, tea.Cmd) {
	req, err := conv.Begin(m.input.Value())
	switch {
	case errors.Is(err, ai.ErrEmptyPrompt), errors.Is(err, conversation.ErrGenerating):
		return m, nil
	case err != nil:
		m.logger.Error("submit failed", zap.Error(err))
		return m, nil
	}

	m.input.Reset()
	m.input.Blur()
	m.notice = ""
	m.refresh()
	return m, tea.Batch(m.spinner.Tick, generateCmd(m.ctx, conv, req))
}

func generateCmd(ctx context.Context, conv *conversation.Conversation, req ai.GenerationRequest) tea.Cmd {
	return func() tea.Msg {
		res, err := conv.Generate(ctx, req)
		return generationDoneMsg{conv: conv, res: res, err: err}
	}
}

func exportCmd(exporter *export.Exporter, image string) tea.Cmd {
	return func() tea.Msg {
		path, err := exporter.Save(image)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m Model) generating() bool {
	conv := m.router.Conversation()
	return conv != nil && conv.Status() == conversation.StatusGenerating
}

func (m *Model) chatWidth() int {
	w := m.width * 2 / 5
	if w < chatMinWidth {
		w = chatMinWidth
	}
	if w > chatMaxWidth {
		w = chatMaxWidth
	}
	return w
}

func (m *Model) resize() {
	m.viewport.Width = m.chatWidth()
	h := m.height - chromeHeight
	if h < 3 {
		h = 3
	}
	m.viewport.Height = h
	m.input.Width = m.chatWidth() - 4
	m.help.Width = m.width
}

// refresh re-renders the chat history and scrolls to the newest message.
func (m *Model) refresh() {
	conv := m.router.Conversation()
	if conv == nil {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(renderHistory(conv.Snapshot().Messages, m.viewport.Width))
	m.viewport.GotoBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.router.Screen() == view.ScreenLanding {
		return m.viewLanding()
	}
	return m.viewEditor()
}

func (m Model) viewLanding() string {
	wrap := m.width * 2 / 3
	if wrap < 30 {
		wrap = 30
	}
	body := []string{
		titleStyle.Render("AI Web ") + accentStyle.Render("Visualizer"),
		"",
		lipgloss.NewStyle().Width(wrap).Align(lipgloss.Center).Render(tagline),
	}
	if m.tagline != "" {
		body = append(body, mutedStyle.Render(m.tagline))
	}
	body = append(body, "", accentStyle.Render("press enter to start"), "", m.help.ShortHelpView(m.keys.landingHelp()))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, body...))
}

func (m Model) viewEditor() string {
	conv := m.router.Conversation()
	snap := conv.Snapshot()
	chatWidth := m.chatWidth()

	var inputLine string
	if snap.Generating() {
		inputLine = m.spinner.View() + " " + mutedStyle.Render(generatingHint)
	} else {
		inputLine = m.input.View()
	}

	chat := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Width(chatWidth).Render("< "+editorTitle),
		m.viewport.View(),
		"",
		inputLine,
	)

	previewWidth := m.width - chatWidth - 1
	if previewWidth < 20 {
		previewWidth = 20
	}
	preview := renderPreview(snap.CurrentImage, snap.Generating(), previewWidth, m.height-2)

	var footer []string
	if m.notice != "" {
		style := mutedStyle
		if m.failed {
			style = errorStyle
		}
		footer = append(footer, style.Render(m.notice))
	}
	footer = append(footer, m.help.ShortHelpView(m.keys.editorHelp(snap.HasImage())))

	main := lipgloss.JoinHorizontal(lipgloss.Top, chat, " ", preview)
	return lipgloss.JoinVertical(lipgloss.Left, main, strings.Join(footer, "\n"))
}
