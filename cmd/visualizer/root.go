package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	ai "github.com/spetersoncode/visualizer"
	"github.com/spetersoncode/visualizer/client"
	"github.com/spetersoncode/visualizer/conversation"
	"github.com/spetersoncode/visualizer/export"
	"github.com/spetersoncode/visualizer/internal/logger"
	"github.com/spetersoncode/visualizer/internal/tui"
	"github.com/spetersoncode/visualizer/model"
	"github.com/spetersoncode/visualizer/view"
	"go.uber.org/zap"
)

const rootLongDesc string = `Design websites by conversation.

Describe the page you want and an image model draws it. Every following
message edits the latest image. Press ctrl+s in the editor to save it.

Configuration is read from flags, VISUALIZER_* environment variables and a
.env file in the working directory. GOOGLE_API_KEY (or GEMINI_API_KEY) is
required for Gemini models, OPENAI_API_KEY for GPT image models, and
VERTEX_PROJECT plus VERTEX_LOCATION for --provider vertex.

Examples:
  visualizer
  visualizer --model gpt-image-1 --quality high --size landscape
  visualizer --provider vertex --output-dir ~/Pictures/designs
  visualizer models`

const rootShortDesc string = "Chat-driven website design generator"

type rootCommander struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(newViper())
}

func newRootCmdWith(v *viper.Viper) *cobra.Command {
	cmder := &rootCommander{v: v}

	cmd := &cobra.Command{
		Use:           "visualizer",
		Short:         rootShortDesc,
		Long:          rootLongDesc,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringP("model", "m", cmder.v.GetString("model"), "Image model to generate with")
	flags.StringP("provider", "p", "", "Backend for the model: google, openai or vertex (default: inferred)")
	flags.String("size", "", "Image size: auto, square, landscape or portrait (OpenAI only)")
	flags.String("quality", "", "Image quality: auto, low, medium or high (OpenAI only)")
	flags.StringP("output-dir", "o", "", "Directory for downloaded images (default: working directory)")
	flags.String("log-file", defaultLogFile, "File to write logs to")
	flags.Bool("debug", false, "Enable debug logging")
	_ = cmder.v.BindPFlags(flags)

	cmd.AddCommand(newModelsCmd())

	return cmd
}

func (c *rootCommander) run(ctx context.Context) error {
	cfg, err := LoadConfig(c.v)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("could not open log file %s: %w", cfg.LogFile, err)
	}
	defer logFile.Close()

	log := logger.New(cfg.Debug, logFile)
	defer log.Sync()

	imageModel := cfg.ImageModel()
	log.Info("starting visualizer",
		zap.String("model", imageModel.String()),
		zap.String("provider", string(imageModel.Provider())),
		zap.String("output_dir", cfg.OutputDir),
		zap.Bool("debug", cfg.Debug),
	)

	events := make(chan client.Event, 16)
	done := make(chan struct{})
	flushed := make(chan struct{})
	go func() {
		defer close(flushed)
		logEvents(log, events, done)
	}()
	defer func() {
		close(done)
		<-flushed
	}()

	cl := client.New(client.Config{
		APIKeys: client.APIKeys{
			Google: cfg.GoogleKey,
			OpenAI: cfg.OpenAIKey,
		},
		Vertex: client.VertexConfig{
			Project:  cfg.VertexProject,
			Location: cfg.VertexLocation,
		},
		Defaults: client.Defaults{Image: imageModel},
		Events:   events,
	}, client.WithLogger(log))

	router := view.NewRouter(func() *conversation.Conversation {
		return conversation.New(cl,
			conversation.WithLogger(log),
			conversation.WithGenerateOptions(cfg.GenerateOptions()...),
		)
	})
	exporter := export.New(cfg.OutputDir, export.WithLogger(log))

	m := tui.New(ctx, router, exporter,
		tui.WithLogger(log),
		tui.WithTagline(tagline(imageModel, cfg.Quality)),
	)

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("ui exited: %w", err)
	}
	return nil
}

func tagline(m model.ImageModel, q ai.ImageQuality) string {
	s := "Powered by " + m.Label()
	if price := m.Pricing().PerImageAt(q); price > 0 {
		s += fmt.Sprintf(" (about $%.3f per image)", price)
	}
	return s
}

// logEvents records client events until done is closed, then logs whatever
// is still buffered and returns. The events channel is never closed because a
// generation still in flight may emit after the UI exits.
func logEvents(log *zap.Logger, events <-chan client.Event, done <-chan struct{}) {
	for {
		select {
		case e := <-events:
			logEvent(log, e)
		case <-done:
			for {
				select {
				case e := <-events:
					logEvent(log, e)
				default:
					return
				}
			}
		}
	}
}

func logEvent(log *zap.Logger, e client.Event) {
	fields := []zap.Field{
		zap.String("provider", string(e.Provider)),
		zap.String("model", e.Model),
	}
	switch e.Type {
	case client.EventRequestStart:
		log.Debug("request started", fields...)
	case client.EventRequestComplete:
		log.Info("request completed", append(fields, zap.Duration("duration", e.Duration))...)
	case client.EventRequestError:
		log.Warn("request failed", append(fields, zap.Duration("duration", e.Duration), zap.Error(e.Error))...)
	}
}
