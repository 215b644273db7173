// Package export writes the current image to disk.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	ai "github.com/spetersoncode/visualizer"
	"go.uber.org/zap"
)

// FilePrefix starts every exported file name.
const FilePrefix = "generated-design-"

// ErrNoImage is returned when there is nothing to export.
var ErrNoImage = errors.New("no image to export")

// FileName returns the export name for an image saved at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("%s%d.png", FilePrefix, t.UnixMilli())
}

// Exporter saves encoded images as files in a directory.
type Exporter struct {
	fs     afero.Fs
	dir    string
	now    func() time.Time
	logger *zap.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithFs sets the filesystem. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(e *Exporter) {
		e.fs = fs
	}
}

// WithClock sets the time source used for file names.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// New creates an Exporter writing into dir. An empty dir means the working
// directory.
func New(dir string, opts ...Option) *Exporter {
	e := &Exporter{
		fs:     afero.NewOsFs(),
		dir:    dir,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dir returns the target directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// Save decodes an encoded-image reference and writes the bytes to a new
// file. It returns the path written.
func (e *Exporter) Save(image string) (string, error) {
	if strings.TrimSpace(image) == "" {
		return "", ErrNoImage
	}

	data, err := ai.DecodeDataURL(image)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	if e.dir != "" {
		if err := e.fs.MkdirAll(e.dir, 0o755); err != nil {
			return "", fmt.Errorf("export: create %s: %w", e.dir, err)
		}
	}

	path := filepath.Join(e.dir, FileName(e.now()))
	if err := afero.WriteFile(e.fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}

	e.logger.Info("image exported", zap.String("path", path), zap.Int("bytes", len(data)))
	return path, nil
}
