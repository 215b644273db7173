package tui

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/lipgloss"
	ai "github.com/spetersoncode/visualizer"
)

const (
	placeholderTitle = "Your design will appear here"
	placeholderHint  = "Send a message to generate the first image of your site."
	updatingText     = "Updating..."
)

// imageInfo describes an encoded image without rendering it.
type imageInfo struct {
	Format string
	Width  int
	Height int
	Size   int
}

// inspectImage reads the header of an encoded-image reference.
func inspectImage(ref string) (imageInfo, error) {
	data, err := ai.DecodeDataURL(ref)
	if err != nil {
		return imageInfo{}, err
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return imageInfo{Size: len(data)}, &ai.ImageError{Op: "decode", Source: "header", Err: err}
	}
	return imageInfo{Format: format, Width: cfg.Width, Height: cfg.Height, Size: len(data)}, nil
}

func formatSize(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := int64(n) / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGT"[exp])
}

// renderPreview draws the right-hand panel for the current image.
func renderPreview(current string, generating bool, width, height int) string {
	if current == "" {
		box := placeholderStyle.Render(
			titleStyle.Render(placeholderTitle) + "\n\n" + placeholderHint,
		)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	}

	var lines []string
	lines = append(lines, accentStyle.Render("Generated result"), "")

	info, err := inspectImage(current)
	if err != nil {
		lines = append(lines, errorStyle.Render("unreadable image"))
		if info.Size > 0 {
			lines = append(lines, fmt.Sprintf("Size    %s", formatSize(info.Size)))
		}
	} else {
		lines = append(lines,
			fmt.Sprintf("Format  %s", info.Format),
			fmt.Sprintf("Pixels  %d x %d", info.Width, info.Height),
			fmt.Sprintf("Size    %s", formatSize(info.Size)),
		)
	}

	if generating {
		lines = append(lines, "", accentStyle.Render(updatingText))
	} else {
		lines = append(lines, "", mutedStyle.Render("ctrl+s to download"))
	}

	box := previewStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
