package visualizer

import (
	"fmt"
	"strings"
)

// ImageSize is the requested output resolution.
// Backends that cannot honor a size ignore it.
type ImageSize string

const (
	ImageSizeAuto      ImageSize = "auto"
	ImageSizeSquare    ImageSize = "1024x1024"
	ImageSizeLandscape ImageSize = "1536x1024"
	ImageSizePortrait  ImageSize = "1024x1536"
)

// ImageQuality is the requested rendering quality.
// Only OpenAI image models support it.
type ImageQuality string

const (
	ImageQualityAuto   ImageQuality = "auto"
	ImageQualityLow    ImageQuality = "low"
	ImageQualityMedium ImageQuality = "medium"
	ImageQualityHigh   ImageQuality = "high"
)

// WithImageSize sets the dimensions for generated images.
func WithImageSize(size ImageSize) Option {
	return func(o *Options) {
		o.Size = size
	}
}

// WithImageQuality sets the quality level for generated images.
func WithImageQuality(q ImageQuality) Option {
	return func(o *Options) {
		o.Quality = q
	}
}

// ParseImageSize accepts a WxH value or one of auto, square, landscape and
// portrait. An empty string yields an empty size.
func ParseImageSize(s string) (ImageSize, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "":
		return "", nil
	case "auto":
		return ImageSizeAuto, nil
	case "square", string(ImageSizeSquare):
		return ImageSizeSquare, nil
	case "landscape", string(ImageSizeLandscape):
		return ImageSizeLandscape, nil
	case "portrait", string(ImageSizePortrait):
		return ImageSizePortrait, nil
	default:
		return "", fmt.Errorf("unknown image size %q (use auto, square, landscape or portrait)", s)
	}
}

// ParseImageQuality accepts auto, low, medium or high. An empty string
// yields an empty quality.
func ParseImageQuality(s string) (ImageQuality, error) {
	switch q := ImageQuality(strings.ToLower(strings.TrimSpace(s))); q {
	case "", ImageQualityAuto, ImageQualityLow, ImageQualityMedium, ImageQualityHigh:
		return q, nil
	default:
		return "", fmt.Errorf("unknown image quality %q (use auto, low, medium or high)", s)
	}
}
