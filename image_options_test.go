package visualizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageOptions(t *testing.T) {
	t.Run("returns empty options when no options provided", func(t *testing.T) {
		opts := ApplyOptions()
		assert.Empty(t, opts.Size)
		assert.Empty(t, opts.Quality)
	})

	t.Run("applies multiple options", func(t *testing.T) {
		opts := ApplyOptions(
			WithImageSize(ImageSizeLandscape),
			WithImageQuality(ImageQualityHigh),
		)
		assert.Equal(t, ImageSizeLandscape, opts.Size)
		assert.Equal(t, ImageQualityHigh, opts.Quality)
	})
}

func TestParseImageSize(t *testing.T) {
	tests := []struct {
		input    string
		expected ImageSize
		wantErr  bool
	}{
		{"", "", false},
		{"auto", ImageSizeAuto, false},
		{"Square", ImageSizeSquare, false},
		{"1024x1024", ImageSizeSquare, false},
		{" landscape ", ImageSizeLandscape, false},
		{"1024x1536", ImageSizePortrait, false},
		{"1792x1024", "", true},
		{"huge", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseImageSize(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseImageQuality(t *testing.T) {
	tests := []struct {
		input    string
		expected ImageQuality
		wantErr  bool
	}{
		{"", "", false},
		{"auto", ImageQualityAuto, false},
		{"LOW", ImageQualityLow, false},
		{"medium", ImageQualityMedium, false},
		{"high", ImageQualityHigh, false},
		{"hd", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseImageQuality(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
