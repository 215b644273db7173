package visualizer

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripDataURL(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		expected string
	}{
		{name: "png prefix", ref: "data:image/png;base64,AAAA", expected: "AAAA"},
		{name: "jpeg prefix", ref: "data:image/jpeg;base64,BBBB", expected: "BBBB"},
		{name: "webp prefix", ref: "data:image/webp;base64,CCCC", expected: "CCCC"},
		{name: "bare payload", ref: "DDDD", expected: "DDDD"},
		{name: "unsupported subtype kept", ref: "data:image/gif;base64,EEEE", expected: "data:image/gif;base64,EEEE"},
		{name: "prefix only at start", ref: "xdata:image/png;base64,FFFF", expected: "xdata:image/png;base64,FFFF"},
		{name: "empty", ref: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripDataURL(tt.ref))
		})
	}
}

func TestNewDataURL(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,AAAA", NewDataURL("AAAA"))
}

func TestDataURLRoundTrip(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0xff}
	payload := base64.StdEncoding.EncodeToString(raw)

	for _, prefix := range []string{"data:image/png;base64,", "data:image/jpeg;base64,", "data:image/webp;base64,"} {
		t.Run(prefix, func(t *testing.T) {
			ref := NewDataURL(StripDataURL(prefix + payload))
			assert.Equal(t, DataURLPrefix+payload, ref)

			data, err := DecodeDataURL(ref)
			require.NoError(t, err)
			assert.Equal(t, raw, data)
		})
	}
}

func TestEncodeDataURL(t *testing.T) {
	raw := []byte("pixels")
	ref := EncodeDataURL(raw)
	assert.Equal(t, DataURLPrefix+base64.StdEncoding.EncodeToString(raw), ref)
}

func TestDecodeDataURL_Invalid(t *testing.T) {
	_, err := DecodeDataURL("data:image/png;base64,!!!not-base64")
	require.Error(t, err)

	var imgErr *ImageError
	require.ErrorAs(t, err, &imgErr)
	assert.Equal(t, "decode", imgErr.Op)
	assert.Equal(t, "base64", imgErr.Source)
}

func TestGenerationRequest_HasReference(t *testing.T) {
	assert.False(t, GenerationRequest{Prompt: "p"}.HasReference())
	assert.True(t, GenerationRequest{Prompt: "p", ReferenceImage: "AAAA"}.HasReference())
}

func TestGenerationResult_HasImage(t *testing.T) {
	assert.False(t, GenerationResult{Text: "t"}.HasImage())
	assert.True(t, GenerationResult{Image: NewDataURL("AAAA")}.HasImage())
}
