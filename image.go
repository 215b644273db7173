package visualizer

import (
	"context"
	"encoding/base64"
	"regexp"
	"strings"
)

// PNGMimeType is the MIME type used for every image crossing the wire.
const PNGMimeType = "image/png"

// DataURLPrefix is the transport prefix of an encoded-image reference.
const DataURLPrefix = "data:" + PNGMimeType + ";base64,"

var transportPrefix = regexp.MustCompile(`^data:image/(png|jpeg|webp);base64,`)

// Generator defines the interface for image generation backends.
type Generator interface {
	// Generate sends a prompt and an optional reference image to the backend.
	Generate(ctx context.Context, req GenerationRequest, opts ...Option) (*GenerationResult, error)
}

// GenerationRequest is one prompt sent to a Generator.
type GenerationRequest struct {
	// Prompt is the instruction text. Callers validate it is non-empty.
	Prompt string
	// ReferenceImage is the image to edit, as a data URL or bare base64.
	// Empty means generate from scratch.
	ReferenceImage string
}

// HasReference returns true if the request carries a reference image.
func (r GenerationRequest) HasReference() bool {
	return r.ReferenceImage != ""
}

// GenerationResult is the unpacked response of a Generator.
// Both fields may be empty.
type GenerationResult struct {
	// Text is the concatenation of every text part, in order.
	Text string
	// Image is a PNG data URL, empty if the backend returned no image.
	Image string
}

// HasImage returns true if the result includes an image.
func (r GenerationResult) HasImage() bool {
	return r.Image != ""
}

// StripDataURL removes a data:image/{png,jpeg,webp};base64, prefix.
// Strings without a recognized prefix are returned unchanged.
func StripDataURL(ref string) string {
	return transportPrefix.ReplaceAllString(ref, "")
}

// NewDataURL wraps a base64 payload as a PNG encoded-image reference.
func NewDataURL(payload string) string {
	return DataURLPrefix + payload
}

// EncodeDataURL encodes raw image bytes as a PNG encoded-image reference.
func EncodeDataURL(data []byte) string {
	return NewDataURL(base64.StdEncoding.EncodeToString(data))
}

// DecodeDataURL returns the raw bytes carried by an encoded-image reference.
func DecodeDataURL(ref string) ([]byte, error) {
	payload := strings.TrimSpace(StripDataURL(ref))
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, &ImageError{Op: "decode", Source: "base64", Err: err}
	}
	return data, nil
}
