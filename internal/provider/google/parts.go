package google

import (
	"encoding/base64"
	"strings"

	"github.com/samber/lo"
	ai "github.com/spetersoncode/visualizer"
	"google.golang.org/genai"
)

// buildContents packs a request into a single user turn.
// The reference image, when present, precedes the prompt so the model treats
// the text as an edit instruction for that image.
func buildContents(req ai.GenerationRequest) ([]*genai.Content, error) {
	var parts []*genai.Part

	if req.HasReference() {
		payload := ai.StripDataURL(req.ReferenceImage)
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, &ai.ImageError{Op: "decode", Source: "base64", Err: err}
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				Data:     data,
				MIMEType: ai.PNGMimeType,
			},
		})
	}

	parts = append(parts, &genai.Part{Text: req.Prompt})

	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, nil
}

// parseResponse concatenates the text parts of the first candidate and keeps
// the last inline image it encounters.
func parseResponse(resp *genai.GenerateContentResponse) (*ai.GenerationResult, error) {
	if resp == nil {
		return nil, ai.ErrEmptyResponse
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return nil, &ai.BlockedError{Reason: string(resp.PromptFeedback.BlockReason)}
	}

	result := &ai.GenerationResult{}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return result, nil
	}

	parts := lo.Compact(resp.Candidates[0].Content.Parts)

	var text strings.Builder
	for _, part := range parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			result.Image = ai.EncodeDataURL(part.InlineData.Data)
		}
	}
	result.Text = text.String()

	return result, nil
}
