package google

import (
	"errors"

	ai "github.com/spetersoncode/visualizer"
	"google.golang.org/genai"
)

// wrapError attaches a category to Google GenAI API errors.
// Note: Google's genai.APIError doesn't expose headers.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		// Not an API error, likely a network failure
		return err
	}

	return ai.NewStatusError("gemini request failed", apiErr.Code, err)
}
