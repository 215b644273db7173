package openai

import (
	"errors"

	"github.com/openai/openai-go"
	ai "github.com/spetersoncode/visualizer"
)

// wrapError attaches a category to OpenAI SDK errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		// Not an API error, likely a network failure
		return err
	}

	return ai.NewStatusError("openai request failed", apiErr.StatusCode, err)
}
