package vertex

import (
	"context"
	"fmt"

	"github.com/spetersoncode/visualizer/internal/provider/google"
	"google.golang.org/genai"
)

// New creates a Gemini image client on Vertex AI for the given project and
// location. Authentication uses Application Default Credentials.
func New(ctx context.Context, project, location string, opts ...google.ClientOption) (*google.Client, error) {
	if project == "" || location == "" {
		return nil, fmt.Errorf("vertex: project and location are required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  project,
		Location: location,
	})
	if err != nil {
		return nil, err
	}
	return google.NewWithModels(client.Models, opts...), nil
}
