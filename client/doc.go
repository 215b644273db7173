// Package client provides a unified multi-provider image generation client.
//
// The Client wraps provider-specific implementations and provides:
//
//   - Model-centric routing: models know their provider; switching is automatic
//   - Lazy initialization: provider SDK clients are built on first use
//   - Event emission: observable operations via channel
//
// Requests are single-shot. A failed request is reported once and never
// retried.
//
// # Basic Usage
//
//	c := client.New(client.Config{
//	    APIKeys: client.APIKeys{
//	        Google: os.Getenv("GOOGLE_API_KEY"),
//	        OpenAI: os.Getenv("OPENAI_API_KEY"),
//	    },
//	    Defaults: client.Defaults{
//	        Image: model.GeminiFlashImage,
//	    },
//	})
//
//	res, err := c.Generate(ctx, visualizer.GenerationRequest{
//	    Prompt: "landing page for a coffee shop in dark tones",
//	})
//
// # Model-Centric Routing
//
//	// Uses default model (routes to Google)
//	res, _ := c.Generate(ctx, req)
//
//	// Override with GPT Image 1 (routes to OpenAI)
//	res, _ := c.Generate(ctx, req, visualizer.WithModel(model.GPTImage1))
//
// # Vertex AI
//
// Vertex models authenticate with Application Default Credentials and need
// only a project and location:
//
//	c := client.New(client.Config{
//	    Vertex:   client.VertexConfig{Project: "my-project", Location: "us-central1"},
//	    Defaults: client.Defaults{Image: model.VertexFlashImage},
//	})
//
// # Events
//
//	events := make(chan client.Event, 16)
//	c := client.New(client.Config{APIKeys: keys, Events: events})
//	go func() {
//	    for ev := range events {
//	        fmt.Println(ev.Type, ev.Model, ev.Duration)
//	    }
//	}()
package client
