// Package model provides image model constants for the supported providers.
//
// Models know their provider, enabling automatic routing in the client:
//
//	c := client.New(client.Config{
//	    APIKeys:  client.APIKeys{Google: os.Getenv("GOOGLE_API_KEY")},
//	    Defaults: client.Defaults{Image: model.GeminiFlashImage},
//	})
//
//	// Route a single request to OpenAI instead
//	res, err := c.Generate(ctx, req, visualizer.WithModel(model.GPTImage1))
//
// The same Gemini identifier is served by both the Gemini API and Vertex AI;
// [Lookup] returns the Gemini API entry and [LookupProvider] picks one
// explicitly. Identifiers that are not in the catalog can be used with [Custom].
package model
