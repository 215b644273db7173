// Package vertex serves Gemini image models through Vertex AI.
//
// Vertex AI uses Application Default Credentials instead of an API key.
// Credentials are discovered in order:
//
//  1. GOOGLE_APPLICATION_CREDENTIALS (path to a service account key)
//  2. gcloud CLI credentials (gcloud auth application-default login)
//  3. An attached service account (GKE Workload Identity, Cloud Run)
//
// Requests and responses have the same shape as the Gemini API, so the
// returned client is the google package's Client bound to a Vertex backend.
//
//	gen, err := vertex.New(ctx, "my-project", "us-central1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := gen.Generate(ctx, visualizer.GenerationRequest{Prompt: "a bakery homepage"})
package vertex
