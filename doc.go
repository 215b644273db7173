// Package visualizer defines the shared types of a chat-driven image editor.
//
// A user describes a website design in natural language; a [Generator] sends
// the prompt, plus the most recently generated image when there is one, to a
// multimodal model and returns the reply as a [GenerationResult].
//
// # Encoded images
//
// Images travel through the module as encoded-image references, PNG data URLs
// of the form:
//
//	data:image/png;base64,<payload>
//
// Use [StripDataURL] to obtain the bare payload, [NewDataURL] to wrap one, and
// [DecodeDataURL] to get raw bytes. Incoming references may also carry a jpeg
// or webp prefix; backends always forward them tagged as image/png.
//
// # Generating
//
//	c := client.New(client.Config{
//	    APIKeys:  client.APIKeys{Google: os.Getenv("GOOGLE_API_KEY")},
//	    Defaults: client.Defaults{Image: model.GeminiFlashImage},
//	})
//
//	res, err := c.Generate(ctx, visualizer.GenerationRequest{
//	    Prompt: "dark-themed coffee shop landing page",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Text, res.HasImage())
//
// The [github.com/spetersoncode/visualizer/conversation] package layers the
// editing conversation on top of a Generator.
package visualizer
