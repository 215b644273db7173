// Package conversation implements the editing conversation: an append-only
// message log, the current image, and a two-state gate that admits one
// generation at a time.
//
// States are idle and generating. A cycle is either driven synchronously:
//
//	conv := conversation.New(gen)
//	if err := conv.Submit(ctx, "make the header blue"); err != nil {
//	    // ErrEmptyPrompt or ErrGenerating; nothing changed
//	}
//
// or split across an event loop, with the backend call running elsewhere:
//
//	req, err := conv.Begin(prompt)
//	// ... later, off the loop
//	res, genErr := conv.Generate(ctx, req)
//	// ... back on the loop
//	conv.Complete(res, genErr)
//
// Every cycle appends exactly one user and one model message. Backend errors
// never escape a cycle; they become an ErrorText reply and the conversation
// returns to idle. The current image changes only when a successful result
// carries one.
package conversation
