// Package openai sends tool descriptors to an OpenAI-compatible chat
// completion endpoint.
//
// The client converts toolschema descriptors to function tools with strict
// mode enabled, sends the conversation, and returns the reply together with
// any tool calls the model made. Transient failures (rate limits, server
// errors) are retried with backoff; any other non-success status is
// returned as a remote rejection:
//
//	c, err := openai.New(cfg.APIKey, openai.WithModel("gpt-4o"))
//	if err != nil {
//		return err // toolschema.IsConfigMissing(err) for an empty key
//	}
//	resp, err := c.Chat(ctx, messages, registry.Tools())
//	if toolschema.IsRemoteRejection(err) {
//		log.Printf("rejected with %d", toolschema.StatusCodeOf(err))
//	}
package openai
