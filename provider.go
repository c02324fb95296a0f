package toolschema

import "context"

// Provider identifies an AI provider whose wire format a descriptor can be
// converted to.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGoogle    Provider = "google"
)

// ChatProvider sends a conversation together with tool descriptors to a
// chat completion endpoint.
//
// Implementations return an error satisfying IsConfigMissing when no request
// could be made and IsRemoteRejection when the endpoint answered with a
// non-success status.
type ChatProvider interface {
	Chat(ctx context.Context, messages []Message, tools []Tool) (*Response, error)
}
