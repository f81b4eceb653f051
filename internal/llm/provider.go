// Package llm is the seam between the extraction pipeline and whatever
// OpenAI-compatible backend serves the enhancer, local or hosted.
package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Client is all the enhancer asks of a backend: one chat completion per
// posting. Keeping the surface this small lets tests drop in a canned
// fake without touching transport code.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ModelLister is the optional probe surface behind the startup
// availability check. Backends that cannot list models simply don't
// implement it; callers discover it with a type assertion.
type ModelLister interface {
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// OpenAIProvider wraps *openai.Client so the rest of the module depends
// on the two interfaces above instead of the SDK type.
type OpenAIProvider struct {
	Inner *openai.Client
}

func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return p.Inner.CreateChatCompletion(ctx, request)
}

func (p *OpenAIProvider) ListModels(ctx context.Context) (openai.ModelsList, error) {
	return p.Inner.ListModels(ctx)
}
