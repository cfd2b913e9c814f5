package assistant

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/agrocycle/agrocycle/internal/apperr"
)

// Completer is the external text-completion collaborator: one request,
// one response, no streaming, no retry.
type Completer interface {
	Complete(ctx context.Context, systemInstruction, contents string) (string, error)
}

// Gemini implements Completer over the Google GenAI API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini completer. The API key is supplied by the
// hosting environment, never embedded in source.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Complete(ctx context.Context, systemInstruction, contents string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(contents),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		},
	)
	if err != nil {
		return "", apperr.NewAssistantRequestFailed(err)
	}

	return resp.Text(), nil
}

// Offline is the Completer used when no API key is configured. Every
// request fails, so the chat falls back to its placeholder reply.
type Offline struct{}

func (Offline) Complete(_ context.Context, _, _ string) (string, error) {
	return "", apperr.NewAssistantRequestFailed(fmt.Errorf("assistant is not configured"))
}
