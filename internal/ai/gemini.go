package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Gemini implements Responder on the Google GenAI API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey string, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

// buildContents maps the turn history plus the new message onto the wire
// content list, always closing with the new text as a user turn.
func buildContents(text string, history []Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)

	for _, turn := range history {
		var role genai.Role = genai.RoleUser
		if turn.Role == RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}

	return append(contents, genai.NewContentFromText(text, genai.RoleUser))
}

func (g *Gemini) Respond(ctx context.Context, text string, history []Turn) (string, error) {
	contents := buildContents(text, history)

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	reply := result.Text()
	if reply == "" {
		return "", fmt.Errorf("gemini returned no text")
	}

	return reply, nil
}
