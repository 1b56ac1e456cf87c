package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/dwikikusuma/dohsarpay/internal/assistant/domain"
)

// systemInstruction sets the assistant persona for every request.
const systemInstruction = `You are "Nong Read", a friendly and helpful AI assistant for "Doh Sar Pay", a modern online bookstore in the Thailand/Myanmar region.

Your responsibilities:
1. Recommend books based on user preferences (Fiction, Non-fiction, Manga, Business, etc.).
2. Assist with payment methods. We accept:
   - Thai Bank Transfer (PromptPay/QR) - Very popular.
   - TrueMoney Wallet.
   - Cash on Delivery (COD).
   - Credit/Debit Cards.
3. Answer questions about shipping (Standard 3-5 days, Express 1-2 days).
4. Be polite, concise, and use emojis occasionally to feel friendly.
5. If asked about prices, all prices are in Thai Baht (THB).

Tone: Cheerful, modern, helpful.
Language: You can speak English, Thai, or Burmese fluently depending on the user's input language.`

// Client streams chat completions from the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient requires the API key up front so a missing credential is a
// startup-time configuration failure, not a mid-chat surprise.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// Stream sends the transcript and forwards each text fragment to onChunk
// as it arrives.
func (c *Client) Stream(ctx context.Context, history []domain.Turn, onChunk func(text string) error) error {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role := genai.Role(genai.RoleModel)
		if turn.Role == domain.RoleUser {
			role = genai.RoleUser
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	for resp, err := range c.client.Models.GenerateContentStream(ctx, c.model, contents, config) {
		if err != nil {
			return fmt.Errorf("gemini stream failed: %w", err)
		}
		if text := resp.Text(); text != "" {
			if err := onChunk(text); err != nil {
				return err
			}
		}
	}

	return nil
}
