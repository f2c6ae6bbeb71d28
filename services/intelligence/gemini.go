package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"turnero/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiRouter resolves intents with a Gemini model. Every call carries a
// timeout; the engine treats any error as "fall back to the menu".
type GeminiRouter struct {
	model   *genai.GenerativeModel
	timeout time.Duration
}

func NewGeminiRouter(apiKey string, timeout time.Duration) (*GeminiRouter, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("intelligence: create gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.ResponseMIMEType = "application/json"
	return &GeminiRouter{model: model, timeout: timeout}, nil
}

func (r *GeminiRouter) Route(ctx context.Context, req models.RouteRequest) (*models.RouteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.model.GenerateContent(ctx, genai.Text(buildPrompt(req)))
	if err != nil {
		return nil, fmt.Errorf("intelligence: gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("intelligence: gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	var result models.RouteResult
	if err := json.Unmarshal([]byte(sb.String()), &result); err != nil {
		return nil, fmt.Errorf("intelligence: parse gemini response: %w", err)
	}
	if result.Intent == "" {
		result.Intent = models.IntentOther
	}
	return &result, nil
}

func buildPrompt(req models.RouteRequest) string {
	var sb strings.Builder
	sb.WriteString("You are the booking assistant of \"" + req.TenantName + "\".\n")
	sb.WriteString("Services offered:\n")
	for _, s := range req.Services {
		fmt.Fprintf(&sb, "- %s ($%d)\n", s.Name, s.PriceMinorUnits/100)
	}
	sb.WriteString(`
Classify the user's message into one intent:
booking, query_prices, cancellation, confirmation, handoff, other.
If they want to book, extract the service name when mentioned.
Reply with JSON only:
{"intent":"...","message":"short reply to send back","entities":{"serviceName":"..."}}

Conversation so far:
`)
	for _, m := range req.History {
		fmt.Fprintf(&sb, "%s: %s\n", m.Role, m.Content)
	}
	sb.WriteString("user: " + req.Text + "\n")
	return sb.String()
}
