// Package advisor produces natural-language spending advice. It asks a Gemini
// model when an API key is configured and always degrades to locally computed
// tips, so callers never see an empty answer.
package advisor

import (
	"context"

	"google.golang.org/genai"

	"github.com/Sojagracesaju/pocketkash/internal/engine"
	"github.com/Sojagracesaju/pocketkash/internal/logger"
	"github.com/Sojagracesaju/pocketkash/internal/models"
)

const systemPrompt = "You are a helpful financial advisor for PocketKash, an expense tracking app. " +
	"Provide brief, actionable insights based on the user's spending data. " +
	"Keep responses concise (2-3 bullet points) and encouraging."

const noTransactionsAdvice = "Add some transactions to get personalized AI insights about your spending patterns."

// GeminiAdvisor generates advice with the Gemini API, falling back to local
// tips on any failure.
type GeminiAdvisor struct {
	apiKey string
	model  string
	engine *engine.Engine
}

// NewGeminiAdvisor creates a new advisor. An empty apiKey disables remote
// calls entirely and every request answers from the local fallback.
func NewGeminiAdvisor(apiKey, model string, eng *engine.Engine) *GeminiAdvisor {
	return &GeminiAdvisor{
		apiKey: apiKey,
		model:  model,
		engine: eng,
	}
}

// Advise returns 2-3 bullet points of advice for the current snapshot.
func (a *GeminiAdvisor) Advise(ctx context.Context, txs []models.Transaction, summary engine.FinanceSummary, userName string) (string, error) {
	if len(txs) == 0 {
		return noTransactionsAdvice, nil
	}

	if a.apiKey == "" {
		return FallbackAdvice(txs, summary), nil
	}

	text, err := a.generate(ctx, txs, summary, userName)
	if err != nil {
		logger.Get().Warnw("gemini advice failed, using fallback", "error", err)
		return FallbackAdvice(txs, summary), nil
	}
	return text, nil
}

func (a *GeminiAdvisor) generate(ctx context.Context, txs []models.Transaction, summary engine.FinanceSummary, userName string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      a.apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", err
	}

	prompt := systemPrompt + "\n\n" + a.engine.Digest(txs, summary, userName)
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, a.model, contents, nil)
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return FallbackAdvice(txs, summary), nil
	}
	return text, nil
}
