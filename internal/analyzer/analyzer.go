// Package analyzer sends a reduced projection of a parsed statement
// (amount and category only) to the Gemini API and returns the
// model's natural-language spending analysis verbatim. The reply is
// opaque text; nothing downstream parses it.
package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/birosrichard/simple-expense-analyzer/internal/models"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Analyzer wraps a Gemini client configured for spending analysis.
type Analyzer struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// New creates an Analyzer. The API key is required; the model name
// falls back to gemini-2.0-flash when empty.
func New(ctx context.Context, apiKey, modelName string) (*Analyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Analyzer{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

// Close releases the underlying client.
func (a *Analyzer) Close() error {
	return a.client.Close()
}

// Analyze requests a spending analysis for the parsed statement over a
// human-readable period label and returns the reply text.
func (a *Analyzer) Analyze(ctx context.Context, data *models.ParsedData, periodLabel string) (string, error) {
	prompt := BuildPrompt(data, periodLabel)

	log.WithFields(logrus.Fields{
		"period":       periodLabel,
		"transactions": len(data.Transactions),
	}).Info("Requesting AI spending analysis")

	resp, err := a.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("analysis request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("analysis request returned no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

// BuildPrompt renders the analysis prompt. Only amount and category
// leave the process; counterparties, notes and symbols never do.
func BuildPrompt(data *models.ParsedData, periodLabel string) string {
	var sb strings.Builder
	sb.WriteString("You are a personal finance assistant. Analyze the following bank transactions for the period ")
	sb.WriteString(periodLabel)
	sb.WriteString(".\nEach line is: amount;category. Negative amounts are expenses, positive amounts are income.\n")
	sb.WriteString("Summarize overall spending, the dominant categories and any notable patterns, in plain language.\n\n")

	for _, tx := range data.Transactions {
		sb.WriteString(tx.Amount.StringFixed(2))
		sb.WriteString(";")
		sb.WriteString(tx.Category)
		sb.WriteString("\n")
	}
	return sb.String()
}
