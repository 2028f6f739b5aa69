// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// GeminiService implements the InsightGenerator interface using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// GenerateMonthlySummary produces a natural-language summary of one month of
// aggregated spending figures.
func (s *GeminiService) GenerateMonthlySummary(ctx context.Context, request *adapter.MonthlySummaryRequest) (*adapter.MonthlySummaryResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	result.Model = s.modelName

	return result, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.MonthlySummaryRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance assistant. Your task is to write a short,
friendly monthly spending summary for a user based on aggregate figures.

RULES:
- Be concise and encouraging, never judgmental
- Mention the largest expense categories and the savings result
- Do not invent numbers that are not in the data
- Do not give investment advice

MONTHLY DATA:
`)

	sb.WriteString(fmt.Sprintf("- Period: %s\n", request.Period))
	sb.WriteString(fmt.Sprintf("- Currency: %s\n", request.Currency))
	sb.WriteString(fmt.Sprintf("- Total income: %s\n", request.TotalIncome))
	sb.WriteString(fmt.Sprintf("- Total expenses: %s\n", request.TotalExpenses))
	sb.WriteString(fmt.Sprintf("- Net savings: %s\n", request.NetSavings))
	sb.WriteString(fmt.Sprintf("- Transaction count: %d\n", request.TransactionCount))

	sb.WriteString("\nEXPENSES BY CATEGORY:\n")
	if len(request.CategoryBreakdown) > 0 {
		categories := make([]string, 0, len(request.CategoryBreakdown))
		for category := range request.CategoryBreakdown {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", category, request.CategoryBreakdown[category]))
		}
	} else {
		sb.WriteString("(No expenses recorded)\n")
	}

	sb.WriteString(`
Respond with a JSON object:
{
  "summary": "2-4 sentence summary of the month",
  "highlights": ["up to 4 short bullet-point observations"]
}

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

// geminiInsight represents the raw response from Gemini.
type geminiInsight struct {
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

// parseResponse parses the Gemini response into a MonthlySummaryResult.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (*adapter.MonthlySummaryResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var insight geminiInsight
	if err := json.Unmarshal([]byte(textContent), &insight); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	if insight.Summary == "" {
		return nil, fmt.Errorf("response is missing a summary")
	}

	return &adapter.MonthlySummaryResult{
		Summary:    insight.Summary,
		Highlights: insight.Highlights,
	}, nil
}
