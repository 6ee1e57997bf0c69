package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

// LLMProvider represents different LLM providers
type LLMProvider string

const (
	ProviderGemini LLMProvider = "gemini"
	ProviderOpenAI LLMProvider = "openai"
	ProviderClaude LLMProvider = "claude"
)

// LLMClient asks a generative model to format statement text as JSON.
// This path is non-deterministic and lives entirely outside the pattern
// engine; its output is passed through to the caller as raw JSON.
type LLMClient struct {
	provider LLMProvider
	apiKey   string
	model    string
}

func NewLLMClient(provider LLMProvider, apiKey, model string) *LLMClient {
	if model == "" {
		model = DefaultModel(provider)
	}
	return &LLMClient{
		provider: provider,
		apiKey:   apiKey,
		model:    model,
	}
}

// FormatStatement sends the extracted text to the configured provider and
// returns the model's JSON answer with any markdown fences stripped.
func (c *LLMClient) FormatStatement(ctx context.Context, text string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("LLM API key not configured")
	}

	llm, err := c.newModel(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to initialize %s: %w", c.provider, err)
	}

	response, err := llms.GenerateFromSinglePrompt(ctx, llm, buildStatementPrompt(text))
	if err != nil {
		return "", fmt.Errorf("%s generation failed: %w", c.provider, err)
	}

	return stripCodeFences(response), nil
}

func (c *LLMClient) newModel(ctx context.Context) (llms.Model, error) {
	switch c.provider {
	case ProviderGemini:
		return googleai.New(ctx,
			googleai.WithAPIKey(c.apiKey),
			googleai.WithDefaultModel(c.model),
		)
	case ProviderOpenAI:
		return openai.New(
			openai.WithToken(c.apiKey),
			openai.WithModel(c.model),
		)
	case ProviderClaude:
		return anthropic.New(
			anthropic.WithToken(c.apiKey),
			anthropic.WithModel(c.model),
		)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", c.provider)
	}
}

// DefaultModel returns the default model for each provider.
func DefaultModel(provider LLMProvider) string {
	switch provider {
	case ProviderGemini:
		return "gemini-2.0-flash"
	case ProviderOpenAI:
		return "gpt-4"
	case ProviderClaude:
		return "claude-3-sonnet-20240229"
	default:
		return ""
	}
}

func buildStatementPrompt(text string) string {
	return fmt.Sprintf(`
You are an expert financial document parser. Analyze the following Consolidated Account Statement text and extract structured data.

Extract the following information and return as JSON:
{
  "document_type": "string or null",
  "version": "string or null",
  "dates": {"statement_period": {"start_date": "DD-Mon-YYYY", "end_date": "DD-Mon-YYYY"}, "transaction_date": "DD-Mon-YYYY", "nav_date": "DD-Mon-YYYY"},
  "personal_information": {"name": "string", "email": "string", "address": "string", "mobile": "string"},
  "entities": {"cams": "string", "kfintech": "string", "mutual_fund": "string"},
  "portfolio_summary": {"<fund name>": {"cost_value": number, "market_value": number}, "total": {"cost_value": number, "market_value": number}},
  "mutual_fund_details": [{"fund_name": "string", "isin": "string", "advisor": "string", "registrar": "string", "folio_number": "string", "pan": "string", "kyc": "string", "pan_status": "string"}],
  "transaction_details": {"date": "string", "amount": number, "nav": number, "units": number, "transaction_type": "string", "unit_balance": number},
  "financial_data": {"nav_on_date": number, "market_value_on_date": number, "entry_load": "string", "exit_load": "string", "total_cost_value": number, "opening_unit_balance": number, "closing_unit_balance": number},
  "nominee_details": {"nominee_1": "string", "nominee_2": "string", "nominee_3": "string"}
}

Use null for any field not present in the document.

Document text:
%s

Return only valid JSON, no additional text.
`, text)
}

// stripCodeFences removes the markdown fences some models wrap around
// their JSON answer.
func stripCodeFences(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}
