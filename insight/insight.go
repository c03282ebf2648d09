// Package insight generates a short financial-health summary of a closing
// statement through Gemini. It is the only suspending call in the system:
// it degrades to a fixed fallback string on any failure and never returns
// an error to the caller.
package insight

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/sacredfin/books"
)

// ModelName is the Gemini model used for the summary.
const ModelName = "gemini-3-flash-preview"

// Fallback is returned whenever the service is unavailable or answers with
// nothing usable. No retry is attempted.
const Fallback = "Unable to generate AI insights at this time."

// Client is the narrow surface of the genai client this package needs,
// so tests can run without credentials.
type Client interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// NewClient builds a Gemini client from ambient credentials (GEMINI_API_KEY
// or application-default credentials, resolved by the genai SDK itself).
func NewClient(ctx context.Context) (Client, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not initialize Gemini client: %w", err)
	}
	return client.Models, nil
}

// Prompt renders the canned prompt template for a closing statement.
func Prompt(c books.Closing) string {
	return fmt.Sprintf(`Provide a concise financial health summary for our church for the month of %s.
Total Income: %s
Total Expenses: %s
Net: %s.
Offer advice on charity allocation or expense management. Keep it encouraging and professional.`,
		c.Month, c.TotalIncome, c.TotalExpenses, c.NetBalance)
}

// Generate asks Gemini for a summary of the closing statement. On any
// failure it returns Fallback; balances, records and views stay fully
// usable while the request is pending, nothing else waits on it.
func Generate(ctx context.Context, client Client, c books.Closing) string {
	if client == nil {
		return Fallback
	}
	config := &genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0.7)}
	resp, err := client.GenerateContent(ctx, ModelName, genai.Text(Prompt(c)), config)
	if err != nil {
		return Fallback
	}
	text := resp.Text()
	if text == "" {
		return Fallback
	}
	return text
}
