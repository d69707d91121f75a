// Package ai turns a user's spending summary into personalized savings tips
// via the OpenAI chat completions API. Callers fall back to canned tips when
// no API key is configured or the call fails.
package ai

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fintrack/internal/config"
)

//go:embed prompt.txt
var systemPrompt string

type Advisor struct {
	cfg  *config.Config
	http *http.Client
}

func NewAdvisor(cfg *config.Config) *Advisor {
	return &Advisor{cfg: cfg, http: &http.Client{}}
}

// SpendingSummary is the snapshot of a user's current month handed to the
// model. Amounts are already in the user's currency.
type SpendingSummary struct {
	CurrencySymbol string
	TotalSpent     float64
	ExpenseCount   int
	AvgTransaction float64
	CategoryLines  []string // "Food & Dining: $120.00 (40.0%)"
	BudgetLine     string   // "No budget set for this month" when absent
	LastMonthTotal float64
	SpendingChange float64 // percent vs last month
}

// SavingsTips asks the model for tips grounded in the summary.
func (a *Advisor) SavingsTips(ctx context.Context, s SpendingSummary) ([]string, error) {
	if a.cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY missing")
	}

	body := map[string]any{
		"model":       a.cfg.OpenAILlmModel,
		"max_tokens":  500,
		"temperature": 0.9,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": UserPrompt(s)},
		},
	}
	b, _ := json.Marshal(body)
	req, _ := http.NewRequestWithContext(ctx, "POST", a.cfg.OpenAIBaseURL+"/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+a.cfg.OpenAIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		bs, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("llm error: %s", string(bs))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("no choices")
	}

	tips := ParseTips(out.Choices[0].Message.Content)
	if len(tips) == 0 {
		return nil, fmt.Errorf("unparseable response")
	}
	return tips, nil
}

// UserPrompt renders the spending summary into the model's user message.
func UserPrompt(s SpendingSummary) string {
	categories := "No categories yet"
	if len(s.CategoryLines) > 0 {
		categories = strings.Join(s.CategoryLines, ", ")
	}
	direction := "decrease"
	if s.SpendingChange > 0 {
		direction = "increase"
	}
	return fmt.Sprintf(`USER'S FINANCIAL DATA:
- Current Month Spending: %s%.2f
- Number of Transactions: %d
- Average Transaction Size: %s%.2f
- Top Spending Categories: %s
- Budget Status: %s
- Last Month Spending: %s%.2f
- Spending Change: %+.1f%% %s from last month

Generate tips NOW based on this user's unique financial situation:`,
		s.CurrencySymbol, s.TotalSpent,
		s.ExpenseCount,
		s.CurrencySymbol, s.AvgTransaction,
		categories,
		s.BudgetLine,
		s.CurrencySymbol, s.LastMonthTotal,
		s.SpendingChange, direction,
	)
}

// ParseTips extracts a tip list from the model's numbered or bulleted output.
func ParseTips(text string) []string {
	var tips []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 3 {
			continue
		}
		i := 0
		for i < len(line) && line[i] >= '0' && line[i] <= '9' {
			i++
		}
		if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
			line = line[i+1:]
		}
		line = strings.TrimLeft(line, "-•* ")
		line = strings.TrimSpace(line)
		if line != "" {
			tips = append(tips, line)
		}
	}
	return tips
}

// FallbackTips are served when the model is unavailable.
func FallbackTips() []string {
	return []string{
		"Track your spending daily to identify unnecessary expenses.",
		"Set up automatic transfers to a savings account each payday.",
		"Review subscriptions monthly and cancel unused services.",
		"Use the 24-hour rule: wait a day before making non-essential purchases.",
		"Cook at home more often - it's healthier and cheaper than eating out.",
		"Compare prices before making large purchases.",
		"Build an emergency fund covering 3-6 months of expenses.",
	}
}
