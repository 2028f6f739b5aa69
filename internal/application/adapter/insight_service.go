// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// MonthlySummaryRequest carries the aggregate figures an insight is generated from.
// Monetary values are formatted decimal strings.
type MonthlySummaryRequest struct {
	Period            string // "YYYY-MM"
	Currency          string
	TotalIncome       string
	TotalExpenses     string
	NetSavings        string
	TransactionCount  int
	CategoryBreakdown map[string]string // category -> expense total
}

// MonthlySummaryResult is the generated insight content.
type MonthlySummaryResult struct {
	Summary    string
	Highlights []string
	Model      string
}

// InsightGenerator defines the interface for AI-backed spending summaries.
type InsightGenerator interface {
	// IsAvailable reports whether the generator is configured.
	IsAvailable() bool

	// GenerateMonthlySummary produces a natural-language summary of one month
	// of aggregated spending figures.
	GenerateMonthlySummary(ctx context.Context, request *MonthlySummaryRequest) (*MonthlySummaryResult, error)
}
