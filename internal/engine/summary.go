package engine

import (
	"github.com/Sojagracesaju/pocketkash/internal/models"
)

// BehaviourType is a coarse label summarizing the user's spending style.
type BehaviourType string

const (
	BehaviourPlanned       BehaviourType = "planned"
	BehaviourImpulsive     BehaviourType = "impulsive"
	BehaviourFrequentSmall BehaviourType = "frequent-small"
)

// FinanceSummary is the derived aggregate over a transaction snapshot.
// It is recomputed on demand and never persisted.
type FinanceSummary struct {
	TotalIncome       float64                            `json:"total_income"`
	TotalExpenses     float64                            `json:"total_expenses"`
	Balance           float64                            `json:"balance"`
	CategoryBreakdown map[models.ExpenseCategory]float64 `json:"category_breakdown"`
	BehaviourType     BehaviourType                      `json:"behaviour_type"`
}

// Summary computes totals, the per-category expense breakdown, and the
// behavioural classification for the given transactions. Input order is
// irrelevant; an empty list yields an all-zero summary with the planned
// behaviour type.
func (e *Engine) Summary(txs []models.Transaction) FinanceSummary {
	var totalIncome, totalExpenses float64

	// All five buckets are present even when empty.
	breakdown := make(map[models.ExpenseCategory]float64, len(models.ExpenseCategories))
	for _, c := range models.ExpenseCategories {
		breakdown[c] = 0
	}

	for _, t := range txs {
		switch t.Type {
		case models.TransactionTypeIncome:
			totalIncome += t.Amount
		case models.TransactionTypeExpense:
			totalExpenses += t.Amount
			// An expense without a category contributes to the total but to
			// no bucket. Malformed input degrades silently, it is not an error.
			if _, ok := breakdown[t.Category]; ok {
				breakdown[t.Category] += t.Amount
			}
		}
	}

	return FinanceSummary{
		TotalIncome:       totalIncome,
		TotalExpenses:     totalExpenses,
		Balance:           totalIncome - totalExpenses,
		CategoryBreakdown: breakdown,
		BehaviourType:     e.Classify(txs),
	}
}

// Classify derives the spending-style label from expense transactions only.
// Rules apply in fixed priority order: impulsive wins over frequent-small,
// and planned is the fallback. With zero expenses both ratios would divide
// by zero, so the classifier short-circuits to planned.
func (e *Engine) Classify(txs []models.Transaction) BehaviourType {
	var expenses, impulse, small int
	for _, t := range txs {
		if !t.IsExpense() {
			continue
		}
		expenses++
		if t.EmotionTag == models.EmotionImpulse {
			impulse++
		}
		if t.Amount < e.cfg.SmallExpenseThreshold {
			small++
		}
	}

	if expenses == 0 {
		return BehaviourPlanned
	}

	if float64(impulse)/float64(expenses) > e.cfg.ImpulseRatio {
		return BehaviourImpulsive
	}
	if float64(small)/float64(expenses) > e.cfg.SmallRatio {
		return BehaviourFrequentSmall
	}
	return BehaviourPlanned
}
