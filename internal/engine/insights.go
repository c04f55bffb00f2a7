package engine

import (
	"fmt"
	"math"

	"github.com/Sojagracesaju/pocketkash/internal/models"
)

// InsightType distinguishes the kinds of observations the engine produces.
type InsightType string

const (
	InsightBehaviour InsightType = "behaviour"
	InsightLeak      InsightType = "leak"
	InsightSaving    InsightType = "saving"
	InsightAlert     InsightType = "alert"
)

// Insight is a single human-readable observation. Insights are transient:
// every recomputation regenerates the full list, and the id only encodes the
// insight's fixed position, not any transaction identity.
type Insight struct {
	ID          string      `json:"id"`
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
}

var behaviourMessages = map[BehaviourType]string{
	BehaviourPlanned:       "You're a Planned Spender! You think before spending and manage money wisely.",
	BehaviourImpulsive:     "You tend to be an Impulsive Spender. Consider pausing before making purchases.",
	BehaviourFrequentSmall: "You're a Frequent Small Spender. Those small purchases add up!",
}

// Insights produces the ordered list of observations for the snapshot.
// The behaviour insight is always first and always present; the remaining
// three are emitted only when their trigger condition holds. Equal input
// produces structurally identical output.
func (e *Engine) Insights(txs []models.Transaction, summary FinanceSummary) []Insight {
	insights := []Insight{{
		ID:          "1",
		Type:        InsightBehaviour,
		Title:       "Your Spending Style",
		Description: behaviourMessages[summary.BehaviourType],
		Icon:        "🎯",
	}}

	if food := summary.CategoryBreakdown[models.CategoryFood]; food > summary.TotalExpenses*e.cfg.FoodLeakShare {
		percent := int(math.Round(food / summary.TotalExpenses * 100))
		insights = append(insights, Insight{
			ID:    "2",
			Type:  InsightLeak,
			Title: "Food Money Leak Detected",
			Description: fmt.Sprintf("You spent %s on food (%d%% of expenses). Consider cooking more at home.",
				FormatINR(food), percent),
			Icon: "🍔",
		})
	}

	if summary.Balance > e.cfg.SavingSurplus {
		insights = append(insights, Insight{
			ID:    "3",
			Type:  InsightSaving,
			Title: "Great Savings Potential!",
			Description: fmt.Sprintf("You have %s surplus. Consider starting a small recurring deposit or emergency fund.",
				FormatINR(summary.Balance)),
			Icon: "💰",
		})
	}

	var stress int
	for _, t := range txs {
		if t.IsExpense() && t.EmotionTag == models.EmotionStress {
			stress++
		}
	}
	if stress > e.cfg.StressAlertCount {
		insights = append(insights, Insight{
			ID:          "4",
			Type:        InsightAlert,
			Title:       "Stress Spending Pattern",
			Description: "You seem to spend when stressed. Try healthier stress relief activities like exercise or talking to friends.",
			Icon:        "⚠️",
		})
	}

	return insights
}
