package engine

import (
	"fmt"
	"strings"

	"github.com/Sojagracesaju/pocketkash/internal/models"
)

// recentDigestCount caps how many transactions the digest spells out.
const recentDigestCount = 5

// Digest renders the summary and the most recent transactions as a stable,
// serializable text block. It is the payload handed to the AI advice
// collaborator, and the same primitives back the local fallback, so the
// digest must never depend on anything but its inputs.
func (e *Engine) Digest(txs []models.Transaction, summary FinanceSummary, userName string) string {
	if userName == "" {
		userName = "the user"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Financial summary for %s:\n", userName)
	fmt.Fprintf(&b, "- Total income: %s\n", FormatINR(summary.TotalIncome))
	fmt.Fprintf(&b, "- Total expenses: %s\n", FormatINR(summary.TotalExpenses))
	fmt.Fprintf(&b, "- Balance: %s\n", FormatINR(summary.Balance))
	fmt.Fprintf(&b, "- Spending behaviour: %s\n", summary.BehaviourType)

	parts := make([]string, 0, len(models.ExpenseCategories))
	for _, c := range models.ExpenseCategories {
		parts = append(parts, fmt.Sprintf("%s %s", c, FormatINR(summary.CategoryBreakdown[c])))
	}
	fmt.Fprintf(&b, "- Category breakdown: %s\n", strings.Join(parts, ", "))

	recent := txs
	if len(recent) > recentDigestCount {
		recent = recent[len(recent)-recentDigestCount:]
	}
	if len(recent) > 0 {
		lines := make([]string, 0, len(recent))
		for _, t := range recent {
			label := string(t.Category)
			if t.Type == models.TransactionTypeIncome {
				label = string(t.Source)
			}
			tag := string(t.EmotionTag)
			if tag == "" {
				tag = "normal"
			}
			lines = append(lines, fmt.Sprintf("%s: %s (%s)", label, FormatINR(t.Amount), tag))
		}
		fmt.Fprintf(&b, "- Recent transactions: %s\n", strings.Join(lines, ", "))
	}

	return b.String()
}
