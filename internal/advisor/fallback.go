package advisor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Sojagracesaju/pocketkash/internal/engine"
	"github.com/Sojagracesaju/pocketkash/internal/models"
)

// FallbackAdvice computes rule-based tips from the snapshot alone. It always
// returns non-empty text.
func FallbackAdvice(txs []models.Transaction, summary engine.FinanceSummary) string {
	var tips []string

	var impulseSpending, stressSpending float64
	for _, tx := range txs {
		if !tx.IsExpense() {
			continue
		}
		switch tx.EmotionTag {
		case models.EmotionImpulse:
			impulseSpending += tx.Amount
		case models.EmotionStress:
			stressSpending += tx.Amount
		}
	}

	if impulseSpending > summary.TotalExpenses*0.2 {
		tips = append(tips, fmt.Sprintf("• Your impulse spending (%s) is high. Try the 24-hour rule before non-essential purchases.", engine.FormatINR(impulseSpending)))
	}

	if stressSpending > 0 {
		tips = append(tips, fmt.Sprintf("• You've spent %s during stressful moments. Consider healthier alternatives like exercise or talking to friends.", engine.FormatINR(stressSpending)))
	}

	if summary.Balance > summary.TotalIncome*0.2 {
		tips = append(tips, "• Great job! You have a healthy balance. Consider putting some into savings.")
	} else if summary.Balance < 0 {
		tips = append(tips, "• You're spending more than you earn. Review your expenses and cut non-essentials.")
	}

	if name, amount, ok := topCategory(summary.CategoryBreakdown); ok && amount > summary.TotalExpenses*0.4 {
		tips = append(tips, fmt.Sprintf("• %s is your biggest expense category. Look for ways to reduce it.", titleCase(name)))
	}

	if len(tips) == 0 {
		return "• Keep tracking your expenses to get better insights!\n• Set daily spending limits to stay on budget."
	}
	return strings.Join(tips, "\n\n")
}

// topCategory finds the largest category total. Ties break alphabetically so
// the output is stable between calls.
func topCategory(breakdown map[models.ExpenseCategory]float64) (string, float64, bool) {
	if len(breakdown) == 0 {
		return "", 0, false
	}
	names := make([]models.ExpenseCategory, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if breakdown[names[i]] != breakdown[names[j]] {
			return breakdown[names[i]] > breakdown[names[j]]
		}
		return names[i] < names[j]
	})
	top := names[0]
	return string(top), breakdown[top], true
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
