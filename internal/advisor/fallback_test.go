package advisor

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Sojagracesaju/pocketkash/internal/engine"
	"github.com/Sojagracesaju/pocketkash/internal/models"
)

func expense(amount float64, category models.ExpenseCategory, emotion models.EmotionTag) models.Transaction {
	return models.Transaction{
		Type:       models.TransactionTypeExpense,
		Amount:     amount,
		Category:   category,
		EmotionTag: emotion,
		Date:       time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestFallbackAdvice(t *testing.T) {
	eng := engine.New(engine.DefaultConfig())

	t.Run("flags heavy impulse spending", func(t *testing.T) {
		txs := []models.Transaction{
			expense(300, models.CategoryShopping, models.EmotionImpulse),
			expense(700, models.CategoryFood, models.EmotionNeed),
		}
		advice := FallbackAdvice(txs, eng.Summary(txs))
		if !strings.Contains(advice, "impulse spending (₹300)") {
			t.Errorf("expected impulse tip with amount, got %q", advice)
		}
	})

	t.Run("flags stress spending", func(t *testing.T) {
		txs := []models.Transaction{
			expense(150, models.CategoryFood, models.EmotionStress),
		}
		advice := FallbackAdvice(txs, eng.Summary(txs))
		if !strings.Contains(advice, "₹150 during stressful moments") {
			t.Errorf("expected stress tip, got %q", advice)
		}
	})

	t.Run("flags overspending balance", func(t *testing.T) {
		txs := []models.Transaction{
			expense(500, models.CategoryFood, models.EmotionNeed),
		}
		advice := FallbackAdvice(txs, eng.Summary(txs))
		if !strings.Contains(advice, "spending more than you earn") {
			t.Errorf("expected negative-balance tip, got %q", advice)
		}
	})

	t.Run("names the dominant category", func(t *testing.T) {
		txs := []models.Transaction{
			{Type: models.TransactionTypeIncome, Amount: 5000, Source: models.SourceAllowance},
			expense(900, models.CategoryFood, models.EmotionNeed),
			expense(100, models.CategoryTravel, models.EmotionNeed),
		}
		advice := FallbackAdvice(txs, eng.Summary(txs))
		if !strings.Contains(advice, "Food is your biggest expense category") {
			t.Errorf("expected category tip, got %q", advice)
		}
	})

	t.Run("never returns empty text", func(t *testing.T) {
		var txs []models.Transaction
		advice := FallbackAdvice(txs, eng.Summary(txs))
		if advice == "" {
			t.Fatal("expected fallback advice text")
		}
		if !strings.Contains(advice, "Keep tracking your expenses") {
			t.Errorf("expected generic tips, got %q", advice)
		}
	})
}

func TestAdviseWithoutAPIKey(t *testing.T) {
	eng := engine.New(engine.DefaultConfig())
	advisor := NewGeminiAdvisor("", "gemini-2.0-flash", eng)

	t.Run("empty snapshot", func(t *testing.T) {
		advice, err := advisor.Advise(context.Background(), nil, engine.FinanceSummary{}, "Priya")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if advice != noTransactionsAdvice {
			t.Errorf("expected the no-transactions message, got %q", advice)
		}
	})

	t.Run("answers locally", func(t *testing.T) {
		txs := []models.Transaction{
			expense(150, models.CategoryFood, models.EmotionStress),
		}
		advice, err := advisor.Advise(context.Background(), txs, eng.Summary(txs), "Priya")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if advice == "" {
			t.Fatal("expected fallback advice")
		}
	})
}
