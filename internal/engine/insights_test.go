package engine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Sojagracesaju/pocketkash/internal/models"
)

func TestInsights(t *testing.T) {
	eng := New(DefaultConfig())

	t.Run("empty_list_emits_behaviour_only", func(t *testing.T) {
		s := eng.Summary(nil)
		insights := eng.Insights(nil, s)

		if len(insights) != 1 {
			t.Fatalf("expected 1 insight, got %d", len(insights))
		}
		if insights[0].Type != InsightBehaviour {
			t.Errorf("expected behaviour insight, got %s", insights[0].Type)
		}
		if insights[0].ID != "1" {
			t.Errorf("expected positional id 1, got %s", insights[0].ID)
		}
	})

	t.Run("food_leak_fires_above_forty_percent", func(t *testing.T) {
		txs := []models.Transaction{
			expense(500, models.CategoryFood, "", testDate),
			expense(400, models.CategoryTravel, "", testDate),
		}
		s := eng.Summary(txs)
		insights := eng.Insights(txs, s)

		var leak *Insight
		for i := range insights {
			if insights[i].Type == InsightLeak {
				leak = &insights[i]
			}
		}
		if leak == nil {
			t.Fatal("expected a food leak insight")
		}
		// 500 of 900 rounds to 56%.
		if !strings.Contains(leak.Description, "56%") {
			t.Errorf("expected interpolated percent, got %q", leak.Description)
		}
		if !strings.Contains(leak.Description, "₹500") {
			t.Errorf("expected interpolated amount, got %q", leak.Description)
		}
	})

	t.Run("food_leak_suppressed_at_boundary", func(t *testing.T) {
		// Food is exactly 40% of expenses; the trigger is strictly greater.
		txs := []models.Transaction{
			expense(400, models.CategoryFood, "", testDate),
			expense(600, models.CategoryTravel, "", testDate),
		}
		s := eng.Summary(txs)

		for _, in := range eng.Insights(txs, s) {
			if in.Type == InsightLeak {
				t.Error("leak insight must not fire at exactly the threshold")
			}
		}
	})

	t.Run("saving_opportunity_above_surplus", func(t *testing.T) {
		txs := []models.Transaction{
			income(5000, models.SourceAllowance, testDate),
			expense(500, models.CategoryFood, "", testDate),
		}
		s := eng.Summary(txs)

		var found bool
		for _, in := range eng.Insights(txs, s) {
			if in.Type == InsightSaving {
				found = true
				if !strings.Contains(in.Description, FormatINR(4500)) {
					t.Errorf("expected surplus amount in %q", in.Description)
				}
			}
		}
		if !found {
			t.Error("expected a saving insight for balance above 1000")
		}
	})

	t.Run("stress_alert_strictly_greater_than_two", func(t *testing.T) {
		stress := func(n int) []models.Transaction {
			var txs []models.Transaction
			for i := 0; i < n; i++ {
				txs = append(txs, expense(100, models.CategoryFood, models.EmotionStress, testDate))
			}
			return txs
		}

		two := stress(2)
		for _, in := range eng.Insights(two, eng.Summary(two)) {
			if in.Type == InsightAlert {
				t.Error("alert must not fire at exactly two stress expenses")
			}
		}

		three := stress(3)
		var found bool
		for _, in := range eng.Insights(three, eng.Summary(three)) {
			if in.Type == InsightAlert {
				found = true
			}
		}
		if !found {
			t.Error("expected stress alert for three stress expenses")
		}
	})

	t.Run("idempotent_and_ordered", func(t *testing.T) {
		txs := []models.Transaction{
			income(10000, models.SourceSalary, testDate),
			expense(2000, models.CategoryFood, models.EmotionStress, testDate),
			expense(500, models.CategoryFood, models.EmotionStress, testDate),
			expense(300, models.CategoryFood, models.EmotionStress, testDate),
		}
		s := eng.Summary(txs)

		first := eng.Insights(txs, s)
		second := eng.Insights(txs, s)
		if !reflect.DeepEqual(first, second) {
			t.Error("repeated computation produced different insights")
		}

		// All four triggers hold here: behaviour, leak, saving, alert, in order.
		wantOrder := []InsightType{InsightBehaviour, InsightLeak, InsightSaving, InsightAlert}
		if len(first) != len(wantOrder) {
			t.Fatalf("expected %d insights, got %d", len(wantOrder), len(first))
		}
		for i, want := range wantOrder {
			if first[i].Type != want {
				t.Errorf("position %d: expected %s, got %s", i, want, first[i].Type)
			}
		}
	})
}
