package engine

import (
	"strings"
	"testing"

	"github.com/Sojagracesaju/pocketkash/internal/models"
)

func TestDigest(t *testing.T) {
	eng := New(DefaultConfig())

	t.Run("includes_summary_and_recent", func(t *testing.T) {
		txs := []models.Transaction{
			income(5000, models.SourceAllowance, testDate),
			expense(150, models.CategoryFood, models.EmotionNeed, testDate),
			expense(500, models.CategoryShopping, models.EmotionImpulse, testDate),
		}
		digest := eng.Digest(txs, eng.Summary(txs), "Asha")

		for _, want := range []string{
			"Asha",
			"Total income: ₹5,000",
			"Total expenses: ₹650",
			"Balance: ₹4,350",
			"shopping: ₹500 (impulse)",
			"food: ₹150 (need)",
		} {
			if !strings.Contains(digest, want) {
				t.Errorf("digest missing %q:\n%s", want, digest)
			}
		}
	})

	t.Run("stable_for_equal_input", func(t *testing.T) {
		txs := []models.Transaction{
			expense(150, models.CategoryFood, "", testDate),
		}
		s := eng.Summary(txs)
		if eng.Digest(txs, s, "") != eng.Digest(txs, s, "") {
			t.Error("digest must be deterministic")
		}
	})

	t.Run("caps_recent_transactions", func(t *testing.T) {
		var txs []models.Transaction
		for i := 0; i < 10; i++ {
			txs = append(txs, expense(float64(100+i), models.CategoryFood, "", testDate))
		}
		digest := eng.Digest(txs, eng.Summary(txs), "")

		if strings.Contains(digest, "₹100 ") || strings.Contains(digest, "₹104 ") {
			t.Errorf("digest should only carry the last %d transactions:\n%s", recentDigestCount, digest)
		}
		if !strings.Contains(digest, "₹109") {
			t.Errorf("digest missing the newest transaction:\n%s", digest)
		}
	})
}
