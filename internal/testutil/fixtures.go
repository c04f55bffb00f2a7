package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/Sojagracesaju/pocketkash/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestProfile creates a profile with daily, weekly, and monthly limits.
func CreateTestProfile(t *testing.T, db *gorm.DB, daily, weekly, monthly float64) *models.UserProfile {
	t.Helper()

	profile := &models.UserProfile{
		Name:              fmt.Sprintf("Test Student %d", nextID()),
		Role:              models.RoleStudying,
		HasIncome:         true,
		MonthlyAllowance:  5000,
		SpendingFrequency: models.FrequencySometimes,
		DailyLimit:        daily,
		WeeklyLimit:       weekly,
		MonthlyLimit:      monthly,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

// CreateTestRoutineExpense attaches a routine expense to the profile.
func CreateTestRoutineExpense(t *testing.T, db *gorm.DB, profileID string, amount float64) *models.RoutineExpense {
	t.Helper()

	routine := &models.RoutineExpense{
		ProfileID: profileID,
		Name:      fmt.Sprintf("Routine %d", nextID()),
		Amount:    amount,
		Category:  "routine",
	}
	if err := db.Create(routine).Error; err != nil {
		t.Fatalf("failed to create test routine expense: %v", err)
	}
	return routine
}

// CreateTestExpense creates an expense transaction dated at the given time.
func CreateTestExpense(t *testing.T, db *gorm.DB, amount float64, category models.ExpenseCategory, emotion models.EmotionTag, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Type:       models.TransactionTypeExpense,
		Amount:     amount,
		Category:   category,
		EmotionTag: emotion,
		Date:       date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return tx
}

// CreateTestIncome creates an income transaction dated at the given time.
func CreateTestIncome(t *testing.T, db *gorm.DB, amount float64, source models.IncomeSource, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Type:   models.TransactionTypeIncome,
		Amount: amount,
		Source: source,
		Date:   date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return tx
}
