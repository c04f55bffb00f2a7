package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// ExpenseCategory is the closed set of spending categories.
type ExpenseCategory string

const (
	CategoryFood          ExpenseCategory = "food"
	CategoryTravel        ExpenseCategory = "travel"
	CategoryShopping      ExpenseCategory = "shopping"
	CategoryEntertainment ExpenseCategory = "entertainment"
	CategoryOthers        ExpenseCategory = "others"
)

// ExpenseCategories lists every category in display order.
var ExpenseCategories = []ExpenseCategory{
	CategoryFood,
	CategoryTravel,
	CategoryShopping,
	CategoryEntertainment,
	CategoryOthers,
}

// IncomeSource is the closed set of income origins.
type IncomeSource string

const (
	SourceAllowance  IncomeSource = "allowance"
	SourceSalary     IncomeSource = "salary"
	SourceSideIncome IncomeSource = "side-income"
	SourceOthers     IncomeSource = "others"
)

// EmotionTag captures the psychological context of an expense.
type EmotionTag string

const (
	EmotionNeed        EmotionTag = "need"
	EmotionImpulse     EmotionTag = "impulse"
	EmotionStress      EmotionTag = "stress"
	EmotionCelebration EmotionTag = "celebration"
)

// Transaction represents a single recorded income or expense event.
// Transactions are immutable once created; the only mutation is deletion.
// Exactly one of Category/Source is populated, determined by Type, and
// EmotionTag is only ever set on expenses.
type Transaction struct {
	Base
	Type        TransactionType `gorm:"not null;index" json:"type"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Category    ExpenseCategory `gorm:"size:20" json:"category,omitempty"`
	Source      IncomeSource    `gorm:"size:20" json:"source,omitempty"`
	EmotionTag  EmotionTag      `gorm:"size:20" json:"emotion_tag,omitempty"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Description string          `json:"description,omitempty"`
}

// IsExpense reports whether the transaction is an expense.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}
