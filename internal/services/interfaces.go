package services

import (
	"context"
	"time"

	"github.com/Sojagracesaju/pocketkash/internal/engine"
	"github.com/Sojagracesaju/pocketkash/internal/models"
	"github.com/Sojagracesaju/pocketkash/internal/pagination"
)

// TransactionInput carries the fields of a new transaction. The service
// enforces the type/category/source invariant before anything is stored.
type TransactionInput struct {
	Type        models.TransactionType
	Amount      float64
	Category    models.ExpenseCategory
	Source      models.IncomeSource
	EmotionTag  models.EmotionTag
	Date        time.Time
	Description string
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *models.TransactionType
	Category *models.ExpenseCategory
}

// TransactionServicer defines the contract for the transaction store.
// Transactions are immutable: there is no update operation.
type TransactionServicer interface {
	AddTransaction(input TransactionInput) (*models.Transaction, error)
	GetTransactionByID(id string) (*models.Transaction, error)
	DeleteTransaction(id string) error
	ListTransactions() ([]models.Transaction, error)
	GetTransactionsPage(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
}

// RoutineExpenseInput is one configured routine expense.
type RoutineExpenseInput struct {
	Name   string
	Amount float64
}

// ProfileInput carries the user's onboarding answers and budget limits.
type ProfileInput struct {
	Name                string
	Email               string
	Age                 int
	Role                models.UserRole
	HasIncome           bool
	MonthlyAllowance    float64
	Salary              float64
	SideIncome          float64
	SpendingFrequency   models.SpendingFrequency
	PlansBeforeSpending bool
	TopSpendingCategory string
	DailyLimit          float64
	WeeklyLimit         float64
	MonthlyLimit        float64
	RoutineExpenses     []RoutineExpenseInput
}

// ProfileServicer defines the contract for the single user profile.
type ProfileServicer interface {
	GetProfile() (*models.UserProfile, error)
	SaveProfile(input ProfileInput) (*models.UserProfile, error)
}

// ReportServicer derives summaries, insights, window status, and advice from
// the current transaction snapshot. Every call recomputes from scratch.
type ReportServicer interface {
	Summary() (*engine.FinanceSummary, error)
	Insights() ([]engine.Insight, error)
	Window(kind engine.WindowKind, now time.Time) (*engine.WindowStatus, error)
	Advice(ctx context.Context) (string, error)
}

// AdviceGenerator produces natural-language advice for a snapshot. It must
// always return a usable text: implementations fall back to locally computed
// advice when a remote collaborator is unavailable.
type AdviceGenerator interface {
	Advise(ctx context.Context, txs []models.Transaction, summary engine.FinanceSummary, userName string) (string, error)
}
