package models

// UserRole describes how the user earns or studies.
type UserRole string

const (
	RoleStudying UserRole = "studying"
	RoleWorking  UserRole = "working"
	RoleBoth     UserRole = "both"
)

// SpendingFrequency is the self-reported spending habit from onboarding.
type SpendingFrequency string

const (
	FrequencyRarely    SpendingFrequency = "rarely"
	FrequencySometimes SpendingFrequency = "sometimes"
	FrequencyOften     SpendingFrequency = "often"
	FrequencyAlways    SpendingFrequency = "always"
)

// UserProfile holds the single user's onboarding answers and budget limits.
// A limit of zero means "not configured" and suppresses limit-relative
// budget output rather than reading as a zero budget.
type UserProfile struct {
	Base
	Name                string            `gorm:"not null" json:"name"`
	Email               string            `json:"email"`
	Age                 int               `json:"age"`
	Role                UserRole          `gorm:"size:20;default:studying" json:"role"`
	HasIncome           bool              `json:"has_income"`
	MonthlyAllowance    float64           `json:"monthly_allowance"`
	Salary              float64           `json:"salary"`
	SideIncome          float64           `json:"side_income"`
	SpendingFrequency   SpendingFrequency `gorm:"size:20;default:sometimes" json:"spending_frequency"`
	PlansBeforeSpending bool              `json:"plans_before_spending"`
	TopSpendingCategory string            `json:"top_spending_category"`
	DailyLimit          float64           `json:"daily_limit"`
	WeeklyLimit         float64           `json:"weekly_limit"`
	MonthlyLimit        float64           `json:"monthly_limit"`

	RoutineExpenses []RoutineExpense `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"routine_expenses"`
}

// RoutineExpense is a recurring expense the user expects most days
// (bus fare, lunch). It is not a transaction: it only feeds the daily
// projection of spending still to come.
type RoutineExpense struct {
	Base
	ProfileID string  `gorm:"type:uuid;not null;index" json:"profile_id"`
	Name      string  `gorm:"not null" json:"name"`
	Amount    float64 `gorm:"not null" json:"amount"`
	Category  string  `gorm:"default:routine" json:"category"`
}

// RoutineTotal sums the configured routine expense amounts.
func (p *UserProfile) RoutineTotal() float64 {
	var total float64
	for _, e := range p.RoutineExpenses {
		total += e.Amount
	}
	return total
}

// TotalMonthlyIncome sums the income figures declared during onboarding.
func (p *UserProfile) TotalMonthlyIncome() float64 {
	return p.MonthlyAllowance + p.Salary + p.SideIncome
}
