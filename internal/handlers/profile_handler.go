package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Sojagracesaju/pocketkash/internal/errors"
	"github.com/Sojagracesaju/pocketkash/internal/models"
	"github.com/Sojagracesaju/pocketkash/internal/services"
)

// ProfileHandler handles requests for the single user profile.
type ProfileHandler struct {
	profileService services.ProfileServicer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService services.ProfileServicer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// RoutineExpenseRequest is one routine expense in a profile payload
type RoutineExpenseRequest struct {
	Name   string  `json:"name" binding:"required,max=100"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// SaveProfileRequest represents the request payload for saving the profile
type SaveProfileRequest struct {
	Name                string                   `json:"name" binding:"required,max=100"`
	Email               string                   `json:"email" binding:"omitempty,email"`
	Age                 int                      `json:"age" binding:"omitempty,min=1,max=120"`
	Role                models.UserRole          `json:"role" binding:"omitempty,user_role"`
	HasIncome           bool                     `json:"has_income"`
	MonthlyAllowance    float64                  `json:"monthly_allowance" binding:"omitempty,gte=0"`
	Salary              float64                  `json:"salary" binding:"omitempty,gte=0"`
	SideIncome          float64                  `json:"side_income" binding:"omitempty,gte=0"`
	SpendingFrequency   models.SpendingFrequency `json:"spending_frequency" binding:"omitempty,spending_frequency"`
	PlansBeforeSpending bool                     `json:"plans_before_spending"`
	TopSpendingCategory string                   `json:"top_spending_category" binding:"omitempty,expense_category"`
	DailyLimit          float64                  `json:"daily_limit" binding:"omitempty,gte=0"`
	WeeklyLimit         float64                  `json:"weekly_limit" binding:"omitempty,gte=0"`
	MonthlyLimit        float64                  `json:"monthly_limit" binding:"omitempty,gte=0"`
	RoutineExpenses     []RoutineExpenseRequest  `json:"routine_expenses" binding:"omitempty,dive"`
}

// GetProfile handles the retrieval of the user profile
// @Summary     Get the user profile
// @Description Get the user's onboarding answers, budget limits, and routine expenses
// @Tags        profile
// @Accept      json
// @Produce     json
// @Success     200 {object} models.UserProfile "User profile"
// @Failure     404 {object} ErrorResponse "No profile saved yet"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// SaveProfile handles creating or updating the user profile
// @Summary     Save the user profile
// @Description Create or replace the user profile. Routine expenses are replaced wholesale.
// @Tags        profile
// @Accept      json
// @Produce     json
// @Param       request body SaveProfileRequest true "Profile details"
// @Success     200 {object} models.UserProfile "Saved profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [put]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.ProfileInput{
		Name:                req.Name,
		Email:               req.Email,
		Age:                 req.Age,
		Role:                req.Role,
		HasIncome:           req.HasIncome,
		MonthlyAllowance:    req.MonthlyAllowance,
		Salary:              req.Salary,
		SideIncome:          req.SideIncome,
		SpendingFrequency:   req.SpendingFrequency,
		PlansBeforeSpending: req.PlansBeforeSpending,
		TopSpendingCategory: req.TopSpendingCategory,
		DailyLimit:          req.DailyLimit,
		WeeklyLimit:         req.WeeklyLimit,
		MonthlyLimit:        req.MonthlyLimit,
	}
	for _, e := range req.RoutineExpenses {
		input.RoutineExpenses = append(input.RoutineExpenses, services.RoutineExpenseInput{
			Name:   e.Name,
			Amount: e.Amount,
		})
	}

	profile, err := h.profileService.SaveProfile(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
