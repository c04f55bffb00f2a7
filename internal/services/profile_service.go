package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/Sojagracesaju/pocketkash/internal/errors"
	"github.com/Sojagracesaju/pocketkash/internal/models"
)

// profileService handles the single user profile.
type profileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(db *gorm.DB) ProfileServicer {
	return &profileService{db: db}
}

// GetProfile returns the profile, including routine expenses.
func (s *profileService) GetProfile() (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.Preload("RoutineExpenses").First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// SaveProfile creates or replaces the profile. Routine expenses are replaced
// wholesale: the configured list always mirrors the latest input.
func (s *profileService) SaveProfile(input ProfileInput) (*models.UserProfile, error) {
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if input.DailyLimit < 0 || input.WeeklyLimit < 0 || input.MonthlyLimit < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limits cannot be negative")
	}
	for _, e := range input.RoutineExpenses {
		if e.Name == "" || e.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "routine expenses need a name and a positive amount")
		}
	}

	var profile models.UserProfile
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&profile).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			profile = models.UserProfile{}
		}

		profile.Name = input.Name
		profile.Email = input.Email
		profile.Age = input.Age
		profile.Role = input.Role
		profile.HasIncome = input.HasIncome
		profile.MonthlyAllowance = input.MonthlyAllowance
		profile.Salary = input.Salary
		profile.SideIncome = input.SideIncome
		profile.SpendingFrequency = input.SpendingFrequency
		profile.PlansBeforeSpending = input.PlansBeforeSpending
		profile.TopSpendingCategory = input.TopSpendingCategory
		profile.DailyLimit = input.DailyLimit
		profile.WeeklyLimit = input.WeeklyLimit
		profile.MonthlyLimit = input.MonthlyLimit
		profile.RoutineExpenses = nil

		if err := tx.Save(&profile).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Unscoped().Where("profile_id = ?", profile.ID).Delete(&models.RoutineExpense{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, e := range input.RoutineExpenses {
			routine := models.RoutineExpense{
				ProfileID: profile.ID,
				Name:      e.Name,
				Amount:    e.Amount,
				Category:  "routine",
			}
			if err := tx.Create(&routine).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			profile.RoutineExpenses = append(profile.RoutineExpenses, routine)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &profile, nil
}
