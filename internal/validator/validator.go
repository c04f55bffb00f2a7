// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
// Each enum is a closed set: anything outside it is rejected at binding
// time rather than silently mapped to nothing downstream.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("income_source", validateIncomeSource)
		_ = v.RegisterValidation("emotion_tag", validateEmotionTag)
		_ = v.RegisterValidation("user_role", validateUserRole)
		_ = v.RegisterValidation("spending_frequency", validateSpendingFrequency)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "food", "travel", "shopping", "entertainment", "others":
		return true
	}
	return false
}

func validateIncomeSource(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "allowance", "salary", "side-income", "others":
		return true
	}
	return false
}

func validateEmotionTag(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "need", "impulse", "stress", "celebration":
		return true
	}
	return false
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "studying", "working", "both":
		return true
	}
	return false
}

func validateSpendingFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "rarely", "sometimes", "often", "always":
		return true
	}
	return false
}
