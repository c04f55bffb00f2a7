package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/Sojagracesaju/pocketkash/internal/errors"
	"github.com/Sojagracesaju/pocketkash/internal/models"
	"github.com/Sojagracesaju/pocketkash/internal/pagination"
)

// transactionService handles the transaction store.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// AddTransaction validates and stores a new transaction. The id is assigned
// here and never reused; the date defaults to now when not provided.
func (s *transactionService) AddTransaction(input TransactionInput) (*models.Transaction, error) {
	if input.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	switch input.Type {
	case models.TransactionTypeExpense:
		if input.Category == "" {
			return nil, apperrors.ErrMissingCategory
		}
		if input.Source != "" {
			return nil, apperrors.WithMessage(apperrors.ErrFieldTypeMismatch, "an expense cannot carry an income source")
		}
	case models.TransactionTypeIncome:
		if input.Source == "" {
			return nil, apperrors.ErrMissingSource
		}
		if input.Category != "" {
			return nil, apperrors.WithMessage(apperrors.ErrFieldTypeMismatch, "an income cannot carry an expense category")
		}
		if input.EmotionTag != "" {
			return nil, apperrors.WithMessage(apperrors.ErrFieldTypeMismatch, "emotion tags only apply to expenses")
		}
	default:
		return nil, apperrors.ErrInvalidTransactionType
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		Type:        input.Type,
		Amount:      input.Amount,
		Category:    input.Category,
		Source:      input.Source,
		EmotionTag:  input.EmotionTag,
		Date:        date,
		Description: input.Description,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetTransactionByID returns a transaction by id.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction removes a transaction by id. Deletion is the only
// mutation a stored transaction supports.
func (s *transactionService) DeleteTransaction(id string) error {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListTransactions returns the full snapshot in date order. This is the
// engine's read path: the engine always sees the whole list.
func (s *transactionService) ListTransactions() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Order("date ASC, created_at ASC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetTransactionsPage returns a paginated, filtered slice of the history for
// display purposes.
func (s *transactionService) GetTransactionsPage(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{})
	if filter.FromDate != nil {
		base = base.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", *filter.ToDate)
	}
	if filter.Type != nil {
		base = base.Where("type = ?", *filter.Type)
	}
	if filter.Category != nil {
		base = base.Where("category = ?", *filter.Category)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Order("date DESC").Scopes(pagination.Paginate(page)).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}
