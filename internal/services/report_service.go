package services

import (
	"context"
	"errors"
	"time"

	"github.com/Sojagracesaju/pocketkash/internal/engine"
	apperrors "github.com/Sojagracesaju/pocketkash/internal/errors"
	"github.com/Sojagracesaju/pocketkash/internal/models"
)

// reportService derives summaries, insights, and budget window status from the
// transaction store. It holds no state of its own: every call reloads the
// snapshot so the output always reflects the latest transactions.
type reportService struct {
	transactions TransactionServicer
	profiles     ProfileServicer
	engine       *engine.Engine
	advisor      AdviceGenerator
}

// NewReportService creates a new ReportServicer.
func NewReportService(transactions TransactionServicer, profiles ProfileServicer, eng *engine.Engine, advisor AdviceGenerator) ReportServicer {
	return &reportService{
		transactions: transactions,
		profiles:     profiles,
		engine:       eng,
		advisor:      advisor,
	}
}

// Summary computes income, expense, balance, and category totals over every
// recorded transaction, tagged with the current behaviour classification.
func (s *reportService) Summary() (*engine.FinanceSummary, error) {
	txs, err := s.transactions.ListTransactions()
	if err != nil {
		return nil, err
	}
	summary := s.engine.Summary(txs)
	return &summary, nil
}

// Insights generates the full ordered insight feed for the current snapshot.
func (s *reportService) Insights() ([]engine.Insight, error) {
	txs, err := s.transactions.ListTransactions()
	if err != nil {
		return nil, err
	}
	return s.engine.Insights(txs, s.engine.Summary(txs)), nil
}

// Window evaluates the day, week, or month containing now against the limit
// configured for that window. A missing profile degrades to no limits and no
// routine expenses rather than failing the report.
func (s *reportService) Window(kind engine.WindowKind, now time.Time) (*engine.WindowStatus, error) {
	txs, err := s.transactions.ListTransactions()
	if err != nil {
		return nil, err
	}

	profile, err := s.loadProfileOrEmpty()
	if err != nil {
		return nil, err
	}

	var limit float64
	switch kind {
	case engine.WindowDay:
		limit = profile.DailyLimit
	case engine.WindowWeek:
		limit = profile.WeeklyLimit
	case engine.WindowMonth:
		limit = profile.MonthlyLimit
	default:
		return nil, apperrors.ErrUnknownWindow
	}

	status := s.engine.EvaluateWindow(txs, limit, kind, now, profile.RoutineTotal())
	return &status, nil
}

// Advice asks the advisor for personalised guidance on the current snapshot.
func (s *reportService) Advice(ctx context.Context) (string, error) {
	txs, err := s.transactions.ListTransactions()
	if err != nil {
		return "", err
	}

	profile, err := s.loadProfileOrEmpty()
	if err != nil {
		return "", err
	}

	summary := s.engine.Summary(txs)
	return s.advisor.Advise(ctx, txs, summary, profile.Name)
}

func (s *reportService) loadProfileOrEmpty() (*models.UserProfile, error) {
	profile, err := s.profiles.GetProfile()
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return &models.UserProfile{}, nil
		}
		return nil, err
	}
	return profile, nil
}
