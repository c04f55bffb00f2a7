package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sojagracesaju/pocketkash/internal/engine"
	"github.com/Sojagracesaju/pocketkash/internal/services"
)

// --- mock report service ---

type mockReportService struct {
	summaryFn  func() (*engine.FinanceSummary, error)
	insightsFn func() ([]engine.Insight, error)
	windowFn   func(kind engine.WindowKind, now time.Time) (*engine.WindowStatus, error)
	adviceFn   func(ctx context.Context) (string, error)
}

func (m *mockReportService) Summary() (*engine.FinanceSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn()
	}
	return &engine.FinanceSummary{}, nil
}

func (m *mockReportService) Insights() ([]engine.Insight, error) {
	if m.insightsFn != nil {
		return m.insightsFn()
	}
	return []engine.Insight{}, nil
}

func (m *mockReportService) Window(kind engine.WindowKind, now time.Time) (*engine.WindowStatus, error) {
	if m.windowFn != nil {
		return m.windowFn(kind, now)
	}
	return &engine.WindowStatus{Kind: kind}, nil
}

func (m *mockReportService) Advice(ctx context.Context) (string, error) {
	if m.adviceFn != nil {
		return m.adviceFn(ctx)
	}
	return "", nil
}

var _ services.ReportServicer = (*mockReportService)(nil)

func setupReportRouter(handler *ReportHandler) *gin.Engine {
	r := gin.New()
	r.GET("/summary", handler.GetSummary)
	r.GET("/insights", handler.GetInsights)
	r.GET("/overview/:window", handler.GetOverview)
	r.GET("/advice", handler.GetAdvice)
	return r
}

// --- tests ---

func TestReportHandler_GetSummary(t *testing.T) {
	svc := &mockReportService{
		summaryFn: func() (*engine.FinanceSummary, error) {
			return &engine.FinanceSummary{
				TotalIncome:   5000,
				TotalExpenses: 500,
				Balance:       4500,
				BehaviourType: engine.BehaviourPlanned,
			}, nil
		},
	}
	r := setupReportRouter(NewReportHandler(svc))

	rec := doRequest(r, "GET", "/summary", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	summary := result["summary"].(map[string]interface{})
	if summary["balance"] != float64(4500) {
		t.Errorf("expected balance 4500, got %v", summary["balance"])
	}
	if summary["behaviour_type"] != "planned" {
		t.Errorf("expected planned behaviour, got %v", summary["behaviour_type"])
	}
}

func TestReportHandler_GetOverview(t *testing.T) {
	t.Run("maps window names to kinds", func(t *testing.T) {
		for path, want := range map[string]engine.WindowKind{
			"daily":   engine.WindowDay,
			"weekly":  engine.WindowWeek,
			"monthly": engine.WindowMonth,
		} {
			var gotKind engine.WindowKind
			svc := &mockReportService{
				windowFn: func(kind engine.WindowKind, _ time.Time) (*engine.WindowStatus, error) {
					gotKind = kind
					return &engine.WindowStatus{Kind: kind}, nil
				},
			}
			r := setupReportRouter(NewReportHandler(svc))

			rec := doRequest(r, "GET", "/overview/"+path, "")

			if rec.Code != http.StatusOK {
				t.Fatalf("%s: expected 200, got %d", path, rec.Code)
			}
			if gotKind != want {
				t.Errorf("%s: expected kind %s, got %s", path, want, gotKind)
			}
		}
	})

	t.Run("returns 400 on unknown window", func(t *testing.T) {
		r := setupReportRouter(NewReportHandler(&mockReportService{}))

		rec := doRequest(r, "GET", "/overview/yearly", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNKNOWN_WINDOW")
	})
}

func TestReportHandler_GetAdvice(t *testing.T) {
	svc := &mockReportService{
		adviceFn: func(context.Context) (string, error) {
			return "• Keep tracking your expenses!", nil
		},
	}
	r := setupReportRouter(NewReportHandler(svc))

	rec := doRequest(r, "GET", "/advice", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["advice"] != "• Keep tracking your expenses!" {
		t.Errorf("unexpected advice: %v", result["advice"])
	}
}
