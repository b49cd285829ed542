package analysis

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/spend-atlas/pkg/adapters"
	"github.com/de-tools/spend-atlas/pkg/models/api"
	"github.com/de-tools/spend-atlas/pkg/models/domain"
	analysissvc "github.com/de-tools/spend-atlas/pkg/services/analysis"
	"github.com/de-tools/spend-atlas/pkg/services/expense"
)

const (
	defaultWindowDays = 90
	minWindowDays     = 30
)

type Handler struct {
	expenses expense.Service
	engine   *analysissvc.Engine
	now      func() time.Time
}

func NewHandler(expenses expense.Service, engine *analysissvc.Engine) *Handler {
	return &Handler{
		expenses: expenses,
		engine:   engine,
		now:      time.Now,
	}
}

// NewHandlerWithClock is used by tests that pin the analysis window.
func NewHandlerWithClock(expenses expense.Service, engine *analysissvc.Engine, now func() time.Time) *Handler {
	h := NewHandler(expenses, engine)
	h.now = now
	return h
}

// GetSpendingPatterns serves GET /users/{user}/analysis/patterns?days=N.
// Windows shorter than 30 days are rejected here, before the engine runs.
func (h *Handler) GetSpendingPatterns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	userID := chi.URLParam(r, "user")

	days := defaultWindowDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < minWindowDays {
			writeValidationError(w, logger, "days",
				"analysis window must be a number of at least 30 days")
			return
		}
		days = parsed
	}

	now := h.now()
	window := domain.AnalysisWindow{
		Start: now.AddDate(0, 0, -days),
		Days:  days,
	}

	records, err := h.expenses.GetRecordsSince(ctx, userID, window.Start)
	if err != nil {
		logger.Error().Err(err).Str("user", userID).Msg("failed to fetch expense records")
		http.Error(w, "failed to fetch expense records", http.StatusInternalServerError)
		return
	}

	report, err := h.engine.Analyze(records, window)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeValidationError(w, logger, "records", err.Error())
			return
		}
		logger.Error().Err(err).Str("user", userID).Msg("analysis failed")
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}

	response := adapters.MapAnalysisReportDomainToApi(report, now)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Str("user", userID).
			Msg("failed to encode analysis report")
	}
}

func writeValidationError(w http.ResponseWriter, logger *zerolog.Logger, field, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	body := api.ValidationError{
		Message: "The given data was invalid.",
		Errors:  map[string][]string{field: {message}},
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("failed to encode validation error")
	}
}
