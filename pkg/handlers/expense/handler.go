package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/de-tools/spend-atlas/pkg/adapters"
	"github.com/de-tools/spend-atlas/pkg/models/api"
	"github.com/de-tools/spend-atlas/pkg/models/domain"
	expensesvc "github.com/de-tools/spend-atlas/pkg/services/expense"
)

type Handler struct {
	expenses expensesvc.Service
}

func NewHandler(expenses expensesvc.Service) *Handler {
	return &Handler{expenses: expenses}
}

// CreateExpense serves POST /users/{user}/expenses.
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	userID := chi.URLParam(r, "user")

	var payload api.Expense
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	amount, err := decimal.NewFromString(payload.Amount)
	if err != nil {
		writeUnprocessable(w, logger, "amount", "amount must be a decimal number")
		return
	}

	record := domain.ExpenseRecord{
		UserID:     userID,
		CategoryID: payload.CategoryID,
		Amount:     amount,
		SpentAt:    payload.SpentAt,
	}

	saved, err := h.expenses.Record(ctx, record)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeUnprocessable(w, logger, "expense", err.Error())
			return
		}
		logger.Error().Err(err).Str("user", userID).Msg("failed to record expense")
		http.Error(w, "failed to record expense", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(adapters.MapExpenseDomainToApi(saved)); err != nil {
		logger.Error().Err(err).Str("user", userID).Msg("failed to encode expense")
	}
}

// ListExpenses serves GET /users/{user}/expenses?days=N (default 90).
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	userID := chi.URLParam(r, "user")

	days := 90
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeUnprocessable(w, logger, "days", "days must be a positive number")
			return
		}
		days = parsed
	}

	since := time.Now().AddDate(0, 0, -days)
	records, err := h.expenses.GetRecordsSince(ctx, userID, since)
	if err != nil {
		logger.Error().Err(err).Str("user", userID).Msg("failed to list expenses")
		http.Error(w, "failed to list expenses", http.StatusInternalServerError)
		return
	}

	response := make([]api.Expense, 0, len(records))
	for _, record := range records {
		response = append(response, adapters.MapExpenseDomainToApi(record))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Str("user", userID).Msg("failed to encode expenses")
	}
}

func writeUnprocessable(w http.ResponseWriter, logger *zerolog.Logger, field, message string) {
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
