package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	analysishandler "github.com/de-tools/spend-atlas/pkg/handlers/analysis"
	expensehandler "github.com/de-tools/spend-atlas/pkg/handlers/expense"
	spendatlasmiddleware "github.com/de-tools/spend-atlas/pkg/server/middleware"
	"github.com/de-tools/spend-atlas/pkg/services/analysis"
	"github.com/de-tools/spend-atlas/pkg/services/expense"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Expenses expense.Service
	Engine   *analysis.Engine
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	analysisHandler := analysishandler.NewHandler(config.Dependencies.Expenses, config.Dependencies.Engine)
	expenseHandler := expensehandler.NewHandler(config.Dependencies.Expenses)

	router := chi.NewRouter()

	router.Use(spendatlasmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/users/{user}/analysis/patterns", analysisHandler.GetSpendingPatterns)
		r.Post("/users/{user}/expenses", expenseHandler.CreateExpense)
		r.Get("/users/{user}/expenses", expenseHandler.ListExpenses)
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// Router exposes the configured mux so tests can drive it with httptest.
func (w *WebAPI) Router() *chi.Mux {
	return w.router
}
