package httpserver

import (
	"net/http"
	"time"

	"studio-backoffice-go/internal/config"
	"studio-backoffice-go/internal/transport/httpserver/handler"
	corsmw "studio-backoffice-go/internal/transport/httpserver/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(corsmw.NewCORS(cfg.CORSOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Get("/currencies", handlers.ListCurrencies)

		r.Get("/clients", handlers.ListClients)
		r.Post("/clients", handlers.CreateClient)
		r.Get("/clients/{id}", handlers.GetClient)
		r.Patch("/clients/{id}", handlers.UpdateClient)
		r.Put("/clients/{id}", handlers.ReplaceClient)
		r.Delete("/clients/{id}", handlers.DeleteClient)
		r.Post("/clients/{id}/assign", handlers.AssignTeamMember)
		r.Get("/clients/{id}/activities", handlers.ListClientActivities)

		r.Get("/activities", handlers.ListRecentActivities)
		r.Post("/activities", handlers.CreateActivity)

		r.Get("/team-members", handlers.ListTeamMembers)
		r.Post("/team-members", handlers.CreateTeamMember)
		r.Post("/team-members/{id}/deactivate", handlers.DeactivateTeamMember)

		r.Get("/transactions", handlers.ListTransactions)
		r.Post("/transactions", handlers.CreateTransaction)
		r.Put("/transactions/{id}", handlers.UpdateTransaction)
		r.Delete("/transactions/{id}", handlers.DeleteTransaction)

		r.Get("/marketing-transactions", handlers.ListMarketingTransactions)
		r.Post("/marketing-transactions", handlers.CreateMarketingTransaction)
		r.Patch("/marketing-transactions/{id}", handlers.UpdateMarketingTransaction)
		r.Delete("/marketing-transactions/{id}", handlers.DeleteMarketingTransaction)

		r.Get("/dashboard/metrics", handlers.DashboardMetrics)
		r.Get("/dashboard/progress", handlers.DashboardProgress)
		r.Get("/dashboard/recent-transactions", handlers.DashboardRecentTransactions)
		r.Get("/finances/summary", handlers.FinancialSummary)

		r.Get("/images/today", handlers.GetTodayImageCount)
		r.Post("/images/today", handlers.SetTodayImageCount)
		r.Post("/images/date", handlers.SetImageCountForDate)
		r.Get("/images/month/{year}/{month}", handlers.ListMonthImageCounts)

		r.Get("/work-sessions/today", handlers.ListTodayWorkSessions)
		r.Post("/work-sessions", handlers.CheckIn)
		r.Delete("/work-sessions/{clientId}", handlers.CheckOut)

		r.Get("/sample-requests", handlers.ListSampleRequests)
		r.Post("/sample-requests", handlers.CreateSampleRequest)
		r.Patch("/sample-requests/{id}", handlers.UpdateSampleRequest)
		r.Delete("/sample-requests/{id}", handlers.DeleteSampleRequest)
	})

	return r
}
