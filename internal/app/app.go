package app

import (
	"net/http"

	"studio-backoffice-go/internal/config"
	"studio-backoffice-go/internal/db"
	clientsdomain "studio-backoffice-go/internal/domain/clients"
	dashboarddomain "studio-backoffice-go/internal/domain/dashboard"
	financedomain "studio-backoffice-go/internal/domain/finance"
	samplesdomain "studio-backoffice-go/internal/domain/samples"
	teamdomain "studio-backoffice-go/internal/domain/team"
	trackingdomain "studio-backoffice-go/internal/domain/tracking"
	clientsrepo "studio-backoffice-go/internal/repository/postgres/clients"
	dashboardrepo "studio-backoffice-go/internal/repository/postgres/dashboard"
	financerepo "studio-backoffice-go/internal/repository/postgres/finance"
	samplesrepo "studio-backoffice-go/internal/repository/postgres/samples"
	teamrepo "studio-backoffice-go/internal/repository/postgres/team"
	trackingrepo "studio-backoffice-go/internal/repository/postgres/tracking"
	"studio-backoffice-go/internal/transport/httpserver"
	"studio-backoffice-go/internal/transport/httpserver/handler"
	"studio-backoffice-go/pkg/logger"

	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	clientsService := clientsdomain.NewService(clientsrepo.NewPostgres(dbConn)).
		WithFeedLimit(cfg.Dashboard.ActivityFeedLimit)
	teamService := teamdomain.NewService(teamrepo.NewPostgres(dbConn))
	financeService := financedomain.NewService(financerepo.NewPostgres(dbConn))
	samplesService := samplesdomain.NewService(samplesrepo.NewPostgres(dbConn))
	trackingService := trackingdomain.NewService(trackingrepo.NewPostgres(dbConn))
	dashboardService := dashboarddomain.NewService(dashboardrepo.NewPostgres(dbConn), dashboarddomain.Config{
		ActiveStatuses:   cfg.Dashboard.ActiveStatuses,
		RecentWindowDays: cfg.Dashboard.RecentWindowDays,
		RecentLimit:      cfg.Dashboard.RecentLimit,
	})

	handlers := handler.New(clientsService, teamService, financeService, samplesService, trackingService, dashboardService, log)

	log.Info("app: initializing http server")
	router := httpserver.NewRouter(cfg, handlers)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
