package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/healthrecord-api/internal/config"
	"github.com/jwalitptl/healthrecord-api/internal/handler"
	authHandler "github.com/jwalitptl/healthrecord-api/internal/handler/auth"
	doctorHandler "github.com/jwalitptl/healthrecord-api/internal/handler/doctor"
	mappingHandler "github.com/jwalitptl/healthrecord-api/internal/handler/mapping"
	patientHandler "github.com/jwalitptl/healthrecord-api/internal/handler/patient"
	"github.com/jwalitptl/healthrecord-api/internal/middleware"
	"github.com/jwalitptl/healthrecord-api/internal/repository/postgres"
	"github.com/jwalitptl/healthrecord-api/internal/router"
	authService "github.com/jwalitptl/healthrecord-api/internal/service/auth"
	doctorService "github.com/jwalitptl/healthrecord-api/internal/service/doctor"
	mappingService "github.com/jwalitptl/healthrecord-api/internal/service/mapping"
	patientService "github.com/jwalitptl/healthrecord-api/internal/service/patient"
	"github.com/jwalitptl/healthrecord-api/pkg/auth"
	"github.com/jwalitptl/healthrecord-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	mappingRepo := postgres.NewMappingRepository(db)

	// Services
	tokenSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)
	authSvc := authService.NewService(userRepo, tokenSvc)
	patientSvc := patientService.NewService(patientRepo, mappingRepo)
	doctorSvc := doctorService.NewService(doctorRepo, mappingRepo)
	mappingSvc := mappingService.NewService(mappingRepo, patientRepo)

	// Handlers and middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenSvc)
	h := handler.NewHandler()
	authH := authHandler.NewHandler(authSvc)
	patientH := patientHandler.NewHandler(patientSvc)
	doctorH := doctorHandler.NewHandler(doctorSvc)
	mappingH := mappingHandler.NewHandler(mappingSvc)

	r := router.NewRouter(authMiddleware, authH, patientH, doctorH, mappingH, h, router.Config{
		RequestTimeout: cfg.Server.RequestTimeout,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
		CORS:           middleware.DefaultCORSConfig(),
	})
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
