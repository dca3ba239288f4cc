// cmd/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/app"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/config"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/constants"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/controllers"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/middleware"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/realtime"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/repositories"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/routes"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/services"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize app")
	}
	defer application.Close()

	// Repositories
	accountRepo := repositories.NewAccountRepository(application.DB)
	jobRepo := repositories.NewJobRepository(application.DB)
	proposalRepo := repositories.NewProposalRepository(application.DB)
	contractRepo := repositories.NewContractRepository(application.DB)
	notificationRepo := repositories.NewNotificationRepository(application.DB)

	// Realtime gateway shares the hub with the notification fanout so pushes
	// never leave the process.
	hub := realtime.NewHub()
	realtimeServer := realtime.NewServer(hub, cfg.RSAPublicKey)

	// Services
	otpService := services.NewOTPService(cfg.VerificationCodeLength, cfg.VerificationCodeExpiry)
	mailer := services.NewSendgridEmailSender(cfg)
	smsSender := services.NewTwilioSMSSender(cfg)
	limiter := services.NewRateLimiterService(application.Redis, cfg)
	registrationService := services.NewRegistrationService(
		accountRepo, otpService, mailer, limiter, services.NewBcryptHasher(),
	)
	cleanupService := services.NewRegistrationCleanupService(registrationService)
	notificationService := services.NewNotificationService(notificationRepo, hub)
	jobService := services.NewJobService(jobRepo)
	proposalService := services.NewProposalService(proposalRepo, jobRepo, contractRepo, notificationService)
	contractService := services.NewContractService(contractRepo, jobRepo, accountRepo, notificationService, smsSender)

	// Controllers
	healthController := controllers.NewHealthController(application)
	registrationController := controllers.NewRegistrationController(registrationService)
	jobsController := controllers.NewJobsController(jobService)
	proposalsController := controllers.NewProposalsController(proposalService)
	contractsController := controllers.NewContractsController(contractService)
	notificationsController := controllers.NewNotificationsController(notificationService)

	// Router
	r := mux.NewRouter()
	r.HandleFunc(routes.Health, healthController.Check).Methods(http.MethodGet)
	r.HandleFunc(routes.AuthRegister, registrationController.Register).Methods(http.MethodPost)
	r.HandleFunc(routes.AuthResend, registrationController.ResendCode).Methods(http.MethodPost)
	r.HandleFunc(routes.AuthVerify, registrationController.VerifyCode).Methods(http.MethodPost)

	secured := r.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.RSAPublicKey))
	secured.HandleFunc(routes.JobsBase, jobsController.CreateJob).Methods(http.MethodPost)
	secured.HandleFunc(routes.JobsOpen, jobsController.ListOpenJobs).Methods(http.MethodGet)
	secured.HandleFunc(routes.JobByID, jobsController.GetJob).Methods(http.MethodGet)
	secured.HandleFunc(routes.ProposalsBase, proposalsController.SubmitProposal).Methods(http.MethodPost)
	secured.HandleFunc(routes.ProposalsByJob, proposalsController.ListByJob).Methods(http.MethodGet)
	secured.HandleFunc(routes.ProposalAccept, proposalsController.AcceptProposal).Methods(http.MethodPost)
	secured.HandleFunc(routes.ProposalReject, proposalsController.RejectProposal).Methods(http.MethodPost)
	secured.HandleFunc(routes.ProposalWithdraw, proposalsController.WithdrawProposal).Methods(http.MethodPost)
	secured.HandleFunc(routes.ContractByID, contractsController.GetContract).Methods(http.MethodGet)
	secured.HandleFunc(routes.ContractComplete, contractsController.CompleteContract).Methods(http.MethodPost)
	secured.HandleFunc(routes.ContractCancel, contractsController.CancelContract).Methods(http.MethodPost)
	secured.HandleFunc(routes.ContractDeliverables, contractsController.SubmitDeliverable).Methods(http.MethodPost)
	secured.HandleFunc(routes.ContractMilestones, contractsController.AddMilestone).Methods(http.MethodPost)
	secured.HandleFunc(routes.NotificationsBase, notificationsController.List).Methods(http.MethodGet)
	secured.HandleFunc(routes.NotificationMarkRead, notificationsController.MarkRead).Methods(http.MethodPost)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	// Staging sweep: expired pending registrations never reach the store, so
	// they only need to be dropped from the cache on a schedule.
	c := cron.New()
	if _, err := c.AddFunc(constants.StagingSweepSpec, func() {
		if err := cleanupService.CleanupExpired(); err != nil {
			utils.Logger.WithError(err).Error("Registration staging sweep failed")
		}
	}); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to schedule staging sweep")
	}
	c.Start()
	defer c.Stop()

	apiServer := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: corsHandler.Handler(r),
	}

	go func() {
		utils.Logger.Infof("API server listening on port %s", cfg.AppPort)
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.WithError(err).Fatal("API server failed")
		}
	}()

	go func() {
		utils.Logger.Infof("Realtime gateway listening on port %s", cfg.RealtimePort)
		if err := realtimeServer.Listen(":" + cfg.RealtimePort); err != nil {
			utils.Logger.WithError(err).Fatal("Realtime gateway failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		utils.Logger.WithError(err).Error("API server shutdown failed")
	}
	if err := realtimeServer.Shutdown(); err != nil {
		utils.Logger.WithError(err).Error("Realtime gateway shutdown failed")
	}
}
