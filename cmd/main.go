package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata" // Load timezone data

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/aryam-rgb/mall-rent-nexus/internal/app"
	"github.com/aryam-rgb/mall-rent-nexus/internal/config"
	"github.com/aryam-rgb/mall-rent-nexus/internal/controllers"
	"github.com/aryam-rgb/mall-rent-nexus/internal/mailer"
	"github.com/aryam-rgb/mall-rent-nexus/internal/middleware"
	"github.com/aryam-rgb/mall-rent-nexus/internal/realtime"
	"github.com/aryam-rgb/mall-rent-nexus/internal/repositories"
	"github.com/aryam-rgb/mall-rent-nexus/internal/routes"
	"github.com/aryam-rgb/mall-rent-nexus/internal/services"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

const requestTimeout = 15 * time.Second

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize the application:", err)
	}
	defer application.Close()

	// Repositories
	profileRepo := repositories.NewProfileRepository(application.DB)
	propertyRepo := repositories.NewPropertyRepository(application.DB)
	leaseRepo := repositories.NewLeaseRepository(application.DB)
	historyRepo := repositories.NewLeaseHistoryRepository(application.DB)
	renewalRepo := repositories.NewLeaseRenewalRepository(application.DB)
	paymentRepo := repositories.NewPaymentRepository(application.DB)
	uploadRepo := repositories.NewPaymentUploadRepository(application.DB)
	methodRepo := repositories.NewPaymentMethodRepository(application.DB)
	maintenanceRepo := repositories.NewMaintenanceRepository(application.DB)
	noticeRepo := repositories.NewNoticeRepository(application.DB)
	currencyRepo := repositories.NewCurrencySettingsRepository(application.DB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := app.SeedSuperadmin(ctx, profileRepo, cfg.SuperadminName, cfg.SuperadminEmail); err != nil {
		utils.Logger.Fatal("Failed to seed superadmin:", err)
	}
	if err := app.SeedCurrencySettings(ctx, currencyRepo); err != nil {
		utils.Logger.Fatal("Failed to seed currency settings:", err)
	}

	// Urgent-notice email is optional; without an API key notices are still
	// stored and listed, just not mailed.
	var noticeMailer services.Mailer
	if sg := mailer.NewSendGridMailer(cfg.SendgridAPIKey, cfg.SendgridFromName, cfg.SendgridFromEmail); sg != nil {
		noticeMailer = sg
	} else {
		utils.Logger.Warn("SENDGRID_API_KEY not set; urgent notice emails disabled")
	}

	// Services
	profileService := services.NewProfileService(profileRepo)
	propertyService := services.NewPropertyService(propertyRepo)
	leaseService := services.NewLeaseService(leaseRepo, propertyRepo, historyRepo, renewalRepo)
	paymentService := services.NewPaymentService(paymentRepo, uploadRepo, methodRepo, leaseRepo)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, leaseRepo)
	noticeService := services.NewNoticeService(noticeRepo, profileRepo, leaseRepo, noticeMailer)
	currencyService := services.NewCurrencyService(currencyRepo)

	// Row-change fanout for SSE clients
	listener := realtime.NewListener(application.DB)
	go listener.Run(ctx)

	// Controllers
	healthController := controllers.NewHealthController(application.DB)
	eventsController := controllers.NewEventsController(listener)
	profileController := controllers.NewProfileController(profileService)
	propertyController := controllers.NewPropertyController(propertyService)
	leaseController := controllers.NewLeaseController(leaseService)
	paymentController := controllers.NewPaymentController(paymentService)
	maintenanceController := controllers.NewMaintenanceController(maintenanceService)
	noticeController := controllers.NewNoticeController(noticeService)
	currencyController := controllers.NewCurrencyController(currencyService)

	// Router
	router := mux.NewRouter()

	router.HandleFunc(routes.Health, healthController.HealthHandler).Methods(http.MethodGet)

	// The SSE stream authenticates but holds its connection open, so it
	// lives outside the request-timeout wrapper.
	stream := router.NewRoute().Subrouter()
	stream.Use(middleware.AuthMiddleware(cfg.RSAPublicKey, profileRepo))
	stream.HandleFunc(routes.Events, eventsController.StreamHandler).Methods(http.MethodGet)

	// Protected routes (JWT middleware + request timeout)
	secured := router.NewRoute().Subrouter()
	secured.Use(
		middleware.AuthMiddleware(cfg.RSAPublicKey, profileRepo),
		middleware.WithTimeout(requestTimeout),
	)

	secured.HandleFunc(routes.Profiles, profileController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Profiles, profileController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ProfileMe, profileController.MeHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ProfileMe, profileController.UpdateMeHandler).Methods(http.MethodPatch)
	secured.HandleFunc(routes.ProfileByID, profileController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ProfileChangeRole, profileController.ChangeRoleHandler).Methods(http.MethodPut)

	secured.HandleFunc(routes.Properties, propertyController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Properties, propertyController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyByID, propertyController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyByID, propertyController.UpdateHandler).Methods(http.MethodPatch)
	secured.HandleFunc(routes.PropertyByID, propertyController.DeleteHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.PropertyLeaseHistory, leaseController.HistoryHandler).Methods(http.MethodGet)

	secured.HandleFunc(routes.Leases, leaseController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Leases, leaseController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.LeaseByID, leaseController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.LeaseByID, leaseController.TerminateHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.LeaseRenewals, leaseController.RequestRenewalHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.LeaseRenewals, leaseController.ListRenewalsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.LeaseRenewalRespond, leaseController.RespondToRenewalHandler).Methods(http.MethodPost)

	secured.HandleFunc(routes.Payments, paymentController.RecordHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Payments, paymentController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentByID, paymentController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentConfirm, paymentController.ConfirmHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PaymentUploads, paymentController.SubmitProofHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PaymentUploads, paymentController.ListProofsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentUploadVerify, paymentController.VerifyProofHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PaymentMethods, paymentController.ListMethodsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentMethods, paymentController.SaveMethodHandler).Methods(http.MethodPost)

	secured.HandleFunc(routes.MaintenanceRequests, maintenanceController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.MaintenanceRequests, maintenanceController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.MaintenanceRequestByID, maintenanceController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.MaintenanceRequestTransition, maintenanceController.TransitionHandler).Methods(http.MethodPost)

	secured.HandleFunc(routes.Notices, noticeController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Notices, noticeController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.NoticeByID, noticeController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.NoticeByID, noticeController.DeleteHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.NoticeMarkRead, noticeController.MarkReadHandler).Methods(http.MethodPost)

	secured.HandleFunc(routes.CurrencySettings, currencyController.GetSettingsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.CurrencyConvert, currencyController.ConvertHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.CurrencyRate, currencyController.UpdateRateHandler).Methods(http.MethodPut)

	// CORS config
	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	// No WriteTimeout: the SSE stream writes for the connection's lifetime.
	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           co.Handler(router),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal("Failed to start server:", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	utils.Logger.Info("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.Logger.WithError(err).Error("Graceful shutdown failed")
	}
}
