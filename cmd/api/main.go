package main

import (
	"fmt"
	"net/http"

	"github.com/brokerpay/payroll-backend-go/internal/config"
	appHTTP "github.com/brokerpay/payroll-backend-go/internal/handler/http"
	"github.com/brokerpay/payroll-backend-go/internal/pkg/cron"
	"github.com/brokerpay/payroll-backend-go/internal/pkg/database"
	"github.com/brokerpay/payroll-backend-go/internal/pkg/jwt"
	"github.com/brokerpay/payroll-backend-go/internal/pkg/oauth"
	"github.com/brokerpay/payroll-backend-go/internal/repository/postgresql"
	authService "github.com/brokerpay/payroll-backend-go/internal/service/auth"
	employeeService "github.com/brokerpay/payroll-backend-go/internal/service/employee"
	payrollService "github.com/brokerpay/payroll-backend-go/internal/service/payroll"
	periodService "github.com/brokerpay/payroll-backend-go/internal/service/period"
	settingsService "github.com/brokerpay/payroll-backend-go/internal/service/settings"
	transactionService "github.com/brokerpay/payroll-backend-go/internal/service/transaction"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	transactionRepo := postgresql.NewTransactionRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	periodRepo := postgresql.NewPayrollPeriodRepository(db)
	taxSettingRepo := postgresql.NewTaxSettingRepository(db)
	commissionRateRepo := postgresql.NewCommissionRateRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, refreshTokenRepo, jwtService, googleService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	transactionSvc := transactionService.NewTransactionService(transactionRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, transactionRepo, taxSettingRepo, periodRepo, paymentRepo)
	periodSvc := periodService.NewPayrollPeriodService(periodRepo)
	settingsSvc := settingsService.NewSettingsService(taxSettingRepo, commissionRateRepo)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		JWTService:           jwtService,
		AuthHandler:          appHTTP.NewAuthHandler(jwtService, authSvc, cfg.App.FrontendURL),
		EmployeeHandler:      appHTTP.NewEmployeeHandler(employeeSvc),
		TransactionHandler:   appHTTP.NewTransactionHandler(transactionSvc),
		PaymentHandler:       appHTTP.NewPaymentHandler(payrollSvc),
		PayrollHandler:       appHTTP.NewPayrollHandler(payrollSvc),
		PayrollPeriodHandler: appHTTP.NewPayrollPeriodHandler(periodSvc),
		SettingsHandler:      appHTTP.NewSettingsHandler(settingsSvc),
		AllowedOrigins:       cfg.App.AllowedOrigins,
		Environment:          cfg.App.Env,
	})

	scheduler := cron.NewScheduler()
	cron.NewAuthJobs(refreshTokenRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
