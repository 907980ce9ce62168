package http

import (
	"log/slog"
	"os"

	"github.com/brokerpay/payroll-backend-go/internal/handler/http/middleware"
	"github.com/brokerpay/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	JWTService           jwt.Service
	AuthHandler          AuthHandler
	EmployeeHandler      EmployeeHandler
	TransactionHandler   TransactionHandler
	PaymentHandler       PaymentHandler
	PayrollHandler       PayrollHandler
	PayrollPeriodHandler PayrollPeriodHandler
	SettingsHandler      SettingsHandler
	AllowedOrigins       []string
	Environment          string
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Environment),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.AuthHandler.Register)
			r.Post("/refresh", cfg.AuthHandler.RefreshToken)
			r.Post("/logout", cfg.AuthHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", cfg.AuthHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", cfg.AuthHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", cfg.AuthHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(cfg.JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", cfg.EmployeeHandler.ListEmployees)
				r.Get("/{id}", cfg.EmployeeHandler.GetEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", cfg.EmployeeHandler.CreateEmployee)
					r.Put("/{id}", cfg.EmployeeHandler.UpdateEmployee)
				})
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", cfg.TransactionHandler.ListTransactions)
				r.Get("/{id}", cfg.TransactionHandler.GetTransaction)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", cfg.TransactionHandler.CreateTransaction)
					r.Put("/{id}", cfg.TransactionHandler.UpdateTransaction)
				})
			})

			r.Route("/payments", func(r chi.Router) {
				r.Get("/", cfg.PaymentHandler.ListPayments)
				r.Get("/{id}", cfg.PaymentHandler.GetPayment)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/process", cfg.PayrollHandler.ProcessPayment)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/withholdings", cfg.PayrollHandler.CalculateTaxWithholdings)
				r.Get("/net-pay", cfg.PayrollHandler.CalculateNetPay)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/generate", cfg.PayrollHandler.GeneratePayment)
				})
			})

			r.Route("/payroll-periods", func(r chi.Router) {
				r.Get("/", cfg.PayrollPeriodHandler.ListPeriods)
				r.Get("/{id}", cfg.PayrollPeriodHandler.GetPeriod)
				r.Get("/{id}/summary", cfg.PayrollHandler.GetPeriodSummary)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", cfg.PayrollPeriodHandler.CreatePeriod)
					r.Put("/{id}", cfg.PayrollPeriodHandler.UpdatePeriod)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/tax", cfg.SettingsHandler.ListTaxSettings)
				r.Get("/commission-rates", cfg.SettingsHandler.ListCommissionRates)
			})
		})
	})
	return r
}
