package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/quoteshelf/api/internal/application/account"
	"github.com/quoteshelf/api/internal/application/auth"
	"github.com/quoteshelf/api/internal/application/verification"
	"github.com/quoteshelf/api/internal/config"
	"github.com/quoteshelf/api/internal/transport/http/handler"
	appmiddleware "github.com/quoteshelf/api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		// Without a signing key no token can verify.
		authMw = func(http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, `{"error":"authentication unavailable"}`, http.StatusInternalServerError)
			})
		}
	}

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	verificationSvc := verification.NewService(deps.Codes, deps.Mailer)
	authSvc := auth.NewService(deps.UserRepo, deps.Codes, deps.Providers, deps.JWTProvider)
	accountSvc := account.NewService(deps.UserRepo, deps.QuoteRepo, deps.DB)

	healthH := handler.NewHealthHandler()
	verificationH := handler.NewVerificationHandler(verificationSvc)
	authH := handler.NewAuthHandler(authSvc, accountSvc)

	r.Get("/health-check", healthH.Ping)

	r.Route("/auth", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────
		r.With(sensitiveRL.Limit).Post("/register", authH.Register)
		r.With(sensitiveRL.Limit).Post("/login", authH.Login)
		r.Post("/logout", authH.Logout)
		r.Post("/social-login", authH.SocialLogin)
		r.With(sensitiveRL.Limit).Post("/send-code", verificationH.SendCode)
		r.Post("/verify-code", verificationH.VerifyCode)

		// ── Authenticated routes ─────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)
			r.Delete("/delete", authH.Delete)
		})
	})

	return r
}
