package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fulltechhq/fulltech-backend/api/controllers"
	"github.com/fulltechhq/fulltech-backend/api/middleware"
	"github.com/fulltechhq/fulltech-backend/internal/catalog"
	"github.com/fulltechhq/fulltech-backend/internal/content"
	"github.com/fulltechhq/fulltech-backend/internal/customers"
	"github.com/fulltechhq/fulltech-backend/internal/purchases"
	"github.com/fulltechhq/fulltech-backend/internal/raffles"
	"github.com/fulltechhq/fulltech-backend/internal/referrals"
	"github.com/fulltechhq/fulltech-backend/pkg/auth/session"
	"github.com/fulltechhq/fulltech-backend/pkg/config"
	"github.com/fulltechhq/fulltech-backend/pkg/db"
	"github.com/fulltechhq/fulltech-backend/pkg/enums"
	"github.com/fulltechhq/fulltech-backend/pkg/logger"
	"github.com/fulltechhq/fulltech-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Generate(context.Context, string) (string, error)
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// RouterParams bundle everything NewRouter wires together.
type RouterParams struct {
	Config    *config.Config
	Logger    *logger.Logger
	DB        *db.Client
	Redis     *redis.Client
	Sessions  sessionManager
	Customers customers.Service
	Referrals referrals.Service
	Purchases purchases.Service
	Raffles   raffles.Service
	Catalog   catalog.Service
	Content   content.Service
}

// NewRouter assembles the FULLTECH HTTP surface.
func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginIdentityLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterIdentityLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, params.DB, params.Redis, logg))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/products", controllers.PublicProducts(params.Catalog, logg))
		r.Get("/products/{productId}", controllers.PublicProductDetail(params.Catalog, logg))
		r.Get("/categories", controllers.PublicCategories(params.Catalog, logg))
		r.Get("/hero-slides", controllers.PublicHeroSlides(params.Content, logg))
		r.Get("/site-config/{key}", controllers.PublicSiteConfig(params.Content, logg))
		r.Get("/raffle/current", controllers.PublicCurrentRaffle(params.Raffles, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(
			middleware.AuthRateLimit(registerPolicy, params.Redis, logg),
			middleware.Idempotency(params.Redis, logg),
		).Post("/register", controllers.AuthRegister(params.Customers, params.Sessions, cfg.JWT, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, params.Redis, logg)).
			Post("/login", controllers.AuthLogin(params.Customers, params.Sessions, cfg.JWT, logg))
		r.Post("/logout", controllers.AuthLogout(params.Sessions, cfg.JWT, logg))
		r.Post("/refresh", controllers.AuthRefresh(params.Sessions, cfg.JWT, logg))
	})

	r.Route("/api/v1/customer", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, params.Sessions, logg))
		r.Use(middleware.RateLimit(cfg.RateLimit, params.Redis, logg))
		r.Use(middleware.Idempotency(params.Redis, logg))

		r.Post("/purchase", controllers.CustomerPurchase(params.Purchases, logg))
		r.Get("/purchases", controllers.CustomerPurchases(params.Purchases, logg))
		r.Get("/referrals", controllers.CustomerReferrals(params.Referrals, logg))
		r.Get("/activities", controllers.CustomerActivities(params.Customers, logg))
		r.Get("/me", controllers.CustomerMe(params.Customers, logg))
		r.Get("/raffle-entries", controllers.CustomerRaffleEntries(params.Raffles, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, params.Sessions, logg))
		r.Use(middleware.RequireRole(enums.CustomerRoleAdmin.String(), logg))
		r.Use(middleware.Idempotency(params.Redis, logg))

		r.Post("/products", controllers.AdminCreateProduct(params.Catalog, logg))
		r.Patch("/products/{productId}", controllers.AdminUpdateProduct(params.Catalog, logg))
		r.Delete("/products/{productId}", controllers.AdminDeleteProduct(params.Catalog, logg))
		r.Put("/categories/{slug}", controllers.AdminUpsertCategory(params.Catalog, logg))

		r.Post("/hero-slides", controllers.AdminCreateHeroSlide(params.Content, logg))
		r.Patch("/hero-slides/{slideId}", controllers.AdminUpdateHeroSlide(params.Content, logg))
		r.Delete("/hero-slides/{slideId}", controllers.AdminDeleteHeroSlide(params.Content, logg))
		r.Put("/site-config/{key}", controllers.AdminPutSiteConfig(params.Content, logg))

		r.Post("/raffles", controllers.AdminOpenRaffle(params.Raffles, logg))
		r.Post("/raffles/{raffleId}/close", controllers.AdminCloseRaffle(params.Raffles, logg))
		r.Get("/raffles/{raffleId}/entries", controllers.AdminRaffleEntries(params.Raffles, logg))
	})

	return r
}
