package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/firstcode/wishlist-backend/api/controllers"
	"github.com/firstcode/wishlist-backend/api/middleware"
	authsvc "github.com/firstcode/wishlist-backend/internal/auth"
	"github.com/firstcode/wishlist-backend/internal/productentries"
	"github.com/firstcode/wishlist-backend/internal/wishlists"
	"github.com/firstcode/wishlist-backend/pkg/auth/session"
	"github.com/firstcode/wishlist-backend/pkg/config"
	"github.com/firstcode/wishlist-backend/pkg/db"
	"github.com/firstcode/wishlist-backend/pkg/logger"
	"github.com/firstcode/wishlist-backend/pkg/metrics"
)

// RouterParams groups everything the HTTP surface depends on.
type RouterParams struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	SessionChecker session.AccessSessionChecker
	HTTPMetrics    *metrics.HTTPMetrics
	Registry       prometheus.Gatherer

	AuthService         authsvc.Service
	WishlistService     wishlists.Service
	ProductEntryService productentries.Service
}

// NewRouter builds the chi router with the full middleware stack and every
// API resource mounted.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.Cors),
		middleware.Metrics(p.HTTPMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, p.DB, logg))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Post("/api/authenticate", controllers.Authenticate(p.AuthService, logg))
	r.Post("/api/register", controllers.Register(p.AuthService, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.SessionChecker, logg))

		r.Get("/api/account", controllers.Account(p.AuthService, logg))

		r.Route("/api/wishlists", func(r chi.Router) {
			r.Post("/", controllers.WishlistCreate(p.WishlistService, logg))
			r.Put("/", controllers.WishlistUpdate(p.WishlistService, logg))
			r.Get("/", controllers.WishlistList(p.WishlistService, logg))
			r.Get("/{id}", controllers.WishlistGet(p.WishlistService, logg))
			r.Delete("/{id}", controllers.WishlistDelete(p.WishlistService, logg))
		})

		r.Route("/api/product-ids", func(r chi.Router) {
			r.Post("/", controllers.ProductEntryCreate(p.ProductEntryService, logg))
			r.Put("/", controllers.ProductEntryUpdate(p.ProductEntryService, logg))
			r.Get("/", controllers.ProductEntryList(p.ProductEntryService, logg))
			r.Get("/{id}", controllers.ProductEntryGet(p.ProductEntryService, logg))
			r.Delete("/{id}", controllers.ProductEntryDelete(p.ProductEntryService, logg))
		})
	})

	return r
}
