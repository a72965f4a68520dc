package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lamnguyen-dev/tilecat-backend/api/controllers"
	"github.com/lamnguyen-dev/tilecat-backend/api/middleware"
	"github.com/lamnguyen-dev/tilecat-backend/internal/catalog"
	"github.com/lamnguyen-dev/tilecat-backend/internal/products"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/config"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/logger"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/metrics"
)

// Deps carries everything the router mounts.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DBPinger       controllers.Pinger
	RedisPinger    controllers.Pinger
	RateLimiter    middleware.RateLimitStore
	HTTPMetrics    *metrics.HTTPMetrics
	MetricsHandler http.Handler
	Catalog        catalog.Service
	Products       products.Service
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(deps.Config.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, map[string]controllers.Pinger{
			"database": deps.DBPinger,
			"redis":    deps.RedisPinger,
		}))
	})

	metricsHandler := deps.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/reference/{list}", controllers.GetReferenceList(deps.Catalog, deps.Logger))

		checkCodeLimit := middleware.RateLimit(middleware.RateLimitPolicy{
			Name:   "check_code",
			Window: deps.Config.RateLimit.Window,
			PerIP:  deps.Config.RateLimit.PerIP,
		}, deps.RateLimiter, deps.Logger)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(deps.Products, deps.Logger))
			r.Post("/", controllers.CreateProduct(deps.Products, deps.Logger))
			r.With(checkCodeLimit).Get("/check-code", controllers.CheckItemCode(deps.Products, deps.Logger))
			r.Post("/order-number", controllers.AllocateOrderNumber(deps.Products, deps.Logger))
			r.Get("/{productId}", controllers.GetProduct(deps.Products, deps.Logger))
			r.Patch("/{productId}", controllers.UpdateProduct(deps.Products, deps.Logger))
			r.Delete("/{productId}", controllers.DeleteProduct(deps.Products, deps.Logger))
		})

		r.Post("/strategy/preview", controllers.PreviewStrategy(deps.Products, deps.Logger))
	})

	return r
}
