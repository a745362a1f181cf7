package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/acmelabs/storefront-api/api/controllers"
	"github.com/acmelabs/storefront-api/api/middleware"
	ordersvc "github.com/acmelabs/storefront-api/internal/orders"
	productsvc "github.com/acmelabs/storefront-api/internal/products"
	statsvc "github.com/acmelabs/storefront-api/internal/stats"
	usersvc "github.com/acmelabs/storefront-api/internal/users"
	"github.com/acmelabs/storefront-api/pkg/config"
	"github.com/acmelabs/storefront-api/pkg/logger"
	"github.com/acmelabs/storefront-api/pkg/metrics"
	"github.com/acmelabs/storefront-api/pkg/sysinfo"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	sysProvider sysinfo.Provider,
	usersService usersvc.Service,
	productsService productsvc.Service,
	ordersService ordersvc.Service,
	statsService statsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		httpMetrics.Middleware(),
	)

	r.NotFound(controllers.NotFound())

	r.Get("/", controllers.Root(cfg))
	r.Get("/health", controllers.Health(cfg, sysProvider, logg))
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/docs", controllers.Docs(cfg))
		r.Get("/stats", controllers.Stats(statsService, logg))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.ListUsers(usersService, logg))
			r.Post("/", controllers.CreateUser(usersService, logg))
			r.Get("/{userId}", controllers.GetUser(usersService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(productsService, logg))
			r.Get("/{productId}", controllers.GetProduct(productsService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(ordersService, logg))
			r.Get("/{orderId}", controllers.GetOrder(ordersService, logg))
		})
	})

	return r
}
