package app

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/comercial-alfa/comercial-alfa/internal/catalog/products"
	"github.com/comercial-alfa/comercial-alfa/internal/catalog/suppliers"
	"github.com/comercial-alfa/comercial-alfa/internal/observability"
	"github.com/comercial-alfa/comercial-alfa/internal/orders"
	"github.com/comercial-alfa/comercial-alfa/web"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	ProductHandler  *products.Handler
	SupplierHandler *suppliers.Handler
	OrderHandler    *orders.Handler
	Metrics         *observability.Metrics
}

// NewRouter constructs the chi.Router with the API and the embedded
// frontend.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/produtos", params.ProductHandler.MountRoutes)
	r.Route("/fornecedores", params.SupplierHandler.MountRoutes)
	r.Route("/pedidos", params.OrderHandler.MountRoutes)

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		params.Logger.Error("create static sub filesystem", slog.Any("error", err))
	} else {
		fileServer := http.FileServer(http.FS(staticFS))
		r.Handle("/*", staticCacheHandler(fileServer))
	}

	return r
}

// staticCacheHandler wraps the file server with a Cache-Control header so
// browsers keep the frontend assets for an hour.
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
