package controllers

import (
	"net/http"
	"time"

	"github.com/acmelabs/storefront-api/api/responses"
	"github.com/acmelabs/storefront-api/pkg/config"
)

type infoResponse struct {
	Message     string            `json:"message"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
	Timestamp   time.Time         `json:"timestamp"`
}

// Root handles GET / with a static service description.
func Root(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, infoResponse{
			Message:     "Welcome to the Storefront API",
			Version:     cfg.Service.Version,
			Description: "A sample REST API serving in-memory users, products and orders",
			Endpoints: map[string]string{
				"health":   "/health",
				"metrics":  "/metrics",
				"users":    "/api/users",
				"products": "/api/products",
				"orders":   "/api/orders",
				"stats":    "/api/stats",
				"docs":     "/api/docs",
			},
			Timestamp: time.Now(),
		})
	}
}

type endpointDoc struct {
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Description string   `json:"description"`
	QueryParams []string `json:"query_params,omitempty"`
}

type docsResponse struct {
	Title       string        `json:"title"`
	Version     string        `json:"version"`
	Description string        `json:"description"`
	Endpoints   []endpointDoc `json:"endpoints"`
}

// Docs handles GET /api/docs with a static endpoint listing.
func Docs(cfg *config.Config) http.HandlerFunc {
	endpoints := []endpointDoc{
		{Path: "/", Method: "GET", Description: "Service information"},
		{Path: "/health", Method: "GET", Description: "Health check with system metrics"},
		{Path: "/metrics", Method: "GET", Description: "Prometheus metrics"},
		{Path: "/api/users", Method: "GET", Description: "List users", QueryParams: []string{"role", "limit"}},
		{Path: "/api/users/{id}", Method: "GET", Description: "Get user by ID"},
		{Path: "/api/users", Method: "POST", Description: "Create a user (name, email, role)"},
		{Path: "/api/products", Method: "GET", Description: "List products", QueryParams: []string{"category", "in_stock", "limit"}},
		{Path: "/api/products/{id}", Method: "GET", Description: "Get product by ID"},
		{Path: "/api/orders", Method: "GET", Description: "List orders with embedded user and products", QueryParams: []string{"user_id", "status", "limit"}},
		{Path: "/api/orders/{id}", Method: "GET", Description: "Get order by ID with embedded user and products"},
		{Path: "/api/stats", Method: "GET", Description: "Collection and system statistics"},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, docsResponse{
			Title:       "Storefront API",
			Version:     cfg.Service.Version,
			Description: "A sample API with user, product and order management",
			Endpoints:   endpoints,
		})
	}
}

type notFoundResponse struct {
	Success            bool     `json:"success"`
	Message            string   `json:"message"`
	AvailableEndpoints []string `json:"available_endpoints"`
}

// NotFound is the router fallback for unknown paths; it keeps 404s in the
// JSON envelope contract instead of chi's plain-text default.
func NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusNotFound, notFoundResponse{
			Success: false,
			Message: "Endpoint not found",
			AvailableEndpoints: []string{
				"/", "/health", "/metrics", "/api/users", "/api/products",
				"/api/orders", "/api/stats", "/api/docs",
			},
		})
	}
}
