package http

import (
	"net/http"

	"coaching-practice-manager/internal/delivery/http/handler"
	"coaching-practice-manager/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	clientHandler    *handler.ClientHandler
	packageHandler   *handler.PackageHandler
	sessionHandler   *handler.SessionHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	clientHandler *handler.ClientHandler,
	packageHandler *handler.PackageHandler,
	sessionHandler *handler.SessionHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		clientHandler:    clientHandler,
		packageHandler:   packageHandler,
		sessionHandler:   sessionHandler,
		dashboardHandler: dashboardHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Everything below is scoped to the authenticated practitioner
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Client management
	protected.HandleFunc("/clients", r.clientHandler.CreateClient).Methods(http.MethodPost)
	protected.HandleFunc("/clients", r.clientHandler.GetAllClients).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}", r.clientHandler.GetClient).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}", r.clientHandler.UpdateClient).Methods(http.MethodPut)
	protected.HandleFunc("/clients/{id}", r.clientHandler.DeleteClient).Methods(http.MethodDelete)
	protected.HandleFunc("/clients/{id}/stats", r.clientHandler.GetClientStats).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}/packages", r.packageHandler.GetClientPackages).Methods(http.MethodGet)

	// Package management
	protected.HandleFunc("/packages", r.packageHandler.CreatePackage).Methods(http.MethodPost)
	protected.HandleFunc("/packages", r.packageHandler.GetAllPackages).Methods(http.MethodGet)
	protected.HandleFunc("/packages/{id}/burn", r.packageHandler.BurnSession).Methods(http.MethodPost)
	protected.HandleFunc("/packages/{id}/expiry", r.packageHandler.ExtendExpiry).Methods(http.MethodPut)
	protected.HandleFunc("/packages/{id}", r.packageHandler.DeletePackage).Methods(http.MethodDelete)

	// Scheduled sessions
	protected.HandleFunc("/sessions", r.sessionHandler.CreateSession).Methods(http.MethodPost)
	protected.HandleFunc("/sessions", r.sessionHandler.GetAllSessions).Methods(http.MethodGet)
	protected.HandleFunc("/sessions/{id}/status", r.sessionHandler.UpdateSessionStatus).Methods(http.MethodPut)
	protected.HandleFunc("/sessions/{id}", r.sessionHandler.DeleteSession).Methods(http.MethodDelete)

	// Dashboard
	protected.HandleFunc("/dashboard/summary", r.dashboardHandler.GetSummary).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
