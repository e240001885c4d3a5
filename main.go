package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/soclog/change-inventory/config"
	"github.com/soclog/change-inventory/controllers"
	"github.com/soclog/change-inventory/database"
	authmiddleware "github.com/soclog/change-inventory/middleware"
	"github.com/soclog/change-inventory/repositories"
	"github.com/soclog/change-inventory/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := database.InitializeDatabase(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize repositories and services
	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos)

	// Create the default account on a fresh database
	if err := srvs.Auth.EnsureBootstrapUser(context.Background(), cfg.DefaultUsername, cfg.DefaultPassword); err != nil {
		log.Fatalf("Failed to ensure bootstrap user: %v", err)
	}

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs)

	// Set up router
	r, err := setupRouter(cfg, ctrl, repos)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	fmt.Printf("Change inventory starting on port %s (database: %s)\n", cfg.Port, cfg.DatabasePath)

	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// setupRouter configures all routes
func setupRouter(cfg *config.Config, ctrl *controllers.Controllers, repos *repositories.Repositories) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     cfg.SessionCookie,
		Secure:         cfg.UseHTTPS,
		Gclifetime:     cfg.SessionLifetime,
		Maxlifetime:    cfg.SessionLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static/"))))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/login", ctrl.Pages.Login)
	r.Post("/login", ctrl.Auth.Login)
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/api/product-types", ctrl.Type.ProductTypes)
	r.Get("/api/change-types", ctrl.Type.ChangeTypes)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "change-inventory"}`)
	})

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireSession)
		r.Use(authmiddleware.AuditLogger(repos.Audit))

		r.Get("/", ctrl.Pages.Index)

		r.Post("/api/change-password", ctrl.Auth.ChangePassword)

		r.Get("/api/types", ctrl.Type.ListTypes)
		r.Post("/api/add-type", ctrl.Type.AddType)
		r.Post("/api/delete-type", ctrl.Type.DeleteType)

		r.Get("/api/changes", ctrl.Change.List)
		r.Post("/api/changes", ctrl.Change.Create)
		r.Delete("/api/changes/{id}", ctrl.Change.Delete)

		r.Get("/api/export-csv", ctrl.CSV.Export)
		r.Post("/api/import-csv", ctrl.CSV.Import)
	})

	return r, nil
}
