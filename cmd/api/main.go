package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/docport/doctor-portal/internal/auth"
	"github.com/docport/doctor-portal/internal/config"
	"github.com/docport/doctor-portal/internal/db"
	"github.com/docport/doctor-portal/internal/handlers"
	"github.com/docport/doctor-portal/internal/middleware"
	"github.com/docport/doctor-portal/internal/repo"
)

func main() {

	// Load configuration
	cfg := config.Load()

	setupLogger(cfg.LogFormat)

	// Refuse to start in prod with the development signing secret.
	if cfg.Env == "prod" && cfg.JWTSecret == "supersecretkey" {
		slog.Error("JWT_SECRET must be set when ENV=prod")
		os.Exit(1)
	}

	// Connect to database FIRST
	database, err := db.Connect(
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBUser,
		cfg.DBPass,
	)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	database.SetMaxOpenConns(cfg.DBMaxOpenConns)
	database.SetMaxIdleConns(cfg.DBMaxIdleConns)

	slog.Info("connected to the database", "host", cfg.DBHost, "db", cfg.DBName)

	// Apply migrations
	if err := db.Migrate(db.URL(cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBUser, cfg.DBPass)); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	r := newRouter(database, cfg)

	addr := ":" + cfg.Port
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		slog.Info("starting server with TLS", "addr", addr)
		err = http.ListenAndServeTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile, r)
	} else {
		slog.Info("starting server", "addr", addr)
		err = http.ListenAndServe(addr, r)
	}
	if err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// newRouter builds the full handler chain. Split out from main so the
// integration tests can run the real router against a mock database.
func newRouter(database *sql.DB, cfg config.Config) http.Handler {
	issuer := auth.NewTokenIssuer(
		[]byte(cfg.JWTSecret),
		time.Duration(cfg.JWTExpireHours)*time.Hour,
	)
	authSvc := auth.NewService(repo.NewUserRepo(database), issuer)

	authHandler := &handlers.AuthHandler{Service: authSvc}
	clownHandler := &handlers.ClownHandler{Repo: repo.NewClownRepo(database)}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Prometheus)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.SecurityHeaders(cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""))
		r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))

		authLimiter := middleware.AuthRateLimiter()
		r.Group(func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Post("/clowns", clownHandler.CreateClown)
		r.Get("/clowns", clownHandler.ListClowns)
	})

	// Serve the built frontend when configured; otherwise keep the plain
	// root message so a bare deployment still answers "/".
	if cfg.StaticDir != "" {
		r.NotFound(handlers.SPAHandler(cfg.StaticDir))
	} else {
		r.Get("/", handlers.Root)
	}

	return r
}

func setupLogger(format string) {
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		h = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(h))
}
