// @title           Kreator Projektów API
// @version         1.0
// @host            localhost
// @schemes         http https
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"net/http"

	"kreator-projektow/internal/api"
	"kreator-projektow/internal/config"
	"kreator-projektow/internal/database"
	"kreator-projektow/internal/tokens"
	"kreator-projektow/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "kreator-projektow/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Nie można wczytać konfiguracji: %v", err)
	}

	dbpool, err := pgxpool.New(context.Background(), cfg.DB.Source)
	if err != nil {
		log.Fatalf("Nie można połączyć się z bazą danych: %v", err)
	}
	defer dbpool.Close()

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatalf("Nie można pingować bazy danych: %v", err)
	}
	log.Println("Pomyślnie połączono z bazą danych")

	tokenStore, err := tokens.NewStore(cfg.Tokens.Path)
	if err != nil {
		log.Fatalf("Nie można zainicjować magazynu tokenów: %v", err)
	}
	log.Printf("Tokeny będą przechowywane w: %s", cfg.Tokens.Path)

	wsHub := websocket.NewHub()
	go wsHub.Run()

	store := database.NewStore(dbpool, wsHub)
	server := api.NewServer(cfg, store, tokenStore, wsHub)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(api.MetricsMiddleware)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("https://localhost/swagger/doc.json"),
	))

	r.Get("/ws", server.ServeWsHandler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Kreator projektów działa! Dokumentacja dostępna pod /swagger/index.html"))
	})

	r.Post("/api/v1/auth/login", server.LoginHandler)
	r.Post("/api/v1/auth/refresh", server.RefreshTokenHandler)

	r.Get("/health", server.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(server.AuthMiddleware)
		r.Get("/me", server.GetCurrentUserHandler)
		r.Get("/projects", server.ListProjectsHandler)
		r.Post("/projects", server.CreateProjectHandler)
		r.Get("/projects/{projectId}", server.GetProjectHandler)
		r.Patch("/projects/{projectId}", server.UpdateProjectHandler)
		r.Delete("/projects/{projectId}", server.DeleteProjectHandler)
		r.Post("/projects/{projectId}/import", server.ImportStructureHandler)
		r.Post("/projects/{projectId}/nodes", server.InsertRootNodeHandler)
		r.Patch("/projects/{projectId}/nodes/{nodeId}", server.UpdateNodeContentHandler)
		r.Delete("/projects/{projectId}/nodes/{nodeId}", server.DeleteNodeHandler)
		r.Get("/projects/{projectId}/export", server.ExportProjectHandler)
		r.Post("/projects/{projectId}/publish/github", server.PublishGitHubHandler)
		r.Post("/projects/{projectId}/publish/space", server.PublishSpaceHandler)
		r.Put("/tokens/{provider}", server.SaveTokenHandler)
		r.Get("/tokens/{provider}", server.GetTokenStatusHandler)
		r.Delete("/tokens/{provider}", server.DeleteTokenHandler)
		r.Get("/sessions", server.ListSessionsHandler)
		r.Delete("/sessions/{sessionId}", server.DeleteSessionHandler)
		r.Post("/sessions/terminate_all", server.TerminateAllSessionsHandler)
		r.Get("/events", server.GetEventsHandler)
	})

	host := cfg.AppHost
	if host == "" {
		host = ":8080"
	}
	log.Printf("Uruchamianie serwera na %s", host)
	if err := http.ListenAndServe(host, r); err != nil {
		log.Fatalf("Nie można uruchomić serwera: %v", err)
	}
}
