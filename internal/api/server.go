package api

import (
	"net/http"

	"kreator-projektow/internal/config"
	"kreator-projektow/internal/database"
	"kreator-projektow/internal/publish"
	"kreator-projektow/internal/tokens"
	"kreator-projektow/internal/websocket"
)

type Server struct {
	config *config.Config
	store  *database.PostgresStore
	tokens *tokens.Store
	wsHub  *websocket.Hub
	github *publish.GitHubPublisher
	spaces *publish.SpacePublisher
}

func NewServer(cfg *config.Config, store *database.PostgresStore, tokenStore *tokens.Store, wsHub *websocket.Hub) *Server {
	return &Server{
		config: cfg,
		store:  store,
		tokens: tokenStore,
		wsHub:  wsHub,
		github: publish.NewGitHubPublisher(cfg.GitHub.APIURL),
		spaces: publish.NewSpacePublisher(cfg.Spaces.APIURL, publish.DefaultRetryPolicy()),
	}
}

// @Summary      Health check
// @Description  Reports whether the server and its database connection are alive.
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string "OK"
// @Failure      503  {string}  string "Service Unavailable"
// @Router       /health [get]
func (s *Server) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.GetPool().Ping(r.Context()); err != nil {
		http.Error(w, "database unreachable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
