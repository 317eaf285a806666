package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/yourusername/save-the-dragon/internal/engine"
	"github.com/yourusername/save-the-dragon/internal/game"
	"github.com/yourusername/save-the-dragon/internal/mcp"
)

// Server is the HTTP front end of the game engine
type Server struct {
	engine    *engine.Engine
	mcpServer *mcp.Server
	router    *mux.Router
	logger    *zap.Logger
}

// NewServer builds the router for e
func NewServer(e *engine.Engine, allowedOrigins []string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		engine:    e,
		mcpServer: mcp.NewServer(e),
		router:    mux.NewRouter(),
		logger:    logger,
	}
	s.setupRoutes(allowedOrigins)
	return s
}

// ServeHTTP makes Server an http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes(allowedOrigins []string) {
	s.router.Use(corsMiddleware(allowedOrigins))
	s.router.Use(loggingMiddleware(s.logger))

	// Health check
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET", "OPTIONS")

	// MCP endpoints
	s.router.HandleFunc("/mcp/tools", s.handleListTools).Methods("GET", "OPTIONS")
	s.router.HandleFunc("/mcp/call", s.handleCallTool).Methods("POST", "OPTIONS")

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/profile-pictures", s.handleProfilePictures).Methods("GET", "OPTIONS")

	api.HandleFunc("/games", s.handleCreateGame).Methods("POST", "OPTIONS")
	api.HandleFunc("/games/{id}/join", s.handleJoin).Methods("POST", "OPTIONS")
	api.HandleFunc("/games/{id}/reconnect", s.handleReconnect).Methods("POST", "OPTIONS")
	api.HandleFunc("/games/{id}/state", s.handleGetState).Methods("GET", "OPTIONS")
	api.HandleFunc("/games/{id}/roll", s.handleRoll).Methods("POST", "OPTIONS")
	api.HandleFunc("/games/{id}/move", s.handleMove).Methods("POST", "OPTIONS")

	api.HandleFunc("/games/{id}/battle/attack", s.handleAttack).Methods("POST", "OPTIONS")
	api.HandleFunc("/games/{id}/battle/run", s.handleRun).Methods("POST", "OPTIONS")
	api.HandleFunc("/games/{id}/battle/collect-loot", s.handleCollectLoot).Methods("POST", "OPTIONS")
	api.HandleFunc("/games/{id}/battle/return-to-town", s.handleReturnToTown).Methods("POST", "OPTIONS")

	api.HandleFunc("/games/{id}/player/{pid}/equip", s.handleEquip).Methods("POST", "OPTIONS")
	api.HandleFunc("/games/{id}/player/{pid}/use-item", s.handleUseItem).Methods("POST", "OPTIONS")
	api.HandleFunc("/games/{id}/player/{pid}/profile-pic", s.handleProfilePic).Methods("POST", "OPTIONS")

	api.HandleFunc("/admin/games", s.handleAdminListGames).Methods("GET", "OPTIONS")
	api.HandleFunc("/admin/games/{id}", s.handleAdminDeleteGame).Methods("DELETE", "OPTIONS")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusFor maps engine errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrNotYourBattle), errors.Is(err, game.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, game.ErrBattleInProgress):
		return http.StatusConflict
	case engine.IsRuleError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		msg = "internal error"
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

// decode reads a JSON body. An empty body leaves v untouched.
func decode(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Health check handler
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// MCP tool listing handler
func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tools": s.mcpServer.ListTools(),
	})
}

// MCP tool call handler
func (s *Server) handleCallTool(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	result, err := s.mcpServer.CallTool(r.Context(), req.Name, req.Arguments)
	if errors.Is(err, mcp.ErrUnknownTool) || errors.Is(err, mcp.ErrInvalidArguments) {
		badRequest(w, err.Error())
		return
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
