// Package httpapi serves a session's task lists over HTTP with JSON bodies.
//
// Every request belongs to a session identified by the todos-session-id
// cookie; a new session id is issued when the cookie is missing or invalid.
// Mutations run as units of work: load the session snapshot, apply one
// operation, save the result if it was applied.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"todos/internal/service"
	"todos/internal/session"
)

// Server is the HTTP front end.
type Server struct {
	sessions session.Store
	ops      *service.Service
	log      *slog.Logger
	locks    *keyedMutex
	router   *gin.Engine
}

// NewServer creates a server over sessions and ops. logger must not be nil.
func NewServer(sessions session.Store, ops *service.Service, logger *slog.Logger) *Server {
	router := gin.New()

	s := &Server{
		sessions: sessions,
		ops:      ops,
		log:      logger,
		locks:    newKeyedMutex(),
		router:   router,
	}

	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/", sessionMiddleware(logger))
	{
		api.GET("/lists", s.handleGetLists)
		api.POST("/lists", s.handleCreateList)
		api.GET("/lists/:listID", s.handleGetList)
		api.PATCH("/lists/:listID", s.handleRenameList)
		api.DELETE("/lists/:listID", s.handleDeleteList)
		api.POST("/lists/:listID/todos", s.handleAddTask)
		api.PATCH("/lists/:listID/todos/:todoID", s.handleRenameTask)
		api.DELETE("/lists/:listID/todos/:todoID", s.handleDeleteTask)
		api.POST("/lists/:listID/todos/:todoID/toggle", s.handleToggleTask)
		api.POST("/lists/:listID/complete_all", s.handleCompleteAll)
	}

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}
