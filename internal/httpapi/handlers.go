package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todos/internal/service"
	"todos/internal/todo"
)

// TitleRequest is the body of create and rename requests.
type TitleRequest struct {
	Title string `json:"title"`
}

// MutationResponse is returned when an operation was applied.
type MutationResponse struct {
	Messages []string `json:"messages"`
	ID       int      `json:"id,omitempty"`
}

// RejectionResponse is returned when validation failed.
type RejectionResponse struct {
	Errors []string `json:"errors"`
}

// ErrorResponse is returned for lookups and failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListResponse is the JSON shape of a list.
type ListResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Done      bool   `json:"done"`
	Count     int    `json:"count"`
	DoneCount int    `json:"doneCount"`
}

// ListDetailResponse is a list with its sorted tasks.
type ListDetailResponse struct {
	ListResponse
	Todos []TaskResponse `json:"todos"`
}

// TaskResponse is the JSON shape of a task.
type TaskResponse struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleGetLists(c *gin.Context) {
	snap, ok := s.load(c)
	if !ok {
		return
	}
	views := s.ops.Lists(snap)
	resp := make([]ListResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, listResponse(v))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleGetList(c *gin.Context) {
	snap, ok := s.load(c)
	if !ok {
		return
	}
	view, err := s.ops.List(snap, c.Param("listID"))
	if err != nil {
		s.fail(c, "get_list", err)
		return
	}
	resp := ListDetailResponse{
		ListResponse: listResponse(view),
		Todos:        make([]TaskResponse, 0, len(view.Tasks)),
	}
	for _, t := range view.Tasks {
		resp.Todos = append(resp.Todos, TaskResponse{ID: t.ID, Title: t.Title, Done: t.Done})
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleCreateList(c *gin.Context) {
	var req TitleRequest
	if !bindTitle(c, &req) {
		return
	}
	s.mutate(c, "create_list", http.StatusCreated, func(snap todo.Snapshot) (service.Result, error) {
		return s.ops.CreateList(snap, req.Title)
	})
}

func (s *Server) handleRenameList(c *gin.Context) {
	var req TitleRequest
	if !bindTitle(c, &req) {
		return
	}
	s.mutate(c, "rename_list", http.StatusOK, func(snap todo.Snapshot) (service.Result, error) {
		return s.ops.RenameList(snap, c.Param("listID"), req.Title)
	})
}

func (s *Server) handleDeleteList(c *gin.Context) {
	s.mutate(c, "delete_list", http.StatusOK, func(snap todo.Snapshot) (service.Result, error) {
		return s.ops.DeleteList(snap, c.Param("listID"))
	})
}

func (s *Server) handleAddTask(c *gin.Context) {
	var req TitleRequest
	if !bindTitle(c, &req) {
		return
	}
	s.mutate(c, "add_todo", http.StatusCreated, func(snap todo.Snapshot) (service.Result, error) {
		return s.ops.AddTask(snap, c.Param("listID"), req.Title)
	})
}

func (s *Server) handleRenameTask(c *gin.Context) {
	var req TitleRequest
	if !bindTitle(c, &req) {
		return
	}
	s.mutate(c, "rename_todo", http.StatusOK, func(snap todo.Snapshot) (service.Result, error) {
		return s.ops.RenameTask(snap, c.Param("listID"), c.Param("todoID"), req.Title)
	})
}

func (s *Server) handleToggleTask(c *gin.Context) {
	s.mutate(c, "toggle_todo", http.StatusOK, func(snap todo.Snapshot) (service.Result, error) {
		return s.ops.ToggleTask(snap, c.Param("listID"), c.Param("todoID"))
	})
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	s.mutate(c, "delete_todo", http.StatusOK, func(snap todo.Snapshot) (service.Result, error) {
		return s.ops.DeleteTask(snap, c.Param("listID"), c.Param("todoID"))
	})
}

func (s *Server) handleCompleteAll(c *gin.Context) {
	s.mutate(c, "complete_all", http.StatusOK, func(snap todo.Snapshot) (service.Result, error) {
		return s.ops.CompleteAll(snap, c.Param("listID"))
	})
}

// mutate runs op as one unit of work on the request's session.
func (s *Server) mutate(c *gin.Context, name string, status int, op func(todo.Snapshot) (service.Result, error)) {
	id := sessionID(c)
	unlock := s.locks.Lock(id)
	defer unlock()

	snap, ok := s.load(c)
	if !ok {
		operationsTotal.WithLabelValues(name, outcomeFailed).Inc()
		return
	}

	res, err := op(snap)
	if err != nil {
		s.fail(c, name, err)
		return
	}
	operationsTotal.WithLabelValues(name, res.Outcome.String()).Inc()

	if res.Outcome == service.Rejected {
		c.JSON(http.StatusUnprocessableEntity, RejectionResponse{Errors: res.Messages})
		return
	}

	if err := s.sessions.Save(c.Request.Context(), id, res.Snapshot); err != nil {
		s.log.Error("save session", "session", id, "op", name, "error", err)
		operationsTotal.WithLabelValues(name, outcomeFailed).Inc()
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(status, MutationResponse{Messages: res.Messages, ID: res.ID})
}

func (s *Server) load(c *gin.Context) (todo.Snapshot, bool) {
	id := sessionID(c)
	snap, err := s.sessions.Load(c.Request.Context(), id)
	if err != nil {
		s.log.Error("load session", "session", id, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return todo.Snapshot{}, false
	}
	return snap, true
}

func (s *Server) fail(c *gin.Context, name string, err error) {
	if errors.Is(err, todo.ErrNotFound) {
		operationsTotal.WithLabelValues(name, outcomeNotFound).Inc()
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		return
	}
	s.log.Error("operation failed", "op", name, "error", err)
	operationsTotal.WithLabelValues(name, outcomeFailed).Inc()
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func bindTitle(c *gin.Context, req *TitleRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func listResponse(v service.ListView) ListResponse {
	return ListResponse{ID: v.ID, Title: v.Title, Done: v.Done, Count: v.Count, DoneCount: v.DoneCount}
}
