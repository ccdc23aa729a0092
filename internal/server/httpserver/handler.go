// Package httpserver provides the HTTP server for TaskKeeper: routing,
// middleware (auth gate, CORS, request ids, panic recovery), and the JSON
// request handlers over the user and task services.
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avasquez/taskkeeper/internal/common"
	"github.com/avasquez/taskkeeper/internal/logging"
	"github.com/avasquez/taskkeeper/internal/server/tasks"
	"github.com/avasquez/taskkeeper/internal/server/users"
)

// Handler holds the services the HTTP handlers orchestrate.
type Handler struct {
	users  *users.Service
	tasks  *tasks.Service
	logger logging.Logger
}

func NewHandler(userService *users.Service, taskService *tasks.Service, logger logging.Logger) *Handler {
	return &Handler{
		users:  userService,
		tasks:  taskService,
		logger: logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, msgMissingCredentials)
		return
	}

	if _, err := h.users.Register(r.Context(), req.Username, req.Password); err != nil {
		h.logger.Error(r.Context(), "register failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeMessage(w, http.StatusOK, msgUserRegistered)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, msgMissingCredentials)
		return
	}

	token, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			// unknown user and wrong password are deliberately the same answer
			writeMessage(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		h.logger.Error(r.Context(), "login failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	list, err := h.tasks.List(r.Context(), userID)
	if err != nil {
		h.logger.Error(r.Context(), "list tasks failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.Text == "" {
		writeMessage(w, http.StatusBadRequest, msgMissingText)
		return
	}

	task, err := h.tasks.Create(r.Context(), userID, req.Text)
	if err != nil {
		h.logger.Error(r.Context(), "create task failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	// a non-numeric id cannot name any task
	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, msgTaskNotFound)
		return
	}

	if err := h.tasks.Delete(r.Context(), userID, taskID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, msgTaskNotFound)
			return
		}
		h.logger.Error(r.Context(), "delete task failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeMessage(w, http.StatusOK, msgTaskDeleted)
}
