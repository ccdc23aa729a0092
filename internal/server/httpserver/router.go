package httpserver

import (
	"net/http"

	"github.com/avasquez/taskkeeper/internal/logging"
)

// NewRouter wires all routes. /register, /login, and /api-docs are public;
// the /todos routes sit behind the Auth gate. The whole mux is wrapped in
// Recover → CORS → RequestID.
func NewRouter(h *Handler, secret []byte, logger logging.Logger) http.Handler {
	authGate := Auth(secret, logger)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /register", h.handleRegister)
	mux.HandleFunc("POST /login", h.handleLogin)
	mux.HandleFunc("GET /api-docs", h.handleAPIDocs)

	mux.Handle("GET /todos", authGate(http.HandlerFunc(h.handleListTasks)))
	mux.Handle("POST /todos", authGate(http.HandlerFunc(h.handleCreateTask)))
	mux.Handle("DELETE /todos/{id}", authGate(http.HandlerFunc(h.handleDeleteTask)))

	return Chain(mux, Recover(logger), CORS(), RequestID())
}
