package httpserver

// Wire messages. The Spanish strings are the observable contract of the API
// and must not be reworded.
const (
	msgUserRegistered     = "Usuario registrado"
	msgInvalidCredentials = "Credenciales incorrectas"
	msgTokenRequired      = "Token requerido"
	msgTokenInvalid       = "Token inválido"
	msgTaskNotFound       = "Tarea no encontrada"
	msgTaskDeleted        = "Tarea eliminada"
	msgMissingCredentials = "username y password son requeridos"
	msgMissingText        = "text es requerido"
	msgInvalidBody        = "JSON inválido"
	msgInternalError      = "Error interno"
)

// credentialsRequest is the body of POST /register and POST /login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// createTaskRequest is the body of POST /todos.
type createTaskRequest struct {
	Text string `json:"text"`
}

// messageResponse is the generic confirmation/error body.
type messageResponse struct {
	Message string `json:"message"`
}

// tokenResponse is the success body of POST /login.
type tokenResponse struct {
	Token string `json:"token"`
}
