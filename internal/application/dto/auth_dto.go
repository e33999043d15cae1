package dto

// LoginRequest credenciales del intento de login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse resultado estructurado del gate de acceso. En éxito Redirect
// trae el destino fijo post-login; en fallo Reason trae el motivo
// clasificado (con redacción genérica para credenciales inválidas).
type LoginResponse struct {
	Granted  bool   `json:"granted"`
	Redirect string `json:"redirect,omitempty"`
	Reason   string `json:"reason,omitempty"`
}
