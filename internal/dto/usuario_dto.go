package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearUsuarioRequest only checks presence; password policy and uniqueness
// belong to the identity provider.
type CrearUsuarioRequest struct {
	Email         string `json:"email"          validate:"required,max=256"`
	NombreUsuario string `json:"nombre_usuario" validate:"required,max=256"`
	Password      string `json:"password"       validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID            string `json:"id"`
	NombreUsuario string `json:"nombre_usuario"`
	Email         string `json:"email"`
	EstaActivo    bool   `json:"esta_activo"`
	FechaRegistro string `json:"fecha_registro"`
}
