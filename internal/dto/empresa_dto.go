package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearEmpresaRequest struct {
	Nombre string `json:"nombre" validate:"required,max=125"`
	Rut    int    `json:"rut"    validate:"required,min=1"`
	Dv     string `json:"dv"     validate:"required,len=1"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type EmpresaResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	// RazonSocial is the display tax id "<rut>-<dv>".
	RazonSocial   string `json:"razon_social"`
	Email         string `json:"email"`
	Telefono      string `json:"telefono"`
	FechaCreacion string `json:"fecha_creacion"`
}
