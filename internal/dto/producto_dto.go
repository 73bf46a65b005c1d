package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre         string `json:"nombre"          validate:"required,max=450"`
	FormatoID      int    `json:"formato_id"      validate:"required,min=1"`
	PresentacionID int    `json:"presentacion_id" validate:"required,min=1"`
	GrupoID        int    `json:"grupo_id"        validate:"required,min=1"`
}

type CrearFormatoRequest struct {
	Nombre   string `json:"nombre"   validate:"required,max=125"`
	Unidades int    `json:"unidades" validate:"min=0"`
}

type CrearPresentacionRequest struct {
	Nombre string `json:"nombre" validate:"required,max=125"`
}

type CrearGrupoRequest struct {
	Nombre   string  `json:"nombre"    validate:"required,max=125"`
	UrlGrupo *string `json:"url_grupo" validate:"omitempty,max=750,url"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	// Descripcion is "Formato: <formato>, Presentación: <presentacion>".
	Descripcion    string `json:"descripcion"`
	CodigoProducto string `json:"codigo_producto"`
	FechaCreacion  string `json:"fecha_creacion"`
}

type FormatoResponse struct {
	ID            int    `json:"id"`
	Nombre        string `json:"nombre"`
	Unidades      int    `json:"unidades"`
	Descripcion   string `json:"descripcion"`
	FechaCreacion string `json:"fecha_creacion"`
}

type PresentacionResponse struct {
	ID            int    `json:"id"`
	Nombre        string `json:"nombre"`
	Descripcion   string `json:"descripcion"`
	FechaCreacion string `json:"fecha_creacion"`
}

type GrupoResponse struct {
	ID            int    `json:"id"`
	Nombre        string `json:"nombre"`
	Descripcion   string `json:"descripcion"`
	UrlGrupo      string `json:"url_grupo,omitempty"`
	FechaCreacion string `json:"fecha_creacion"`
}
