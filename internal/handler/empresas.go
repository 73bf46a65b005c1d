package handler

import (
	"net/http"

	"packingapp/internal/dto"
	"packingapp/internal/pagination"
	"packingapp/internal/service"

	"github.com/gin-gonic/gin"
)

type EmpresasHandler struct {
	svc   service.EmpresaService
	pages pagination.Config
}

func NewEmpresasHandler(svc service.EmpresaService, pages pagination.Config) *EmpresasHandler {
	return &EmpresasHandler{svc: svc, pages: pages}
}

// GET /v1/empresas?page=&page_size=
func (h *EmpresasHandler) Listar(c *gin.Context) {
	p := pageParams(c, h.pages)
	resp, err := h.svc.Listar(c.Request.Context(), p.Page, p.PageSize)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /v1/empresas/:id
func (h *EmpresasHandler) ObtenerPorID(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	found(c, resp, "Empresa no encontrada")
}

// POST /v1/empresas
func (h *EmpresasHandler) Crear(c *gin.Context) {
	var req dto.CrearEmpresaRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// DELETE /v1/empresas/:id
func (h *EmpresasHandler) Eliminar(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	removed, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	deleted(c, removed, "Empresa no encontrada")
}
