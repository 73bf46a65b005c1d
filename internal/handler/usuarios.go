package handler

import (
	"net/http"

	"packingapp/internal/dto"
	"packingapp/internal/pagination"
	"packingapp/internal/service"

	"github.com/gin-gonic/gin"
)

type UsuariosHandler struct {
	svc   service.UsuarioService
	pages pagination.Config
}

func NewUsuariosHandler(svc service.UsuarioService, pages pagination.Config) *UsuariosHandler {
	return &UsuariosHandler{svc: svc, pages: pages}
}

func (h *UsuariosHandler) Listar(c *gin.Context) {
	p := pageParams(c, h.pages)
	resp, err := h.svc.Listar(c.Request.Context(), p.Page, p.PageSize)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsuariosHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	found(c, resp, "Usuario no encontrado")
}

// POST /v1/usuarios. Identity failures answer 422 with one entry per rule.
func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
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

func (h *UsuariosHandler) Eliminar(c *gin.Context) {
	removed, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	deleted(c, removed, "Usuario no encontrado")
}
