package handler

import (
	"net/http"

	"packingapp/internal/dto"
	"packingapp/internal/pagination"
	"packingapp/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct {
	svc   service.PedidoService
	pages pagination.Config
}

func NewPedidosHandler(svc service.PedidoService, pages pagination.Config) *PedidosHandler {
	return &PedidosHandler{svc: svc, pages: pages}
}

func (h *PedidosHandler) Listar(c *gin.Context) {
	p := pageParams(c, h.pages)
	resp, err := h.svc.Listar(c.Request.Context(), p.Page, p.PageSize)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID answers 404 for ids that are not uuids too.
func (h *PedidosHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	found(c, resp, "Pedido no encontrado")
}

// Crear uses the authenticated subject as UsuarioID when the body omits it.
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.UsuarioID == "" {
		if claims := claimsFrom(c); claims != nil {
			req.UsuarioID = claims.Subject
		}
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PedidosHandler) Eliminar(c *gin.Context) {
	removed, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	deleted(c, removed, "Pedido no encontrado")
}

// GET /v1/estados-pedido
func (h *PedidosHandler) ListarEstados(c *gin.Context) {
	resp, err := h.svc.ListarEstados(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
