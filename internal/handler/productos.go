package handler

import (
	"context"
	"net/http"

	"packingapp/internal/dto"
	"packingapp/internal/pagination"
	"packingapp/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductosHandler serves products and the formato, presentacion and grupo
// lookup tables, which share one service.
type ProductosHandler struct {
	svc   service.ProductoService
	pages pagination.Config
}

func NewProductosHandler(svc service.ProductoService, pages pagination.Config) *ProductosHandler {
	return &ProductosHandler{svc: svc, pages: pages}
}

// ── Generic endpoint builders ────────────────────────────────────────────────

func listar[D any](pages pagination.Config, fn func(context.Context, int, int) (dto.PaginatedResult[D], error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := pageParams(c, pages)
		resp, err := fn(c.Request.Context(), p.Page, p.PageSize)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func todos[D any](fn func(context.Context) ([]D, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := fn(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func obtener[D any](notFound string, fn func(context.Context, int) (*D, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "id")
		if !ok {
			return
		}
		resp, err := fn(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		found(c, resp, notFound)
	}
}

func crear[R, D any](fn func(context.Context, R) (*D, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req R
		if !bindJSON(c, &req) {
			return
		}
		resp, err := fn(c.Request.Context(), req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

func eliminar(notFound string, fn func(context.Context, int) (bool, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "id")
		if !ok {
			return
		}
		removed, err := fn(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		deleted(c, removed, notFound)
	}
}

// ── Productos ────────────────────────────────────────────────────────────────

func (h *ProductosHandler) ListarProductos() gin.HandlerFunc {
	return listar(h.pages, h.svc.ListarProductos)
}

func (h *ProductosHandler) ObtenerProducto() gin.HandlerFunc {
	return obtener("Producto no encontrado", h.svc.ObtenerProductoPorID)
}

func (h *ProductosHandler) CrearProducto() gin.HandlerFunc {
	return crear(h.svc.CrearProducto)
}

func (h *ProductosHandler) EliminarProducto() gin.HandlerFunc {
	return eliminar("Producto no encontrado", h.svc.EliminarProducto)
}

// ── Formatos ─────────────────────────────────────────────────────────────────

func (h *ProductosHandler) ListarFormatos() gin.HandlerFunc {
	return listar(h.pages, h.svc.ListarFormatos)
}

func (h *ProductosHandler) TodosFormatos() gin.HandlerFunc { return todos(h.svc.ListaFormatos) }

func (h *ProductosHandler) ObtenerFormato() gin.HandlerFunc {
	return obtener("Formato no encontrado", h.svc.ObtenerFormatoPorID)
}

func (h *ProductosHandler) CrearFormato() gin.HandlerFunc { return crear(h.svc.CrearFormato) }

func (h *ProductosHandler) EliminarFormato() gin.HandlerFunc {
	return eliminar("Formato no encontrado", h.svc.EliminarFormato)
}

// ── Presentaciones ───────────────────────────────────────────────────────────

func (h *ProductosHandler) ListarPresentaciones() gin.HandlerFunc {
	return listar(h.pages, h.svc.ListarPresentaciones)
}

func (h *ProductosHandler) TodasPresentaciones() gin.HandlerFunc {
	return todos(h.svc.ListaPresentaciones)
}

func (h *ProductosHandler) ObtenerPresentacion() gin.HandlerFunc {
	return obtener("Presentación no encontrada", h.svc.ObtenerPresentacionPorID)
}

func (h *ProductosHandler) CrearPresentacion() gin.HandlerFunc {
	return crear(h.svc.CrearPresentacion)
}

func (h *ProductosHandler) EliminarPresentacion() gin.HandlerFunc {
	return eliminar("Presentación no encontrada", h.svc.EliminarPresentacion)
}

// ── Grupos ───────────────────────────────────────────────────────────────────

func (h *ProductosHandler) ListarGrupos() gin.HandlerFunc {
	return listar(h.pages, h.svc.ListarGrupos)
}

func (h *ProductosHandler) TodosGrupos() gin.HandlerFunc { return todos(h.svc.ListaGrupos) }

func (h *ProductosHandler) ObtenerGrupo() gin.HandlerFunc {
	return obtener("Grupo no encontrado", h.svc.ObtenerGrupoPorID)
}

func (h *ProductosHandler) CrearGrupo() gin.HandlerFunc { return crear(h.svc.CrearGrupo) }

func (h *ProductosHandler) EliminarGrupo() gin.HandlerFunc {
	return eliminar("Grupo no encontrado", h.svc.EliminarGrupo)
}
