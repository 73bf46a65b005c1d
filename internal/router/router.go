package router

import (
	"time"

	"packingapp/internal/config"
	"packingapp/internal/handler"
	"packingapp/internal/identity"
	"packingapp/internal/middleware"
	"packingapp/internal/repository"
	"packingapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Set/Store ← DB/Redis
// limiter may be nil, in which case requests are not rate limited.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, limiter *middleware.RateLimiter) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	if limiter != nil {
		r.Use(limiter.Middleware())
	}

	// ── Data access ──────────────────────────────────────────────────────────
	store := repository.NewStore(db)
	empresas := repository.NewEmpresaSet(db)
	usuarios := repository.NewUsuarioSet(db)
	productos := repository.NewProductoSet(db)

	accounts := identity.NewManager(identity.NewAccountStore(db), identity.Options{
		PasswordMinLength: cfg.PasswordMinLength,
		BcryptCost:        cfg.BcryptCost,
	})

	// ── Services ─────────────────────────────────────────────────────────────
	empresaSvc := service.NewEmpresaService(empresas, store)
	productoSvc := service.NewProductoService(service.CatalogoSets{
		Productos:      productos,
		Formatos:       repository.NewFormatoSet(db),
		Presentaciones: repository.NewPresentacionSet(db),
		Grupos:         repository.NewGrupoSet(db),
	}, store, service.WithCache(rdb, cfg.CatalogCacheTTL()))
	pedidoSvc := service.NewPedidoService(service.PedidoSets{
		Pedidos:   repository.NewPedidoSet(db),
		Estados:   repository.NewEstadoPedidoSet(db),
		Usuarios:  usuarios,
		Productos: productos,
	}, store)
	usuarioSvc := service.NewUsuarioService(usuarios, store, accounts)

	// ── Handlers ─────────────────────────────────────────────────────────────
	pages := cfg.Pagination()
	empresasH := handler.NewEmpresasHandler(empresaSvc, pages)
	productosH := handler.NewProductosHandler(productoSvc, pages)
	pedidosH := handler.NewPedidosHandler(pedidoSvc, pages)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc, pages)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	if cfg.JWTSecret != "" {
		v1.Use(middleware.JWTAuth(cfg.JWTSecret))
	}
	{
		emp := v1.Group("/empresas")
		emp.GET("", empresasH.Listar)
		emp.POST("", empresasH.Crear)
		emp.GET("/:id", empresasH.ObtenerPorID)
		emp.DELETE("/:id", empresasH.Eliminar)

		prod := v1.Group("/productos")
		prod.GET("", productosH.ListarProductos())
		prod.POST("", productosH.CrearProducto())
		prod.GET("/:id", productosH.ObtenerProducto())
		prod.DELETE("/:id", productosH.EliminarProducto())

		fmts := v1.Group("/formatos")
		fmts.GET("", productosH.ListarFormatos())
		fmts.GET("/todos", productosH.TodosFormatos())
		fmts.POST("", productosH.CrearFormato())
		fmts.GET("/:id", productosH.ObtenerFormato())
		fmts.DELETE("/:id", productosH.EliminarFormato())

		pres := v1.Group("/presentaciones")
		pres.GET("", productosH.ListarPresentaciones())
		pres.GET("/todos", productosH.TodasPresentaciones())
		pres.POST("", productosH.CrearPresentacion())
		pres.GET("/:id", productosH.ObtenerPresentacion())
		pres.DELETE("/:id", productosH.EliminarPresentacion())

		grp := v1.Group("/grupos")
		grp.GET("", productosH.ListarGrupos())
		grp.GET("/todos", productosH.TodosGrupos())
		grp.POST("", productosH.CrearGrupo())
		grp.GET("/:id", productosH.ObtenerGrupo())
		grp.DELETE("/:id", productosH.EliminarGrupo())

		ped := v1.Group("/pedidos")
		ped.GET("", pedidosH.Listar)
		ped.POST("", pedidosH.Crear)
		ped.GET("/:id", pedidosH.ObtenerPorID)
		ped.DELETE("/:id", pedidosH.Eliminar)
		v1.GET("/estados-pedido", pedidosH.ListarEstados)

		usr := v1.Group("/usuarios")
		usr.GET("", usuariosH.Listar)
		usr.POST("", usuariosH.Crear)
		usr.GET("/:id", usuariosH.ObtenerPorID)
		usr.DELETE("/:id", usuariosH.Eliminar)
	}

	// Swagger UI, only outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

// DefaultLimiter allows 1000 requests per minute per IP.
func DefaultLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(1000, time.Minute)
}
