package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/distrito-diamante/crm-api/internal/application/notificacion"
	"github.com/distrito-diamante/crm-api/internal/application/usecase"
	"github.com/distrito-diamante/crm-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *usecase.AuthUseCase
	ClienteUC      *usecase.ClienteUseCase
	AseguradoraUC  *usecase.AseguradoraUseCase
	PolizaUC       *usecase.PolizaUseCase
	PolizaPDFUC    *usecase.PolizaPDFUseCase
	RecordatorioUC *usecase.RecordatorioUseCase
	SeguimientoUC  *usecase.SeguimientoUseCase
	UsuarioUC      *usecase.UsuarioUseCase
	TareaUC        *usecase.TareaUseCase
	DocumentoUC    *usecase.DocumentoUseCase
	CatalogoUC     *usecase.CatalogoUseCase
	DashboardUC    *usecase.DashboardUseCase
	Dispatcher     *notificacion.Dispatcher
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Aseguradoras (protegido)
	aseguradoras := protected.Group("/aseguradoras")
	aseguradoraHandler := NewAseguradoraHandler(deps.AseguradoraUC)
	aseguradoras.Post("/", aseguradoraHandler.Create)
	aseguradoras.Get("/", aseguradoraHandler.List)
	aseguradoras.Get("/:id", aseguradoraHandler.GetByID)
	aseguradoras.Put("/:id", aseguradoraHandler.Update)
	aseguradoras.Delete("/:id", aseguradoraHandler.Delete)

	// Pólizas (protegido)
	polizas := protected.Group("/polizas")
	polizaHandler := NewPolizaHandler(deps.PolizaUC, deps.PolizaPDFUC)
	polizas.Post("/", polizaHandler.Create)
	polizas.Get("/", polizaHandler.List)
	polizas.Get("/:id", polizaHandler.GetByID)
	polizas.Get("/:id/pdf", polizaHandler.DescargarPDF)
	polizas.Put("/:id", polizaHandler.Update)
	polizas.Delete("/:id", polizaHandler.Delete)

	// Recordatorios (protegido; el despacho manual es solo admin)
	recordatorios := protected.Group("/recordatorios")
	recordatorioHandler := NewRecordatorioHandler(deps.RecordatorioUC, deps.Dispatcher)
	recordatorios.Post("/", recordatorioHandler.Create)
	recordatorios.Get("/", recordatorioHandler.List)
	recordatorios.Post("/despachar", RequireRole(entity.RolAdministrador), recordatorioHandler.Despachar)
	recordatorios.Get("/:id", recordatorioHandler.GetByID)
	recordatorios.Put("/:id", recordatorioHandler.Update)
	recordatorios.Delete("/:id", recordatorioHandler.Delete)

	// Seguimientos (protegido)
	seguimientos := protected.Group("/seguimientos")
	seguimientoHandler := NewSeguimientoHandler(deps.SeguimientoUC)
	seguimientos.Post("/", seguimientoHandler.Create)
	seguimientos.Get("/", seguimientoHandler.List)
	seguimientos.Get("/:id", seguimientoHandler.GetByID)
	seguimientos.Put("/:id", seguimientoHandler.Update)
	seguimientos.Delete("/:id", seguimientoHandler.Delete)

	// Tareas (protegido)
	tareas := protected.Group("/tareas")
	tareaHandler := NewTareaHandler(deps.TareaUC)
	tareas.Post("/", tareaHandler.Create)
	tareas.Get("/", tareaHandler.List)
	tareas.Get("/:id", tareaHandler.GetByID)
	tareas.Put("/:id", tareaHandler.Update)
	tareas.Delete("/:id", tareaHandler.Delete)

	// Documentos (protegido)
	documentos := protected.Group("/documentos")
	documentoHandler := NewDocumentoHandler(deps.DocumentoUC)
	documentos.Post("/", documentoHandler.Create)
	documentos.Get("/", documentoHandler.List)
	documentos.Get("/:id", documentoHandler.GetByID)
	documentos.Put("/:id", documentoHandler.Update)
	documentos.Delete("/:id", documentoHandler.Delete)

	// Catálogos (protegido)
	catalogos := protected.Group("/catalogos")
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	catalogos.Get("/roles", catalogoHandler.Roles)
	catalogos.Get("/estados-usuario", catalogoHandler.EstadosUsuario)
	catalogos.Get("/tipos-seguro", catalogoHandler.TiposSeguro)
	catalogos.Get("/estados-poliza", catalogoHandler.EstadosPoliza)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Totales)

	// Usuarios (solo administradores)
	usuarios := protected.Group("/usuarios", RequireRole(entity.RolAdministrador))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)
}
