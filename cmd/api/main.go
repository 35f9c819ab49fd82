package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/distrito-diamante/crm-api/internal/application/notificacion"
	"github.com/distrito-diamante/crm-api/internal/application/usecase"
	infrakafka "github.com/distrito-diamante/crm-api/internal/infrastructure/kafka"
	infrapdf "github.com/distrito-diamante/crm-api/internal/infrastructure/pdf"
	"github.com/distrito-diamante/crm-api/internal/infrastructure/postgres"
	httpRouter "github.com/distrito-diamante/crm-api/internal/interfaces/http"
	"github.com/distrito-diamante/crm-api/pkg/config"
	"github.com/distrito-diamante/crm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clienteRepo := postgres.NewClienteRepository(pool)
	aseguradoraRepo := postgres.NewAseguradoraRepository(pool)
	polizaRepo := postgres.NewPolizaRepository(pool)
	recordatorioRepo := postgres.NewRecordatorioRepository(pool)
	seguimientoRepo := postgres.NewSeguimientoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	tareaRepo := postgres.NewTareaRepository(pool)
	documentoRepo := postgres.NewDocumentoRepository(pool)
	catalogoRepo := postgres.NewCatalogoRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)

	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	aseguradoraUC := usecase.NewAseguradoraUseCase(aseguradoraRepo)
	polizaUC := usecase.NewPolizaUseCase(polizaRepo)
	recordatorioUC := usecase.NewRecordatorioUseCase(recordatorioRepo)
	seguimientoUC := usecase.NewSeguimientoUseCase(seguimientoRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	tareaUC := usecase.NewTareaUseCase(tareaRepo)
	documentoUC := usecase.NewDocumentoUseCase(documentoRepo)
	catalogoUC := usecase.NewCatalogoUseCase(catalogoRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	authUC := usecase.NewAuthUseCase(usuarioRepo, cfg.JWT)

	// PDF: carátula descargable de la póliza
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	polizaPDFUC := usecase.NewPolizaPDFUseCase(polizaRepo, clienteRepo, pdfGenerator)

	// Despacho de recordatorios de vencimiento vía Kafka. Sin brokers
	// configurados la API funciona igual, solo queda inactivo el despacho.
	var dispatcher *notificacion.Dispatcher
	if cfg.Kafka.Enabled() {
		publisher := infrakafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer publisher.Close()
		dispatcher = notificacion.NewDispatcher(recordatorioRepo, publisher, log)
	} else {
		log.Warn().Msg("KAFKA_BROKERS vacío, despacho de recordatorios desactivado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Distrito Diamante API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ClienteUC:      clienteUC,
		AseguradoraUC:  aseguradoraUC,
		PolizaUC:       polizaUC,
		PolizaPDFUC:    polizaPDFUC,
		RecordatorioUC: recordatorioUC,
		SeguimientoUC:  seguimientoUC,
		UsuarioUC:      usuarioUC,
		TareaUC:        tareaUC,
		DocumentoUC:    documentoUC,
		CatalogoUC:     catalogoUC,
		DashboardUC:    dashboardUC,
		Dispatcher:     dispatcher,
		JWTSecret:      cfg.JWT.Secret,
	})

	dispatchCtx, stopDispatch := context.WithCancel(ctx)
	defer stopDispatch()
	if dispatcher != nil {
		go dispatcher.Ejecutar(dispatchCtx, time.Duration(cfg.Kafka.DispatchInterval)*time.Minute)
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopDispatch()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
