package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/returns"
	"github.com/jhoicas/Almacen-api/internal/application/sales"
	"github.com/jhoicas/Almacen-api/internal/application/serials"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/Almacen-api/internal/interfaces/http"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store := memory.NewStore()
	productRepo := memory.NewProductRepository(store)
	customerRepo := memory.NewCustomerRepository(store)
	saleRepo := memory.NewSaleRepository(store)
	movementRepo := memory.NewStockMovementRepository(store)
	serialRepo := memory.NewSerialNumberRepository(store)
	returnRepo := memory.NewReturnRepository(store)
	txRunner := memory.NewTxRunner(store)

	productUC := usecase.NewProductUseCase(txRunner, productRepo)
	customerUC := usecase.NewCustomerUseCase(txRunner, customerRepo)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo)
	movementUC := inventory.NewRegisterMovementUseCase(txRunner, movementRepo)
	serialUC := serials.NewSerialUseCase(txRunner, serialRepo)
	returnUC := returns.NewReturnUseCase(txRunner, returnRepo)
	dashboardUC := analytics.NewDashboardUseCase(productRepo, customerRepo, saleRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs (requiere swag init)
	httpRouter.Docs(app, cfg.App.Name, "./docs/swagger.json")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		SaleUC:      saleUC,
		MovementUC:  movementUC,
		SerialUC:    serialUC,
		ReturnUC:    returnUC,
		DashboardUC: dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
