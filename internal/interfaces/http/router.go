package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/returns"
	"github.com/jhoicas/Almacen-api/internal/application/sales"
	"github.com/jhoicas/Almacen-api/internal/application/serials"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	SaleUC      *sales.SaleUseCase
	MovementUC  *inventory.RegisterMovementUseCase
	SerialUC    *serials.SerialUseCase
	ReturnUC    *returns.ReturnUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra las rutas de la API. Las rutas literales (low-stock, today,
// code/..., etc.) van antes que las paramétricas :id.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", ActorMiddleware())

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/code/:code", productHandler.GetByStockCode)
	products.Get("/serial/:serial", productHandler.GetBySerial)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)

	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/today", saleHandler.Today)
	salesGroup.Get("/product/:productId", saleHandler.ListByProduct)
	salesGroup.Get("/customer/:customerId", saleHandler.ListByCustomer)
	salesGroup.Get("/:id", saleHandler.GetByID)

	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	invGroup.Post("/movements", inventoryHandler.Register)
	invGroup.Get("/movements", inventoryHandler.List)
	invGroup.Get("/movements/product/:productId", inventoryHandler.ListByProduct)

	serialsGroup := api.Group("/serials")
	serialHandler := NewSerialHandler(deps.SerialUC)
	serialsGroup.Post("/", serialHandler.Create)
	serialsGroup.Get("/", serialHandler.List)
	serialsGroup.Get("/product/:productId", serialHandler.ListByProduct)
	serialsGroup.Get("/value/:value", serialHandler.GetByValue)
	serialsGroup.Put("/:id", serialHandler.Update)

	returnsGroup := api.Group("/returns")
	returnHandler := NewReturnHandler(deps.ReturnUC)
	returnsGroup.Post("/", returnHandler.Create)
	returnsGroup.Get("/", returnHandler.List)
	returnsGroup.Get("/customer/:customerId", returnHandler.ListByCustomer)
	returnsGroup.Get("/:id", returnHandler.GetByID)
	returnsGroup.Patch("/:id/status", returnHandler.UpdateStatus)

	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
}
