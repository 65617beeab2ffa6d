package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tributo-api/internal/application/auth"
	"github.com/jhoicas/Tributo-api/internal/application/fiscal"
	"github.com/jhoicas/Tributo-api/internal/application/ports"
	"github.com/jhoicas/Tributo-api/internal/application/purchases"
	"github.com/jhoicas/Tributo-api/internal/application/trade"
	"github.com/jhoicas/Tributo-api/internal/application/usecase"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	TransferUC     *trade.TransferUseCase
	SaleUC         *trade.SaleUseCase
	LedgerUC       *trade.LedgerUseCase
	Ruc10UC        *purchases.Ruc10UseCase
	WholesaleUC    *purchases.WholesaleUseCase
	ExpenseUC      *purchases.ExpenseUseCase
	FiscalUC       *fiscal.FiscalUseCase
	SettingsUC     *usecase.SettingsUseCase
	IntermediaryUC *usecase.IntermediaryUseCase
	SupplierUC     *usecase.SupplierUseCase
	EmployeeUC     *usecase.EmployeeUseCase
	LookupUC       *usecase.LookupUseCase
	Documents      ports.DocumentStore
	Roles          repository.ConfigRepository
	JWTSecret      string
}

// Router registra las rutas de la API. Las lecturas exigen token; las
// mutaciones además consultan la matriz de permisos del rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventario (protegido; solo edición descriptiva)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/summary", productHandler.Summary)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequirePermission(ModuleInventario, ActionUpdate, deps.Roles), productHandler.Update)

	tradeHandler := NewTradeHandler(deps.TransferUC, deps.SaleUC, deps.LedgerUC)

	// Venta interna RUC 10 → RUC 20 (protegido)
	transfers := protected.Group("/transfers")
	transfers.Get("/quote/:productId", tradeHandler.QuoteTransfer)
	transfers.Post("/", RequirePermission(ModuleVentas, ActionCreate, deps.Roles), tradeHandler.CreateTransfer)
	transfers.Post("/:eventId/voucher", RequirePermission(ModuleVentas, ActionUpdate, deps.Roles), tradeHandler.AttachTransferVoucher)
	transfers.Post("/:eventId/void", RequirePermission(ModuleVentas, ActionDelete, deps.Roles), tradeHandler.VoidTransfer)

	// Venta a cliente final (protegido)
	sales := protected.Group("/sales")
	sales.Get("/quote/:productId", tradeHandler.QuoteSale)
	sales.Post("/", RequirePermission(ModuleVentas, ActionCreate, deps.Roles), tradeHandler.CreateSale)
	sales.Post("/:id/void", RequirePermission(ModuleVentas, ActionDelete, deps.Roles), tradeHandler.VoidSale)

	// Registro de comprobantes (protegido, solo lectura)
	transactions := protected.Group("/transactions")
	transactions.Get("/", tradeHandler.ListTransactions)
	transactions.Get("/:id", tradeHandler.GetTransaction)

	// Compras RUC 10 (protegido)
	purchasesGroup := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.Ruc10UC)
	purchasesGroup.Post("/", RequirePermission(ModuleCompras, ActionCreate, deps.Roles), purchaseHandler.Register)
	purchasesGroup.Get("/", purchaseHandler.List)
	purchasesGroup.Get("/:id", purchaseHandler.GetByID)
	purchasesGroup.Post("/:id/docs", RequirePermission(ModuleCompras, ActionUpdate, deps.Roles), purchaseHandler.AttachDocs)
	purchasesGroup.Delete("/:id", RequirePermission(ModuleCompras, ActionDelete, deps.Roles), purchaseHandler.Delete)

	// Compras mayoristas (protegido)
	wholesale := protected.Group("/wholesale")
	wholesaleHandler := NewWholesaleHandler(deps.WholesaleUC)
	wholesale.Post("/", RequirePermission(ModuleCompras, ActionCreate, deps.Roles), wholesaleHandler.Register)
	wholesale.Get("/", wholesaleHandler.List)
	wholesale.Get("/:id", wholesaleHandler.GetByID)
	wholesale.Post("/:id/invoice", RequirePermission(ModuleCompras, ActionUpdate, deps.Roles), wholesaleHandler.AttachInvoice)
	wholesale.Delete("/:id", RequirePermission(ModuleCompras, ActionDelete, deps.Roles), wholesaleHandler.Delete)

	// Gastos operativos (protegido)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", RequirePermission(ModuleGastos, ActionCreate, deps.Roles), expenseHandler.Register)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Post("/:id/receipt", RequirePermission(ModuleGastos, ActionUpdate, deps.Roles), expenseHandler.AttachReceipt)
	expenses.Delete("/:id", RequirePermission(ModuleGastos, ActionDelete, deps.Roles), expenseHandler.Delete)

	// Impuestos (protegido)
	taxes := protected.Group("/taxes", RequirePermission(ModuleImpuestos, ActionRead, deps.Roles))
	fiscalHandler := NewFiscalHandler(deps.FiscalUC)
	taxes.Get("/monthly/:period", fiscalHandler.Monthly)
	taxes.Get("/annual/:year", fiscalHandler.Annual)
	taxes.Get("/sire", fiscalHandler.ExportSire)
	taxes.Get("/sire/download", fiscalHandler.DownloadSire)

	// Configuración tributaria y roles (protegido)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/tax", settingsHandler.GetTaxConfig)
	settings.Put("/tax", RequirePermission(ModuleConfiguracion, ActionUpdate, deps.Roles), settingsHandler.UpdateTaxConfig)
	settings.Get("/roles", settingsHandler.ListRoles)
	settings.Put("/roles", RequireRole("admin"), settingsHandler.SaveRole)

	// Emisores RUC 10 (protegido)
	intermediaries := protected.Group("/intermediaries")
	intermediaryHandler := NewIntermediaryHandler(deps.IntermediaryUC)
	intermediaries.Post("/", RequirePermission(ModuleTerceros, ActionCreate, deps.Roles), intermediaryHandler.Create)
	intermediaries.Get("/", intermediaryHandler.List)
	intermediaries.Get("/:id", intermediaryHandler.GetByID)
	intermediaries.Put("/:id", RequirePermission(ModuleTerceros, ActionUpdate, deps.Roles), intermediaryHandler.Update)
	intermediaries.Delete("/:id", RequirePermission(ModuleTerceros, ActionDelete, deps.Roles), intermediaryHandler.Delete)

	// Proveedores (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", RequirePermission(ModuleTerceros, ActionCreate, deps.Roles), supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", RequirePermission(ModuleTerceros, ActionUpdate, deps.Roles), supplierHandler.Update)
	suppliers.Delete("/:id", RequirePermission(ModuleTerceros, ActionDelete, deps.Roles), supplierHandler.Delete)

	// Trabajadores (solo admin)
	employees := protected.Group("/employees", RequireRole("admin"))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Consulta de identidad (protegido)
	lookup := protected.Group("/lookup")
	lookupHandler := NewLookupHandler(deps.LookupUC)
	lookup.Get("/dni/:dni", lookupHandler.LookupDNI)
	lookup.Get("/ruc/:ruc", lookupHandler.LookupRUC)

	// Sustentos escaneados (protegido)
	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.Documents)
	documents.Post("/", documentHandler.Upload)
	documents.Get("/*", documentHandler.Download)
}
