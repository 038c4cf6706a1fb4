// file: internals/features/finance/route/finance_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ledgerctl "edubridge_backend/internals/features/finance/ledger/controller"
	paymentctl "edubridge_backend/internals/features/finance/payments/controller"
	settlementctl "edubridge_backend/internals/features/finance/settlement/controller"
	submissionctl "edubridge_backend/internals/features/finance/submissions/controller"
)

// FinanceSubmitterRoutes: consultancy/agent surface — submit and track money
// claims, never settle them.
func FinanceSubmitterRoutes(sub fiber.Router, db *gorm.DB) {
	subCtl := submissionctl.NewFeeSubmissionController(db)
	linkCtl := paymentctl.NewPaymentLinkController(db)

	fees := sub.Group("/fee-submissions")
	fees.Get("/", subCtl.List)
	fees.Get("/:id", subCtl.GetByID)
	fees.Post("/", subCtl.Create)

	links := sub.Group("/payment-links")
	links.Get("/", linkCtl.List)
	links.Post("/", linkCtl.Create)
}

// FinanceAdminRoutes: super-admin surface — settlement, ledger, wallets.
func FinanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	subCtl := submissionctl.NewFeeSubmissionController(db)
	setCtl := settlementctl.NewSettlementController(db)
	ledCtl := ledgerctl.NewLedgerController(db)
	linkCtl := paymentctl.NewPaymentLinkController(db)

	fees := admin.Group("/fee-submissions")
	fees.Get("/", subCtl.List)
	fees.Get("/:id", subCtl.GetByID)
	fees.Post("/", subCtl.Create)
	fees.Post("/:id/review", setCtl.Review)

	ledger := admin.Group("/ledger")
	ledger.Get("/", ledCtl.List)

	wallets := admin.Group("/wallets")
	wallets.Get("/:entityType/:entityId", ledCtl.Wallet)
	wallets.Post("/adjust", ledCtl.Adjust)

	links := admin.Group("/payment-links")
	links.Get("/", linkCtl.List)
	links.Post("/", linkCtl.Create)
}

// FinancePublicRoutes: unauthenticated gateway callback.
func FinancePublicRoutes(public fiber.Router, db *gorm.DB) {
	linkCtl := paymentctl.NewPaymentLinkController(db)
	public.Post("/payments/webhook", linkCtl.Webhook)
}
