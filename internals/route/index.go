// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	admissionroute "edubridge_backend/internals/features/admissions/route"
	directoryroute "edubridge_backend/internals/features/directory/route"
	financeroute "edubridge_backend/internals/features/finance/route"
	userroute "edubridge_backend/internals/features/users/route"

	"edubridge_backend/internals/configs"
	authmw "edubridge_backend/internals/middlewares/auth"
)

// SetupRoutes wires the three surfaces:
//
//	/api/public — login, refresh, gateway webhook
//	/api/s      — submitter surface (consultancy/agent tokens)
//	/api/a      — super-admin console (settlement, ledger, directory)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ---------- public ----------
	public := api.Group("/public")
	userroute.AuthPublicRoutes(public, db)
	financeroute.FinancePublicRoutes(public, db)

	// ---------- authenticated ----------
	jwt := authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	// submitter surface
	sub := api.Group("/s", jwt, authmw.IsSubmitter())
	userroute.AuthPrivateRoutes(sub, db)
	admissionroute.AdmissionSubmitterRoutes(sub, db)
	financeroute.FinanceSubmitterRoutes(sub, db)

	// super-admin console
	admin := api.Group("/a", jwt, authmw.IsSuperAdmin())
	userroute.AuthPrivateRoutes(admin, db)
	userroute.OperatorAdminRoutes(admin, db)
	directoryroute.DirectoryAdminRoutes(admin, db)
	admissionroute.AdmissionAdminRoutes(admin, db)
	financeroute.FinanceAdminRoutes(admin, db)
}
