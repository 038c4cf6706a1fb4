// file: internals/features/users/route/user_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "edubridge_backend/internals/features/users/controller"
	"edubridge_backend/internals/middlewares"
)

// AuthPublicRoutes: login + refresh, rate-limited.
func AuthPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	auth := public.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/refresh", ctl.Refresh)
}

// AuthPrivateRoutes: endpoints that need a verified token.
func AuthPrivateRoutes(private fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)
	private.Get("/auth/me", ctl.Me)
}

// OperatorAdminRoutes: account management, super admin only.
func OperatorAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	ops := admin.Group("/operators")
	ops.Get("/", ctl.ListOperators)
	ops.Post("/", ctl.CreateOperator)
}
