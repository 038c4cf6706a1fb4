// file: internals/features/admissions/route/admission_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "edubridge_backend/internals/features/admissions/controller"
)

// AdmissionSubmitterRoutes: consultancy/agent surface — create and read only.
func AdmissionSubmitterRoutes(sub fiber.Router, db *gorm.DB) {
	ctl := controller.NewAdmissionController(db)

	adm := sub.Group("/admissions")
	adm.Get("/", ctl.List)
	adm.Get("/:id", ctl.GetByID)
	adm.Post("/", ctl.Create)
}

// AdmissionAdminRoutes: super-admin surface — review and delete on top.
func AdmissionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewAdmissionController(db)

	adm := admin.Group("/admissions")
	adm.Get("/", ctl.List)
	adm.Get("/:id", ctl.GetByID)
	adm.Post("/", ctl.Create)
	adm.Post("/:id/review", ctl.Review)
	adm.Delete("/:id", ctl.Delete)
}
