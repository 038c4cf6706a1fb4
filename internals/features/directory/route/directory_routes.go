// file: internals/features/directory/route/directory_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "edubridge_backend/internals/features/directory/controller"
)

// DirectoryAdminRoutes registers university / consultancy / agent / course
// management under the authenticated admin group.
func DirectoryAdminRoutes(admin fiber.Router, db *gorm.DB) {
	uniCtl := controller.NewUniversityController(db)
	conCtl := controller.NewConsultancyController(db)
	agCtl := controller.NewAgentController(db)
	crsCtl := controller.NewCourseController(db)

	uni := admin.Group("/universities")
	uni.Get("/", uniCtl.List)
	uni.Get("/:id", uniCtl.GetByID)
	uni.Post("/", uniCtl.Create)
	uni.Patch("/:id", uniCtl.Update)
	uni.Delete("/:id", uniCtl.Delete)

	con := admin.Group("/consultancies")
	con.Get("/", conCtl.List)
	con.Get("/:id", conCtl.GetByID)
	con.Post("/", conCtl.Create)
	con.Patch("/:id", conCtl.Update)
	con.Delete("/:id", conCtl.Delete)

	ag := admin.Group("/agents")
	ag.Get("/", agCtl.List)
	ag.Get("/:id", agCtl.GetByID)
	ag.Post("/", agCtl.Create)
	ag.Patch("/:id", agCtl.Update)
	ag.Delete("/:id", agCtl.Delete)

	crs := admin.Group("/courses")
	crs.Get("/", crsCtl.ListCourses)
	crs.Post("/", crsCtl.CreateCourse)
	crs.Delete("/:id", crsCtl.DeleteCourse)

	maps := admin.Group("/course-mappings")
	maps.Get("/", crsCtl.ListMappings)
	maps.Post("/", crsCtl.CreateMapping)
	maps.Patch("/:id", crsCtl.UpdateMapping)
	maps.Delete("/:id", crsCtl.DeleteMapping)
}
