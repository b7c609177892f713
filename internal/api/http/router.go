package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/member-directory/internal/api/http/handlers"
	"github.com/spec-kit/member-directory/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Members        *handlers.MembersHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Index)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	members := api.Group("/members", cfg.AuthMiddleware.Handle, auth.RequireApproved())
	members.Get("/", cfg.Members.List)
	members.Put("/profile", cfg.Members.UpdateProfile)
	members.Delete("/profile", cfg.Members.DeleteProfile)
	members.Post("/profile/photo", cfg.Members.UploadPhoto)
	members.Delete("/profile/photo", cfg.Members.DeletePhoto)
	members.Get("/:id", cfg.Members.GetByID)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/stats", cfg.Admin.Stats)
	admin.Get("/pending", cfg.Admin.Pending)
	admin.Get("/members", cfg.Admin.Members)
	admin.Put("/approve/:id", cfg.Admin.Approve)
	admin.Delete("/reject/:id", cfg.Admin.Reject)
	admin.Put("/members/:id", cfg.Admin.UpdateMember)
	admin.Delete("/members/:id", cfg.Admin.DeleteMember)
	admin.Post("/members/:id/photo", cfg.Admin.UploadMemberPhoto)
	admin.Get("/categories", cfg.Admin.GetCategories)
	admin.Put("/categories", cfg.Admin.UpdateCategories)
}
