package handler

import (
	"ashi-remedies/internal/middleware"
	"ashi-remedies/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups the HTTP handlers of the API.
type Handlers struct {
	Remedy    *RemedyHandler
	Quiz      *QuizHandler
	Lab       *LabHandler
	BodyMap   *BodyMapHandler
	Community *CommunityHandler
	Admin     *AdminHandler
	Chat      *ChatHandler
	Health    *HealthHandler
}

// SetupRoutes registers the health check and every /api route on app.
func SetupRoutes(app *fiber.App, h Handlers, adminService service.AdminService) {
	vm := middleware.NewValidationMiddleware()

	app.Get("/healthz", h.Health.Health)

	api := app.Group("/api")

	// Catalog routes
	api.Get("/remedies", vm.ValidateSearchParams(), h.Remedy.Search)
	api.Get("/remedies/tags", h.Remedy.Tags)
	api.Get("/remedies/:id", vm.ValidateResourceID(), h.Remedy.GetRemedy)

	// Quiz routes
	api.Get("/quiz/questions", h.Quiz.Questions)
	api.Post("/quiz/sessions", h.Quiz.StartSession)
	api.Get("/quiz/sessions/:id", vm.ValidateSessionID(), h.Quiz.GetSession)
	api.Post("/quiz/sessions/:id/answers", vm.ValidateSessionID(), h.Quiz.Answer)
	api.Post("/quiz/sessions/:id/reset", vm.ValidateSessionID(), h.Quiz.ResetSession)

	// Veda Lab routes
	api.Get("/ingredients", h.Lab.Ingredients)
	api.Post("/lab/match", h.Lab.Match)

	// Body map routes
	api.Get("/body-zones", h.BodyMap.Zones)
	api.Get("/body-zones/:zone", vm.ValidateZoneParams(), h.BodyMap.Zone)

	// Community routes
	api.Get("/community/stories", h.Community.Stories)
	api.Post("/community/stories", h.Community.SubmitStory)
	api.Get("/community/articles", h.Community.Articles)

	// Guest contributor portal
	api.Get("/guest/:token", vm.ValidateGuestToken(), h.Community.CheckGuestLink)
	api.Post("/guest/:token/posts", vm.ValidateGuestToken(), h.Community.SubmitGuestPost)

	api.Get("/founder", h.Admin.Founder)
	api.Get("/seo", h.Admin.SEO)
	api.Post("/chat", h.Chat.Reply)

	// Admin routes
	api.Post("/admin/login", h.Admin.Login)
	admin := api.Group("/admin", middleware.AdminOnly(adminService))
	admin.Get("/stories/pending", h.Admin.PendingStories)
	admin.Post("/stories/:id/approve", vm.ValidateResourceID(), h.Admin.ApproveStory)
	admin.Delete("/stories/live/:id", vm.ValidateResourceID(), h.Admin.DeleteLiveStory)
	admin.Delete("/stories/:id", vm.ValidateResourceID(), h.Admin.RejectStory)
	admin.Delete("/articles/:id", vm.ValidateResourceID(), h.Admin.DeleteArticle)
	admin.Put("/remedies", h.Admin.ReplaceRemedies)
	admin.Post("/remedies", h.Admin.AddRemedy)
	admin.Put("/remedies/:id", vm.ValidateResourceID(), h.Admin.UpdateRemedy)
	admin.Delete("/remedies/:id", vm.ValidateResourceID(), h.Admin.DeleteRemedy)
	admin.Put("/ingredients", h.Admin.ReplaceIngredients)
	admin.Put("/quiz", h.Admin.ReplaceQuiz)
	admin.Put("/body-zones", h.Admin.ReplaceBodyZones)
	admin.Put("/seo", h.Admin.UpdateSEO)
	admin.Put("/founder", h.Admin.UpdateFounder)
	admin.Get("/guest-links", h.Admin.GuestLinks)
	admin.Post("/guest-links", h.Admin.CreateGuestLink)
	admin.Post("/guest-links/:id/toggle", vm.ValidateResourceID(), h.Admin.ToggleGuestLink)
	admin.Delete("/guest-links/:id", vm.ValidateResourceID(), h.Admin.DeleteGuestLink)
	admin.Get("/guest-posts", h.Admin.PendingGuestPosts)
	admin.Post("/guest-posts/:id/approve", vm.ValidateResourceID(), h.Admin.ApproveGuestPost)
	admin.Delete("/guest-posts/:id", vm.ValidateResourceID(), h.Admin.RejectGuestPost)
}
