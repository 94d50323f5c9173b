package api

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/config"
	"jusgestor-backend-go/internal/core"
	"jusgestor-backend-go/internal/middleware"
	"jusgestor-backend-go/internal/realtime"
)

// Services bundles everything SetupRoutes wires into handlers.
type Services struct {
	Accounts  core.AccountService
	Team      core.TeamService
	Offices   core.OfficeService
	Clients   core.ClientService
	Processes core.ProcessService
	Events    core.EventService
	Finances  core.FinancialService
	Templates core.TemplateService
	Contacts  core.ContactService
	AI        core.AIService
	Resolver  *core.IdentityResolver
	Watcher   *realtime.Watcher
}

// SetupRoutes configures all application routes. Global middleware
// (logging, recovery, CORS) is applied to the router before this is
// called, in main.
func SetupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	logger *zap.Logger,
	authClient *auth.Client,
	svc Services,
) {
	authMW := middleware.NewAuthMiddleware(authClient, logger)

	accountHandler := NewAccountHandler(svc.Accounts, logger)
	teamHandler := NewTeamHandler(svc.Team, logger)
	officeHandler := NewOfficeHandler(svc.Offices, logger)
	clientHandler := NewClientHandler(svc.Clients, logger)
	processHandler := NewProcessHandler(svc.Processes, logger)
	eventHandler := NewEventHandler(svc.Events, logger)
	financialHandler := NewFinancialHandler(svc.Finances, logger)
	templateHandler := NewTemplateHandler(svc.Templates, logger)
	contactHandler := NewContactHandler(svc.Contacts, logger)
	aiHandler := NewAIHandler(svc.AI, logger)
	realtimeHandler := NewRealtimeHandler(svc.Watcher, svc.Resolver, cfg.ClientURL, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiV1 := router.Group("/api/v1")
	{
		// Public endpoints: office signup and the contact form.
		apiV1.POST("/auth/signup", accountHandler.Signup)
		apiV1.POST("/contact", contactHandler.Submit)

		profileGroup := apiV1.Group("/profile", authMW.VerifyToken())
		{
			profileGroup.GET("", accountHandler.GetProfile)
			profileGroup.PUT("", accountHandler.UpdateProfile)
			profileGroup.POST("/password", accountHandler.ChangePassword)
			profileGroup.POST("/photo", accountHandler.UploadPhoto)
		}

		teamGroup := apiV1.Group("/team", authMW.VerifyToken())
		{
			teamGroup.GET("", teamHandler.ListMembers)
			teamGroup.POST("/invite", teamHandler.Invite)
		}

		officeGroup := apiV1.Group("/office", authMW.VerifyToken())
		{
			officeGroup.GET("", officeHandler.Get)
			officeGroup.PUT("", officeHandler.Update)
		}

		clientsGroup := apiV1.Group("/clients", authMW.VerifyToken())
		{
			clientsGroup.POST("", clientHandler.Create)
			clientsGroup.GET("", clientHandler.List)
			clientsGroup.GET("/:clientId", clientHandler.Get)
			clientsGroup.PUT("/:clientId", clientHandler.Update)
			clientsGroup.DELETE("/:clientId", clientHandler.Delete)
		}

		processesGroup := apiV1.Group("/processes", authMW.VerifyToken())
		{
			processesGroup.POST("", processHandler.Create)
			processesGroup.GET("", processHandler.List)
			processesGroup.GET("/:processId", processHandler.Get)
			processesGroup.PUT("/:processId", processHandler.Update)
			processesGroup.DELETE("/:processId", processHandler.Delete)

			processesGroup.POST("/:processId/movements", processHandler.AppendMovement)

			processesGroup.POST("/:processId/collaborators", processHandler.AddCollaborator)
			processesGroup.DELETE("/:processId/collaborators/:userId", processHandler.RemoveCollaborator)

			processesGroup.GET("/:processId/chat", processHandler.ListChatMessages)
			processesGroup.POST("/:processId/chat", processHandler.PostChatMessage)

			processesGroup.GET("/:processId/documents", processHandler.ListDocuments)
			processesGroup.POST("/:processId/documents", processHandler.UploadDocument)
		}

		eventsGroup := apiV1.Group("/events", authMW.VerifyToken())
		{
			eventsGroup.POST("", eventHandler.Create)
			eventsGroup.GET("", eventHandler.List)
			eventsGroup.PUT("/:eventId", eventHandler.Update)
			eventsGroup.DELETE("/:eventId", eventHandler.Delete)
			eventsGroup.POST("/:eventId/confirm", eventHandler.Confirm)
		}

		financialGroup := apiV1.Group("/financial-tasks", authMW.VerifyToken())
		{
			financialGroup.POST("", financialHandler.Create)
			financialGroup.GET("", financialHandler.List)
			financialGroup.PUT("/:taskId", financialHandler.Update)
			financialGroup.DELETE("/:taskId", financialHandler.Delete)
			financialGroup.POST("/:taskId/toggle", financialHandler.ToggleStatus)
		}

		templatesGroup := apiV1.Group("/templates", authMW.VerifyToken())
		{
			templatesGroup.POST("", templateHandler.Create)
			templatesGroup.GET("", templateHandler.List)
			templatesGroup.GET("/:templateId", templateHandler.Get)
			templatesGroup.PUT("/:templateId", templateHandler.Update)
			templatesGroup.DELETE("/:templateId", templateHandler.Delete)
		}

		contactRequestsGroup := apiV1.Group("/contact-requests", authMW.VerifyToken())
		{
			contactRequestsGroup.GET("", contactHandler.List)
			contactRequestsGroup.POST("/:requestId/handled", contactHandler.MarkHandled)
		}

		aiGroup := apiV1.Group("/ai", authMW.VerifyToken())
		{
			aiGroup.POST("/petition", aiHandler.DraftPetition)
			aiGroup.POST("/processes/:processId/status", aiHandler.SimulateStatusUpdate)
			aiGroup.POST("/summary", aiHandler.SummarizeBrief)
		}
	}

	router.GET("/ws/:collection", authMW.VerifyToken(), realtimeHandler.Watch)
}
