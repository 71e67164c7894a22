package app

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wekeza-crm/internal/config"
	accounthandler "wekeza-crm/internal/handlers/account"
	actionhandler "wekeza-crm/internal/handlers/action"
	analyticshandler "wekeza-crm/internal/handlers/analytics"
	campaignhandler "wekeza-crm/internal/handlers/campaign"
	casehandler "wekeza-crm/internal/handlers/cases"
	customerhandler "wekeza-crm/internal/handlers/customer"
	interactionhandler "wekeza-crm/internal/handlers/interaction"
	notificationhandler "wekeza-crm/internal/handlers/notification"
	reporthandler "wekeza-crm/internal/handlers/report"
	sentimenthandler "wekeza-crm/internal/handlers/sentiment"
	ussdhandler "wekeza-crm/internal/handlers/ussd"
	whatsapphandler "wekeza-crm/internal/handlers/whatsapp"
	workflowhandler "wekeza-crm/internal/handlers/workflow"
	wshandler "wekeza-crm/internal/handlers/ws"
	"wekeza-crm/internal/middleware"
	"wekeza-crm/internal/pkg/ident"
	"wekeza-crm/internal/pkg/jwt"
	"wekeza-crm/internal/pkg/response"
	"wekeza-crm/internal/repository/postgres"
	accountsvc "wekeza-crm/internal/service/account"
	actionsvc "wekeza-crm/internal/service/action"
	analyticssvc "wekeza-crm/internal/service/analytics"
	campaignsvc "wekeza-crm/internal/service/campaign"
	casesvc "wekeza-crm/internal/service/cases"
	customersvc "wekeza-crm/internal/service/customer"
	interactionsvc "wekeza-crm/internal/service/interaction"
	notificationsvc "wekeza-crm/internal/service/notification"
	reportsvc "wekeza-crm/internal/service/report"
	sentimentsvc "wekeza-crm/internal/service/sentiment"
	ussdsvc "wekeza-crm/internal/service/ussd"
	whatsappsvc "wekeza-crm/internal/service/whatsapp"
	workflowsvc "wekeza-crm/internal/service/workflow"
	"wekeza-crm/internal/websocket"
)

// Deps carries everything the router needs. Hub and Redis may be nil;
// the corresponding features degrade gracefully.
type Deps struct {
	DB     *gorm.DB
	Logger *zap.Logger
	Gen    ident.Generator
	Hub    *websocket.Hub
	Redis  *redis.Client
	Cfg    config.AppConfig
}

// BuildRouter wires repositories, services, and handlers onto a gin
// engine. Tests call this directly against an in-memory database.
func BuildRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(cors.Default())

	if deps.Redis != nil {
		r.Use(middleware.RateLimit(deps.Redis, deps.Cfg.RateLimitPerMinute))
	}

	// Repositories
	customerRepo := postgres.NewCustomerRepo(deps.DB)
	accountRepo := postgres.NewAccountRepo(deps.DB)
	caseRepo := postgres.NewCaseRepo(deps.DB)
	interactionRepo := postgres.NewInteractionRepo(deps.DB)
	campaignRepo := postgres.NewCampaignRepo(deps.DB)
	actionRepo := postgres.NewActionRepo(deps.DB)
	sentimentRepo := postgres.NewSentimentRepo(deps.DB)
	workflowRepo := postgres.NewWorkflowRepo(deps.DB)
	notificationRepo := postgres.NewNotificationRepo(deps.DB)
	reportRepo := postgres.NewReportRepo(deps.DB)
	ussdRepo := postgres.NewUSSDRepo(deps.DB)
	whatsappRepo := postgres.NewWhatsAppRepo(deps.DB)
	analyticsRepo := postgres.NewAnalyticsRepo(deps.DB)

	// Services
	var broadcaster notificationsvc.Broadcaster
	if deps.Hub != nil {
		broadcaster = deps.Hub
	}

	customers := customersvc.NewService(customerRepo, deps.Gen, deps.Logger)
	accounts := accountsvc.NewService(accountRepo, customerRepo, deps.Gen, deps.Logger)
	caseSvc := casesvc.NewService(caseRepo, customerRepo, deps.Gen, deps.Logger)
	interactions := interactionsvc.NewService(interactionRepo, customerRepo, deps.Gen, deps.Logger)
	campaigns := campaignsvc.NewService(campaignRepo, customerRepo, deps.Gen, deps.Logger)
	actions := actionsvc.NewService(actionRepo, customerRepo, actionsvc.NewSimulatedRecommender(), deps.Gen, deps.Logger)
	sentiments := sentimentsvc.NewService(sentimentRepo, customerRepo, sentimentsvc.NewKeywordAnalyzer(), deps.Gen, deps.Logger)
	workflows := workflowsvc.NewService(workflowRepo, deps.Gen, deps.Logger)
	notifications := notificationsvc.NewService(notificationRepo, deps.Gen, broadcaster, deps.Logger)
	reports := reportsvc.NewService(reportRepo, reportsvc.NewSimulatedRenderer(), deps.Gen, deps.Logger)
	ussdSvc := ussdsvc.NewService(ussdRepo, deps.Gen, deps.Logger)
	whatsapp := whatsappsvc.NewService(whatsappRepo, customerRepo, whatsappsvc.NewSimulatedTransport(deps.Gen), deps.Gen, deps.Logger)
	analytics := analyticssvc.NewService(analyticsRepo, deps.Logger)

	// Handlers
	customerH := customerhandler.NewHandler(customers)
	accountH := accounthandler.NewHandler(accounts)
	caseH := casehandler.NewHandler(caseSvc)
	interactionH := interactionhandler.NewHandler(interactions)
	campaignH := campaignhandler.NewHandler(campaigns)
	actionH := actionhandler.NewHandler(actions)
	sentimentH := sentimenthandler.NewHandler(sentiments)
	workflowH := workflowhandler.NewHandler(workflows)
	notificationH := notificationhandler.NewHandler(notifications)
	reportH := reporthandler.NewHandler(reports)
	ussdH := ussdhandler.NewHandler(ussdSvc)
	whatsappH := whatsapphandler.NewHandler(whatsapp)
	analyticsH := analyticshandler.NewHandler(analytics)

	api := r.Group("/api")

	if deps.Cfg.AuthEnabled {
		verifier, err := jwt.NewVerifier(deps.Cfg.JWT)
		if err != nil {
			deps.Logger.Fatal("configure jwt verifier", zap.Error(err))
		}
		api.Use(middleware.Auth(verifier))
	}

	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "ok", gin.H{"status": "healthy"})
	})

	cust := api.Group("/customers")
	{
		cust.GET("", customerH.List)
		cust.GET("/:id", customerH.Get)
		cust.GET("/email/:email", customerH.GetByEmail)
		cust.GET("/segment/:segment", customerH.ListBySegment)
		cust.POST("", customerH.Create)
		cust.PUT("/:id", customerH.Update)
		cust.DELETE("/:id", customerH.Delete)
	}

	acc := api.Group("/accounts")
	{
		acc.GET("", accountH.List)
		acc.GET("/:id", accountH.Get)
		acc.GET("/customer/:customerId", accountH.ListByCustomer)
		acc.POST("", accountH.Create)
		acc.PUT("/:id/close", accountH.Close)
		acc.DELETE("/:id", accountH.Delete)
		acc.GET("/:id/transactions", accountH.ListTransactions)
		acc.POST("/:id/transactions", accountH.CreateTransaction)
	}

	cs := api.Group("/cases")
	{
		cs.GET("", caseH.List)
		cs.GET("/:id", caseH.Get)
		cs.GET("/customer/:customerId", caseH.ListByCustomer)
		cs.POST("", caseH.Create)
		cs.PUT("/:id/status", caseH.UpdateStatus)
		cs.DELETE("/:id", caseH.Delete)
		cs.GET("/:id/notes", caseH.ListNotes)
		cs.POST("/:id/notes", caseH.AddNote)
	}

	inter := api.Group("/interactions")
	{
		inter.GET("", interactionH.List)
		inter.GET("/:id", interactionH.Get)
		inter.GET("/customer/:customerId", interactionH.ListByCustomer)
		inter.POST("", interactionH.Create)
		inter.DELETE("/:id", interactionH.Delete)
	}

	camp := api.Group("/campaigns")
	{
		camp.GET("", campaignH.List)
		camp.GET("/:id", campaignH.Get)
		camp.POST("", campaignH.Create)
		camp.PUT("/:id", campaignH.Update)
		camp.DELETE("/:id", campaignH.Delete)
		camp.GET("/:id/customers", campaignH.ListCustomers)
		camp.POST("/:id/customers/:customerId", campaignH.Enroll)
	}

	nba := api.Group("/nextbestactions")
	{
		nba.GET("", actionH.List)
		nba.GET("/:id", actionH.Get)
		nba.GET("/customer/:customerId", actionH.ListByCustomer)
		nba.GET("/customer/:customerId/pending", actionH.ListPendingByCustomer)
		nba.POST("", actionH.Create)
		nba.POST("/generate/:customerId", actionH.Generate)
		nba.PUT("/:id/complete", actionH.Complete)
		nba.DELETE("/:id", actionH.Delete)
	}

	sent := api.Group("/sentimentanalysis")
	{
		sent.GET("", sentimentH.List)
		sent.GET("/:id", sentimentH.Get)
		sent.GET("/customer/:customerId", sentimentH.ListByCustomer)
		sent.GET("/interaction/:interactionId", sentimentH.ListByInteraction)
		sent.GET("/case/:caseId", sentimentH.ListByCase)
		sent.POST("/analyze", sentimentH.Analyze)
		sent.DELETE("/:id", sentimentH.Delete)
	}

	wf := api.Group("/workflows")
	{
		defs := wf.Group("/definitions")
		defs.GET("", workflowH.ListDefinitions)
		defs.GET("/active", workflowH.ListActiveDefinitions)
		defs.GET("/:id", workflowH.GetDefinition)
		defs.POST("", workflowH.CreateDefinition)
		defs.PUT("/:id", workflowH.UpdateDefinition)
		defs.DELETE("/:id", workflowH.DeleteDefinition)

		inst := wf.Group("/instances")
		inst.GET("", workflowH.ListInstances)
		inst.GET("/:id", workflowH.GetInstance)
		inst.GET("/customer/:customerId", workflowH.ListInstancesByCustomer)
		inst.POST("/trigger", workflowH.Trigger)
		inst.PUT("/:id/status", workflowH.UpdateInstanceStatus)
	}

	notif := api.Group("/notifications")
	{
		notif.GET("", notificationH.List)
		notif.GET("/:id", notificationH.Get)
		notif.GET("/user/:userId", notificationH.ListByUser)
		notif.GET("/user/:userId/unread", notificationH.ListUnreadByUser)
		notif.POST("", notificationH.Create)
		notif.PUT("/:id/read", notificationH.MarkAsRead)
		notif.DELETE("/:id", notificationH.Delete)
	}

	rep := api.Group("/reports")
	{
		rep.GET("/templates", reportH.ListTemplates)
		rep.GET("/templates/:id", reportH.GetTemplate)
		rep.POST("/templates", reportH.CreateTemplate)
		rep.PUT("/templates/:id", reportH.UpdateTemplate)
		rep.DELETE("/templates/:id", reportH.DeleteTemplate)
		rep.GET("/schedules", reportH.ListSchedules)
		rep.POST("/schedules", reportH.CreateSchedule)
		rep.POST("/schedules/:id/run", reportH.RunSchedule)
		rep.GET("/generated", reportH.ListGenerated)
		rep.POST("/generate", reportH.Generate)
		rep.GET("/download/:id", reportH.Download)
	}

	us := api.Group("/ussd")
	{
		us.GET("", ussdH.List)
		us.GET("/:id", ussdH.Get)
		us.GET("/phone/:phoneNumber", ussdH.ListByPhone)
		us.POST("/handle", ussdH.Handle)
	}

	wa := api.Group("/whatsapp")
	{
		wa.GET("", whatsappH.List)
		wa.GET("/:id", whatsappH.Get)
		wa.GET("/customer/:customerId", whatsappH.ListByCustomer)
		wa.POST("/send", whatsappH.Send)
		wa.POST("/webhook", whatsappH.Webhook)
	}

	an := api.Group("/analytics")
	{
		an.GET("/customers", analyticsH.Customers)
		an.GET("/cases", analyticsH.Cases)
		an.GET("/interactions", analyticsH.Interactions)
		an.GET("/dashboard", analyticsH.Dashboard)
	}

	if deps.Hub != nil {
		wsH := wshandler.NewHandler(deps.Hub, deps.Logger)
		r.GET("/ws", wsH.Serve)
	}

	return r
}
