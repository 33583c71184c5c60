package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ideagate/internal/handler/api"
	"ideagate/internal/handler/middleware"
	"ideagate/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	accessHandler *api.AccessHandler,
	verificationHandler *api.VerificationHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, accessHandler, verificationHandler, webhookHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	accessHandler *api.AccessHandler,
	verificationHandler *api.VerificationHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Authenticated by signature, not by user token
	engine.POST("/webhooks/payments", webhookHandler.HandleCardEvent)

	apiGroup := engine.Group("/api")
	{
		requests := apiGroup.Group("/access-requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: accessHandler.Create},
				{Method: http.MethodGet, Path: "/:id/state", Handler: accessHandler.GetState},
				{Method: http.MethodPost, Path: "/:id/decision", Handler: accessHandler.Decide},
				{Method: http.MethodPost, Path: "/:id/checkout", Handler: accessHandler.BeginCheckout},
				{Method: http.MethodPost, Path: "/:id/manual-proof", Handler: verificationHandler.SubmitProof},
			})
		}

		ideas := apiGroup.Group("/ideas")
		ideas.Use(authMiddleware.RequireAuth())
		{
			addRoutes(ideas, []route{
				{Method: http.MethodGet, Path: "/:id/access-states", Handler: accessHandler.GetStateBatch},
			})
		}

		verifications := apiGroup.Group("/verifications")
		verifications.Use(authMiddleware.RequireAuth())
		verifications.Use(authMiddleware.RequireRoleAtLeast(middleware.RoleOperator))
		{
			addRoutes(verifications, []route{
				{Method: http.MethodPost, Path: "/:id/review", Handler: verificationHandler.Review},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		}
	}
}

func chainHandlers(handlers ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range handlers {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
