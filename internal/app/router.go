package app

import (
	"peer_edu_backend/docs"
	"peer_edu_backend/internal/config"
	"peer_edu_backend/internal/middleware"
	"peer_edu_backend/internal/model"
	"peer_edu_backend/pkg/monitoring"
	"peer_edu_backend/pkg/security"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// 每个教师每分钟最多触发的配对次数
const pairingRequestsPerMinute = 30

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerInstructorRoutes(authGroup, c)
	}
}

func (a *App) registerStudentRoutes(r *gin.RouterGroup, c *controllers) {
	student := r.Group("/student/peer")
	{
		student.GET("/assignments", c.peer.ListAssignments)
		student.GET("/assignments/:id/current", c.peer.PeerQuestion)
		student.GET("/partner", c.peer.MyPartner)
	}
}

func (a *App) registerInstructorRoutes(r *gin.RouterGroup, c *controllers) {
	instructor := r.Group("/instructor/peer")
	instructor.Use(middleware.RoleMiddleware(model.Instructor))
	{
		instructor.GET("/assignments", c.peer.ListAssignments)
		instructor.GET("/assignments/:id/current", c.peer.Dashboard)
		instructor.GET("/chartdata", c.peer.ChartData)

		instructor.GET("/pairs", c.peer.RoundPartners)
		instructor.POST("/pairs",
			security.RateLimiter(pairingRequestsPerMinute, time.Minute, security.UserKey),
			c.peer.MakePairs,
		)
		instructor.DELETE("/pairs", c.peer.ClearPairs)
	}
}
