package api

import (
	"net/http"

	"github.com/contractops/contract-gin/internal/auth"
	"github.com/contractops/contract-gin/internal/config"
	"github.com/contractops/contract-gin/internal/metrics"
	"github.com/contractops/contract-gin/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Controllers 路由绑定需要的全部控制器
type Controllers struct {
	Auth      *AuthController
	Contracts *ContractController
	Approvals *ApprovalController
}

// SetupRoutes 配置路由
func SetupRoutes(
	db *gorm.DB,
	tokenIssuer *auth.TokenIssuer,
	controllers *Controllers,
	corsCfg *config.CORSConfig,
	logger *logrus.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// 中间件
	router.Use(RequestIDMiddleware())
	router.Use(RequestLogMiddleware(logger))
	router.Use(SecurityHeadersMiddleware())
	router.Use(RateLimitMiddleware(200, 50))
	if corsCfg != nil {
		router.Use(CORSMiddleware(corsCfg.AllowedOrigins))
	}

	// 健康检查
	healthController := NewHealthController(db)
	router.GET("/health", healthController.Check)

	// Prometheus 指标端点
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API v1 路由组
	v1 := router.Group("/api/v1")
	{
		// 账户路由,无需令牌
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", controllers.Auth.Register)
			authGroup.POST("/login", controllers.Auth.Login)
		}

		// 以下路由均需认证
		authed := v1.Group("")
		authed.Use(auth.Middleware(tokenIssuer))
		{
			authed.GET("/auth/me", controllers.Auth.Me)

			// 合同路由
			contracts := authed.Group("/contracts")
			{
				// 全量列表仅审批角色可见,必须注册在 /:id 之前
				contracts.GET("", auth.RequireRole(model.RoleApprover), controllers.Contracts.ListAll)
				contracts.GET("/mine", controllers.Contracts.ListMine)
				contracts.POST("", controllers.Contracts.Create)
				contracts.GET("/:id", controllers.Contracts.Get)
				contracts.PUT("/:id", controllers.Contracts.Update)
				contracts.DELETE("/:id", controllers.Contracts.Delete)
				contracts.POST("/:id/submit", controllers.Contracts.Submit)
			}

			// 审批路由,限定 Approver 角色
			approvals := authed.Group("/approvals")
			approvals.Use(auth.RequireRole(model.RoleApprover))
			{
				approvals.GET("/pending", controllers.Approvals.Pending)
				approvals.POST("", controllers.Approvals.Decide)
				approvals.GET("/history", controllers.Approvals.History)
			}
		}
	}

	// 未匹配的路由返回 JSON 格式的 404
	router.NoRoute(func(c *gin.Context) {
		Error(c, http.StatusNotFound, "route not found", "the requested route does not exist")
	})

	return router
}
