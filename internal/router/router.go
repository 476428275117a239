package router

import (
	"fmt"
	"strings"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/cache"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/config"
	adminhandlers "github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/http/handlers/admin"
	publichandlers "github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/http/handlers/public"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/logger"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware and routes
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "dimos"
	}
	redisClient := cache.Client()
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_too_many",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// uploaded media
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetConfig)
			public.GET("/appearance", publicHandler.GetAppearance)
			public.GET("/news", publicHandler.GetNews)
			public.GET("/news/featured", publicHandler.GetFeaturedNews)
			public.GET("/news/:slug", publicHandler.GetNewsBySlug)
			public.GET("/events", publicHandler.GetEvents)
			public.GET("/events/upcoming", publicHandler.GetUpcomingEvents)
			public.GET("/events/:slug", publicHandler.GetEventBySlug)
			public.GET("/museums", publicHandler.GetMuseums)
			public.GET("/museums/:slug", publicHandler.GetMuseumBySlug)
			public.GET("/pages/:slug", publicHandler.GetPageBySlug)
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/categories/:slug/pages", publicHandler.GetCategoryPages)
			public.GET("/navigation", publicHandler.GetNavigation)
		}

		admin := apiV1.Group("/admin")
		{
			// login and its captcha need no token, only throttling
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.AdminLogin)
			admin.GET("/captcha/image", adminHandler.GetImageCaptcha)

			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				authorized.GET("/profile", adminHandler.GetAdminProfile)
				authorized.PUT("/password", adminHandler.UpdateAdminPassword)

				authorized.GET("/news", adminHandler.GetAdminNews)
				authorized.GET("/news/:id", adminHandler.GetAdminNewsItem)
				authorized.POST("/news", adminHandler.CreateNews)
				authorized.PUT("/news/:id", adminHandler.UpdateNews)
				authorized.DELETE("/news/:id", adminHandler.DeleteNews)

				authorized.GET("/events", adminHandler.GetAdminEvents)
				authorized.GET("/events/:id", adminHandler.GetAdminEvent)
				authorized.POST("/events", adminHandler.CreateEvent)
				authorized.PUT("/events/:id", adminHandler.UpdateEvent)
				authorized.DELETE("/events/:id", adminHandler.DeleteEvent)

				authorized.GET("/museums", adminHandler.GetAdminMuseums)
				authorized.GET("/museums/:id", adminHandler.GetAdminMuseum)
				authorized.POST("/museums", adminHandler.CreateMuseum)
				authorized.PUT("/museums/:id", adminHandler.UpdateMuseum)
				authorized.DELETE("/museums/:id", adminHandler.DeleteMuseum)

				authorized.GET("/pages", adminHandler.GetAdminPages)
				authorized.GET("/pages/:id", adminHandler.GetAdminPage)
				authorized.POST("/pages", adminHandler.CreatePage)
				authorized.PUT("/pages/:id", adminHandler.UpdatePage)
				authorized.DELETE("/pages/:id", adminHandler.DeletePage)
				authorized.GET("/pages/by-slug/:slug", adminHandler.GetAdminPageBySlug)
				authorized.PUT("/pages/by-slug/:slug", adminHandler.UpdatePageBySlug)
				authorized.DELETE("/pages/by-slug/:slug", adminHandler.DeletePageBySlug)

				authorized.GET("/categories", adminHandler.GetAdminCategories)
				authorized.GET("/categories/:id", adminHandler.GetAdminCategory)
				authorized.POST("/categories", adminHandler.CreateCategory)
				authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
				authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)

				authorized.GET("/settings/:key", adminHandler.GetAdminSetting)
				authorized.PUT("/settings/:key", adminHandler.UpdateAdminSetting)

				authorized.POST("/upload", adminHandler.UploadFile)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
