package main

import (
	"context"
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/wdpl/corporate-site-api/internal/config"
	"github.com/wdpl/corporate-site-api/internal/constants"
	"github.com/wdpl/corporate-site-api/internal/database"
	"github.com/wdpl/corporate-site-api/internal/handlers"
	"github.com/wdpl/corporate-site-api/internal/mailer"
	"github.com/wdpl/corporate-site-api/internal/middleware"
	"github.com/wdpl/corporate-site-api/internal/repository"
	"github.com/wdpl/corporate-site-api/internal/services"
	"github.com/wdpl/corporate-site-api/internal/storage"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		logger.Fatal("Failed to create indexes", zap.Error(err))
	}

	buckets := []string{
		constants.BucketTeamPhotos,
		constants.BucketTestimonialPhotos,
		constants.BucketGalleryImages,
		constants.BucketResumes,
	}
	var store storage.ObjectStore
	if cfg.StorageEndpoint == "" {
		logger.Warn("no storage endpoint configured, using in-memory object store")
		store = storage.NewMemoryStore()
	} else {
		store, err = storage.NewMinioStore(context.Background(),
			cfg.StorageEndpoint, cfg.StorageAccessKey, cfg.StorageSecretKey,
			cfg.StorageUseSSL, buckets, logger)
		if err != nil {
			logger.Fatal("Failed to connect to object storage", zap.Error(err))
		}
	}

	var m mailer.Mailer
	if cfg.SMTPHost == "" {
		logger.Warn("no SMTP host configured, reset links will only be logged")
		m = mailer.NewLogMailer(logger)
	} else {
		m = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
	}

	db := database.GetDB()
	accountRepo := repository.NewAccountRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	jobRepo := repository.NewJobRepository(db)
	contactRepo := repository.NewContactRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	siteRepo := repository.NewSiteRepository(db)

	authService := services.NewAuthService(accountRepo, m, cfg.ResetTokenSecret, cfg.SiteBaseURL)
	teamService := services.NewTeamService(teamRepo)
	galleryService := services.NewGalleryService(galleryRepo, store, logger)

	authHandler := handlers.NewAuthHandler(authService)
	teamHandler := handlers.NewTeamHandler(teamService, store)
	jobHandler := handlers.NewJobHandler(jobRepo, store)
	contactHandler := handlers.NewContactHandler(contactRepo)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialRepo, store)
	galleryHandler := handlers.NewGalleryHandler(galleryService)
	siteHandler := handlers.NewSiteHandler(siteRepo)

	sessionStore, err := redisStore.NewStore(10, "tcp",
		cfg.RedisHost+":"+cfg.RedisPort, "", "", []byte(cfg.SessionSecret))
	if err != nil {
		logger.Fatal("Failed to connect to session store", zap.Error(err))
	}
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   cfg.GinMode == "release",
	})

	r := gin.Default()
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/team", teamHandler.ListPublicTeam)

		api.GET("/careers", jobHandler.ListOpen)
		api.GET("/careers/:id", jobHandler.GetJob)
		api.POST("/careers/:id/apply", jobHandler.Apply)

		api.POST("/contact", contactHandler.Submit)

		api.GET("/testimonials", testimonialHandler.List)

		api.GET("/about/timeline", siteHandler.AboutTimeline)

		api.GET("/gallery/categories", galleryHandler.ListCategories)
		api.GET("/gallery/categories/:id/events", galleryHandler.ListCategoryEvents)
		api.GET("/gallery/events/:id/images", galleryHandler.ListEventImages)

		viewer := api.Group("/gallery/viewer")
		{
			viewer.POST("/event", galleryHandler.OpenViewer)
			viewer.DELETE("/event", galleryHandler.CloseViewer)
			viewer.POST("/open", galleryHandler.ViewerOpenImage)
			viewer.POST("/close", galleryHandler.ViewerCloseImage)
			viewer.POST("/next", galleryHandler.ViewerNext)
			viewer.POST("/prev", galleryHandler.ViewerPrev)
			viewer.POST("/zoom-in", galleryHandler.ViewerZoomIn)
			viewer.POST("/zoom-out", galleryHandler.ViewerZoomOut)
			viewer.POST("/zoom-reset", galleryHandler.ViewerZoomReset)
		}

		api.POST("/admin/auth/login", authHandler.Login)
		api.POST("/admin/auth/logout", authHandler.Logout)
		api.POST("/admin/auth/forgot", authHandler.ForgotPassword)
		api.POST("/admin/auth/reset", authHandler.ResetPassword)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(), middleware.RequireAdmin(authService))
		{
			admin.GET("/auth/me", authHandler.Me)

			admin.GET("/team/members", teamHandler.ListMembers)
			admin.POST("/team/members", teamHandler.CreateMember)
			admin.PUT("/team/members/:id", teamHandler.UpdateMember)
			admin.PATCH("/team/members/:id/active", teamHandler.ToggleMemberActive)
			admin.DELETE("/team/members/:id", teamHandler.DeleteMember)
			admin.GET("/team/departments", teamHandler.ListDepartments)
			admin.POST("/team/departments", teamHandler.CreateDepartment)
			admin.PATCH("/team/departments/:id/active", teamHandler.SetDepartmentActive)

			admin.GET("/jobs", jobHandler.ListAll)
			admin.POST("/jobs", jobHandler.Create)
			admin.PUT("/jobs/:id", jobHandler.Update)
			admin.PATCH("/jobs/:id/status", jobHandler.ToggleStatus)
			admin.DELETE("/jobs/:id", jobHandler.Delete)

			admin.GET("/contacts", contactHandler.List)
			admin.DELETE("/contacts/:id", contactHandler.Delete)

			admin.GET("/testimonials", testimonialHandler.List)
			admin.POST("/testimonials", testimonialHandler.Create)
			admin.PUT("/testimonials/:id", testimonialHandler.Update)
			admin.DELETE("/testimonials/:id", testimonialHandler.Delete)

			admin.GET("/gallery/categories", galleryHandler.ListCategories)
			admin.POST("/gallery/categories", galleryHandler.CreateCategory)
			admin.DELETE("/gallery/categories/:id", galleryHandler.DeleteCategory)
			admin.GET("/gallery/events", galleryHandler.ListEvents)
			admin.POST("/gallery/events", galleryHandler.CreateEvent)
			admin.DELETE("/gallery/events/:id", galleryHandler.DeleteEvent)
			admin.GET("/gallery/images", galleryHandler.ListImages)
			admin.POST("/gallery/images", galleryHandler.UploadImages)
			admin.DELETE("/gallery/images/:id", galleryHandler.DeleteImage)
		}
	}

	logger.Info("starting server", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
