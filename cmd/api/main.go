package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/menshealthfinder/api/config"
	"github.com/menshealthfinder/api/pkg/api/handlers"
	custommw "github.com/menshealthfinder/api/pkg/api/middleware"
	"github.com/menshealthfinder/api/pkg/audit"
	"github.com/menshealthfinder/api/pkg/auth"
	"github.com/menshealthfinder/api/pkg/billing"
	"github.com/menshealthfinder/api/pkg/cache"
	"github.com/menshealthfinder/api/pkg/clinics"
	"github.com/menshealthfinder/api/pkg/contacts"
	"github.com/menshealthfinder/api/pkg/content"
	"github.com/menshealthfinder/api/pkg/database"
	"github.com/menshealthfinder/api/pkg/email"
	"github.com/menshealthfinder/api/pkg/engagement"
	"github.com/menshealthfinder/api/pkg/followup"
	"github.com/menshealthfinder/api/pkg/importer"
	"github.com/menshealthfinder/api/pkg/jobs"
	"github.com/menshealthfinder/api/pkg/logger"
	"github.com/menshealthfinder/api/pkg/metrics"
	custommiddleware "github.com/menshealthfinder/api/pkg/middleware"
	"github.com/menshealthfinder/api/pkg/places"
	"github.com/menshealthfinder/api/pkg/revenue"
	"github.com/menshealthfinder/api/pkg/reviews"
	"github.com/menshealthfinder/api/pkg/session"
	"github.com/menshealthfinder/api/pkg/sitemap"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Structured request logger honoring LOG_LEVEL / LOG_FORMAT
	requestLogger := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.APIEnvironment,
			TracesSampleRate: 1.0, // Capture 100% of transactions in development, adjust in production
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.APIEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database and run migrations
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2) // 5 req/min for login
	// The tracking beacon fires on every page view, so it gets its own budget
	trackingRateLimiter := custommiddleware.NewRateLimiter(cfg.TrackingRequestsPerMinute, cfg.TrackingBurst)
	webhookRateLimiter := custommiddleware.NewRateLimiter(100, 20) // 100 req/min for Stripe webhooks

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				requestLogger.Error("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency.String(), "error", v.Error.Error())
			} else {
				requestLogger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency.String())
			}
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true, // Repanic after capturing to let the Recover middleware handle it
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.CORSAllowedOrigins)))

	e.Use(middleware.Gzip())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.DefaultSecurityHeadersConfig()))

	// Global rate limiting
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Root and health endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "Men's Health Finder API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(ctx).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Initialize JWT blacklist
	tokenBlacklist := auth.NewTokenBlacklist(redisClient)

	// Initialize audit logger
	auditLogger := audit.NewService(db.Ent)
	log.Printf("✅ Audit logging initialized")

	// Initialize email service
	emailService := email.NewService(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SiteBaseURL,
		cfg.SendGridAPIKey,
	)
	// Service logs its own initialization status
	emailService.SetMetrics(prometheusMetrics)

	// Initialize services
	clinicService := clinics.NewService(db.Ent, redisClient, auditLogger)
	reviewService := reviews.NewService(db.Ent, redisClient, auditLogger)
	contactService := contacts.NewService(db.Ent)
	followupService := followup.NewService(db.Ent)
	followupService.SetMetrics(prometheusMetrics)
	engagementService := engagement.NewService(db.Ent)
	sessionService := session.NewService(redisClient, db.Ent)
	sessionService.SetMetrics(prometheusMetrics)
	revenueService := revenue.NewService(db.Ent, revenue.DefaultConfig(), cfg.RevenueSeed)
	contentGenerator := content.NewGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	rescraper := places.NewRescraper(db.Ent, places.NewGoogleProvider(cfg.PlacesAPIKey))
	importService := importer.NewService(db.Ent)
	sitemapGenerator := sitemap.NewGenerator(db.Ent, cfg.SiteBaseURL, "./public/sitemap.xml")

	billingService := billing.NewService(db.Ent, clinicService, &billing.Config{
		SecretKey:     cfg.StripeSecretKey,
		WebhookSecret: cfg.StripeWebhookSecret,
		PriceStandard: cfg.StripePriceStandard,
		PriceAdvanced: cfg.StripePriceAdvanced,
		SuccessURL:    cfg.FrontendURL + "/upgrade?success=true",
		CancelURL:     cfg.FrontendURL + "/upgrade?canceled=true",
	})
	billingService.SetEmailSender(emailService)
	billingService.SetMetrics(prometheusMetrics)
	log.Printf("✅ Services initialized")

	// Initialize cron manager for nightly recompute jobs
	cronManager := jobs.NewCronManager(engagementService, followupService, sessionService, sitemapGenerator, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()
	log.Printf("✅ Cron jobs started successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db.Ent, cfg, tokenBlacklist, auditLogger, prometheusMetrics)
	clinicHandler := handlers.NewClinicHandler(clinicService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	trackHandler := handlers.NewTrackHandler(sessionService, db.Ent, prometheusMetrics)
	contactHandler := handlers.NewContactHandler(contactService, followupService)
	billingHandler := handlers.NewBillingHandler(billingService)
	adminHandler := handlers.NewAdminHandler(db.Ent, engagementService, revenueService, emailService,
		contentGenerator, rescraper, importService, sitemapGenerator, auditLogger)

	// API v1 routes
	v1 := e.Group("/api/v1")

	// Authentication routes for operators (public login, protected logout/me)
	authRoutes := v1.Group("/auth")
	{
		// Login with rate limit: 5 per minute (prevent brute force)
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/logout", authHandler.Logout, custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist, db.Ent))
		authRoutes.GET("/me", authHandler.Me, custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist, db.Ent))
	}

	// Public directory routes
	clinicsGroup := v1.Group("/clinics")
	{
		clinicsGroup.GET("", clinicHandler.Search)
		clinicsGroup.GET("/nearby", clinicHandler.Nearby) // Must be before /:slug to avoid route conflict
		clinicsGroup.GET("/:slug", clinicHandler.GetBySlug)
		clinicsGroup.GET("/:slug/reviews", reviewHandler.ListForClinic)
		clinicsGroup.POST("/:slug/reviews", reviewHandler.Submit)
	}

	// Public review voting
	v1.POST("/reviews/:id/helpful", reviewHandler.MarkHelpful)
	v1.POST("/reviews/:id/report", reviewHandler.Report)

	// Tracking beacon and location detection (public, high rate budget)
	v1.POST("/track", trackHandler.Track, trackingRateLimiter.RateLimitMiddleware())
	v1.GET("/location/detect", trackHandler.DetectLocation)

	// Public billing routes
	v1.GET("/billing/pricing", billingHandler.GetPricing)
	v1.POST("/billing/checkout", billingHandler.CreateCheckout)
	// Stripe webhook with higher rate limit: 100 per minute
	v1.POST("/webhook/stripe", billingHandler.Webhook, webhookRateLimiter.RateLimitMiddleware())

	// Admin routes (require JWT with blacklist validation plus admin role)
	adminGroup := v1.Group("/admin")
	adminGroup.Use(custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist, db.Ent))
	adminGroup.Use(custommiddleware.RequireAdmin(db.Ent))
	{
		adminGroup.GET("/dashboard", adminHandler.Dashboard)

		// Listing management
		adminGroup.POST("/clinics", clinicHandler.Create)
		adminGroup.PATCH("/clinics/:id", clinicHandler.Update)
		adminGroup.PUT("/clinics/:id/tier", clinicHandler.ChangeTier)
		adminGroup.PUT("/clinics/:id/status", clinicHandler.ChangeStatus)
		adminGroup.POST("/clinics/merge", clinicHandler.Merge)
		adminGroup.POST("/clinics/:slug/upgrade-email", adminHandler.SendUpgradeEmail)
		adminGroup.POST("/clinics/:slug/regenerate-content", adminHandler.RegenerateContent)
		adminGroup.POST("/clinics/:slug/rescrape", adminHandler.Rescrape)

		// Review moderation
		adminGroup.GET("/reviews/pending", reviewHandler.ListPending)
		adminGroup.PUT("/reviews/:id/moderate", reviewHandler.Moderate)

		// CRM contacts
		contactsGroup := adminGroup.Group("/contacts")
		{
			contactsGroup.GET("", contactHandler.List)
			contactsGroup.POST("", contactHandler.Create)
			contactsGroup.GET("/:id", contactHandler.Get)
			contactsGroup.PATCH("/:id", contactHandler.Update)
			contactsGroup.DELETE("/:id", contactHandler.Archive)
			contactsGroup.POST("/:id/restore", contactHandler.Restore)
			contactsGroup.PUT("/:id/stage", contactHandler.ChangeStage)
			contactsGroup.GET("/:id/activities", contactHandler.ListActivities)
			contactsGroup.POST("/:id/activities", contactHandler.LogActivity)
			contactsGroup.POST("/:id/followup", contactHandler.RunContactFollowup)
		}

		// Follow-up tasks
		adminGroup.GET("/tasks", contactHandler.ListTasks)
		adminGroup.POST("/tasks/:id/complete", contactHandler.CompleteTask)
		adminGroup.POST("/tasks/:id/cancel", contactHandler.CancelTask)
		adminGroup.POST("/followups/run", contactHandler.RunFollowups)

		// Engagement and revenue surfaces
		adminGroup.GET("/engagement/ghosts", adminHandler.GhostListings)
		adminGroup.POST("/engagement/recompute", adminHandler.RecomputeEngagement)
		adminGroup.GET("/opportunities", adminHandler.Opportunities)

		// Data operations
		adminGroup.POST("/sitemap/regenerate", adminHandler.RegenerateSitemap)
		adminGroup.POST("/import/csv", adminHandler.ImportCSV)
		adminGroup.GET("/audit/logs", adminHandler.AuditLogs)
	}

	// The XLSX export is opened from a browser link, so the token may travel
	// as a query parameter instead of an Authorization header
	v1.GET("/admin/opportunities/export", adminHandler.ExportOpportunities,
		custommw.JWTFromQueryOrHeader(cfg.JWTSecret, tokenBlacklist, db.Ent),
		custommiddleware.RequireAdmin(db.Ent))

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 Men's Health Finder API starting on %s", address)
	log.Printf("📝 Log level: %s, Log format: %s", cfg.LogLevel, cfg.LogFormat)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d), tracking: %d req/min (burst: %d)",
		cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst, cfg.TrackingRequestsPerMinute, cfg.TrackingBurst)
	log.Printf("⏰ Cron jobs: engagement 2AM, follow-ups 3AM, sitemap 4AM, session sweep hourly")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	// Stop cron jobs
	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	// Gracefully shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
