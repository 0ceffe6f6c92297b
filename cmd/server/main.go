package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/markoco14/ennytime-sub000/internal/calendar"
	"github.com/markoco14/ennytime-sub000/internal/config"
	"github.com/markoco14/ennytime-sub000/internal/constants"
	"github.com/markoco14/ennytime-sub000/internal/database"
	"github.com/markoco14/ennytime-sub000/internal/handlers"
	"github.com/markoco14/ennytime-sub000/internal/logger"
	"github.com/markoco14/ennytime-sub000/internal/middleware"
	"github.com/markoco14/ennytime-sub000/internal/repository"
	"github.com/markoco14/ennytime-sub000/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(cfg.GinMode); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	weekStart, err := calendar.ParseWeekStart(cfg.WeekStart)
	if err != nil {
		logger.L().Fatalw("invalid WEEK_START", "error", err)
	}

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.L().Fatalw("failed to connect to database", "error", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.L().Fatalw("failed to run migrations", "error", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		logger.L().Fatalw("failed to add indexes", "error", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Session middleware. The cookie carries only the opaque session
	// token; session state itself lives in the database.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionCookieMaxAge,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	shiftTypeRepo := repository.NewShiftTypeRepository(db)
	assignmentRepo := repository.NewShiftAssignmentRepository(db)
	shareRepo := repository.NewShareRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, sessionRepo)
	shiftService := services.NewShiftService(shiftTypeRepo, assignmentRepo)
	shareService := services.NewShareService(shareRepo, userRepo)
	calendarService := services.NewCalendarService(assignmentRepo, shareService)

	if err := authService.PurgeExpiredSessions(); err != nil {
		logger.L().Warnw("failed to purge expired sessions", "error", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	shiftTypeHandler := handlers.NewShiftTypeHandler(shiftService)
	assignmentHandler := handlers.NewShiftAssignmentHandler(shiftService)
	shareHandler := handlers.NewShareHandler(shareService)
	calendarHandler := handlers.NewCalendarHandler(calendarService, weekStart)

	requireAuth := middleware.RequireAuth(authService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "ennytime API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public except /me)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
			auth.PATCH("/me", requireAuth, authHandler.UpdateProfile)
		}

		// Shift catalog routes (protected)
		shiftTypes := api.Group("/shift-types")
		shiftTypes.Use(requireAuth)
		{
			shiftTypes.POST("", shiftTypeHandler.CreateShiftType)
			shiftTypes.GET("", shiftTypeHandler.ListShiftTypes)
			shiftTypes.PUT("/:id", shiftTypeHandler.RenameShiftType)
			shiftTypes.DELETE("/:id", shiftTypeHandler.DeleteShiftType)
		}

		// Schedule routes (protected)
		assignments := api.Group("/shift-assignments")
		assignments.Use(requireAuth)
		{
			assignments.POST("", assignmentHandler.CreateAssignment)
			assignments.POST("/toggle", assignmentHandler.ToggleAssignment)
			assignments.GET("", assignmentHandler.ListAssignments)
			assignments.DELETE("/:id", assignmentHandler.DeleteAssignment)
		}

		// Partner link routes (protected)
		shares := api.Group("/shares")
		shares.Use(requireAuth)
		{
			shares.POST("", shareHandler.CreateShare)
			shares.GET("", shareHandler.GetOutgoingShare)
			shares.GET("/partner", shareHandler.GetPartner)
			shares.DELETE("/:id", shareHandler.DeleteShare)
		}

		// Calendar routes (protected)
		api.GET("/calendar/:year/:month", requireAuth, calendarHandler.GetMonthView)
	}

	// Start server
	logger.L().Infow("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.L().Fatalw("failed to start server", "error", err)
	}
}
