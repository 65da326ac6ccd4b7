package routes

import (
	"log"

	"tournament-backend/internal/api/handlers"
	"tournament-backend/internal/api/middleware"
	"tournament-backend/internal/auth"
	"tournament-backend/internal/config"
	"tournament-backend/internal/database/models"
	"tournament-backend/internal/repository"
	"tournament-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tournamentRepo := repository.NewTournamentRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	matchEventRepo := repository.NewMatchEventRepository(db)
	teamStatsRepo := repository.NewTeamStatsRepository(db)
	playerStatsRepo := repository.NewPlayerStatsRepository(db)
	perfRepo := repository.NewPerformanceRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, validator)
	tournamentService := service.NewTournamentService(tournamentRepo, teamRepo, teamStatsRepo, validator)
	teamService := service.NewTeamService(teamRepo, tournamentRepo, playerRepo, userRepo, teamStatsRepo, validator)
	playerService := service.NewPlayerService(playerRepo, teamRepo, playerStatsRepo, perfRepo, validator)
	matchService := service.NewMatchService(matchRepo, tournamentRepo, teamRepo, userRepo, matchEventRepo, teamStatsRepo, perfRepo, validator)
	rosterService := service.NewRosterService(teamRepo, matchRepo, playerRepo, perfRepo)

	// Initialize auth
	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	authService, err := auth.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiryHours)
	if err != nil {
		log.Printf("Warning: Failed to initialize auth service: %v", err)
	} else {
		authHandler = auth.NewAuthHandler(authService)
		authMiddleware = auth.NewAuthMiddleware(authService)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService, matchService, teamService)
	teamHandler := handlers.NewTeamHandler(teamService, playerService)
	playerHandler := handlers.NewPlayerHandler(playerService, cfg.UploadDir)
	matchHandler := handlers.NewMatchHandler(matchService, rosterService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Player photos are served directly
	router.Static("/uploads/players", cfg.UploadDir)

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/api/v1/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/validate", authHandler.Validate)
		}
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	adminOnly := gin.HandlerFunc(func(c *gin.Context) { c.Next() })
	adminOrCoach := gin.HandlerFunc(func(c *gin.Context) { c.Next() })
	if authMiddleware != nil {
		adminOnly = authMiddleware.RequireRole(models.UserRoleAdmin)
		adminOrCoach = authMiddleware.RequireRole(models.UserRoleAdmin, models.UserRoleCoach)
	}

	{
		// User routes - admin only
		users := v1.Group("/users")
		users.Use(adminOnly)
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Tournament routes
		tournaments := v1.Group("/tournaments")
		{
			tournaments.GET("", tournamentHandler.ListTournaments)
			tournaments.GET("/:id", tournamentHandler.GetTournament)
			tournaments.GET("/:id/standings", tournamentHandler.GetStandings)
			tournaments.GET("/:id/teams", tournamentHandler.GetTournamentTeams)
			tournaments.GET("/:id/matches", tournamentHandler.GetTournamentMatches)
			tournaments.POST("", adminOnly, tournamentHandler.CreateTournament)
			tournaments.PUT("/:id", adminOnly, tournamentHandler.UpdateTournament)
			tournaments.DELETE("/:id", adminOnly, tournamentHandler.DeleteTournament)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("/:id", teamHandler.GetTeam)
			teams.GET("/:id/players", teamHandler.GetTeamPlayers)
			teams.GET("/:id/players/available", teamHandler.GetAvailablePlayers)
			teams.POST("", adminOnly, teamHandler.CreateTeam)
			teams.PUT("/:id", adminOrCoach, teamHandler.UpdateTeam)
			teams.DELETE("/:id", adminOnly, teamHandler.DeleteTeam)
		}

		// Player routes
		players := v1.Group("/players")
		{
			players.GET("/:id", playerHandler.GetPlayer)
			players.GET("/:id/stats", playerHandler.GetPlayerStats)
			players.POST("", adminOrCoach, playerHandler.CreatePlayer)
			players.PUT("/:id", adminOrCoach, playerHandler.UpdatePlayer)
			players.DELETE("/:id", adminOrCoach, playerHandler.DeletePlayer)
			players.POST("/:id/toggle-availability", adminOrCoach, playerHandler.ToggleAvailability)
			players.POST("/:id/stats/recalculate", adminOrCoach, playerHandler.RecalculatePlayerStats)
			players.POST("/:id/photo", adminOrCoach, playerHandler.UploadPlayerPhoto)
		}

		// Match routes
		matches := v1.Group("/matches")
		{
			matches.GET("/:id", matchHandler.GetMatch)
			matches.GET("/:id/events", matchHandler.GetMatchEvents)
			matches.GET("/:id/roster", matchHandler.GetRoster)
			matches.POST("", adminOnly, matchHandler.CreateMatch)
			matches.PUT("/:id/referee", adminOnly, matchHandler.AssignReferee)
			matches.PUT("/:id/score", adminOnly, matchHandler.RecordScore)
			matches.POST("/:id/events", adminOnly, matchHandler.AddMatchEvent)
			matches.PUT("/:id/roster", adminOrCoach, matchHandler.SelectRoster)
			matches.DELETE("/:id", adminOnly, matchHandler.DeleteMatch)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
