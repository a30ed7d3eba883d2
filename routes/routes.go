package routes

import (
	"net/http"
	"time"

	"devconnect/auth"
	"devconnect/handlers"
	"devconnect/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(tokens *auth.TokenService) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "x-auth-token"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	requireAuth := middleware.RequireAuth(tokens)
	credentialLimiter := middleware.NewIPRateLimiter(30, time.Minute)

	// Registration and login are public; the limiter slows down credential
	// stuffing on them.
	router.POST("/identities", middleware.RateLimit(credentialLimiter), handlers.Register)
	router.POST("/sessions", middleware.RateLimit(credentialLimiter), handlers.Login)
	router.GET("/sessions", requireAuth, handlers.GetCurrentUser)

	// Profiles: reads are public, writes belong to the authenticated owner
	router.GET("/profiles", handlers.ListProfiles)
	router.GET("/profiles/by-user/:userId", handlers.GetProfileByUser)
	router.GET("/profiles/me", requireAuth, handlers.GetMyProfile)
	router.POST("/profiles", requireAuth, handlers.UpsertProfile)
	router.DELETE("/profiles", requireAuth, handlers.DeleteAccount)
	router.PUT("/profiles/experience", requireAuth, handlers.AddExperience)
	router.DELETE("/profiles/experience/:id", requireAuth, handlers.DeleteExperience)
	router.PUT("/profiles/education", requireAuth, handlers.AddEducation)
	router.DELETE("/profiles/education/:id", requireAuth, handlers.DeleteEducation)

	// Feed
	posts := router.Group("/posts")
	posts.Use(requireAuth)
	posts.POST("", handlers.CreatePost)
	posts.GET("", handlers.ListPosts)
	posts.GET("/:id", handlers.GetPost)
	posts.DELETE("/:id", handlers.DeletePost)
	posts.PUT("/like/:id", handlers.LikePost)
	posts.PUT("/unlike/:id", handlers.UnlikePost)
	posts.PUT("/comment/:id", handlers.AddComment)
	posts.DELETE("/comment/:id/:commentId", handlers.DeleteComment)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Endpoint not found"})
	})

	return router
}
