package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cenit-labs.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	teamHandler   *handlers.TeamHandler
	jobHandler    *handlers.JobHandler
	uploadHandler *handlers.UploadHandler
	adminGate     gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	api := r.Group("/api")
	{
		// Team routes (public read, gated write)
		team := api.Group("/team")
		{
			team.GET("", d.teamHandler.ListTeamMembers)
			team.GET("/:id", d.teamHandler.GetTeamMember)
			team.POST("", d.adminGate, d.teamHandler.CreateTeamMember)
			team.PUT("", d.adminGate, d.teamHandler.ReorderTeamMembers)
			team.PUT("/:id", d.adminGate, d.teamHandler.UpdateTeamMember)
			team.DELETE("/:id", d.adminGate, d.teamHandler.DeleteTeamMember)
		}

		// Job routes (public read, gated write)
		jobs := api.Group("/jobs")
		{
			jobs.GET("", d.jobHandler.ListJobs)
			jobs.POST("", d.adminGate, d.jobHandler.CreateJob)
			jobs.PUT("/:id", d.adminGate, d.jobHandler.UpdateJob)
			jobs.DELETE("/:id", d.adminGate, d.jobHandler.DeleteJob)
		}

		// Upload route (gated)
		api.POST("/upload", d.adminGate, d.uploadHandler.UploadImage)
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// devOrigins are always allowed so local admin tooling works against any
// deployment.
var devOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// applyCORSMiddleware allow-lists the configured frontend plus local dev
// origins. Preflight requests are answered immediately with 200 so they
// never reach route matching.
func applyCORSMiddleware(r *gin.Engine, frontendURL string) {
	allowed := make(map[string]bool, len(devOrigins)+1)
	for _, origin := range devOrigins {
		allowed[origin] = true
	}
	if frontendURL != "" {
		allowed[frontendURL] = true
	}

	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID, X-Admin-Password")
			c.Header("Vary", "Origin")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})
}
