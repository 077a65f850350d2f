package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"midnightsoldiers-backend/internal/shared/middleware"
	"midnightsoldiers-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupPublicRoutes(v1, c)
		setupSubmissionRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/logout", c.UserHandler.Logout)
	}
}

// setupPublicRoutes registers the visitor-facing endpoints: listings plus
// the subscription and contact forms.
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/artists", c.ArtistHandler.List)
	v1.GET("/reels", c.ReelHandler.List)
	v1.GET("/videos", c.VideoHandler.List)

	subs := v1.Group("/subscriptions")
	{
		subs.POST("", c.SubscriptionHandler.Create)
		subs.POST("/newsletter", c.SubscriptionHandler.CreateNewsletter)
	}

	v1.POST("/contact", c.ContactHandler.Create)
}

// setupSubmissionRoutes registers the admin content forms and the progress
// polling endpoint they feed.
func setupSubmissionRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		authed.POST("/artists", c.ArtistHandler.Submit)
		authed.POST("/reels", c.ReelHandler.Submit)
		authed.POST("/videos", c.VideoHandler.Submit)
		authed.GET("/submissions/:id", c.SubmissionHandler.Get)
	}
}

func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		admin.GET("/dashboard", dashboardHandler(c))
		admin.GET("/subscriptions", c.SubscriptionHandler.List)
		admin.GET("/subscriptions/export", c.SubscriptionHandler.Export)
		admin.GET("/contact-forms", c.ContactHandler.List)
		admin.PATCH("/contact-forms/:id/read", c.ContactHandler.MarkRead)
	}
}

// dashboardHandler returns the record counts shown on the admin landing
// page.
func dashboardHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		artists, err := appCtx.ArtistRepo.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		reels, err := appCtx.ReelRepo.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		videos, err := appCtx.VideoRepo.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		subs, err := appCtx.SubscriptionRepo.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		contacts, err := appCtx.ContactRepo.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"artists":       artists,
				"reels":         reels,
				"videos":        videos,
				"subscriptions": subs,
				"contactForms":  contacts,
			},
		})
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		status := http.StatusOK
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, health)
	}
}
