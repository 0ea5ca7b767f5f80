package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the API surface onto the given engine. The public
// portfolio route uses a path parameter, so it is registered after every
// literal sub-path.
func RegisterRoutes(router *gin.Engine, authHandler *AuthHandler, portfolioHandler *PortfolioHandler, authMiddleware gin.HandlerFunc) {

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		pf := api.Group("/portfolio")
		{
			private := pf.Group("")
			private.Use(authMiddleware)
			{
				private.GET("/me", portfolioHandler.GetOwn)
				private.POST("", portfolioHandler.Create)
				private.PUT("/basic-info", portfolioHandler.UpdateBasicInfo)
				private.POST("/skills", portfolioHandler.UpsertSkill)
				private.DELETE("/skills/:skillId", portfolioHandler.DeleteSkill)
				private.POST("/projects", portfolioHandler.AddProject)
				private.DELETE("/projects/:projectId", portfolioHandler.DeleteProject)
				private.PUT("/social-links", portfolioHandler.UpdateSocialLinks)
				private.POST("/profile-picture", portfolioHandler.UploadProfilePicture)
			}

			// Public view, no auth. Must stay last.
			pf.GET("/:userId", portfolioHandler.GetPublic)
		}
	}
}
