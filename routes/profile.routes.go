package routes

import (
	"fittrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterProfileRoutes(router *gin.Engine, profileController *controllers.ProfileController) {
	profileRoutes := router.Group("/profile")
	{
		profileRoutes.PUT("/:username", profileController.SaveProfile)
		profileRoutes.GET("/:username", profileController.GetProfile)
		profileRoutes.DELETE("/:username", profileController.DeleteProfile)
		profileRoutes.GET("/:username/metrics", profileController.GetProfileMetrics)
	}
}
