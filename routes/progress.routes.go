package routes

import (
	"fittrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterProgressRoutes(router *gin.Engine, progressController *controllers.ProgressController) {
	progressRoutes := router.Group("/progress")
	{
		progressRoutes.PUT("/:username", progressController.SaveProgress)
		progressRoutes.GET("/:username/latest", progressController.GetLatestWeight)
	}
}
