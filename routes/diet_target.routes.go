package routes

import (
	"fittrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterDietTargetRoutes(router *gin.Engine, dietTargetController *controllers.DietTargetController) {
	targetRoutes := router.Group("/diet-target")
	{
		targetRoutes.POST("/:username", dietTargetController.SaveGramsPerKG)
		targetRoutes.POST("/:username/generate", dietTargetController.GenerateFromProfile)
		targetRoutes.POST("/:username/bulk", dietTargetController.BulkSaveGramsPerKG)
		targetRoutes.GET("/:username", dietTargetController.ListTargets)
		targetRoutes.GET("/:username/latest", dietTargetController.GetLatestTarget)
		targetRoutes.DELETE("/id/:id", dietTargetController.DeleteTarget)
	}
}
