package routes

import (
	"fittrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterDietRoutes(router *gin.Engine, dietController *controllers.DietController) {
	dietRoutes := router.Group("/diet")
	{
		dietRoutes.GET("/:username", dietController.GetDietDay)
		dietRoutes.POST("/:username/log", dietController.CreateFoodLog)
		dietRoutes.DELETE("/log/:id", dietController.DeleteFoodLog)
	}
}
