package routes

import (
	"fittrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSummaryRoutes(router *gin.Engine, summaryController *controllers.SummaryController) {
	summaryRoutes := router.Group("/summary")
	{
		summaryRoutes.GET("/:username/diet/week", summaryController.GetDietWeekSummary)
		summaryRoutes.GET("/:username/diet/month", summaryController.GetDietMonthSummary)
		summaryRoutes.GET("/:username/target/week", summaryController.GetTargetWeekSummary)
		summaryRoutes.GET("/:username/target/month", summaryController.GetTargetMonthSummary)
	}
}
