package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lifelinehq/lifeline-backend/internal/handler"
)

// Setup registers the API routes
func Setup(router *gin.Engine, eventHandler *handler.EventHandler) {
	api := router.Group("/api")
	{
		api.GET("/data", eventHandler.GetTimelineData)
		api.GET("/meta", eventHandler.GetMeta)

		events := api.Group("/events")
		{
			events.POST("", eventHandler.CreateEvent)
			events.GET("/:id", eventHandler.GetEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
		}
	}
}
