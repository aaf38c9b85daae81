package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/reservio/booking-notifier/internal/api/handlers/notification"
	"github.com/reservio/booking-notifier/internal/middlewares"
)

func New(handler *notification.Handler, apiKey string) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	api.Use(middlewares.APIKey(apiKey))
	{
		api.POST("/notifications/run", handler.RunDeliveryPass)
		api.POST("/notifications/:id/send", handler.SendNow)
		api.GET("/reservations/:id/notifications", handler.ListForReservation)
		api.POST("/templates/preview", handler.PreviewTemplate)
	}

	return e
}
