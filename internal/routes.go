package internal

import (
	"net/http"
	"watd/internal/controllers"
	"watd/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/event", http.HandlerFunc(apiController.ReceiveEvent))
	routers.Get("/activity", http.HandlerFunc(apiController.GetActivity))
	routers.Get("/orders", http.HandlerFunc(apiController.GetOrders))
	routers.Get("/combined", http.HandlerFunc(apiController.GetCombined))
	return routers
}
