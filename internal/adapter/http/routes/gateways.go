package routes

import (
	"eventpay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathGateways          = "/merchants/:merchant_id/gateways"
	PathAvailableGateways = "/gateways"
)

func addGatewayRoutes(rg *gin.RouterGroup, gatewayHandler *handlers.GatewayConfigHandler) {
	gateways := rg.Group(PathGateways)
	{
		gateways.GET("", gatewayHandler.GetGateways)
		gateways.PUT("/:type", gatewayHandler.UpdateGateway)
		gateways.DELETE("/:type", gatewayHandler.DeleteGateway)
		gateways.POST("/reset", gatewayHandler.ResetPaymentProcessor)
	}

	rg.GET(PathAvailableGateways, gatewayHandler.GetAvailableGateways)
}
