package routes

import (
	"eventpay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/merchant-details", paymentHandler.GetMerchantDetails)
		payments.POST("/charge", paymentHandler.Charge)
		payments.POST("/refund", paymentHandler.Refund)
		payments.POST("/form", paymentHandler.GetPaymentForm)
		payments.GET("/multi-checkout/:registrant_id", paymentHandler.CheckMultiCheckout)
	}
}
