package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "eventpay/internal/adapter/http/dto/request"
	response "eventpay/internal/adapter/http/dto/response"
	"eventpay/internal/domain/entities"
	"eventpay/internal/usecase"
	"eventpay/pkg"

	"github.com/gin-gonic/gin"
)

// GatewayConfigHandler handles HTTP requests for merchant gateway
// configuration.

type GatewayConfigHandler struct {
	usecase usecase.IGatewayConfigUseCase
}

func NewGatewayConfigHandler(uc usecase.IGatewayConfigUseCase) *GatewayConfigHandler {
	return &GatewayConfigHandler{usecase: uc}
}

// GetGateways lists the merchant's enabled gateways.
func (h *GatewayConfigHandler) GetGateways(c *gin.Context) {
	merchantID, ok := merchantIDParam(c)
	if !ok {
		return
	}

	configs, err := h.usecase.GetGateways(c.Request.Context(), merchantID)
	if err != nil {
		log.Printf("[gateway][handler] list failed merchant_id=%d err=%v", merchantID, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGatewayConfigs(configs))
}

// UpdateGateway upserts one gateway type's configuration.
func (h *GatewayConfigHandler) UpdateGateway(c *gin.Context) {
	merchantID, ok := merchantIDParam(c)
	if !ok {
		return
	}
	gatewayType := entities.GatewayType(c.Param("type"))

	var req request.GatewayUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[gateway][handler] invalid payload merchant_id=%d err=%v", merchantID, err)
		appErr := pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cfg, err := h.usecase.UpdateGateway(c.Request.Context(), merchantID, gatewayType, req.Fields, req.IsDefault)
	if err != nil {
		log.Printf("[gateway][handler] update failed merchant_id=%d gateway_type=%s err=%v", merchantID, gatewayType, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGatewayConfig(cfg))
}

// DeleteGateway tombstones a gateway configuration and scrubs its
// relational credential columns.
func (h *GatewayConfigHandler) DeleteGateway(c *gin.Context) {
	merchantID, ok := merchantIDParam(c)
	if !ok {
		return
	}
	gatewayType := entities.GatewayType(c.Param("type"))

	if err := h.usecase.DeleteGateway(c.Request.Context(), merchantID, gatewayType); err != nil {
		log.Printf("[gateway][handler] delete failed merchant_id=%d gateway_type=%s err=%v", merchantID, gatewayType, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ResetPaymentProcessor clears the merchant's default gateway.
func (h *GatewayConfigHandler) ResetPaymentProcessor(c *gin.Context) {
	merchantID, ok := merchantIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.ResetPaymentProcessor(c.Request.Context(), merchantID); err != nil {
		log.Printf("[gateway][handler] reset failed merchant_id=%d err=%v", merchantID, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAvailableGateways lists every platform-supported gateway type.
func (h *GatewayConfigHandler) GetAvailableGateways(c *gin.Context) {
	lang := c.DefaultQuery("lang", "en")
	c.JSON(http.StatusOK, response.FromAvailableGateways(h.usecase.AvailableGateways(lang)))
}

func merchantIDParam(c *gin.Context) (int64, bool) {
	merchantID, err := strconv.ParseInt(c.Param("merchant_id"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid merchant id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return 0, false
	}
	return merchantID, true
}

func mapGatewayError(err error) *pkg.DomainError {
	if errors.Is(err, usecase.ErrUnknownGatewayType) {
		return pkg.NewDomainErrorSimple("CONFIGURATION_ERROR", "Unknown gateway type", http.StatusBadRequest)
	}
	return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
}
