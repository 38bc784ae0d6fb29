package response

import (
	"time"

	"eventpay/internal/domain/entities"
)

type GatewayConfigResponse struct {
	MerchantID  int64             `json:"merchant_id"`
	GatewayType string            `json:"gateway_type"`
	Fields      map[string]string `json:"fields"`
	IsDefault   bool              `json:"is_default"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func FromGatewayConfig(cfg entities.GatewayConfig) GatewayConfigResponse {
	return GatewayConfigResponse{
		MerchantID:  cfg.MerchantID,
		GatewayType: string(cfg.Type),
		Fields:      cfg.Fields,
		IsDefault:   cfg.IsDefault,
		UpdatedAt:   cfg.UpdatedAt,
	}
}

func FromGatewayConfigs(configs []entities.GatewayConfig) []GatewayConfigResponse {
	out := make([]GatewayConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		out = append(out, FromGatewayConfig(cfg))
	}
	return out
}

type AvailableGatewayResponse struct {
	GatewayType string            `json:"gateway_type"`
	DisplayName string            `json:"display_name"`
	Fields      map[string]string `json:"fields"`
}

func FromAvailableGateways(gws []entities.AvailableGateway) []AvailableGatewayResponse {
	out := make([]AvailableGatewayResponse, 0, len(gws))
	for _, gw := range gws {
		out = append(out, AvailableGatewayResponse{
			GatewayType: string(gw.Type),
			DisplayName: gw.DisplayName,
			Fields:      gw.Fields,
		})
	}
	return out
}
