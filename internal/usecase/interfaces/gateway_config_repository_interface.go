package interfaces

import (
	"context"

	"eventpay/internal/domain/entities"
)

// IGatewayConfigRepository abstracts document-store persistence for
// GatewayConfig.
//
// Upsert is keyed by (merchant, type) and must be idempotent: concurrent
// writers of the same fields converge on one document. SoftDelete tombstones
// a document; nothing is ever removed.

type IGatewayConfigRepository interface {
	ListByMerchant(ctx context.Context, merchantID int64) ([]entities.GatewayConfig, error)
	Get(ctx context.Context, merchantID int64, gatewayType entities.GatewayType) (entities.GatewayConfig, error)
	Upsert(ctx context.Context, cfg entities.GatewayConfig) (entities.GatewayConfig, error)
	ClearDefaultFlags(ctx context.Context, merchantID int64) error
	SoftDelete(ctx context.Context, merchantID int64, gatewayType entities.GatewayType) error
}
