package interfaces

import (
	"context"

	"eventpay/internal/domain/entities"
)

// IMerchantProfileStore abstracts the relational system of record for a
// merchant's gateway configuration: the single default-gateway column plus
// the per-type credential columns.
//
// GetProfile creates a blank row on first read, so callers never see a
// missing profile. Field values are keyed by registry field key, which is
// also the column name.

type IMerchantProfileStore interface {
	GetProfile(ctx context.Context, merchantID int64) (entities.MerchantProfile, error)
	SetDefaultGateway(ctx context.Context, merchantID int64, gatewayType entities.GatewayType) error
	ClearDefaultGateway(ctx context.Context, merchantID int64) error
	UpdateGatewayFields(ctx context.Context, merchantID int64, values map[string]string) error
	ClearGatewayFields(ctx context.Context, merchantID int64, fieldKeys []string) error
}
