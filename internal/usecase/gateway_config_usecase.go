package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"eventpay/internal/domain/entities"
	"eventpay/internal/domain/gateways"
	"eventpay/internal/usecase/interfaces"
)

var (
	ErrUnknownGatewayType = errors.New("unknown gateway type")
)

// IGatewayConfigUseCase manages a merchant's gateway configuration across
// the two stores.
//
// The relational store is authoritative for "is this type configured"; the
// document store holds the convenience copies the rest of the platform
// reads. Divergence between the two is tolerated: reads synthesize the
// missing side and log a repair, they never block on fixing it.

type IGatewayConfigUseCase interface {
	GetGateways(ctx context.Context, merchantID int64) ([]entities.GatewayConfig, error)
	UpdateGateway(ctx context.Context, merchantID int64, gatewayType entities.GatewayType, fields map[string]string, isDefault bool) (entities.GatewayConfig, error)
	DeleteGateway(ctx context.Context, merchantID int64, gatewayType entities.GatewayType) error
	ResetPaymentProcessor(ctx context.Context, merchantID int64) error
	AvailableGateways(lang string) []entities.AvailableGateway
}

type GatewayConfigUseCase struct {
	profiles interfaces.IMerchantProfileStore
	docs     interfaces.IGatewayConfigRepository
}

var _ IGatewayConfigUseCase = (*GatewayConfigUseCase)(nil)

func NewGatewayConfigUseCase(profiles interfaces.IMerchantProfileStore, docs interfaces.IGatewayConfigRepository) *GatewayConfigUseCase {
	return &GatewayConfigUseCase{profiles: profiles, docs: docs}
}

// GetGateways returns the merchant's enabled gateways. Enabled state and
// secrets come from the relational profile; display copies come from the
// document store. A gateway the profile says is enabled but the document
// store is missing is synthesized into the response and logged for repair.
func (u *GatewayConfigUseCase) GetGateways(ctx context.Context, merchantID int64) ([]entities.GatewayConfig, error) {
	if merchantID <= 0 {
		return nil, nil
	}

	profile, err := u.profiles.GetProfile(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	docs, err := u.docs.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	byType := make(map[entities.GatewayType]entities.GatewayConfig, len(docs))
	for _, d := range docs {
		if d.Deleted {
			continue
		}
		byType[d.Type] = d
	}

	var out []entities.GatewayConfig
	for _, def := range gateways.All() {
		if !def.Enabled(profile.Values) {
			continue
		}

		doc, ok := byType[def.Type]
		if !ok {
			log.Printf("[gateway][store] repair merchant_id=%d gateway_type=%s: document missing for enabled gateway", merchantID, def.Type)
			doc = entities.GatewayConfig{
				MerchantID: merchantID,
				Type:       def.Type,
				Fields:     copyValues(def.Defaults),
			}
		}

		fields := copyValues(doc.Fields)
		for _, key := range def.FieldKeys {
			if v := profile.Values[key]; v != "" {
				fields[key] = v
			}
		}
		doc.Fields = fields
		doc.IsDefault = profile.DefaultGateway == def.Type
		out = append(out, doc)
	}
	return out, nil
}

// UpdateGateway upserts a gateway configuration into both stores.
//
// Default-flag ordering: clear every other document's flag and the
// relational default column first, then set column and flag for this type.
// The only transient window under concurrent writers is "no default",
// where charges fail closed; "two defaults" can never occur.
func (u *GatewayConfigUseCase) UpdateGateway(ctx context.Context, merchantID int64, gatewayType entities.GatewayType, fields map[string]string, isDefault bool) (entities.GatewayConfig, error) {
	if merchantID <= 0 {
		return entities.GatewayConfig{}, nil
	}
	def, ok := gateways.Lookup(gatewayType)
	if !ok {
		return entities.GatewayConfig{}, ErrUnknownGatewayType
	}
	log.Printf("[gateway][usecase] update start merchant_id=%d gateway_type=%s is_default=%t", merchantID, gatewayType, isDefault)

	known := make(map[string]string, len(def.FieldKeys))
	for _, key := range def.FieldKeys {
		if v, ok := fields[key]; ok {
			known[key] = v
		}
	}

	if len(known) > 0 {
		if err := u.profiles.UpdateGatewayFields(ctx, merchantID, known); err != nil {
			return entities.GatewayConfig{}, err
		}
	}

	existing, err := u.docs.Get(ctx, merchantID, gatewayType)
	if err != nil {
		return entities.GatewayConfig{}, err
	}

	if isDefault {
		if err := u.docs.ClearDefaultFlags(ctx, merchantID); err != nil {
			return entities.GatewayConfig{}, err
		}
		if err := u.profiles.ClearDefaultGateway(ctx, merchantID); err != nil {
			return entities.GatewayConfig{}, err
		}
		if err := u.profiles.SetDefaultGateway(ctx, merchantID, gatewayType); err != nil {
			return entities.GatewayConfig{}, err
		}
	}

	merged := copyValues(def.Defaults)
	for k, v := range existing.Fields {
		merged[k] = v
	}
	for k, v := range known {
		merged[k] = v
	}

	cfg := entities.GatewayConfig{
		MerchantID: merchantID,
		Type:       gatewayType,
		Fields:     merged,
		IsDefault:  isDefault || (!existing.Deleted && existing.IsDefault),
		Deleted:    false,
		UpdatedAt:  time.Now().UTC(),
	}
	saved, err := u.docs.Upsert(ctx, cfg)
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	log.Printf("[gateway][usecase] update success merchant_id=%d gateway_type=%s", merchantID, gatewayType)
	return saved, nil
}

// DeleteGateway tombstones the document and scrubs the relational copy so
// no stale secret remains in the system of record.
func (u *GatewayConfigUseCase) DeleteGateway(ctx context.Context, merchantID int64, gatewayType entities.GatewayType) error {
	if merchantID <= 0 {
		return nil
	}
	def, ok := gateways.Lookup(gatewayType)
	if !ok {
		return ErrUnknownGatewayType
	}
	log.Printf("[gateway][usecase] delete start merchant_id=%d gateway_type=%s", merchantID, gatewayType)

	existing, err := u.docs.Get(ctx, merchantID, gatewayType)
	if err != nil {
		return err
	}
	profile, err := u.profiles.GetProfile(ctx, merchantID)
	if err != nil {
		return err
	}
	wasDefault := existing.IsDefault || profile.DefaultGateway == gatewayType

	if err := u.docs.SoftDelete(ctx, merchantID, gatewayType); err != nil {
		return err
	}
	if wasDefault {
		if err := u.profiles.ClearDefaultGateway(ctx, merchantID); err != nil {
			return err
		}
	}
	if err := u.profiles.ClearGatewayFields(ctx, merchantID, def.FieldKeys); err != nil {
		return err
	}
	log.Printf("[gateway][usecase] delete success merchant_id=%d gateway_type=%s was_default=%t", merchantID, gatewayType, wasDefault)
	return nil
}

// ResetPaymentProcessor clears the merchant's default-gateway column only.
// Configured gateways stay configured; the merchant just has no default
// until one is chosen again.
func (u *GatewayConfigUseCase) ResetPaymentProcessor(ctx context.Context, merchantID int64) error {
	if merchantID <= 0 {
		return nil
	}
	log.Printf("[gateway][usecase] reset default merchant_id=%d", merchantID)
	return u.profiles.ClearDefaultGateway(ctx, merchantID)
}

// AvailableGateways lists every platform-supported gateway with localized
// labels and blank default fields, for merchants configuring from scratch.
func (u *GatewayConfigUseCase) AvailableGateways(lang string) []entities.AvailableGateway {
	defs := gateways.All()
	out := make([]entities.AvailableGateway, 0, len(defs))
	for _, def := range defs {
		out = append(out, entities.AvailableGateway{
			Type:        def.Type,
			DisplayName: def.DisplayName(lang),
			Fields:      copyValues(def.Defaults),
		})
	}
	return out
}

func copyValues(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
