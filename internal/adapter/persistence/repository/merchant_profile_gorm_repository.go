package repository

import (
	"context"
	"time"

	"eventpay/internal/domain/entities"
	"eventpay/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// merchantPaymentProfileRow is the relational system of record for a
// merchant's gateway configuration: one row per merchant, one column per
// registry field key plus the single default-gateway column.
//
// Column names must stay equal to the registry field keys: delete scrubbing
// and field updates address columns through those keys.

type merchantPaymentProfileRow struct {
	MerchantID     int64  `gorm:"column:merchant_id;primaryKey"`
	DefaultGateway string `gorm:"column:default_gateway"`

	AuthnetLogin          string `gorm:"column:authnet_login"`
	AuthnetTransactionKey string `gorm:"column:authnet_transaction_key"`
	AuthnetSandbox        string `gorm:"column:authnet_sandbox"`

	StripeUserID    string `gorm:"column:stripe_user_id"`
	StripeSecretKey string `gorm:"column:stripe_secret_key"`

	PaypalExpressEmail string `gorm:"column:paypal_express_email"`

	PaypalPayflowVendor   string `gorm:"column:paypal_payflow_vendor"`
	PaypalPayflowUser     string `gorm:"column:paypal_payflow_user"`
	PaypalPayflowPassword string `gorm:"column:paypal_payflow_password"`
	PaypalPayflowPartner  string `gorm:"column:paypal_payflow_partner"`

	PayzangAccountID string `gorm:"column:payzang_account_id"`
	PayzangAPIKey    string `gorm:"column:payzang_api_key"`

	WorldpayMerchantID   string `gorm:"column:worldpay_merchant_id"`
	WorldpaySecureNetKey string `gorm:"column:worldpay_secure_net_key"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (merchantPaymentProfileRow) TableName() string { return "merchant_payment_profiles" }

func (r merchantPaymentProfileRow) values() map[string]string {
	return map[string]string{
		"authnet_login":           r.AuthnetLogin,
		"authnet_transaction_key": r.AuthnetTransactionKey,
		"authnet_sandbox":         r.AuthnetSandbox,
		"stripe_user_id":          r.StripeUserID,
		"stripe_secret_key":       r.StripeSecretKey,
		"paypal_express_email":    r.PaypalExpressEmail,
		"paypal_payflow_vendor":   r.PaypalPayflowVendor,
		"paypal_payflow_user":     r.PaypalPayflowUser,
		"paypal_payflow_password": r.PaypalPayflowPassword,
		"paypal_payflow_partner":  r.PaypalPayflowPartner,
		"payzang_account_id":      r.PayzangAccountID,
		"payzang_api_key":         r.PayzangAPIKey,
		"worldpay_merchant_id":    r.WorldpayMerchantID,
		"worldpay_secure_net_key": r.WorldpaySecureNetKey,
	}
}

// MerchantProfileGormRepository implements the relational store port.

type MerchantProfileGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IMerchantProfileStore = (*MerchantProfileGormRepository)(nil)

func NewMerchantProfileGormRepository(db *gorm.DB) *MerchantProfileGormRepository {
	return &MerchantProfileGormRepository{db: db}
}

// GetProfile reads the merchant's row, creating a blank one on first read.
func (r *MerchantProfileGormRepository) GetProfile(ctx context.Context, merchantID int64) (entities.MerchantProfile, error) {
	row := merchantPaymentProfileRow{MerchantID: merchantID}
	err := r.db.WithContext(ctx).
		Where(merchantPaymentProfileRow{MerchantID: merchantID}).
		FirstOrCreate(&row).Error
	if err != nil {
		return entities.MerchantProfile{}, err
	}
	return entities.MerchantProfile{
		MerchantID:     row.MerchantID,
		DefaultGateway: entities.GatewayType(row.DefaultGateway),
		Values:         row.values(),
	}, nil
}

func (r *MerchantProfileGormRepository) SetDefaultGateway(ctx context.Context, merchantID int64, gatewayType entities.GatewayType) error {
	return r.updateColumns(ctx, merchantID, map[string]interface{}{"default_gateway": string(gatewayType)})
}

func (r *MerchantProfileGormRepository) ClearDefaultGateway(ctx context.Context, merchantID int64) error {
	return r.updateColumns(ctx, merchantID, map[string]interface{}{"default_gateway": ""})
}

// UpdateGatewayFields writes registry-keyed field values into their columns.
// Keys are pre-validated against the registry by the caller.
func (r *MerchantProfileGormRepository) UpdateGatewayFields(ctx context.Context, merchantID int64, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	cols := make(map[string]interface{}, len(values))
	for key, v := range values {
		cols[key] = v
	}
	return r.updateColumns(ctx, merchantID, cols)
}

// ClearGatewayFields zeroes the given columns so no stale secret survives a
// gateway delete.
func (r *MerchantProfileGormRepository) ClearGatewayFields(ctx context.Context, merchantID int64, fieldKeys []string) error {
	if len(fieldKeys) == 0 {
		return nil
	}
	cols := make(map[string]interface{}, len(fieldKeys))
	for _, key := range fieldKeys {
		cols[key] = ""
	}
	return r.updateColumns(ctx, merchantID, cols)
}

func (r *MerchantProfileGormRepository) updateColumns(ctx context.Context, merchantID int64, cols map[string]interface{}) error {
	if err := r.ensureRow(ctx, merchantID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&merchantPaymentProfileRow{}).
		Where("merchant_id = ?", merchantID).
		Updates(cols).Error
}

func (r *MerchantProfileGormRepository) ensureRow(ctx context.Context, merchantID int64) error {
	row := merchantPaymentProfileRow{MerchantID: merchantID}
	return r.db.WithContext(ctx).
		Where(merchantPaymentProfileRow{MerchantID: merchantID}).
		FirstOrCreate(&row).Error
}
