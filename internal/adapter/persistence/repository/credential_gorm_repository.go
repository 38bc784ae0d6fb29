package repository

import (
	"context"
	"strconv"

	"eventpay/internal/domain/entities"
	"eventpay/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type credentialRow struct {
	AuthnetLogin          string
	AuthnetTransactionKey string
	AuthnetSandbox        string
}

// CredentialGormRepository reads processor credentials straight from the
// relational store on every call. No caching layer sits in front of it:
// serving a stale secret is worse than the extra read.

type CredentialGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICredentialStore = (*CredentialGormRepository)(nil)

func NewCredentialGormRepository(db *gorm.DB) *CredentialGormRepository {
	return &CredentialGormRepository{db: db}
}

func (r *CredentialGormRepository) ListByMerchant(ctx context.Context, merchantID int64) ([]entities.Credentials, error) {
	var rows []credentialRow
	err := r.db.WithContext(ctx).
		Table("merchant_payment_profiles").
		Select("authnet_login, authnet_transaction_key, authnet_sandbox").
		Where("merchant_id = ?", merchantID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCredentials(rows), nil
}

// ListByRegistrant resolves credentials through the registrant -> merchant
// join in a single query.
func (r *CredentialGormRepository) ListByRegistrant(ctx context.Context, registrantID int64) ([]entities.Credentials, error) {
	var rows []credentialRow
	err := r.db.WithContext(ctx).
		Table("merchant_payment_profiles").
		Select("merchant_payment_profiles.authnet_login, merchant_payment_profiles.authnet_transaction_key, merchant_payment_profiles.authnet_sandbox").
		Joins("JOIN registrants ON registrants.merchant_id = merchant_payment_profiles.merchant_id").
		Where("registrants.registrant_id = ?", registrantID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCredentials(rows), nil
}

func toCredentials(rows []credentialRow) []entities.Credentials {
	out := make([]entities.Credentials, 0, len(rows))
	for _, row := range rows {
		sandbox, err := strconv.ParseBool(row.AuthnetSandbox)
		if err != nil {
			// Unset or garbage means sandbox: never aim a misconfigured
			// merchant at the production endpoint.
			sandbox = true
		}
		out = append(out, entities.Credentials{
			Login:          row.AuthnetLogin,
			TransactionKey: row.AuthnetTransactionKey,
			Sandbox:        sandbox,
		})
	}
	return out
}
