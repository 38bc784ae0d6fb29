package usecase

import (
	"context"
	"errors"
	"log"

	"eventpay/internal/domain/entities"
	"eventpay/internal/usecase/interfaces"
)

var ErrCredentialsNotFound = errors.New("no credentials found")

// ICredentialResolver resolves processor credentials for the two subject
// types that can initiate payment operations.
//
// The exactly-one-row contract is load-bearing: zero rows and multiple rows
// are both "not found". Failing safe on ambiguity beats guessing which
// credential row would bill the charge.

type ICredentialResolver interface {
	ByMerchant(ctx context.Context, merchantID int64) (entities.Credentials, error)
	ByRegistrant(ctx context.Context, registrantID int64) (entities.Credentials, error)
}

type CredentialResolver struct {
	store interfaces.ICredentialStore
}

var _ ICredentialResolver = (*CredentialResolver)(nil)

func NewCredentialResolver(store interfaces.ICredentialStore) *CredentialResolver {
	return &CredentialResolver{store: store}
}

func (r *CredentialResolver) ByMerchant(ctx context.Context, merchantID int64) (entities.Credentials, error) {
	if merchantID <= 0 {
		return entities.Credentials{}, ErrCredentialsNotFound
	}
	rows, err := r.store.ListByMerchant(ctx, merchantID)
	if err != nil {
		return entities.Credentials{}, err
	}
	return exactlyOne(rows, "merchant", merchantID)
}

func (r *CredentialResolver) ByRegistrant(ctx context.Context, registrantID int64) (entities.Credentials, error) {
	if registrantID <= 0 {
		return entities.Credentials{}, ErrCredentialsNotFound
	}
	rows, err := r.store.ListByRegistrant(ctx, registrantID)
	if err != nil {
		return entities.Credentials{}, err
	}
	return exactlyOne(rows, "registrant", registrantID)
}

func exactlyOne(rows []entities.Credentials, subject string, id int64) (entities.Credentials, error) {
	if len(rows) != 1 {
		log.Printf("[credentials][resolver] %s_id=%d rows=%d: refusing ambiguous credentials", subject, id, len(rows))
		return entities.Credentials{}, ErrCredentialsNotFound
	}
	if rows[0].Login == "" {
		log.Printf("[credentials][resolver] %s_id=%d: blank login in credential row", subject, id)
		return entities.Credentials{}, ErrCredentialsNotFound
	}
	return rows[0], nil
}
