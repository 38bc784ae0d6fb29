package interfaces

import (
	"context"

	"eventpay/internal/domain/entities"
)

// ICredentialStore reads processor credentials from the relational store.
//
// Both lookups return every matching row: the resolver enforces the
// exactly-one contract, treating zero and multiple rows alike as not found.
// Implementations must hit the store directly on every call; credentials
// are never cached, so a config change is visible to the next charge.

type ICredentialStore interface {
	ListByMerchant(ctx context.Context, merchantID int64) ([]entities.Credentials, error)
	ListByRegistrant(ctx context.Context, registrantID int64) ([]entities.Credentials, error)
}
