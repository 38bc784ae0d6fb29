package interfaces

import (
	"context"

	"eventpay/internal/domain/entities"
)

// IRegistrantStore reads registrant linkage from the relational store.

type IRegistrantStore interface {
	GetMultiCheckoutGroup(ctx context.Context, registrantID int64) (entities.MultiCheckoutGroup, error)
}
