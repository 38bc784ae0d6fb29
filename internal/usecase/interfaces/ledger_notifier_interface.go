package interfaces

import (
	"context"

	"eventpay/internal/domain/entities"
)

// ILedgerNotifier notifies the ledger/registration-status collaborator that
// a charge completed. Fire-and-forget: the payment flow logs a returned
// error but never fails the charge on it.

type ILedgerNotifier interface {
	PaymentCompleted(ctx context.Context, notice entities.LedgerNotice) error
}
