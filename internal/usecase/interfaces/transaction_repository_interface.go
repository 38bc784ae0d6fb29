package interfaces

import (
	"context"

	"eventpay/internal/domain/entities"
)

// ITransactionRepository abstracts document-store persistence for
// per-charge Transaction records.

type ITransactionRepository interface {
	Create(ctx context.Context, tx entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, transactionID string) (entities.Transaction, error)
	UpdateStatus(ctx context.Context, transactionID string, status entities.TransactionStatus, refTransID string) (entities.Transaction, error)
	ListByRegistrant(ctx context.Context, registrantID int64) ([]entities.Transaction, error)
}
