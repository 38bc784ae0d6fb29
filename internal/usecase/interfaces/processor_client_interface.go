package interfaces

import (
	"context"

	"eventpay/internal/domain/entities"
)

// IProcessorClient abstracts the external payment processor
// (Authorize.Net-style JSON API).
//
// Contract notes:
//   - AuthorizeAndCapture re-fetches transaction detail when the processor
//     returns a nonzero transaction id, so callers always get the
//     normalized TransactionDetail shape. A zero id yields a
//     *entities.ProcessorDecline carrying the raw response verbatim.
//   - Refund checks transaction detail first and returns
//     entities.ErrVoidRequired when the charge has not settled; no refund
//     call is made in that case.
//   - No operation is retried internally. Retrying a capture risks a
//     double charge; retries, if any, belong to the caller and only for
//     reads.
//   - Transport/timeout/shape failures surface as *entities.ProcessorFault.

type IProcessorClient interface {
	AuthorizeAndCapture(ctx context.Context, creds entities.Credentials, req entities.ChargeRequest) (entities.TransactionDetail, error)
	GetTransactionDetail(ctx context.Context, creds entities.Credentials, transactionID string) (entities.TransactionDetail, error)
	Refund(ctx context.Context, creds entities.Credentials, transactionID string, amount float64) (entities.RefundResult, error)
	GetHostedPaymentPage(ctx context.Context, creds entities.Credentials, req entities.PaymentFormRequest) (entities.HostedPaymentPage, error)
	GetMerchantDetails(ctx context.Context, creds entities.Credentials) (entities.MerchantDetails, error)
}
