package entities

import "time"

// TransactionStatus is the lifecycle state of a charge attempt.
//
// capturedPendingSettlement matches the processor's wording on purpose: it
// is the one state where a refund must be rejected in favor of a void.

type TransactionStatus string

const (
	TransactionStatusPending                   TransactionStatus = "pending"
	TransactionStatusCaptured                  TransactionStatus = "captured"
	TransactionStatusCapturedPendingSettlement TransactionStatus = "capturedPendingSettlement"
	TransactionStatusDeclined                  TransactionStatus = "declined"
	TransactionStatusError                     TransactionStatus = "error"
	TransactionStatusRefunded                  TransactionStatus = "refunded"
	TransactionStatusVoided                    TransactionStatus = "voided"
)

// Transaction is the per-charge record persisted by this service.
//
// Storage model (DynamoDB, transactions table):
//   - PK: transaction_id (the processor's id, string)
//   - GSI1 (registrant_id-index): registrant_id
//
// A record is created per charge attempt and moves to a terminal state; it
// is never reused. CoRegistrantIDs carries the multi-checkout linkage so
// status updates can fan out to every linked registrant downstream.

type Transaction struct {
	TransactionID   string            `json:"transaction_id"`
	MerchantID      int64             `json:"merchant_id"`
	RegistrantID    int64             `json:"registrant_id"`
	Amount          float64           `json:"amount"`
	Status          TransactionStatus `json:"status"`
	RefTransID      string            `json:"ref_trans_id,omitempty"`
	CoRegistrantIDs []int64           `json:"co_registrant_ids,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// TransactionDetail is the normalized shape of the processor's
// get-transaction-detail response. Every charge entry path returns this
// instead of the synchronous charge payload, so callers see one shape.

type TransactionDetail struct {
	TransactionID  string            `json:"transaction_id"`
	Status         TransactionStatus `json:"status"`
	RawStatus      string            `json:"raw_status"`
	ResponseCode   int               `json:"response_code"`
	AuthCode       string            `json:"auth_code,omitempty"`
	Amount         float64           `json:"amount"`
	SettleAmount   float64           `json:"settle_amount,omitempty"`
	AccountNumber  string            `json:"account_number,omitempty"`
	AccountType    string            `json:"account_type,omitempty"`
	ExpirationDate string            `json:"expiration_date,omitempty"`
	SubmitTime     time.Time         `json:"submit_time,omitempty"`
}

// LedgerNotice tells the ledger/registration-status collaborator that a
// charge completed. Sent fire-and-forget after successful non-multi-checkout
// charges only.

type LedgerNotice struct {
	MerchantID    int64   `json:"merchant_id"`
	RegistrantID  int64   `json:"registrant_id"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	OrderRef      string  `json:"order_ref,omitempty"`
}

// RefundResult reports a submitted refund.

type RefundResult struct {
	RefTransID    string  `json:"ref_trans_id"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	RawStatus     string  `json:"raw_status,omitempty"`
}
