package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"eventpay/internal/domain/entities"
	"eventpay/internal/usecase/interfaces"
)

var (
	ErrInvalidSubjectType   = errors.New("invalid subject type")
	ErrInvalidMerchantID    = errors.New("invalid merchant id")
	ErrInvalidRegistrantID  = errors.New("invalid registrant id")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrMissingPaymentToken  = errors.New("missing payment token")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
)

// Subject types accepted by GetMerchantDetails.
const (
	SubjectMerchant   = "merchant"
	SubjectRegistrant = "registrant"
)

// The processor caps the order reference field at 20 characters.
const maxOrderRefLen = 20

// ChargeInput is the payByCreditCard request.
//
// OpaqueDescriptor/OpaqueValue carry the client-side payment token; raw
// card data never reaches this service. MultiCheckout marks a charge that
// covers several linked registrants' fees; the linkage is read from the
// relational store, never trusted from the client.

type ChargeInput struct {
	MerchantID         int64
	RegistrantID       int64
	Amount             float64
	OpaqueDescriptor   string
	OpaqueValue        string
	OrderRef           string
	InvoiceDescription string
	MultiCheckout      bool
}

// ChargeOutcome pairs the normalized processor detail with the record this
// service persisted for the attempt.

type ChargeOutcome struct {
	Detail entities.TransactionDetail
	Record entities.Transaction
}

// RefundInput is the refundTransaction request. TransactionID may arrive
// prefixed ("txn:9001"); the last colon-delimited segment is authoritative.

type RefundInput struct {
	MerchantID    int64
	TransactionID string
	Amount        float64
}

// RefundOutcome reports either a submitted refund or that the charge has
// not settled and must be voided instead. VoidRequired is a distinct
// outcome, not an error: the caller chooses the remedial action.

type RefundOutcome struct {
	VoidRequired bool
	Result       entities.RefundResult
}

// PaymentFormInput merges the merchant's display-option defaults with
// per-request overrides (nil pointer = keep the default).

type PaymentFormInput struct {
	MerchantID         int64
	Amount             float64
	OrderRef           string
	InvoiceDescription string
	ShowBillingAddress *bool
	RequireEmail       *bool
	RequireCardCode    *bool
	CommunicatorURL    string
	ReturnURL          string
	ReturnLabel        string
}

// IPaymentUseCase drives the credit-card lifecycle against the processor.

type IPaymentUseCase interface {
	GetMerchantDetails(ctx context.Context, subjectType string, subjectID int64) (entities.MerchantDetails, error)
	PayByCreditCard(ctx context.Context, in ChargeInput) (ChargeOutcome, error)
	RefundTransaction(ctx context.Context, in RefundInput) (RefundOutcome, error)
	CheckMultiCheckout(ctx context.Context, registrantID int64) (entities.MultiCheckoutGroup, error)
	GetPaymentForm(ctx context.Context, in PaymentFormInput) (entities.HostedPaymentPage, error)
}

type PaymentUseCase struct {
	resolver     ICredentialResolver
	processor    interfaces.IProcessorClient
	transactions interfaces.ITransactionRepository
	registrants  interfaces.IRegistrantStore
	ledger       interfaces.ILedgerNotifier
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	resolver ICredentialResolver,
	processor interfaces.IProcessorClient,
	transactions interfaces.ITransactionRepository,
	registrants interfaces.IRegistrantStore,
	ledger interfaces.ILedgerNotifier,
) *PaymentUseCase {
	return &PaymentUseCase{
		resolver:     resolver,
		processor:    processor,
		transactions: transactions,
		registrants:  registrants,
		ledger:       ledger,
	}
}

// GetMerchantDetails resolves credentials for the subject and fetches the
// processor's public merchant record. Credential resolution failing means
// zero processor calls are made.
func (u *PaymentUseCase) GetMerchantDetails(ctx context.Context, subjectType string, subjectID int64) (entities.MerchantDetails, error) {
	var (
		creds entities.Credentials
		err   error
	)
	switch subjectType {
	case SubjectMerchant:
		creds, err = u.resolver.ByMerchant(ctx, subjectID)
	case SubjectRegistrant:
		creds, err = u.resolver.ByRegistrant(ctx, subjectID)
	default:
		return entities.MerchantDetails{}, ErrInvalidSubjectType
	}
	if err != nil {
		return entities.MerchantDetails{}, err
	}

	details, err := u.processor.GetMerchantDetails(ctx, creds)
	if err != nil {
		return entities.MerchantDetails{}, err
	}
	details.IsTestMode = creds.Sandbox
	return details, nil
}

// PayByCreditCard charges the registrant's card and persists the attempt.
//
// The ledger collaborator is notified only for non-multi-checkout charges;
// a multi-checkout charge is reconciled per co-registrant downstream. The
// returned detail is always the processor's re-resolved transaction detail,
// never the synchronous charge payload.
func (u *PaymentUseCase) PayByCreditCard(ctx context.Context, in ChargeInput) (ChargeOutcome, error) {
	if in.MerchantID <= 0 {
		return ChargeOutcome{}, ErrInvalidMerchantID
	}
	if in.Amount <= 0 {
		return ChargeOutcome{}, ErrInvalidAmount
	}
	if strings.TrimSpace(in.OpaqueValue) == "" {
		return ChargeOutcome{}, ErrMissingPaymentToken
	}
	log.Printf("[payment][usecase] charge start merchant_id=%d registrant_id=%d amount=%.2f multi_checkout=%t", in.MerchantID, in.RegistrantID, in.Amount, in.MultiCheckout)

	creds, err := u.resolver.ByMerchant(ctx, in.MerchantID)
	if err != nil {
		return ChargeOutcome{}, err
	}

	var coRegistrants []int64
	if in.MultiCheckout && in.RegistrantID > 0 {
		group, err := u.registrants.GetMultiCheckoutGroup(ctx, in.RegistrantID)
		if err != nil {
			return ChargeOutcome{}, err
		}
		coRegistrants = group.CoRegistrantIDs
	}

	req := entities.ChargeRequest{
		Amount:             in.Amount,
		OpaqueDescriptor:   in.OpaqueDescriptor,
		OpaqueValue:        in.OpaqueValue,
		OrderRef:           boundedOrderRef(in.OrderRef, time.Now().UTC()),
		InvoiceDescription: in.InvoiceDescription,
	}

	detail, err := u.processor.AuthorizeAndCapture(ctx, creds, req)
	if err != nil {
		u.recordFailedCharge(ctx, in, coRegistrants, err)
		return ChargeOutcome{}, err
	}

	now := time.Now().UTC()
	record := entities.Transaction{
		TransactionID:   detail.TransactionID,
		MerchantID:      in.MerchantID,
		RegistrantID:    in.RegistrantID,
		Amount:          detail.Amount,
		Status:          detail.Status,
		CoRegistrantIDs: coRegistrants,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	record, err = u.transactions.Create(ctx, record)
	if err != nil {
		// The processor already captured the funds; surface the detail and
		// log the persistence failure instead of pretending the charge failed.
		log.Printf("[payment][usecase] transaction record create failed transaction_id=%s err=%v", detail.TransactionID, err)
	}

	if !in.MultiCheckout {
		notice := entities.LedgerNotice{
			MerchantID:    in.MerchantID,
			RegistrantID:  in.RegistrantID,
			TransactionID: detail.TransactionID,
			Amount:        detail.Amount,
			OrderRef:      req.OrderRef,
		}
		if err := u.ledger.PaymentCompleted(ctx, notice); err != nil {
			log.Printf("[payment][usecase] ledger notify failed transaction_id=%s err=%v", detail.TransactionID, err)
		}
	}

	log.Printf("[payment][usecase] charge success merchant_id=%d transaction_id=%s status=%s", in.MerchantID, detail.TransactionID, detail.Status)
	return ChargeOutcome{Detail: detail, Record: record}, nil
}

// RefundTransaction submits a refund for a settled charge. A charge still
// pending settlement comes back as VoidRequired with no refund submitted.
func (u *PaymentUseCase) RefundTransaction(ctx context.Context, in RefundInput) (RefundOutcome, error) {
	if in.MerchantID <= 0 {
		return RefundOutcome{}, ErrInvalidMerchantID
	}
	transactionID := normalizeTransactionID(in.TransactionID)
	if transactionID == "" {
		return RefundOutcome{}, ErrInvalidTransactionID
	}
	if in.Amount <= 0 {
		return RefundOutcome{}, ErrInvalidAmount
	}
	log.Printf("[payment][usecase] refund start merchant_id=%d transaction_id=%s amount=%.2f", in.MerchantID, transactionID, in.Amount)

	creds, err := u.resolver.ByMerchant(ctx, in.MerchantID)
	if err != nil {
		return RefundOutcome{}, err
	}

	result, err := u.processor.Refund(ctx, creds, transactionID, in.Amount)
	if errors.Is(err, entities.ErrVoidRequired) {
		log.Printf("[payment][usecase] refund blocked transaction_id=%s: not settled, void required", transactionID)
		return RefundOutcome{VoidRequired: true}, nil
	}
	if err != nil {
		return RefundOutcome{}, err
	}

	if _, err := u.transactions.UpdateStatus(ctx, transactionID, entities.TransactionStatusRefunded, result.RefTransID); err != nil {
		// The charge may predate this service's records.
		log.Printf("[payment][usecase] refund status update skipped transaction_id=%s err=%v", transactionID, err)
	}

	log.Printf("[payment][usecase] refund success transaction_id=%s ref_trans_id=%s", transactionID, result.RefTransID)
	return RefundOutcome{Result: result}, nil
}

// CheckMultiCheckout reports whether the registrant belongs to a linked
// group and which co-registrants share it. Pure read.
func (u *PaymentUseCase) CheckMultiCheckout(ctx context.Context, registrantID int64) (entities.MultiCheckoutGroup, error) {
	if registrantID <= 0 {
		return entities.MultiCheckoutGroup{}, ErrInvalidRegistrantID
	}
	return u.registrants.GetMultiCheckoutGroup(ctx, registrantID)
}

// GetPaymentForm builds the hosted payment page config from the merchant's
// display-option defaults merged with request overrides.
func (u *PaymentUseCase) GetPaymentForm(ctx context.Context, in PaymentFormInput) (entities.HostedPaymentPage, error) {
	if in.MerchantID <= 0 {
		return entities.HostedPaymentPage{}, ErrInvalidMerchantID
	}
	if in.Amount <= 0 {
		return entities.HostedPaymentPage{}, ErrInvalidAmount
	}

	creds, err := u.resolver.ByMerchant(ctx, in.MerchantID)
	if err != nil {
		return entities.HostedPaymentPage{}, err
	}

	opts := entities.PaymentFormOptions{
		ShowBillingAddress: true,
		RequireEmail:       true,
		RequireCardCode:    true,
		ReturnLabel:        "Continue",
	}
	if in.ShowBillingAddress != nil {
		opts.ShowBillingAddress = *in.ShowBillingAddress
	}
	if in.RequireEmail != nil {
		opts.RequireEmail = *in.RequireEmail
	}
	if in.RequireCardCode != nil {
		opts.RequireCardCode = *in.RequireCardCode
	}
	if in.CommunicatorURL != "" {
		opts.CommunicatorURL = in.CommunicatorURL
	}
	if in.ReturnURL != "" {
		opts.ReturnURL = in.ReturnURL
	}
	if in.ReturnLabel != "" {
		opts.ReturnLabel = in.ReturnLabel
	}

	req := entities.PaymentFormRequest{
		Amount:             in.Amount,
		OrderRef:           boundedOrderRef(in.OrderRef, time.Now().UTC()),
		InvoiceDescription: in.InvoiceDescription,
		Options:            opts,
	}
	return u.processor.GetHostedPaymentPage(ctx, creds, req)
}

func (u *PaymentUseCase) recordFailedCharge(ctx context.Context, in ChargeInput, coRegistrants []int64, cause error) {
	status := entities.TransactionStatusError
	transactionID := "fault:" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)

	var decline *entities.ProcessorDecline
	if errors.As(cause, &decline) {
		status = entities.TransactionStatusDeclined
		transactionID = "decline:" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	}

	now := time.Now().UTC()
	record := entities.Transaction{
		TransactionID:   transactionID,
		MerchantID:      in.MerchantID,
		RegistrantID:    in.RegistrantID,
		Amount:          in.Amount,
		Status:          status,
		CoRegistrantIDs: coRegistrants,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if _, err := u.transactions.Create(ctx, record); err != nil {
		log.Printf("[payment][usecase] failed-charge record create failed merchant_id=%d err=%v", in.MerchantID, err)
	}
}

// normalizeTransactionID strips any "prefix:" segments; the last
// colon-delimited segment is the processor transaction id.
func normalizeTransactionID(id string) string {
	id = strings.TrimSpace(id)
	if i := strings.LastIndex(id, ":"); i >= 0 {
		id = id[i+1:]
	}
	return strings.TrimSpace(id)
}

// boundedOrderRef appends the submission timestamp and keeps the result
// within the processor's reference length cap.
func boundedOrderRef(orderRef string, submittedAt time.Time) string {
	ts := strconv.FormatInt(submittedAt.Unix(), 10)
	ref := strings.TrimSpace(orderRef)
	if ref == "" {
		return ts
	}
	room := maxOrderRefLen - len(ts) - 1
	if room < 0 {
		return ts
	}
	if len(ref) > room {
		ref = ref[:room]
	}
	return ref + "-" + ts
}
