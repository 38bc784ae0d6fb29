package entities

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrVoidRequired is returned when a refund is attempted against a charge
// that has not settled yet. The processor would reject the refund anyway;
// short-circuiting here saves the round trip and tells the caller the
// correct remedial action is a void.
var ErrVoidRequired = errors.New("void required: transaction has not settled")

// ProcessorDecline is a business decline from the processor. The vendor's
// code/text and raw payload are passed through unmodified so the caller can
// show the vendor's reason; it is never retried.

type ProcessorDecline struct {
	Code string
	Text string
	Raw  json.RawMessage
}

func (e *ProcessorDecline) Error() string {
	return fmt.Sprintf("processor declined: code=%s text=%s", e.Code, e.Text)
}

// ProcessorFault is a transport-level failure (timeout, connection error,
// unexpected response shape). Distinct from ProcessorDecline so callers can
// alert on faults and merely display declines. CorrelationID appears in
// logs and in the client-facing payload.

type ProcessorFault struct {
	CorrelationID string
	Err           error
}

func (e *ProcessorFault) Error() string {
	return fmt.Sprintf("processor fault [%s]: %v", e.CorrelationID, e.Err)
}

func (e *ProcessorFault) Unwrap() error { return e.Err }

// ChargeRequest is the processor-facing authorize+capture input. The card
// never appears here: OpaqueDescriptor/OpaqueValue carry the client-side
// token produced by the processor's hosted fields.

type ChargeRequest struct {
	Amount             float64
	OpaqueDescriptor   string
	OpaqueValue        string
	OrderRef           string
	InvoiceDescription string
}

// MerchantDetails is the processor's public merchant record, used by the
// client-side tokenizer.

type MerchantDetails struct {
	PublicClientKey string `json:"public_client_key"`
	MerchantName    string `json:"merchant_name,omitempty"`
	IsTestMode      bool   `json:"is_test_mode"`
}

// PaymentFormOptions are the per-merchant display toggles for the hosted
// payment page.

type PaymentFormOptions struct {
	ShowBillingAddress bool   `json:"show_billing_address"`
	RequireEmail       bool   `json:"require_email"`
	RequireCardCode    bool   `json:"require_card_code"`
	CommunicatorURL    string `json:"communicator_url,omitempty"`
	ReturnURL          string `json:"return_url,omitempty"`
	ReturnLabel        string `json:"return_label,omitempty"`
}

// PaymentFormRequest assembles everything the hosted payment page needs.

type PaymentFormRequest struct {
	Amount             float64
	OrderRef           string
	InvoiceDescription string
	Options            PaymentFormOptions
}

// HostedPaymentPage is the token handed back to the browser plus the form
// post target for the selected (sandbox or production) environment.

type HostedPaymentPage struct {
	Token   string `json:"token"`
	PostURL string `json:"post_url"`
}
