package request

// ChargeRequest is the payload for the pay-by-credit-card route. The
// opaque fields carry the client-side token from the processor's hosted
// fields; raw card data never appears in a request.

type ChargeRequest struct {
	MerchantID         int64   `json:"merchant_id"`
	RegistrantID       int64   `json:"registrant_id"`
	Amount             float64 `json:"amount"`
	OpaqueDescriptor   string  `json:"opaque_descriptor"`
	OpaqueValue        string  `json:"opaque_value"`
	OrderRef           string  `json:"order_ref"`
	InvoiceDescription string  `json:"invoice_description"`
	MultiCheckout      bool    `json:"multi_checkout"`
}

// RefundRequest is the payload for the refund route. TransactionID may be
// prefixed ("txn:9001"); normalization happens in the use case.

type RefundRequest struct {
	MerchantID    int64   `json:"merchant_id"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
}

// PaymentFormRequest configures a hosted payment page. Nil toggle pointers
// keep the merchant defaults.

type PaymentFormRequest struct {
	MerchantID         int64   `json:"merchant_id"`
	Amount             float64 `json:"amount"`
	OrderRef           string  `json:"order_ref"`
	InvoiceDescription string  `json:"invoice_description"`
	ShowBillingAddress *bool   `json:"show_billing_address,omitempty"`
	RequireEmail       *bool   `json:"require_email,omitempty"`
	RequireCardCode    *bool   `json:"require_card_code,omitempty"`
	CommunicatorURL    string  `json:"communicator_url,omitempty"`
	ReturnURL          string  `json:"return_url,omitempty"`
	ReturnLabel        string  `json:"return_label,omitempty"`
}
