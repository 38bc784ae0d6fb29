package response

import (
	"time"

	"eventpay/internal/domain/entities"
)

// ChargeResponse is the normalized transaction detail returned for every
// charge, regardless of entry path.

type ChargeResponse struct {
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	RawStatus     string    `json:"raw_status"`
	Amount        float64   `json:"amount"`
	AuthCode      string    `json:"auth_code,omitempty"`
	AccountNumber string    `json:"account_number,omitempty"`
	AccountType   string    `json:"account_type,omitempty"`
	SubmitTime    time.Time `json:"submit_time,omitempty"`
}

func FromTransactionDetail(d entities.TransactionDetail) ChargeResponse {
	return ChargeResponse{
		TransactionID: d.TransactionID,
		Status:        string(d.Status),
		RawStatus:     d.RawStatus,
		Amount:        d.Amount,
		AuthCode:      d.AuthCode,
		AccountNumber: d.AccountNumber,
		AccountType:   d.AccountType,
		SubmitTime:    d.SubmitTime,
	}
}

type RefundResponse struct {
	RefTransID    string  `json:"ref_trans_id"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
}

func FromRefundResult(r entities.RefundResult) RefundResponse {
	return RefundResponse{
		RefTransID:    r.RefTransID,
		TransactionID: r.TransactionID,
		Amount:        r.Amount,
	}
}

type MerchantDetailsResponse struct {
	PublicClientKey string `json:"public_client_key"`
	MerchantName    string `json:"merchant_name,omitempty"`
	IsTestMode      bool   `json:"is_test_mode"`
}

func FromMerchantDetails(d entities.MerchantDetails) MerchantDetailsResponse {
	return MerchantDetailsResponse{
		PublicClientKey: d.PublicClientKey,
		MerchantName:    d.MerchantName,
		IsTestMode:      d.IsTestMode,
	}
}

type MultiCheckoutResponse struct {
	RegistrantID    int64   `json:"registrant_id"`
	Linked          bool    `json:"linked"`
	CoRegistrantIDs []int64 `json:"co_registrant_ids"`
}

func FromMultiCheckoutGroup(g entities.MultiCheckoutGroup) MultiCheckoutResponse {
	return MultiCheckoutResponse{
		RegistrantID:    g.RegistrantID,
		Linked:          g.Linked,
		CoRegistrantIDs: g.CoRegistrantIDs,
	}
}

type PaymentFormResponse struct {
	Token   string `json:"token"`
	PostURL string `json:"post_url"`
}

func FromHostedPaymentPage(p entities.HostedPaymentPage) PaymentFormResponse {
	return PaymentFormResponse{Token: p.Token, PostURL: p.PostURL}
}
