package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"eventpay/internal/domain/entities"
	"eventpay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	defaultSandboxEndpoint    = "https://apitest.authorize.net/xml/v1/request.api"
	defaultProductionEndpoint = "https://api.authorize.net/xml/v1/request.api"

	sandboxPaymentFormURL    = "https://test.authorize.net/payment/payment"
	productionPaymentFormURL = "https://accept.authorize.net/payment/payment"

	// Seconds within which the processor rejects an identical resubmission.
	// Guards refunds against client-side double-submits.
	refundDuplicateWindow = "10"

	defaultRequestTimeout = 30 * time.Second
)

// utf8BOM prefixes every response body from the processor.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// AuthorizeNetClient drives the processor's JSON API.
//
// One client serves every merchant: credentials arrive per call and select
// the sandbox or production endpoint. Nothing here retries: a retried
// capture risks a double charge, so retries (of reads only) belong to the
// caller.

type AuthorizeNetClient struct {
	httpClient         *http.Client
	sandboxEndpoint    string
	productionEndpoint string
}

var _ interfaces.IProcessorClient = (*AuthorizeNetClient)(nil)

func NewAuthorizeNetClient() *AuthorizeNetClient {
	return &AuthorizeNetClient{
		httpClient:         &http.Client{Timeout: defaultRequestTimeout},
		sandboxEndpoint:    getenvDefault("AUTHNET_SANDBOX_ENDPOINT", defaultSandboxEndpoint),
		productionEndpoint: getenvDefault("AUTHNET_ENDPOINT", defaultProductionEndpoint),
	}
}

/* ---------- wire types ---------- */

type merchantAuthentication struct {
	Name           string `json:"name"`
	TransactionKey string `json:"transactionKey"`
}

type opaqueData struct {
	DataDescriptor string `json:"dataDescriptor"`
	DataValue      string `json:"dataValue"`
}

// creditCardEcho is the masked last-4/expiry echo the refund API requires
// in place of the original opaque token.
type creditCardEcho struct {
	CardNumber     string `json:"cardNumber"`
	ExpirationDate string `json:"expirationDate"`
}

type paymentElement struct {
	OpaqueData *opaqueData     `json:"opaqueData,omitempty"`
	CreditCard *creditCardEcho `json:"creditCard,omitempty"`
}

type orderElement struct {
	InvoiceNumber string `json:"invoiceNumber,omitempty"`
	Description   string `json:"description,omitempty"`
}

type transactionSetting struct {
	SettingName  string `json:"settingName"`
	SettingValue string `json:"settingValue"`
}

type transactionSettings struct {
	Setting []transactionSetting `json:"setting"`
}

type transactionRequest struct {
	TransactionType     string               `json:"transactionType"`
	Amount              string               `json:"amount,omitempty"`
	Payment             *paymentElement      `json:"payment,omitempty"`
	RefTransID          string               `json:"refTransId,omitempty"`
	Order               *orderElement        `json:"order,omitempty"`
	TransactionSettings *transactionSettings `json:"transactionSettings,omitempty"`
}

type createTransactionRequest struct {
	MerchantAuthentication merchantAuthentication `json:"merchantAuthentication"`
	RefID                  string                 `json:"refId,omitempty"`
	TransactionRequest     transactionRequest     `json:"transactionRequest"`
}

type getTransactionDetailsRequest struct {
	MerchantAuthentication merchantAuthentication `json:"merchantAuthentication"`
	TransID                string                 `json:"transId"`
}

type getMerchantDetailsRequest struct {
	MerchantAuthentication merchantAuthentication `json:"merchantAuthentication"`
}

type getHostedPaymentPageRequest struct {
	MerchantAuthentication merchantAuthentication `json:"merchantAuthentication"`
	RefID                  string                 `json:"refId,omitempty"`
	TransactionRequest     transactionRequest     `json:"transactionRequest"`
	HostedPaymentSettings  transactionSettings    `json:"hostedPaymentSettings"`
}

type apiMessage struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

type apiMessages struct {
	ResultCode string       `json:"resultCode"`
	Message    []apiMessage `json:"message"`
}

type transactionError struct {
	ErrorCode string `json:"errorCode"`
	ErrorText string `json:"errorText"`
}

type transactionResponse struct {
	ResponseCode string             `json:"responseCode"`
	AuthCode     string             `json:"authCode"`
	TransID      string             `json:"transId"`
	Errors       []transactionError `json:"errors"`
}

type createTransactionResponse struct {
	TransactionResponse transactionResponse `json:"transactionResponse"`
	Messages            apiMessages         `json:"messages"`
}

type transactionDetails struct {
	TransID           string  `json:"transId"`
	TransactionStatus string  `json:"transactionStatus"`
	ResponseCode      int     `json:"responseCode"`
	AuthCode          string  `json:"authCode"`
	AuthAmount        float64 `json:"authAmount"`
	SettleAmount      float64 `json:"settleAmount"`
	SubmitTimeUTC     string  `json:"submitTimeUTC"`
	Payment           struct {
		CreditCard struct {
			CardNumber     string `json:"cardNumber"`
			ExpirationDate string `json:"expirationDate"`
			CardType       string `json:"cardType"`
		} `json:"creditCard"`
	} `json:"payment"`
}

type getTransactionDetailsResponse struct {
	Transaction transactionDetails `json:"transaction"`
	Messages    apiMessages        `json:"messages"`
}

type getMerchantDetailsResponse struct {
	IsTestMode      bool        `json:"isTestMode"`
	MerchantName    string      `json:"merchantName"`
	PublicClientKey string      `json:"publicClientKey"`
	Messages        apiMessages `json:"messages"`
}

type getHostedPaymentPageResponse struct {
	Token    string      `json:"token"`
	Messages apiMessages `json:"messages"`
}

/* ---------- operations ---------- */

// AuthorizeAndCapture charges the opaque payment token. A nonzero
// transaction id is immediately re-fetched via transaction detail so the
// caller gets the normalized shape instead of the synchronous payload; a
// zero id comes back as a decline carrying the raw response verbatim.
func (c *AuthorizeNetClient) AuthorizeAndCapture(ctx context.Context, creds entities.Credentials, req entities.ChargeRequest) (entities.TransactionDetail, error) {
	log.Printf("[payment][processor] auth-capture start ref=%s amount=%.2f sandbox=%t", req.OrderRef, req.Amount, creds.Sandbox)

	payload := map[string]interface{}{
		"createTransactionRequest": createTransactionRequest{
			MerchantAuthentication: auth(creds),
			RefID:                  req.OrderRef,
			TransactionRequest: transactionRequest{
				TransactionType: "authCaptureTransaction",
				Amount:          formatAmount(req.Amount),
				Payment: &paymentElement{
					OpaqueData: &opaqueData{
						DataDescriptor: req.OpaqueDescriptor,
						DataValue:      req.OpaqueValue,
					},
				},
				Order: &orderElement{
					InvoiceNumber: req.OrderRef,
					Description:   req.InvoiceDescription,
				},
			},
		},
	}

	var resp createTransactionResponse
	raw, err := c.post(ctx, creds, payload, &resp)
	if err != nil {
		return entities.TransactionDetail{}, err
	}

	transID := resp.TransactionResponse.TransID
	if transID == "" || transID == "0" {
		decline := declineFrom(resp.TransactionResponse, resp.Messages, raw)
		log.Printf("[payment][processor] auth-capture declined ref=%s code=%s", req.OrderRef, decline.Code)
		return entities.TransactionDetail{}, decline
	}

	// Reconcile instead of trusting the synchronous payload.
	detail, err := c.GetTransactionDetail(ctx, creds, transID)
	if err != nil {
		return entities.TransactionDetail{}, err
	}
	log.Printf("[payment][processor] auth-capture success ref=%s transaction_id=%s status=%s", req.OrderRef, transID, detail.RawStatus)
	return detail, nil
}

// GetTransactionDetail is a pure status read; it is never retried here.
func (c *AuthorizeNetClient) GetTransactionDetail(ctx context.Context, creds entities.Credentials, transactionID string) (entities.TransactionDetail, error) {
	payload := map[string]interface{}{
		"getTransactionDetailsRequest": getTransactionDetailsRequest{
			MerchantAuthentication: auth(creds),
			TransID:                transactionID,
		},
	}

	var resp getTransactionDetailsResponse
	raw, err := c.post(ctx, creds, payload, &resp)
	if err != nil {
		return entities.TransactionDetail{}, err
	}
	if resp.Messages.ResultCode != "Ok" {
		return entities.TransactionDetail{}, declineFromMessages(resp.Messages, raw)
	}

	t := resp.Transaction
	submitTime, _ := time.Parse(time.RFC3339, t.SubmitTimeUTC)
	return entities.TransactionDetail{
		TransactionID:  t.TransID,
		Status:         mapTransactionStatus(t.TransactionStatus),
		RawStatus:      t.TransactionStatus,
		ResponseCode:   t.ResponseCode,
		AuthCode:       t.AuthCode,
		Amount:         t.AuthAmount,
		SettleAmount:   t.SettleAmount,
		AccountNumber:  t.Payment.CreditCard.CardNumber,
		AccountType:    t.Payment.CreditCard.CardType,
		ExpirationDate: t.Payment.CreditCard.ExpirationDate,
		SubmitTime:     submitTime,
	}, nil
}

// Refund reverses a settled charge. The detail lookup comes first: a charge
// still pending settlement is guaranteed to fail the refund at the
// processor, so it short-circuits to ErrVoidRequired with no refund call.
// The refund request echoes the masked card recovered from the detail, since
// the refund API wants last-4/expiry, not the original token.
func (c *AuthorizeNetClient) Refund(ctx context.Context, creds entities.Credentials, transactionID string, amount float64) (entities.RefundResult, error) {
	detail, err := c.GetTransactionDetail(ctx, creds, transactionID)
	if err != nil {
		return entities.RefundResult{}, err
	}
	if detail.RawStatus == string(entities.TransactionStatusCapturedPendingSettlement) {
		return entities.RefundResult{}, entities.ErrVoidRequired
	}
	log.Printf("[payment][processor] refund start transaction_id=%s amount=%.2f", transactionID, amount)

	payload := map[string]interface{}{
		"createTransactionRequest": createTransactionRequest{
			MerchantAuthentication: auth(creds),
			TransactionRequest: transactionRequest{
				TransactionType: "refundTransaction",
				Amount:          formatAmount(amount),
				Payment: &paymentElement{
					CreditCard: &creditCardEcho{
						CardNumber:     detail.AccountNumber,
						ExpirationDate: detail.ExpirationDate,
					},
				},
				RefTransID: transactionID,
				TransactionSettings: &transactionSettings{
					Setting: []transactionSetting{
						{SettingName: "duplicateWindow", SettingValue: refundDuplicateWindow},
					},
				},
			},
		},
	}

	var resp createTransactionResponse
	raw, err := c.post(ctx, creds, payload, &resp)
	if err != nil {
		return entities.RefundResult{}, err
	}

	refundID := resp.TransactionResponse.TransID
	if refundID == "" || refundID == "0" {
		decline := declineFrom(resp.TransactionResponse, resp.Messages, raw)
		log.Printf("[payment][processor] refund declined transaction_id=%s code=%s", transactionID, decline.Code)
		return entities.RefundResult{}, decline
	}

	log.Printf("[payment][processor] refund submitted transaction_id=%s ref_trans_id=%s", transactionID, refundID)
	return entities.RefundResult{
		RefTransID:    refundID,
		TransactionID: transactionID,
		Amount:        amount,
		RawStatus:     detail.RawStatus,
	}, nil
}

// GetHostedPaymentPage assembles the hosted-form token request from the
// merchant's display toggles.
func (c *AuthorizeNetClient) GetHostedPaymentPage(ctx context.Context, creds entities.Credentials, req entities.PaymentFormRequest) (entities.HostedPaymentPage, error) {
	settings := []transactionSetting{
		hostedSetting("hostedPaymentBillingAddressOptions", map[string]interface{}{
			"show": req.Options.ShowBillingAddress, "required": false,
		}),
		hostedSetting("hostedPaymentCustomerOptions", map[string]interface{}{
			"showEmail": req.Options.RequireEmail, "requiredEmail": req.Options.RequireEmail,
		}),
		hostedSetting("hostedPaymentPaymentOptions", map[string]interface{}{
			"cardCodeRequired": req.Options.RequireCardCode, "showCreditCard": true,
		}),
		hostedSetting("hostedPaymentSecurityOptions", map[string]interface{}{
			"captcha": false,
		}),
	}
	if req.Options.CommunicatorURL != "" {
		settings = append(settings, hostedSetting("hostedPaymentIFrameCommunicatorUrl", map[string]interface{}{
			"url": req.Options.CommunicatorURL,
		}))
	}
	if req.Options.ReturnURL != "" {
		settings = append(settings, hostedSetting("hostedPaymentReturnOptions", map[string]interface{}{
			"showReceipt": true, "url": req.Options.ReturnURL, "urlText": req.Options.ReturnLabel,
		}))
	}

	payload := map[string]interface{}{
		"getHostedPaymentPageRequest": getHostedPaymentPageRequest{
			MerchantAuthentication: auth(creds),
			RefID:                  req.OrderRef,
			TransactionRequest: transactionRequest{
				TransactionType: "authCaptureTransaction",
				Amount:          formatAmount(req.Amount),
				Order: &orderElement{
					InvoiceNumber: req.OrderRef,
					Description:   req.InvoiceDescription,
				},
			},
			HostedPaymentSettings: transactionSettings{Setting: settings},
		},
	}

	var resp getHostedPaymentPageResponse
	raw, err := c.post(ctx, creds, payload, &resp)
	if err != nil {
		return entities.HostedPaymentPage{}, err
	}
	if resp.Messages.ResultCode != "Ok" || resp.Token == "" {
		return entities.HostedPaymentPage{}, declineFromMessages(resp.Messages, raw)
	}

	postURL := productionPaymentFormURL
	if creds.Sandbox {
		postURL = sandboxPaymentFormURL
	}
	return entities.HostedPaymentPage{Token: resp.Token, PostURL: postURL}, nil
}

// GetMerchantDetails fetches the public merchant record the client-side
// tokenizer needs.
func (c *AuthorizeNetClient) GetMerchantDetails(ctx context.Context, creds entities.Credentials) (entities.MerchantDetails, error) {
	payload := map[string]interface{}{
		"getMerchantDetailsRequest": getMerchantDetailsRequest{
			MerchantAuthentication: auth(creds),
		},
	}

	var resp getMerchantDetailsResponse
	raw, err := c.post(ctx, creds, payload, &resp)
	if err != nil {
		return entities.MerchantDetails{}, err
	}
	if resp.Messages.ResultCode != "Ok" {
		return entities.MerchantDetails{}, declineFromMessages(resp.Messages, raw)
	}
	return entities.MerchantDetails{
		PublicClientKey: resp.PublicClientKey,
		MerchantName:    resp.MerchantName,
		IsTestMode:      resp.IsTestMode,
	}, nil
}

/* ---------- plumbing ---------- */

// post sends one authenticated request and decodes the response. Transport
// errors, non-2xx statuses and undecodable bodies all become a
// ProcessorFault with a fresh correlation id; the raw body is returned for
// decline construction.
func (c *AuthorizeNetClient) post(ctx context.Context, creds entities.Credentials, payload interface{}, out interface{}) (json.RawMessage, error) {
	endpoint := c.productionEndpoint
	if creds.Sandbox {
		endpoint = c.sandboxEndpoint
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, c.fault(fmt.Errorf("marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, c.fault(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.fault(err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, c.fault(err)
	}
	respBody = bytes.TrimPrefix(respBody, utf8BOM)

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, c.fault(fmt.Errorf("unexpected status %d: %s", httpResp.StatusCode, respBody))
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return nil, c.fault(fmt.Errorf("decode response: %w", err))
	}
	return respBody, nil
}

func (c *AuthorizeNetClient) fault(err error) error {
	correlationID := uuid.NewString()
	log.Printf("[payment][processor] fault correlation_id=%s err=%v", correlationID, err)
	return &entities.ProcessorFault{CorrelationID: correlationID, Err: err}
}

func auth(creds entities.Credentials) merchantAuthentication {
	return merchantAuthentication{Name: creds.Login, TransactionKey: creds.TransactionKey}
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

func hostedSetting(name string, value map[string]interface{}) transactionSetting {
	encoded, _ := json.Marshal(value)
	return transactionSetting{SettingName: name, SettingValue: string(encoded)}
}

func declineFrom(t transactionResponse, m apiMessages, raw json.RawMessage) *entities.ProcessorDecline {
	if len(t.Errors) > 0 {
		return &entities.ProcessorDecline{Code: t.Errors[0].ErrorCode, Text: t.Errors[0].ErrorText, Raw: raw}
	}
	return declineFromMessages(m, raw)
}

func declineFromMessages(m apiMessages, raw json.RawMessage) *entities.ProcessorDecline {
	if len(m.Message) > 0 {
		return &entities.ProcessorDecline{Code: m.Message[0].Code, Text: m.Message[0].Text, Raw: raw}
	}
	return &entities.ProcessorDecline{Code: "unknown", Text: "processor returned no message", Raw: raw}
}

func mapTransactionStatus(raw string) entities.TransactionStatus {
	switch raw {
	case "capturedPendingSettlement":
		return entities.TransactionStatusCapturedPendingSettlement
	case "settledSuccessfully":
		return entities.TransactionStatusCaptured
	case "declined":
		return entities.TransactionStatusDeclined
	case "voided":
		return entities.TransactionStatusVoided
	case "refundSettledSuccessfully", "refundPendingSettlement":
		return entities.TransactionStatusRefunded
	case "generalError", "failedReview", "returnedItem":
		return entities.TransactionStatusError
	default:
		return entities.TransactionStatusPending
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
