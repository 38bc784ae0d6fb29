package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "eventpay/internal/adapter/http/dto/request"
	response "eventpay/internal/adapter/http/dto/response"
	"eventpay/internal/domain/entities"
	"eventpay/internal/usecase"
	"eventpay/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for the payment lifecycle.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// GetMerchantDetails returns the processor's public merchant record for a
// merchant or registrant subject.
func (h *PaymentHandler) GetMerchantDetails(c *gin.Context) {
	subjectType := c.Query("subject_type")
	subjectID, err := strconv.ParseInt(c.Query("subject_id"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid subject id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	details, err := h.usecase.GetMerchantDetails(c.Request.Context(), subjectType, subjectID)
	if err != nil {
		log.Printf("[payment][handler] merchant-details failed subject_type=%s subject_id=%d err=%v", subjectType, subjectID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMerchantDetails(details))
}

// Charge authorizes and captures a payment against the merchant's
// processor account.
func (h *PaymentHandler) Charge(c *gin.Context) {
	var req request.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] charge invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] charge start merchant_id=%d registrant_id=%d", req.MerchantID, req.RegistrantID)

	outcome, err := h.usecase.PayByCreditCard(c.Request.Context(), usecase.ChargeInput{
		MerchantID:         req.MerchantID,
		RegistrantID:       req.RegistrantID,
		Amount:             req.Amount,
		OpaqueDescriptor:   req.OpaqueDescriptor,
		OpaqueValue:        req.OpaqueValue,
		OrderRef:           req.OrderRef,
		InvoiceDescription: req.InvoiceDescription,
		MultiCheckout:      req.MultiCheckout,
	})
	if err != nil {
		log.Printf("[payment][handler] charge failed merchant_id=%d err=%v", req.MerchantID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactionDetail(outcome.Detail))
}

// Refund reverses a settled charge; a pre-settlement charge comes back as
// a structured void-required conflict.
func (h *PaymentHandler) Refund(c *gin.Context) {
	var req request.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] refund invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome, err := h.usecase.RefundTransaction(c.Request.Context(), usecase.RefundInput{
		MerchantID:    req.MerchantID,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
	})
	if err != nil {
		log.Printf("[payment][handler] refund failed merchant_id=%d transaction_id=%s err=%v", req.MerchantID, req.TransactionID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if outcome.VoidRequired {
		appErr := pkg.NewDomainErrorSimple("VOID_REQUIRED", "void required", http.StatusConflict)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRefundResult(outcome.Result))
}

// CheckMultiCheckout reports the registrant's linked-checkout group.
func (h *PaymentHandler) CheckMultiCheckout(c *gin.Context) {
	registrantID, err := strconv.ParseInt(c.Param("registrant_id"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid registrant id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	group, err := h.usecase.CheckMultiCheckout(c.Request.Context(), registrantID)
	if err != nil {
		log.Printf("[payment][handler] multi-checkout failed registrant_id=%d err=%v", registrantID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMultiCheckoutGroup(group))
}

// GetPaymentForm returns a hosted payment page token.
func (h *PaymentHandler) GetPaymentForm(c *gin.Context) {
	var req request.PaymentFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] form invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	page, err := h.usecase.GetPaymentForm(c.Request.Context(), usecase.PaymentFormInput{
		MerchantID:         req.MerchantID,
		Amount:             req.Amount,
		OrderRef:           req.OrderRef,
		InvoiceDescription: req.InvoiceDescription,
		ShowBillingAddress: req.ShowBillingAddress,
		RequireEmail:       req.RequireEmail,
		RequireCardCode:    req.RequireCardCode,
		CommunicatorURL:    req.CommunicatorURL,
		ReturnURL:          req.ReturnURL,
		ReturnLabel:        req.ReturnLabel,
	})
	if err != nil {
		log.Printf("[payment][handler] form failed merchant_id=%d err=%v", req.MerchantID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHostedPaymentPage(page))
}

func mapPaymentError(err error) *pkg.DomainError {
	var decline *entities.ProcessorDecline
	var fault *entities.ProcessorFault

	switch {
	case errors.Is(err, usecase.ErrCredentialsNotFound):
		return pkg.NewDomainErrorSimple("CREDENTIALS_NOT_FOUND", "no credentials found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidSubjectType),
		errors.Is(err, usecase.ErrInvalidMerchantID),
		errors.Is(err, usecase.ErrInvalidRegistrantID),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrMissingPaymentToken),
		errors.Is(err, usecase.ErrInvalidTransactionID):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.As(err, &decline):
		// The vendor's reason text is the user-visible message.
		return pkg.NewDomainErrorSimple("PROCESSOR_DECLINED", decline.Text, http.StatusPaymentRequired)
	case errors.As(err, &fault):
		return pkg.NewDomainErrorWithCorrelation("PROCESSOR_FAULT", "Payment processor unavailable, please try again", http.StatusBadGateway, fault.CorrelationID)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
	}
}
