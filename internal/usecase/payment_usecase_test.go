package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"eventpay/internal/domain/entities"
	mock_interfaces "eventpay/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_GetMerchantDetails(t *testing.T) {
	t.Run("invalid subject type", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, nil)
		_, err := uc.GetMerchantDetails(context.Background(), "event", 7)
		if !errors.Is(err, ErrInvalidSubjectType) {
			t.Fatalf("expected ErrInvalidSubjectType, got %v", err)
		}
	})

	t.Run("credential failure means zero processor calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := NewCredentialResolver(mockEmptyCredentialStore(ctrl, 7))
		processor := mock_interfaces.NewMockIProcessorClient(ctrl)
		uc := NewPaymentUseCase(resolver, processor, nil, nil, nil)

		_, err := uc.GetMerchantDetails(context.Background(), SubjectMerchant, 7)
		if !errors.Is(err, ErrCredentialsNotFound) {
			t.Fatalf("expected ErrCredentialsNotFound, got %v", err)
		}
	})

	t.Run("sandbox credentials mark the response test mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mockResolver(ctrl, entities.Credentials{Login: "l", TransactionKey: "k", Sandbox: true})
		processor := mock_interfaces.NewMockIProcessorClient(ctrl)
		uc := NewPaymentUseCase(resolver, processor, nil, nil, nil)

		processor.EXPECT().GetMerchantDetails(gomock.Any(), gomock.Any()).Return(entities.MerchantDetails{
			PublicClientKey: "pk_123",
		}, nil)

		details, err := uc.GetMerchantDetails(context.Background(), SubjectMerchant, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !details.IsTestMode {
			t.Fatal("expected test mode from sandbox credentials")
		}
		if details.PublicClientKey != "pk_123" {
			t.Fatalf("unexpected details: %+v", details)
		}
	})

	t.Run("registrant subject resolves through the registrant path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICredentialStore(ctrl)
		store.EXPECT().ListByRegistrant(gomock.Any(), int64(42)).Return([]entities.Credentials{
			{Login: "l", TransactionKey: "k"},
		}, nil)
		processor := mock_interfaces.NewMockIProcessorClient(ctrl)
		processor.EXPECT().GetMerchantDetails(gomock.Any(), gomock.Any()).Return(entities.MerchantDetails{}, nil)
		uc := NewPaymentUseCase(NewCredentialResolver(store), processor, nil, nil, nil)

		if _, err := uc.GetMerchantDetails(context.Background(), SubjectRegistrant, 42); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_PayByCreditCard(t *testing.T) {
	in := ChargeInput{
		MerchantID:       7,
		RegistrantID:     42,
		Amount:           125.50,
		OpaqueDescriptor: "COMMON.ACCEPT.INAPP.PAYMENT",
		OpaqueValue:      "tok_abc",
		OrderRef:         "reg-42",
	}

	t.Run("validations", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, nil)

		bad := in
		bad.MerchantID = 0
		if _, err := uc.PayByCreditCard(context.Background(), bad); !errors.Is(err, ErrInvalidMerchantID) {
			t.Fatalf("expected ErrInvalidMerchantID, got %v", err)
		}

		bad = in
		bad.Amount = 0
		if _, err := uc.PayByCreditCard(context.Background(), bad); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}

		bad = in
		bad.OpaqueValue = "  "
		if _, err := uc.PayByCreditCard(context.Background(), bad); !errors.Is(err, ErrMissingPaymentToken) {
			t.Fatalf("expected ErrMissingPaymentToken, got %v", err)
		}
	})

	t.Run("happy path notifies the ledger exactly once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mockResolver(ctrl, entities.Credentials{Login: "l", TransactionKey: "k"})
		processor := mock_interfaces.NewMockIProcessorClient(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		ledger := mock_interfaces.NewMockILedgerNotifier(ctrl)
		uc := NewPaymentUseCase(resolver, processor, txRepo, nil, ledger)

		detail := entities.TransactionDetail{
			TransactionID: "9001",
			Status:        entities.TransactionStatusCapturedPendingSettlement,
			Amount:        125.50,
		}
		processor.EXPECT().AuthorizeAndCapture(gomock.Any(), gomock.Any(), gomock.Any()).Return(detail, nil)
		txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.TransactionID != "9001" || tx.MerchantID != 7 || tx.RegistrantID != 42 {
					t.Fatalf("unexpected transaction record: %+v", tx)
				}
				return tx, nil
			})
		ledger.EXPECT().PaymentCompleted(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, notice entities.LedgerNotice) error {
				if notice.TransactionID != "9001" || notice.MerchantID != 7 {
					t.Fatalf("unexpected ledger notice: %+v", notice)
				}
				return nil
			}).Times(1)

		out, err := uc.PayByCreditCard(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Detail.TransactionID != "9001" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("multi-checkout reads linkage from the store and skips the ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mockResolver(ctrl, entities.Credentials{Login: "l", TransactionKey: "k"})
		processor := mock_interfaces.NewMockIProcessorClient(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		registrants := mock_interfaces.NewMockIRegistrantStore(ctrl)
		ledger := mock_interfaces.NewMockILedgerNotifier(ctrl)
		uc := NewPaymentUseCase(resolver, processor, txRepo, registrants, ledger)

		registrants.EXPECT().GetMultiCheckoutGroup(gomock.Any(), int64(42)).Return(entities.MultiCheckoutGroup{
			RegistrantID: 42, Linked: true, CoRegistrantIDs: []int64{43, 44},
		}, nil)
		processor.EXPECT().AuthorizeAndCapture(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.TransactionDetail{
			TransactionID: "9002", Status: entities.TransactionStatusCapturedPendingSettlement, Amount: 375.00,
		}, nil)
		txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if len(tx.CoRegistrantIDs) != 2 {
					t.Fatalf("expected co-registrants on the record, got %+v", tx)
				}
				return tx, nil
			})

		multi := in
		multi.MultiCheckout = true
		if _, err := uc.PayByCreditCard(context.Background(), multi); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("decline is recorded and returned, no ledger notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mockResolver(ctrl, entities.Credentials{Login: "l", TransactionKey: "k"})
		processor := mock_interfaces.NewMockIProcessorClient(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		ledger := mock_interfaces.NewMockILedgerNotifier(ctrl)
		uc := NewPaymentUseCase(resolver, processor, txRepo, nil, ledger)

		decline := &entities.ProcessorDecline{Code: "2", Text: "This transaction has been declined."}
		processor.EXPECT().AuthorizeAndCapture(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.TransactionDetail{}, decline)
		txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.Status != entities.TransactionStatusDeclined {
					t.Fatalf("expected declined record, got %s", tx.Status)
				}
				if !strings.HasPrefix(tx.TransactionID, "decline:") {
					t.Fatalf("expected synthetic decline id, got %s", tx.TransactionID)
				}
				return tx, nil
			})

		_, err := uc.PayByCreditCard(context.Background(), in)
		var got *entities.ProcessorDecline
		if !errors.As(err, &got) {
			t.Fatalf("expected decline, got %v", err)
		}
	})

	t.Run("record persistence failure does not fail the charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mockResolver(ctrl, entities.Credentials{Login: "l", TransactionKey: "k"})
		processor := mock_interfaces.NewMockIProcessorClient(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		ledger := mock_interfaces.NewMockILedgerNotifier(ctrl)
		uc := NewPaymentUseCase(resolver, processor, txRepo, nil, ledger)

		processor.EXPECT().AuthorizeAndCapture(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.TransactionDetail{
			TransactionID: "9003", Status: entities.TransactionStatusCapturedPendingSettlement,
		}, nil)
		txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, errors.New("table throttled"))
		ledger.EXPECT().PaymentCompleted(gomock.Any(), gomock.Any()).Return(nil)

		out, err := uc.PayByCreditCard(context.Background(), in)
		if err != nil {
			t.Fatalf("the funds were captured, charge must not fail: %v", err)
		}
		if out.Detail.TransactionID != "9003" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})
}

func TestPaymentUseCase_RefundTransaction(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, nil)

		if _, err := uc.RefundTransaction(context.Background(), RefundInput{MerchantID: 0, TransactionID: "1", Amount: 1}); !errors.Is(err, ErrInvalidMerchantID) {
			t.Fatalf("expected ErrInvalidMerchantID, got %v", err)
		}
		if _, err := uc.RefundTransaction(context.Background(), RefundInput{MerchantID: 7, TransactionID: " ", Amount: 1}); !errors.Is(err, ErrInvalidTransactionID) {
			t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
		}
		if _, err := uc.RefundTransaction(context.Background(), RefundInput{MerchantID: 7, TransactionID: "9001", Amount: 0}); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("prefixed transaction id is normalized before the processor call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mockResolver(ctrl, entities.Credentials{Login: "l", TransactionKey: "k"})
		processor := mock_interfaces.NewMockIProcessorClient(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewPaymentUseCase(resolver, processor, txRepo, nil, nil)

		processor.EXPECT().Refund(gomock.Any(), gomock.Any(), "9001", 50.0).Return(entities.RefundResult{
			RefTransID: "9001", TransactionID: "9100", Amount: 50.0,
		}, nil)
		txRepo.EXPECT().UpdateStatus(gomock.Any(), "9001", entities.TransactionStatusRefunded, "9001").
			Return(entities.Transaction{}, nil)

		out, err := uc.RefundTransaction(context.Background(), RefundInput{
			MerchantID: 7, TransactionID: "txn:9001", Amount: 50.0,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.VoidRequired {
			t.Fatal("unexpected void-required outcome")
		}
		if out.Result.TransactionID != "9100" {
			t.Fatalf("unexpected result: %+v", out.Result)
		}
	})

	t.Run("unsettled charge routes to void required without an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mockResolver(ctrl, entities.Credentials{Login: "l", TransactionKey: "k"})
		processor := mock_interfaces.NewMockIProcessorClient(ctrl)
		uc := NewPaymentUseCase(resolver, processor, nil, nil, nil)

		processor.EXPECT().Refund(gomock.Any(), gomock.Any(), "9001", 50.0).
			Return(entities.RefundResult{}, entities.ErrVoidRequired)

		out, err := uc.RefundTransaction(context.Background(), RefundInput{
			MerchantID: 7, TransactionID: "9001", Amount: 50.0,
		})
		if err != nil {
			t.Fatalf("void required is an outcome, not an error: %v", err)
		}
		if !out.VoidRequired {
			t.Fatal("expected void-required outcome")
		}
	})

	t.Run("status update failure does not fail the refund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mockResolver(ctrl, entities.Credentials{Login: "l", TransactionKey: "k"})
		processor := mock_interfaces.NewMockIProcessorClient(ctrl)
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewPaymentUseCase(resolver, processor, txRepo, nil, nil)

		processor.EXPECT().Refund(gomock.Any(), gomock.Any(), "8000", 25.0).Return(entities.RefundResult{
			RefTransID: "8000", TransactionID: "8100", Amount: 25.0,
		}, nil)
		txRepo.EXPECT().UpdateStatus(gomock.Any(), "8000", entities.TransactionStatusRefunded, "8000").
			Return(entities.Transaction{}, errors.New("not found"))

		if _, err := uc.RefundTransaction(context.Background(), RefundInput{
			MerchantID: 7, TransactionID: "8000", Amount: 25.0,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_CheckMultiCheckout(t *testing.T) {
	t.Run("invalid registrant id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.CheckMultiCheckout(context.Background(), 0); !errors.Is(err, ErrInvalidRegistrantID) {
			t.Fatalf("expected ErrInvalidRegistrantID, got %v", err)
		}
	})

	t.Run("passes through the store result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		registrants := mock_interfaces.NewMockIRegistrantStore(ctrl)
		uc := NewPaymentUseCase(nil, nil, nil, registrants, nil)

		registrants.EXPECT().GetMultiCheckoutGroup(gomock.Any(), int64(42)).Return(entities.MultiCheckoutGroup{
			RegistrantID: 42, Linked: true, CoRegistrantIDs: []int64{43},
		}, nil)
		group, err := uc.CheckMultiCheckout(context.Background(), 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !group.Linked || len(group.CoRegistrantIDs) != 1 {
			t.Fatalf("unexpected group: %+v", group)
		}
	})
}

func TestPaymentUseCase_GetPaymentForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resolver := mockResolver(ctrl, entities.Credentials{Login: "l", TransactionKey: "k"})
	processor := mock_interfaces.NewMockIProcessorClient(ctrl)
	uc := NewPaymentUseCase(resolver, processor, nil, nil, nil)

	hideBilling := false
	processor.EXPECT().GetHostedPaymentPage(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entities.Credentials, req entities.PaymentFormRequest) (entities.HostedPaymentPage, error) {
			if req.Options.ShowBillingAddress {
				t.Fatal("override must win over the default")
			}
			if !req.Options.RequireEmail || !req.Options.RequireCardCode {
				t.Fatalf("untouched defaults must hold: %+v", req.Options)
			}
			if req.Options.ReturnLabel != "Continue" {
				t.Fatalf("expected default return label, got %q", req.Options.ReturnLabel)
			}
			return entities.HostedPaymentPage{Token: "form-token"}, nil
		})

	page, err := uc.GetPaymentForm(context.Background(), PaymentFormInput{
		MerchantID:         7,
		Amount:             125.50,
		ShowBillingAddress: &hideBilling,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Token != "form-token" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestNormalizeTransactionID(t *testing.T) {
	cases := map[string]string{
		"9001":         "9001",
		"txn:9001":     "9001",
		"ref:txn:9001": "9001",
		"  txn:9001  ": "9001",
		"txn:":         "",
		"  ":           "",
	}
	for in, want := range cases {
		if got := normalizeTransactionID(in); got != want {
			t.Fatalf("normalizeTransactionID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBoundedOrderRef(t *testing.T) {
	at := time.Unix(1756380000, 0).UTC()
	ts := "1756380000"

	if got := boundedOrderRef("", at); got != ts {
		t.Fatalf("empty ref: got %q", got)
	}
	if got := boundedOrderRef("reg-42", at); got != "reg-42-"+ts {
		t.Fatalf("short ref: got %q", got)
	}

	long := boundedOrderRef("registration-code-that-never-ends", at)
	if len(long) > 20 {
		t.Fatalf("ref exceeds cap: %q (%d)", long, len(long))
	}
	if !strings.HasSuffix(long, ts) {
		t.Fatalf("timestamp must survive truncation: %q", long)
	}
}

func mockResolver(ctrl *gomock.Controller, creds entities.Credentials) ICredentialResolver {
	store := mock_interfaces.NewMockICredentialStore(ctrl)
	store.EXPECT().ListByMerchant(gomock.Any(), gomock.Any()).Return([]entities.Credentials{creds}, nil).AnyTimes()
	store.EXPECT().ListByRegistrant(gomock.Any(), gomock.Any()).Return([]entities.Credentials{creds}, nil).AnyTimes()
	return NewCredentialResolver(store)
}

func mockEmptyCredentialStore(ctrl *gomock.Controller, merchantID int64) *mock_interfaces.MockICredentialStore {
	store := mock_interfaces.NewMockICredentialStore(ctrl)
	store.EXPECT().ListByMerchant(gomock.Any(), merchantID).Return(nil, nil)
	return store
}
