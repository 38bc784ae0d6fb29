package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"eventpay/internal/domain/entities"
	"eventpay/internal/usecase/interfaces"
)

// WebhookLedgerNotifier posts completed-charge notices to the
// ledger/registration-status service. Fire-and-forget from the payment
// flow's perspective: the returned error is logged by the caller, never
// propagated to the payer.

type WebhookLedgerNotifier struct {
	httpClient *http.Client
	endpoint   string
}

var _ interfaces.ILedgerNotifier = (*WebhookLedgerNotifier)(nil)

func NewWebhookLedgerNotifier() *WebhookLedgerNotifier {
	return &WebhookLedgerNotifier{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		endpoint:   os.Getenv("LEDGER_NOTIFY_URL"),
	}
}

func (n *WebhookLedgerNotifier) PaymentCompleted(ctx context.Context, notice entities.LedgerNotice) error {
	if n.endpoint == "" {
		log.Printf("[payment][ledger] LEDGER_NOTIFY_URL not set; skipping notify transaction_id=%s", notice.TransactionID)
		return nil
	}

	body, err := json.Marshal(notice)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("ledger notify: unexpected status %d", resp.StatusCode)
	}
	log.Printf("[payment][ledger] notified transaction_id=%s amount=%.2f", notice.TransactionID, notice.Amount)
	return nil
}
