// Package notify posts a short completion message to an optional webhook
// after a successful load. Delivery is best-effort: a failed notification
// is logged and never fails the command.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/qiyin-tech/expload/pkg/expload"
)

// DefaultTimeout bounds the webhook request so a dead endpoint cannot hang
// the process after the load already succeeded.
const DefaultTimeout = 10 * time.Second

// message is the feishu bot text-message payload.
type message struct {
	MsgType string  `json:"msg_type"`
	Content content `json:"content"`
}

type content struct {
	Text string `json:"text"`
}

// Notifier posts load summaries to a webhook URL.
type Notifier struct {
	url    string
	client *http.Client
	logger expload.Logger
}

// NewNotifier creates a Notifier for url. An empty url yields a Notifier
// whose Notify is a no-op.
func NewNotifier(url string, logger expload.Logger) *Notifier {
	return &Notifier{
		url:    url,
		client: &http.Client{Timeout: DefaultTimeout},
		logger: logger,
	}
}

// Notify posts a text summary of the load. Errors are logged, not returned;
// the load already succeeded and its exit code must not change.
func (n *Notifier) Notify(ctx context.Context, summary *expload.Summary) {
	if n.url == "" {
		return
	}

	text := fmt.Sprintf("expload %s: loaded %s (%d records, %d fields, %d skipped) in %s [run %s]",
		summary.Command, summary.FilePath, summary.Records, summary.Fields,
		summary.Skipped, summary.Duration.Round(time.Millisecond), summary.RunID)

	body, err := json.Marshal(message{MsgType: "text", Content: content{Text: text}})
	if err != nil {
		n.logger.Error("Webhook payload encoding failed: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		n.logger.Error("Webhook request failed: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Error("Webhook notification failed: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.logger.Error("Webhook notification returned %s", resp.Status)
		return
	}
	n.logger.Verbose("Webhook notified: %s", text)
}
