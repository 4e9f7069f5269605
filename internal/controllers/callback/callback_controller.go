package callback

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/line-relay/line-relay-api/internal/metrics"
	"github.com/line-relay/line-relay-api/internal/signature"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentReplies bounds the reply calls issued for one callback.
const maxConcurrentReplies = 8

type Replier interface {
	Reply(ctx context.Context, replyToken, text string) error
}

type EventCache interface {
	MarkHandled(eventID string) bool
}

// CallbackController receives LINE webhook callbacks and echoes text messages back.
type CallbackController struct {
	channelSecret string
	replyPrefix   string
	replier       Replier
	events        EventCache
}

// NewCallbackController creates a new CallbackController.
func NewCallbackController(channelSecret, replyPrefix string, replier Replier, events EventCache) *CallbackController {
	return &CallbackController{
		channelSecret: channelSecret,
		replyPrefix:   replyPrefix,
		replier:       replier,
		events:        events,
	}
}

// VerifySignature rejects requests whose raw body does not match the X-Line-Signature header.
// The body is read without any decoding so the MAC covers the exact bytes LINE sent.
func (cc *CallbackController) VerifySignature(c *fiber.Ctx) error {
	if !signature.Verify(cc.channelSecret, c.Request().Body(), c.Get(signature.Header)) {
		metrics.CallbacksReceived.WithLabelValues(metrics.ResultRejected).Inc()
		return richerrors.Error{
			ExternalMsg: "invalid signature",
			Code:        fiber.StatusBadRequest,
		}
	}
	return c.Next()
}

// HandleCallback godoc
// @Summary      Receive LINE webhook events
// @Description  Verifies the X-Line-Signature header and replies to every text message with the configured prefix followed by the original text. Reply failures are logged and do not change the response.
// @Tags         Callback
// @Accept       json
// @Produce      plain
// @Param        X-Line-Signature  header  string  true  "base64 HMAC-SHA256 of the body keyed by the channel secret"
// @Success      200  {string}  string  "OK"
// @Failure      400  "Invalid signature or payload"
// @Router       /webhook [post]
// @Router       /callback [post]
func (cc *CallbackController) HandleCallback(c *fiber.Ctx) error {
	var payload webhook.CallbackRequest
	if err := json.Unmarshal(c.Request().Body(), &payload); err != nil {
		metrics.CallbacksReceived.WithLabelValues(metrics.ResultError).Inc()
		return richerrors.Error{
			ExternalMsg: "Invalid webhook payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	metrics.CallbacksReceived.WithLabelValues(metrics.ResultOK).Inc()

	ctx := c.UserContext()
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("destination", payload.Destination).
		Int("events", len(payload.Events)).
		Msg("Received webhook callback")

	var group errgroup.Group
	group.SetLimit(maxConcurrentReplies)
	for _, event := range payload.Events {
		metrics.EventsReceived.WithLabelValues(eventType(event)).Inc()

		inbound, ok := textEvent(event)
		if !ok {
			logger.Debug().Str("eventType", eventType(event)).Msg("Ignoring non-text event")
			metrics.Replies.WithLabelValues(metrics.ResultIgnored).Inc()
			continue
		}
		if !cc.events.MarkHandled(inbound.EventID) {
			logger.Info().Str("webhookEventId", inbound.EventID).Msg("Skipping redelivered event")
			metrics.Replies.WithLabelValues(metrics.ResultDuplicate).Inc()
			continue
		}
		group.Go(func() error {
			cc.echo(ctx, inbound)
			return nil
		})
	}
	_ = group.Wait()

	return c.SendString("OK")
}

// echo replies to a single text event. Errors are logged only: the reply token
// cannot be retried and LINE only sees the callback's own status code.
func (cc *CallbackController) echo(ctx context.Context, event InboundEvent) {
	text := cc.replyText(event.Text)
	start := time.Now()
	err := cc.replier.Reply(ctx, event.ReplyToken, text)
	metrics.DeliveryDuration.WithLabelValues("reply").Observe(time.Since(start).Seconds())
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("webhookEventId", event.EventID).
			Str("sourceType", event.SourceType).
			Str("senderId", event.SenderID).
			Msg("Failed to reply to text message")
		metrics.Replies.WithLabelValues(metrics.ResultError).Inc()
		return
	}
	metrics.Replies.WithLabelValues(metrics.ResultOK).Inc()
}

func (cc *CallbackController) replyText(text string) string {
	return cc.replyPrefix + strings.TrimSpace(text)
}
