package push

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"strings"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/line-relay/line-relay-api/internal/metrics"
	"github.com/rs/zerolog"
)

// KeyHeader carries the push shared key.
const KeyHeader = "X-PUSH-KEY"

type Pusher interface {
	Push(ctx context.Context, to, text string) error
}

// PushController lets an external caller push a text message to a LINE recipient.
type PushController struct {
	pusher        Pusher
	pushKey       string
	defaultTarget string
}

// NewPushController creates a new PushController. An empty pushKey rejects every request.
func NewPushController(pusher Pusher, pushKey, defaultTarget string) *PushController {
	return &PushController{
		pusher:        pusher,
		pushKey:       pushKey,
		defaultTarget: defaultTarget,
	}
}

// Push godoc
// @Summary      Push a text message
// @Description  Sends text to the given recipient, or to the configured default recipient when "to" is omitted. The shared key is read from the X-PUSH-KEY header or the "key" body field.
// @Tags         Push
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        X-PUSH-KEY  header    string        false  "Push shared key"
// @Param        request     body      PushRequest   true   "Message to push"
// @Success      200         {object}  PushResponse  "Message pushed"
// @Failure      400         "Invalid body, missing text or recipient"
// @Failure      401         "Missing push key"
// @Failure      403         "Invalid push key"
// @Failure      500         "LINE API error"
// @Router       /push [post]
func (p *PushController) Push(c *fiber.Ctx) error {
	payload, bodyErr := parsePushRequest(c)

	key := c.Get(KeyHeader)
	if key == "" {
		key = payload.Key
	}
	if err := p.authorize(key); err != nil {
		metrics.Pushes.WithLabelValues(metrics.ResultRejected).Inc()
		return err
	}

	if bodyErr != nil {
		metrics.Pushes.WithLabelValues(metrics.ResultRejected).Inc()
		return richerrors.Error{
			ExternalMsg: "invalid push body",
			Err:         bodyErr,
			Code:        fiber.StatusBadRequest,
		}
	}
	if strings.TrimSpace(payload.Text) == "" {
		metrics.Pushes.WithLabelValues(metrics.ResultRejected).Inc()
		return richerrors.Error{
			ExternalMsg: "need 'text'",
			Code:        fiber.StatusBadRequest,
		}
	}
	to := strings.TrimSpace(payload.To)
	if to == "" {
		to = p.defaultTarget
	}
	if to == "" {
		metrics.Pushes.WithLabelValues(metrics.ResultRejected).Inc()
		return richerrors.Error{
			ExternalMsg: "need 'to' or TARGET_USER_ID",
			Code:        fiber.StatusBadRequest,
		}
	}

	start := time.Now()
	err := p.pusher.Push(c.UserContext(), to, payload.Text)
	metrics.DeliveryDuration.WithLabelValues("push").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.Pushes.WithLabelValues(metrics.ResultError).Inc()
		return richerrors.Error{
			ExternalMsg: err.Error(),
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}
	metrics.Pushes.WithLabelValues(metrics.ResultOK).Inc()
	zerolog.Ctx(c.UserContext()).Info().Str("to", to).Msg("Pushed message")

	return c.JSON(PushResponse{OK: true, Status: "ok"})
}

func (p *PushController) authorize(key string) error {
	if p.pushKey == "" {
		return richerrors.Error{
			ExternalMsg: "push is disabled",
			Code:        fiber.StatusForbidden,
		}
	}
	if key == "" {
		return richerrors.Error{
			ExternalMsg: "missing push key",
			Code:        fiber.StatusUnauthorized,
		}
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(p.pushKey)) != 1 {
		return richerrors.Error{
			ExternalMsg: "invalid push key",
			Code:        fiber.StatusForbidden,
		}
	}
	return nil
}

// parsePushRequest decodes form bodies by content type and anything else as JSON.
// When decoding fails the returned error is non-nil and the request holds only the
// key, if one could still be read, so authorization runs before the body is rejected.
func parsePushRequest(c *fiber.Ctx) (PushRequest, error) {
	var payload PushRequest
	contentType := strings.ToLower(string(c.Request().Header.ContentType()))
	if strings.HasPrefix(contentType, fiber.MIMEApplicationForm) || strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		if err := c.BodyParser(&payload); err != nil {
			return PushRequest{Key: c.FormValue("key")}, err
		}
		return payload, nil
	}
	body := c.Body()
	if len(body) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		zerolog.Ctx(c.UserContext()).Debug().Err(err).Msg("Failed to decode push body")
		return PushRequest{Key: jsonKey(body)}, err
	}
	return payload, nil
}

// jsonKey returns the string "key" field of a JSON object whose other fields may not decode.
func jsonKey(body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}
	var key string
	if err := json.Unmarshal(fields["key"], &key); err != nil {
		return ""
	}
	return key
}
