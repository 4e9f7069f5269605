package line

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

const defaultTimeout = 10 * time.Second

var (
	// ErrEmptyReplyToken is returned when a reply has nothing to address it to.
	ErrEmptyReplyToken = errors.New("reply token is empty")
	// ErrEmptyRecipient is returned when a push has no recipient id.
	ErrEmptyRecipient = errors.New("recipient id is empty")
)

// Config configures a Client.
type Config struct {
	ChannelAccessToken string
	// Endpoint overrides the Messaging API base URL. Empty uses the SDK default.
	Endpoint string
	// Timeout bounds every outbound call.
	Timeout time.Duration
}

// Client sends text messages through the LINE Messaging API.
// It is safe for concurrent use.
type Client struct {
	accessToken string
	opts        []messaging_api.MessagingApiAPIOption
}

// New creates a new Client.
func New(cfg Config) (*Client, error) {
	if cfg.ChannelAccessToken == "" {
		return nil, errors.New("channel access token is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	opts := []messaging_api.MessagingApiAPIOption{
		messaging_api.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, messaging_api.WithEndpoint(cfg.Endpoint))
	}
	c := &Client{accessToken: cfg.ChannelAccessToken, opts: opts}
	if _, err := c.messagingAPI(context.Background()); err != nil {
		return nil, err
	}
	return c, nil
}

// messagingAPI returns an SDK client whose requests carry ctx. The SDK keeps the
// context on the client value, so every call gets its own value over the shared http.Client.
func (c *Client) messagingAPI(ctx context.Context) (*messaging_api.MessagingApiAPI, error) {
	api, err := messaging_api.NewMessagingApiAPI(c.accessToken, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging API client: %w", err)
	}
	return api.WithContext(ctx), nil
}

// Reply answers the event that issued replyToken with a single text message.
// Reply tokens are single use, so the call is never retried.
func (c *Client) Reply(ctx context.Context, replyToken, text string) error {
	if replyToken == "" {
		return ErrEmptyReplyToken
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	api, err := c.messagingAPI(ctx)
	if err != nil {
		return err
	}
	_, err = api.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to reply message: %w", err)
	}
	return nil
}

// Push sends a text message to a user, group or room id.
// Every call carries a fresh retry key so two calls always mean two deliveries.
func (c *Client) Push(ctx context.Context, to, text string) error {
	if to == "" {
		return ErrEmptyRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	api, err := c.messagingAPI(ctx)
	if err != nil {
		return err
	}
	_, err = api.PushMessage(&messaging_api.PushMessageRequest{
		To: to,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	}, uuid.NewString())
	if err != nil {
		return fmt.Errorf("failed to push message: %w", err)
	}
	return nil
}
