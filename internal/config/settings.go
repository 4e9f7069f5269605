package config

import (
	"errors"
	"time"
)

const (
	defaultPort            = 8000
	defaultMonPort         = 8888
	defaultLogLevel        = "info"
	defaultServiceName     = "line-relay-api"
	defaultReplyPrefix     = "你說："
	defaultDeliveryTimeout = 10 * time.Second
)

var (
	errMissingChannelSecret      = errors.New("LINE_CHANNEL_SECRET must be set")
	errMissingChannelAccessToken = errors.New("LINE_CHANNEL_ACCESS_TOKEN must be set")
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// ChannelSecret signs inbound webhooks.
	ChannelSecret string `env:"LINE_CHANNEL_SECRET"`
	// ChannelAccessToken authorizes outbound Messaging API calls.
	ChannelAccessToken string `env:"LINE_CHANNEL_ACCESS_TOKEN"`
	// LineAPIEndpoint overrides the Messaging API base URL. Empty uses the SDK default.
	LineAPIEndpoint string        `env:"LINE_API_ENDPOINT"`
	DeliveryTimeout time.Duration `env:"DELIVERY_TIMEOUT"`

	// PushKey is the shared secret required by POST /push. Empty disables pushing.
	PushKey string `env:"PUSH_KEY"`
	// TargetUserID is the recipient used when a push request has no "to".
	TargetUserID string `env:"TARGET_USER_ID"`
	ReplyPrefix  string `env:"REPLY_PREFIX"`
}

// SetDefaults fills in every optional setting left empty by the environment.
func (s *Settings) SetDefaults() {
	if s.Port == 0 {
		s.Port = defaultPort
	}
	if s.MonPort == 0 {
		s.MonPort = defaultMonPort
	}
	if s.LogLevel == "" {
		s.LogLevel = defaultLogLevel
	}
	if s.ServiceName == "" {
		s.ServiceName = defaultServiceName
	}
	if s.ReplyPrefix == "" {
		s.ReplyPrefix = defaultReplyPrefix
	}
	if s.DeliveryTimeout <= 0 {
		s.DeliveryTimeout = defaultDeliveryTimeout
	}
}

// Validate reports the first missing required setting.
func (s *Settings) Validate() error {
	if s.ChannelSecret == "" {
		return errMissingChannelSecret
	}
	if s.ChannelAccessToken == "" {
		return errMissingChannelAccessToken
	}
	return nil
}

// PushEnabled reports whether POST /push can ever authorize a request.
func (s *Settings) PushEnabled() bool {
	return s.PushKey != ""
}
