// Package fakeline is a stand-in for the LINE Messaging API. It accepts reply
// and push calls, records them and answers like api.line.me does, so the relay
// can be run and tested without a real channel.
package fakeline

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	ReplyPath = "/v2/bot/message/reply"
	PushPath  = "/v2/bot/message/push"
)

// Message is a single message of a reply or push call.
type Message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Call is one recorded Messaging API request.
type Call struct {
	Path          string
	Authorization string
	RetryKey      string
	ReplyToken    string
	To            string
	Messages      []Message
}

// Text returns the text of the first message, or "" when there is none.
func (c Call) Text() string {
	if len(c.Messages) == 0 {
		return ""
	}
	return c.Messages[0].Text
}

type messageRequest struct {
	ReplyToken string    `json:"replyToken"`
	To         string    `json:"to"`
	Messages   []Message `json:"messages"`
}

type sentMessage struct {
	ID         string `json:"id"`
	QuoteToken string `json:"quoteToken"`
}

// API is an http.Handler serving the reply and push endpoints.
type API struct {
	status int
	delay  time.Duration
	logger zerolog.Logger

	mu    sync.Mutex
	calls []Call
}

// Option configures an API.
type Option func(*API)

// WithStatus makes every call answer with status. Statuses of 400 and above carry a LINE error body.
func WithStatus(status int) Option {
	return func(a *API) { a.status = status }
}

// WithDelay holds every response for d.
func WithDelay(d time.Duration) Option {
	return func(a *API) { a.delay = d }
}

// WithLogger logs every recorded call.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *API) { a.logger = logger }
}

// New creates a new API answering 200 without delay.
func New(opts ...Option) *API {
	a := &API{
		status: http.StatusOK,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ServeHTTP implements http.Handler.
func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || (r.URL.Path != ReplyPath && r.URL.Path != PushPath) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not found"})
		return
	}

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "The request body has 1 error(s)"})
		return
	}
	call := Call{
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
		RetryKey:      r.Header.Get("X-Line-Retry-Key"),
		ReplyToken:    req.ReplyToken,
		To:            req.To,
		Messages:      req.Messages,
	}
	a.mu.Lock()
	a.calls = append(a.calls, call)
	a.mu.Unlock()

	a.logger.Info().
		Str("path", call.Path).
		Str("to", call.To).
		Str("replyToken", call.ReplyToken).
		Str("text", call.Text()).
		Msg("Message received")

	if a.delay > 0 {
		time.Sleep(a.delay)
	}
	w.Header().Set("X-Line-Request-Id", uuid.NewString())
	if a.status >= http.StatusBadRequest {
		writeJSON(w, a.status, map[string]string{"message": http.StatusText(a.status)})
		return
	}

	sent := make([]sentMessage, 0, len(req.Messages))
	for range req.Messages {
		sent = append(sent, sentMessage{ID: uuid.NewString(), QuoteToken: uuid.NewString()})
	}
	writeJSON(w, a.status, map[string][]sentMessage{"sentMessages": sent})
}

// Calls returns a copy of every recorded call, oldest first.
func (a *API) Calls() []Call {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Call(nil), a.calls...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
