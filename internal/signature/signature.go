// Package signature verifies the X-Line-Signature header LINE attaches to webhook requests.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// Header is the request header carrying the webhook signature.
const Header = "X-Line-Signature"

// Sign returns the base64 encoded HMAC-SHA256 of body keyed by channelSecret,
// which is the value LINE puts in the signature header.
func Sign(channelSecret string, body []byte) string {
	return base64.StdEncoding.EncodeToString(mac(channelSecret, body))
}

// Verify reports whether signature is the HMAC-SHA256 of body under channelSecret.
// Both the base64 encoding used by LINE and the lowercase hex encoding are accepted;
// anything that is not byte-for-byte one of those two renderings is rejected.
func Verify(channelSecret string, body []byte, signature string) bool {
	if channelSecret == "" || signature == "" {
		return false
	}
	sum := mac(channelSecret, body)
	given := []byte(signature)
	b64 := hmac.Equal(given, []byte(base64.StdEncoding.EncodeToString(sum)))
	hx := hmac.Equal(given, []byte(hex.EncodeToString(sum)))
	return b64 || hx
}

func mac(channelSecret string, body []byte) []byte {
	h := hmac.New(sha256.New, []byte(channelSecret))
	_, _ = h.Write(body)
	return h.Sum(nil)
}
