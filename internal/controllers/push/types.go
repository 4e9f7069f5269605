package push

// PushRequest is the body accepted by POST /push, as JSON or as a form.
type PushRequest struct {
	// To is the user, group or room id. Empty falls back to the configured default recipient.
	To string `json:"to" form:"to"`
	// Text is the message to deliver.
	Text string `json:"text" form:"text"`
	// Key is the push shared key, when it is not sent in the X-PUSH-KEY header.
	Key string `json:"key" form:"key"`
}

// PushResponse is returned after the message was handed to LINE.
type PushResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}
