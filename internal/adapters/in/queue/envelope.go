package queue

import "encoding/json"

// envelope is the notification wrapper some upstream producers put around
// the event payload. The inner Message field is itself JSON-encoded.
type envelope struct {
	Message   string `json:"Message"`
	MessageID string `json:"MessageId"`
	TopicArn  string `json:"TopicArn"`
	Type      string `json:"Type"`
}

// unwrap returns the inner payload when body is an envelope, or body
// unchanged when it is a flat event. Producers send either shape, so
// detection is by presence of a non-empty Message field.
func unwrap(body []byte) []byte {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return body
	}

	if env.Message == "" {
		return body
	}

	return []byte(env.Message)
}
