package messaging

import "encoding/json"

// envelope carries headers for brokers without native header support.
type envelope struct {
	Headers map[string]string `json:"h,omitempty"`
	Body    []byte            `json:"b"`
}

func wrapEnvelope(msg *Message) ([]byte, error) {
	if len(msg.Headers) == 0 {
		return json.Marshal(envelope{Body: msg.Body})
	}
	return json.Marshal(envelope{Headers: msg.Headers, Body: msg.Body})
}

// unwrapEnvelope falls back to the raw payload for producers that publish
// plain bodies.
func unwrapEnvelope(raw []byte) (map[string]string, []byte) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Body == nil {
		return nil, raw
	}
	return env.Headers, env.Body
}
