package blockbid

import "encoding/json"

// errorEnvelope matches the exchange's domain error shape. Errors arrive
// either nested ({"error":{"message":...}}) or flat ({"message":...}).
type errorEnvelope struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

// apiErrorMessage returns the upstream error message when the body carries
// the error/message envelope, or "" for a clean payload. Array payloads are
// never envelopes.
func apiErrorMessage(body []byte) string {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	if env.Error != nil && env.Error.Message != "" {
		return env.Error.Message
	}
	return env.Message
}
