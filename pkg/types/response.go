// Package types holds the JSON envelopes every API response is wrapped in.
package types

// SuccessEnvelope wraps successful payloads under a top-level "data" key.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the public shape of a failed request. Details carries
// field-level validation errors and is omitted for internal failures.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps an APIError under a top-level "error" key.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
