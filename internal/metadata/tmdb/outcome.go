package tmdb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind classifies the result of a tool call.
type Kind int

const (
	KindSuccess Kind = iota
	KindUpstreamError
	KindTransportError
	KindConfigError
	KindValidationError
)

// String returns the kind name used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindUpstreamError:
		return "upstream_error"
	case KindTransportError:
		return "transport_error"
	case KindConfigError:
		return "config_error"
	case KindValidationError:
		return "validation_error"
	default:
		return "unknown"
	}
}

// Outcome is the normalized result of one tool call.
// Exactly one of Body, StatusCode or Message is meaningful, depending on Kind.
type Outcome struct {
	Kind       Kind
	Body       []byte // pretty-printed upstream JSON (KindSuccess)
	StatusCode int    // upstream HTTP status (KindUpstreamError)
	Message    string // diagnostic text (transport, config and validation errors)
}

// Success wraps an already formatted upstream body.
func Success(body []byte) Outcome {
	return Outcome{Kind: KindSuccess, Body: body}
}

// UpstreamError reports a non-2xx upstream status.
func UpstreamError(status int) Outcome {
	return Outcome{Kind: KindUpstreamError, StatusCode: status}
}

// TransportError reports a network, timeout or decode failure.
func TransportError(msg string) Outcome {
	return Outcome{Kind: KindTransportError, Message: msg}
}

// ConfigError reports a missing or unusable configuration value.
func ConfigError(msg string) Outcome {
	return Outcome{Kind: KindConfigError, Message: msg}
}

// ValidationError reports rejected tool arguments.
func ValidationError(msg string) Outcome {
	return Outcome{Kind: KindValidationError, Message: msg}
}

// Failed reports whether the outcome is any kind of error.
func (o Outcome) Failed() bool {
	return o.Kind != KindSuccess
}

// ErrorText returns the message placed under the "error" key.
func (o Outcome) ErrorText() string {
	if o.Kind == KindUpstreamError {
		return fmt.Sprintf("API error: %d", o.StatusCode)
	}
	return o.Message
}

// String renders the outcome as the JSON text handed back to callers.
func (o Outcome) String() string {
	if !o.Failed() {
		return string(o.Body)
	}
	return errorJSON(o.ErrorText())
}

// errorJSON renders {"error": "<msg>"} without HTML escaping.
func errorJSON(msg string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(msg); err != nil {
		return `{"error": "internal error"}`
	}
	return `{"error": ` + strings.TrimSuffix(buf.String(), "\n") + `}`
}

// indentBody re-indents an upstream body with two spaces without decoding it,
// so key order, number literals and string escapes survive untouched.
func indentBody(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(body), "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
