// internal/service/errors.go
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Status errors worth naming
var (
	ErrRateLimit      = errors.New("rate limit exceeded (429)")
	ErrServerBusy     = errors.New("server busy (503)")
	ErrBadGateway     = errors.New("bad gateway (502)")
	ErrGatewayTimeout = errors.New("gateway timeout (504)")
)

// Kind categorizes a failed service call
type Kind int

const (
	// KindTransport: the request never produced an HTTP response
	KindTransport Kind = iota
	// KindRejection: the service answered with a non-2xx status
	KindRejection
	// KindMalformed: a 2xx response whose body could not be understood
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindRejection:
		return "rejection"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Error is returned by every Client call that fails.
type Error struct {
	Kind       Kind
	StatusCode int    // 0 for transport failures
	Detail     string // service-supplied detail, if any
	Err        error
}

// Error prefers the service's own detail text.
func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	switch e.Kind {
	case KindMalformed:
		if e.Err != nil {
			return "malformed response: " + e.Err.Error()
		}
		return "malformed response"
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return e.Kind.String() + " error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// statusError returns a descriptive error for HTTP status
func statusError(code int) error {
	switch code {
	case 429:
		return ErrRateLimit
	case 502:
		return ErrBadGateway
	case 503:
		return ErrServerBusy
	case 504:
		return ErrGatewayTimeout
	default:
		return fmt.Errorf("request failed with status code %d", code)
	}
}

// parseDetail extracts a string "detail" field from an error body.
// Anything else (validation lists, HTML error pages) yields "".
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err != nil {
		return ""
	}
	return strings.TrimSpace(detail)
}
