package domain

import "errors"

// Session errors
var (
	ErrNoToken       = errors.New("no auth token present")
	ErrUserCacheMiss = errors.New("cached user not found")
)

// APIError carries a non-2xx response from the remote API: the general
// message plus the field-keyed validation errors, when the server sent any.
type APIError struct {
	StatusCode int                 `json:"-"`
	Message    string              `json:"message"`
	Fields     map[string][]string `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "request failed"
}

// FieldError returns the first validation message for a field, or "".
func (e *APIError) FieldError(name string) string {
	if msgs, ok := e.Fields[name]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// HasFieldErrors reports whether the server returned field-level errors.
// Handlers render those inline; everything else becomes a banner message.
func (e *APIError) HasFieldErrors() bool { return len(e.Fields) > 0 }

// AsAPIError unwraps err to an *APIError if there is one in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
