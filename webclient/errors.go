package webclient

import "errors"

// ErrorKind classifies request failures for user feedback.
type ErrorKind int

const (
	// KindValidation covers missing/blank required fields (user-correctable).
	KindValidation ErrorKind = iota + 1
	// KindUpload covers file size/count/IO failures (user-correctable).
	KindUpload
	// KindNetwork covers timeouts, aborts, and unreachable hosts (transient).
	KindNetwork
	// KindPersistence covers unexpected store failures, reported generically.
	KindPersistence
)

// APIError is the single error type the client surfaces. Message is the
// short server-reported text; transport failures carry the underlying
// cause in Err instead.
type APIError struct {
	Kind    ErrorKind
	Message string
	Status  int
	Err     error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	switch e.Kind {
	case KindValidation:
		return "validation failed"
	case KindUpload:
		return "upload failed"
	case KindNetwork:
		return "network failure"
	default:
		return "request failed"
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Kind extracts the classification from an error chain, defaulting to
// KindPersistence for anything unrecognized.
func Kind(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindPersistence
}
