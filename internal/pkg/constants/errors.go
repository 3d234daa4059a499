package constants

import "net/http"

// CodedError carries the HTTP status the API layer should answer with.
// The error handler unwraps the chain until it finds one.
type CodedError struct {
	code  int
	msg   string
	cause error
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *CodedError) Code() int { return e.code }

func (e *CodedError) Unwrap() error { return e.cause }

// WithCause derives a new error with the same code and message, so
// errors.Is against the package sentinel still matches.
func (e *CodedError) WithCause(cause error) *CodedError {
	return &CodedError{code: e.code, msg: e.msg, cause: cause}
}

func (e *CodedError) Is(target error) bool {
	t, ok := target.(*CodedError)
	return ok && t.code == e.code && t.msg == e.msg
}

var (
	ErrDBNotFound = NewCodedError(http.StatusNotFound, "record not found")

	// ErrInvalidPayload covers malformed bodies and failed validation tags.
	ErrInvalidPayload = NewCodedError(http.StatusBadRequest, "invalid request payload")

	// ErrMailerNotConfigured is returned before any persistence attempt so a
	// lead is never stored when nobody would be notified about it.
	ErrMailerNotConfigured = NewCodedError(http.StatusInternalServerError, "RESEND_API_KEY non configurata")

	ErrLeadNotStored      = NewCodedError(http.StatusInternalServerError, "failed to store lead")
	ErrNotificationFailed = NewCodedError(http.StatusBadGateway, "failed to send notification email")
)
