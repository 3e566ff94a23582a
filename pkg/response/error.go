package response

// HTTPError is a domain error carrying the status code it should be
// presented with.
type HTTPError struct {
	Message string
	Code    int
	Status  int
}

// NewHTTPError builds an HTTPError.
func NewHTTPError(status, code int, message string) *HTTPError {
	return &HTTPError{
		Message: message,
		Code:    code,
		Status:  status,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}
