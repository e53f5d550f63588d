package arm

import "fmt"

// RequestError is returned for any management-endpoint response outside the
// expected status codes. Code and Message come from the ARM error envelope
// when one is present.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Code       string
	Message    string
}

func (e *RequestError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s %s failed with status %d: %s: %s", e.Method, e.Path, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%s %s failed with status %d", e.Method, e.Path, e.StatusCode)
}

// armErrorEnvelope matches the two error shapes the management endpoint is
// known to produce.
type armErrorEnvelope struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Code    string `json:"Code"`
	Message string `json:"Message"`
}
