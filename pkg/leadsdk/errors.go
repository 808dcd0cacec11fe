package leadsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/leads/pkg/httpx"
)

// Error codes carried in the "error" field of a response body. The auth codes
// name the reason a login or bearer token was refused.
const (
	ErrorCodeInvalidCredentials = "InvalidCredentials"
	ErrorCodeMalformed          = "Malformed"
	ErrorCodeBadSignature       = "BadSignature"
	ErrorCodeExpired            = "Expired"
	ErrorCodeMissing            = "Missing"
	ErrorCodeRevoked            = "Revoked"
	ErrorCodeInvalidRequest     = "InvalidRequest"
	ErrorCodeNotFound           = "NotFound"
	ErrorCodeStoreFailure       = "StoreFailure"
	ErrorCodeServerError        = "ServerError"
	ErrorCodeRateLimited        = "rate_limit_exceeded"
)

// ErrSessionExpired is returned by Session methods once the token's expiry
// has passed; log in again for a new session.
var ErrSessionExpired = errors.New("leadsdk: session expired")

// APIError is a non-2xx response. Servers write it with WriteError and the
// client returns it from every call.
type APIError struct {
	// StatusCode is the HTTP status code
	StatusCode int `json:"-"`

	// Code is the value of the "error" field
	Code string `json:"error"`

	// Details maps field names to problems for InvalidRequest errors
	Details map[string]string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("%d %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("%d %s: %v", e.StatusCode, e.Code, e.Details)
}

// Is matches another *APIError with the same status and code, so callers can
// write errors.Is(err, leadsdk.ErrNotFound).
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.StatusCode == e.StatusCode && t.Code == e.Code
}

// WriteError writes e as a JSON body with its status code.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{Error: e.Code, Details: e.Details})
}

// NewAPIError creates an APIError.
func NewAPIError(statusCode int, code string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code}
}

var (
	ErrInvalidCredentials = NewAPIError(http.StatusUnauthorized, ErrorCodeInvalidCredentials)
	ErrMissing            = NewAPIError(http.StatusUnauthorized, ErrorCodeMissing)
	ErrExpired            = NewAPIError(http.StatusUnauthorized, ErrorCodeExpired)
	ErrInvalidRequest     = NewAPIError(http.StatusBadRequest, ErrorCodeInvalidRequest)
	ErrNotFound           = NewAPIError(http.StatusNotFound, ErrorCodeNotFound)
	ErrStoreFailure       = NewAPIError(http.StatusInternalServerError, ErrorCodeStoreFailure)
	ErrServerError        = NewAPIError(http.StatusInternalServerError, ErrorCodeServerError)
)

// parseErrorResponse builds an *APIError from a non-2xx response.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Error,
			Details:    errResp.Details,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       http.StatusText(resp.StatusCode),
	}
}
