package errors

import "net/http"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeUnauthorized       ErrorCode = "COMMON_003"
	ErrCodeForbidden          ErrorCode = "COMMON_004"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeConflict           ErrorCode = "COMMON_006"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_007"
	ErrCodeTimeout            ErrorCode = "COMMON_008"
	ErrCodeValidation         ErrorCode = "COMMON_009"
	ErrCodeSerialization      ErrorCode = "COMMON_010"
	ErrCodeDatabaseError      ErrorCode = "COMMON_011"
	ErrCodeCacheError         ErrorCode = "COMMON_012"
	ErrCodeExternalService    ErrorCode = "COMMON_013"

	ErrCodeUnknown ErrorCode = "UNKNOWN"
	CodeOK         ErrorCode = "OK"
)

// General-application case error codes
const (
	ErrCodeCaseNotFound        ErrorCode = "GA_001"
	ErrCodeDecisionMissing     ErrorCode = "GA_002"
	ErrCodeDecisionUnsupported ErrorCode = "GA_003"
	ErrCodeSnapshotInvalid     ErrorCode = "GA_004"
	ErrCodeStateInvalid        ErrorCode = "GA_005"
)

// Calendar / deadline error codes
const (
	ErrCodeHolidayFeedUnavailable ErrorCode = "CAL_001"
	ErrCodeHolidayFeedMalformed   ErrorCode = "CAL_002"
	ErrCodeDeadlineInvalidWindow  ErrorCode = "CAL_003"
)

// Notification error codes
const (
	ErrCodeTemplateUnresolved   ErrorCode = "NTF_001"
	ErrCodeRecipientMissing     ErrorCode = "NTF_002"
	ErrCodeDispatchFailed       ErrorCode = "NTF_003"
	ErrCodeNotifierUnavailable  ErrorCode = "NTF_004"
	ErrCodePlanRoleUnsupported  ErrorCode = "NTF_005"
)

// Document storage error codes
const (
	ErrCodeDocumentNotFound     ErrorCode = "DOC_001"
	ErrCodeDocumentUploadFailed ErrorCode = "DOC_002"
	ErrCodeDocumentTooLarge     ErrorCode = "DOC_003"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.  Codes absent
// from the map are treated as internal server errors by the HTTP layer.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeExternalService:    http.StatusBadGateway,

	ErrCodeCaseNotFound:        http.StatusNotFound,
	ErrCodeDecisionMissing:     http.StatusUnprocessableEntity,
	ErrCodeDecisionUnsupported: http.StatusUnprocessableEntity,
	ErrCodeSnapshotInvalid:     http.StatusUnprocessableEntity,
	ErrCodeStateInvalid:        http.StatusConflict,

	ErrCodeHolidayFeedUnavailable: http.StatusServiceUnavailable,
	ErrCodeHolidayFeedMalformed:   http.StatusInternalServerError,
	ErrCodeDeadlineInvalidWindow:  http.StatusBadRequest,

	ErrCodeTemplateUnresolved:  http.StatusInternalServerError,
	ErrCodeRecipientMissing:    http.StatusUnprocessableEntity,
	ErrCodeDispatchFailed:      http.StatusBadGateway,
	ErrCodeNotifierUnavailable: http.StatusServiceUnavailable,
	ErrCodePlanRoleUnsupported: http.StatusBadRequest,

	ErrCodeDocumentNotFound:     http.StatusNotFound,
	ErrCodeDocumentUploadFailed: http.StatusInternalServerError,
	ErrCodeDocumentTooLarge:     http.StatusRequestEntityTooLarge,
}

// HTTPStatus returns the HTTP status code associated with c, defaulting to
// 500 for unmapped codes.
func (c ErrorCode) HTTPStatus() int {
	if s, ok := ErrorCodeHTTPStatus[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}
