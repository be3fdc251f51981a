package apperrors

type ErrorCode string

const (
	ErrCodeAuthenticationFailure ErrorCode = "authentication_error"
	ErrCodeBackendUnavailable    ErrorCode = "backend_unavailable"
	ErrCodeForbidden             ErrorCode = "forbidden"
	ErrCodeInternalError         ErrorCode = "internal_error"
	ErrCodeInvalidStudyType      ErrorCode = "invalid_study_type"
	ErrCodeInvalidURLParam       ErrorCode = "invalid_url_param"
	ErrCodeMalformedBody         ErrorCode = "malformed_body"
	ErrCodeNotAuthenticated      ErrorCode = "not_authenticated"
	ErrCodeRateLimitExceeded     ErrorCode = "rate_limit_exceeded"
	ErrCodeResourceNotFound      ErrorCode = "resource_not_found"
	ErrCodeSubmissionRejected    ErrorCode = "submission_rejected"
)
