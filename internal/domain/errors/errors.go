package errors

import (
	"net/http"

	"harmony/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"找不到該使用者",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"該電子郵件已被註冊",
		"",
	)

	// Authentication-related errors
	ErrIdentityTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"IDENTITY_TOKEN_INVALID",
		"無效的身分驗證權杖",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"無效或已過期的重新整理權杖",
		"",
	)

	// Meal catalog errors
	ErrMealNotFound = NewBaseError(
		http.StatusNotFound,
		"MEAL_NOT_FOUND",
		"找不到該餐點",
		"",
	)

	// Engagement errors.
	// The original API reports duplicate likes/requests as 400, so conflicts
	// carry StatusBadRequest rather than StatusConflict.
	ErrMealAlreadyLiked = NewBaseError(
		http.StatusBadRequest,
		"MEAL_ALREADY_LIKED",
		"您已經按讚過該餐點",
		"",
	)

	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"找不到該評論",
		"",
	)

	ErrReviewInvalid = NewBaseError(
		http.StatusBadRequest,
		"REVIEW_INVALID",
		"評論內容與評分為必填",
		"",
	)

	// Meal request errors
	ErrSubscriptionRequired = NewBaseError(
		http.StatusForbidden,
		"SUBSCRIPTION_REQUIRED",
		"需要有效的訂閱方案",
		"",
	)

	ErrMealAlreadyRequested = NewBaseError(
		http.StatusBadRequest,
		"MEAL_ALREADY_REQUESTED",
		"您已經申請過該餐點",
		"",
	)

	ErrRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUEST_NOT_FOUND",
		"找不到該餐點申請，或已處理完成",
		"",
	)

	// Upcoming meal errors
	ErrUpcomingMealNotFound = NewBaseError(
		http.StatusNotFound,
		"UPCOMING_MEAL_NOT_FOUND",
		"找不到該預告餐點",
		"",
	)

	ErrPremiumRequired = NewBaseError(
		http.StatusForbidden,
		"PREMIUM_REQUIRED",
		"僅限付費會員使用此功能",
		"",
	)

	ErrUpcomingAlreadyLiked = NewBaseError(
		http.StatusBadRequest,
		"UPCOMING_ALREADY_LIKED",
		"您已經按讚過該預告餐點",
		"",
	)

	// Payment errors
	ErrPaymentUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PAYMENT_UNAVAILABLE",
		"付款服務尚未設定，請聯絡管理員",
		"",
	)

	ErrPaymentInvalid = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_INVALID",
		"付款資料驗證失敗",
		"",
	)

	// Image hosting errors
	ErrImageStorageUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"IMAGE_STORAGE_UNAVAILABLE",
		"圖片儲存服務尚未設定，請聯絡管理員",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"未經授權的存取",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
