package errors

import (
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/errors"
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
	// Cart-related errors
	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"購物車是空的",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"購物車內找不到該商品",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"商品數量必須大於零",
		"",
	)

	// Product-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"找不到該商品",
		"",
	)

	ErrProductInactive = NewBaseError(
		http.StatusConflict,
		"PRODUCT_INACTIVE",
		"該商品已下架",
		"",
	)

	// Coupon-related errors
	ErrCouponNotFound = NewBaseError(
		http.StatusBadRequest,
		"COUPON_NOT_FOUND",
		"優惠券代碼無效",
		"",
	)

	ErrCouponExpired = NewBaseError(
		http.StatusBadRequest,
		"COUPON_EXPIRED",
		"優惠券已過期或尚未生效",
		"",
	)

	ErrCouponUsageLimitReached = NewBaseError(
		http.StatusConflict,
		"COUPON_USAGE_LIMIT_REACHED",
		"優惠券已達使用上限",
		"",
	)

	ErrCouponAlreadyUsed = NewBaseError(
		http.StatusConflict,
		"COUPON_ALREADY_USED",
		"您已使用過此優惠券",
		"",
	)

	ErrCouponMinPurchase = NewBaseError(
		http.StatusBadRequest,
		"COUPON_MIN_PURCHASE",
		"未達優惠券最低消費金額",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"找不到該訂單",
		"",
	)

	ErrOrderStateConflict = NewBaseError(
		http.StatusConflict,
		"ORDER_STATE_CONFLICT",
		"訂單狀態不允許此操作",
		"",
	)

	// Checkout / payment errors. Gateway detail stays in server logs; the
	// customer only ever sees the generic retryable message.
	ErrPaymentGatewayFailed = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_GATEWAY_FAILED",
		"付款服務暫時無法使用，請稍後再試",
		"",
	)

	ErrConcurrencyConflict = NewBaseError(
		http.StatusConflict,
		"CONCURRENCY_CONFLICT",
		"系統忙碌中，請稍後再試",
		"",
	)

	ErrWebhookSignatureInvalid = NewBaseError(
		http.StatusBadRequest,
		"WEBHOOK_SIGNATURE_INVALID",
		"簽章驗證失敗",
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

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"請先登入",
		"",
	)
)

// InsufficientStockError reports a failed stock check with the quantity still
// available, so the customer gets an actionable message.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Remaining   int
}

// NewInsufficientStockError creates an insufficient-stock error for one product.
func NewInsufficientStockError(productID, productName string, requested, remaining int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID:   productID,
		ProductName: productName,
		Requested:   requested,
		Remaining:   remaining,
	}
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *InsufficientStockError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *InsufficientStockError) ErrorCode() string {
	return "INSUFFICIENT_STOCK"
}

// Message returns the user-friendly error message
func (e *InsufficientStockError) Message() string {
	return fmt.Sprintf("「%s」庫存不足，僅剩 %d 件", e.ProductName, e.Remaining)
}

// Details returns detailed error information
func (e *InsufficientStockError) Details() string {
	return fmt.Sprintf("product %s: requested %d, remaining %d", e.ProductID, e.Requested, e.Remaining)
}

// InsufficientStockListError aggregates every cart line that failed the
// availability check, so the customer can fix the whole cart in one pass
// instead of discovering shortages one checkout attempt at a time.
type InsufficientStockListError struct {
	Lines []*InsufficientStockError
}

// NewInsufficientStockListError creates an aggregate insufficient-stock error.
func NewInsufficientStockListError(lines []*InsufficientStockError) *InsufficientStockListError {
	return &InsufficientStockListError{Lines: lines}
}

// Error implements the error interface
func (e *InsufficientStockListError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *InsufficientStockListError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *InsufficientStockListError) ErrorCode() string {
	return "INSUFFICIENT_STOCK"
}

// Message returns the user-friendly error message
func (e *InsufficientStockListError) Message() string {
	return fmt.Sprintf("有 %d 項商品庫存不足", len(e.Lines))
}

// Details returns detailed error information
func (e *InsufficientStockListError) Details() string {
	details := make([]string, 0, len(e.Lines))
	for _, line := range e.Lines {
		details = append(details, line.Details())
	}

	return strings.Join(details, "; ")
}

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
