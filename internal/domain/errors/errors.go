package errors

import (
	"net/http"

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

// Predefined error types. User-facing messages are Ukrainian, matching the
// storefront's locale; business codes stay English.
var (
	// Catalog-related errors
	ErrProductsLoadFailed = NewBaseError(
		http.StatusBadGateway,
		"PRODUCTS_LOAD_FAILED",
		"Не вдалося завантажити товари",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Товар не знайдено",
		"",
	)

	// Authentication-related errors
	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"Будь ласка, авторизуйтеся перед оформленням замовлення",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Невірна електронна пошта або пароль",
		"",
	)

	ErrLoginFailed = NewBaseError(
		http.StatusBadGateway,
		"LOGIN_FAILED",
		"Помилка входу. Спробуйте пізніше.",
		"",
	)

	ErrRegistrationFailed = NewBaseError(
		http.StatusBadGateway,
		"REGISTRATION_FAILED",
		"Помилка реєстрації. Спробуйте пізніше.",
		"",
	)

	ErrFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"FIELDS_REQUIRED",
		"Заповніть усі поля",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Паролі не збігаються",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Пароль має бути не менше 6 символів",
		"",
	)

	// Checkout-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Перевірте правильність заповнення форми",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"Кошик порожній",
		"",
	)

	ErrUnknownPaymentOption = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_PAYMENT_OPTION",
		"Невідомий спосіб оплати",
		"",
	)

	ErrOrderSaveFailed = NewBaseError(
		http.StatusBadGateway,
		"ORDER_SAVE_FAILED",
		"Помилка при оформленні замовлення. Спробуйте ще раз.",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Замовлення не знайдено",
		"",
	)

	ErrInvalidQRCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"Недійсний QR-код",
		"",
	)

	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Користувач не знайдений",
		"",
	)

	ErrProfileLoadFailed = NewBaseError(
		http.StatusBadGateway,
		"PROFILE_LOAD_FAILED",
		"Помилка завантаження профілю",
		"",
	)

	// Wishlist-related errors
	ErrWishlistUpdateFailed = NewBaseError(
		http.StatusBadGateway,
		"WISHLIST_UPDATE_FAILED",
		"Помилка при роботі зі списком бажань",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Внутрішня помилка сервісу",
		"",
	)

	ErrBackendUnavailable = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_UNAVAILABLE",
		"Помилка завантаження даних",
		"",
	)
)

// FieldErrors carries the per-field validation error map produced by the
// checkout form validator, attached to a VALIDATION_FAILED response.
type FieldErrors struct {
	Fields map[string]string
}

// NewFieldErrors creates a checkout validation error with per-field messages.
func NewFieldErrors(fields map[string]string) *FieldErrors {
	return &FieldErrors{Fields: fields}
}

// Error implements the error interface
func (e *FieldErrors) Error() string {
	return ErrValidationFailed.Message()
}

// HTTPCode returns the HTTP status code
func (e *FieldErrors) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *FieldErrors) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *FieldErrors) Message() string {
	return ErrValidationFailed.Message()
}

// Details returns the field errors joined for logs and responses
func (e *FieldErrors) Details() string {
	details := ""
	for field, msg := range e.Fields {
		if details != "" {
			details += "; "
		}
		details += field + ": " + msg
	}

	return details
}
