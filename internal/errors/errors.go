// Package errors provides structured error handling for cidr operations.
// It defines error codes, error types, and provides utilities for creating
// and handling parse failures with the offending input attached.
package errors

import (
	"fmt"
)

// ErrorCode represents different types of errors that can occur.
type ErrorCode string

const (
	// General errors.
	CodeUnknown       ErrorCode = "UNKNOWN"
	CodeValidation    ErrorCode = "VALIDATION"
	CodeConfiguration ErrorCode = "CONFIGURATION"

	// Specifier parsing errors.
	CodeTokenParse   ErrorCode = "TOKEN_PARSE"
	CodeAddressParse ErrorCode = "ADDRESS_PARSE"
	CodePrefixRange  ErrorCode = "PREFIX_RANGE"

	// Netmask errors.
	CodeMaskParse ErrorCode = "MASK_PARSE"

	// Network construction errors.
	CodeNetworkConstruction ErrorCode = "NETWORK_CONSTRUCTION"
)

// TokenError represents an error parsing an address specifier token.
type TokenError struct {
	Code    ErrorCode
	Message string
	Token   string
	Cause   error
}

// Error implements the error interface.
func (e *TokenError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("[%s] %s (token: %s)", e.Code, e.Message, e.Token)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *TokenError) Unwrap() error {
	return e.Cause
}

// NewTokenError creates a token error for a specific specifier token.
func NewTokenError(code ErrorCode, message, token string) *TokenError {
	return &TokenError{
		Code:    code,
		Message: message,
		Token:   token,
	}
}

// WrapTokenError wraps an existing error as a token error.
func WrapTokenError(code ErrorCode, message, token string, err error) *TokenError {
	return &TokenError{
		Code:    code,
		Message: message,
		Token:   token,
		Cause:   err,
	}
}

// MaskError represents an error parsing an explicit netmask.
type MaskError struct {
	Code    ErrorCode
	Message string
	Mask    string
	Cause   error
}

// Error implements the error interface.
func (e *MaskError) Error() string {
	if e.Mask != "" {
		return fmt.Sprintf("[%s] %s (mask: %s)", e.Code, e.Message, e.Mask)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *MaskError) Unwrap() error {
	return e.Cause
}

// NewMaskError creates a new mask error.
func NewMaskError(code ErrorCode, message, mask string) *MaskError {
	return &MaskError{
		Code:    code,
		Message: message,
		Mask:    mask,
	}
}

// WrapMaskError wraps an existing error as a mask error.
func WrapMaskError(code ErrorCode, message, mask string, err error) *MaskError {
	return &MaskError{
		Code:    code,
		Message: message,
		Mask:    mask,
		Cause:   err,
	}
}

// NetworkError represents an error constructing a network from an
// address and prefix that individually parsed.
type NetworkError struct {
	Code    ErrorCode
	Message string
	Network string
	Cause   error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.Network != "" {
		return fmt.Sprintf("[%s] %s (network: %s)", e.Code, e.Message, e.Network)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// NewNetworkError creates a new network construction error.
func NewNetworkError(code ErrorCode, message, network string) *NetworkError {
	return &NetworkError{
		Code:    code,
		Message: message,
		Network: network,
	}
}

// WrapNetworkError wraps an existing error as a network error.
func WrapNetworkError(code ErrorCode, message, network string, err error) *NetworkError {
	return &NetworkError{
		Code:    code,
		Message: message,
		Network: network,
		Cause:   err,
	}
}

// ConfigError represents configuration-related errors.
type ConfigError struct {
	Code    ErrorCode
	Message string
	Field   string
	Value   interface{}
	Cause   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s (field: %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new configuration error.
func NewConfigError(code ErrorCode, message string) *ConfigError {
	return &ConfigError{
		Code:    code,
		Message: message,
	}
}

// NewConfigFieldError creates a configuration error for a specific field.
func NewConfigFieldError(code ErrorCode, message, field string, value interface{}) *ConfigError {
	return &ConfigError{
		Code:    code,
		Message: message,
		Field:   field,
		Value:   value,
	}
}

// WrapConfigError wraps an existing error as a configuration error.
func WrapConfigError(code ErrorCode, message string, err error) *ConfigError {
	return &ConfigError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Utility functions for common error operations

// IsCode checks if an error has a specific error code.
func IsCode(err error, code ErrorCode) bool {
	switch e := err.(type) {
	case *TokenError:
		return e.Code == code
	case *MaskError:
		return e.Code == code
	case *NetworkError:
		return e.Code == code
	case *ConfigError:
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error if it has one.
func GetCode(err error) ErrorCode {
	switch e := err.(type) {
	case *TokenError:
		return e.Code
	case *MaskError:
		return e.Code
	case *NetworkError:
		return e.Code
	case *ConfigError:
		return e.Code
	}
	return CodeUnknown
}

// Common error creation functions

// ErrInvalidAddress creates an error for a token whose embedded address
// does not parse as a dotted-quad IPv4 address.
func ErrInvalidAddress(token string, err error) *TokenError {
	return WrapTokenError(CodeAddressParse, "Invalid IPv4 address in specifier", token, err)
}

// ErrInvalidPrefix creates an error for a non-numeric prefix length.
func ErrInvalidPrefix(token string, err error) *TokenError {
	return WrapTokenError(CodeTokenParse, "Invalid prefix length in specifier", token, err)
}

// ErrPrefixOutOfRange creates an error for a prefix length outside [0, 32].
func ErrPrefixOutOfRange(token string) *TokenError {
	return NewTokenError(CodePrefixRange, "Prefix length must be between 0 and 32", token)
}

// ErrInvalidMask creates an error for an unparsable netmask.
func ErrInvalidMask(mask string, err error) *MaskError {
	return WrapMaskError(CodeMaskParse, "Invalid network mask", mask, err)
}

// ErrConfigInvalid creates an error for invalid configuration.
func ErrConfigInvalid(field string, value interface{}) *ConfigError {
	return NewConfigFieldError(CodeValidation, "Invalid configuration value", field, value)
}
