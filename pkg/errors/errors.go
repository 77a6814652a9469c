package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Stage errors
	ErrStageNotInitialized     ErrorCode = "STAGE_NOT_INITIALIZED"
	ErrStageAlreadyInitialized ErrorCode = "STAGE_ALREADY_INITIALIZED"

	// Profile errors
	ErrProfileNotFound ErrorCode = "PROFILE_NOT_FOUND"
	ErrProfileDecode   ErrorCode = "PROFILE_DECODE"
	ErrNoEncryptionKey ErrorCode = "NO_ENCRYPTION_KEY"

	// Cipher errors
	ErrInvalidKey                ErrorCode = "INVALID_KEY"
	ErrBase64Decode              ErrorCode = "BASE64_DECODE"
	ErrInvalidCipheredDataLength ErrorCode = "INVALID_CIPHERED_DATA_LENGTH"
	ErrEncrypt                   ErrorCode = "ENCRYPT"
	ErrDecrypt                   ErrorCode = "DECRYPT"
	ErrUtf8Encode                ErrorCode = "UTF8_ENCODE"

	// Rendering errors
	ErrTemplateRender ErrorCode = "TEMPLATE_RENDER"

	// FileSystem errors
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileRemove ErrorCode = "FILE_REMOVE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// Ledger errors
	ErrLedgerLoad  ErrorCode = "LEDGER_LOAD"
	ErrLedgerStore ErrorCode = "LEDGER_STORE"

	// Version control errors
	ErrGitExec              ErrorCode = "GIT_EXEC"
	ErrGitNonZeroExit       ErrorCode = "GIT_NON_ZERO_EXIT"
	ErrGitInvalidChangeType ErrorCode = "GIT_INVALID_CHANGE_TYPE"
	ErrGitInvalidChangeLine ErrorCode = "GIT_INVALID_CHANGE_LINE"
	ErrGitRepository        ErrorCode = "GIT_REPOSITORY"

	// Service errors
	ErrWatchSetup ErrorCode = "WATCH_SETUP"
)

// DotrsError represents a structured error with code and details
type DotrsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotrsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotrsError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a DotrsError carrying the same code
func (e *DotrsError) Is(target error) bool {
	var targetErr *DotrsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotrsError with the given code and message
func New(code ErrorCode, message string) *DotrsError {
	return &DotrsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotrsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotrsError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a DotrsError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *DotrsError {
	if err == nil {
		return nil
	}
	return &DotrsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotrsError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *DotrsError) WithDetail(key string, value interface{}) *DotrsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code anywhere in its chain
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var dotrsErr *DotrsError
		if !errors.As(err, &dotrsErr) {
			return false
		}
		if dotrsErr.Code == code {
			return true
		}
		err = dotrsErr.Wrapped
	}
	return false
}

// GetErrorCode returns the outermost error code, or ErrUnknown if err is not a DotrsError
func GetErrorCode(err error) ErrorCode {
	var dotrsErr *DotrsError
	if errors.As(err, &dotrsErr) {
		return dotrsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotrsError
func GetErrorDetails(err error) map[string]interface{} {
	var dotrsErr *DotrsError
	if errors.As(err, &dotrsErr) {
		return dotrsErr.Details
	}
	return nil
}
