// Package errors provides error types and utilities for bucketx.
// It extends the standard errors package with sentinels for the scan's
// failure taxonomy and with helpers to describe transport failures.
package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
)

// Sentinel errors for common failure scenarios
var (
	// ErrTimeout indicates an operation exceeded its time limit
	ErrTimeout = errors.New("operation timed out")

	// ErrConnectionFailed indicates a connection could not be established
	ErrConnectionFailed = errors.New("connection failed")

	// ErrInvalidInput indicates invalid input was provided
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidResponse indicates a response could not be read
	ErrInvalidResponse = errors.New("invalid response")

	// ErrConfiguration indicates the run cannot start (missing wordlist, bad flags)
	ErrConfiguration = errors.New("configuration error")

	// ErrOutputWrite indicates a result artifact could not be appended to.
	// It is fatal: the one-record-per-candidate contract no longer holds.
	ErrOutputWrite = errors.New("output write failed")

	// ErrScanCanceled indicates the scan stopped dispatching before the input was exhausted
	ErrScanCanceled = errors.New("scan was canceled")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: msg, cause: err}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: fmt.Sprintf(format, args...), cause: err}
}

// Mark returns an error that matches both sentinel and err under Is.
func Mark(err, sentinel error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sentinel) {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target interface{}) bool { return errors.As(err, target) }

func Unwrap(err error) error { return errors.Unwrap(err) }

func New(msg string) error { return errors.New(msg) }

func Errorf(format string, args ...interface{}) error { return fmt.Errorf(format, args...) }

// Join returns an error that wraps the given errors. Nil values are discarded.
func Join(errs ...error) error { return errors.Join(errs...) }

// IsTimeout reports whether err is a timeout, either our sentinel, a context
// deadline or a net.Error that says so.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if Is(err, ErrTimeout) || Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return As(err, &ne) && ne.Timeout()
}

func IsConnectionFailed(err error) bool { return Is(err, ErrConnectionFailed) }
func IsInvalidInput(err error) bool     { return Is(err, ErrInvalidInput) }
func IsConfiguration(err error) bool    { return Is(err, ErrConfiguration) }
func IsOutputWrite(err error) bool      { return Is(err, ErrOutputWrite) }
func IsCanceled(err error) bool         { return Is(err, ErrScanCanceled) }

// Describe returns a short, stable description of a transport failure for
// progress lines and logs. Unknown failures fall back to the innermost message.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var dnsErr *net.DNSError
	switch {
	case IsTimeout(err):
		return "timeout"
	case As(err, &dnsErr):
		if dnsErr.IsNotFound {
			return "dns: no such host"
		}
		return "dns: lookup failed"
	case Is(err, syscall.ECONNREFUSED):
		return "connection refused"
	case Is(err, syscall.ECONNRESET):
		return "connection reset"
	}

	var urlErr *url.Error
	if As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}
