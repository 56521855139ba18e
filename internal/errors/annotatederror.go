// Package errors provides error annotation with slog attributes and source
// locations on top of the standard library errors package.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
)

// annotatedError carries a message, an optional cause, slog attributes for
// structured logging, and the frame where the error was created.
type annotatedError struct {
	message string
	cause   error
	attrs   []slog.Attr
	frame   runtime.Frame
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// caller resolves the frame skip levels above the caller of caller.
func caller(skip int) runtime.Frame {
	pc := make([]uintptr, 1)
	if runtime.Callers(skip+2, pc) == 0 {
		return runtime.Frame{}
	}
	frame, _ := runtime.CallersFrames(pc).Next()
	return frame
}

// Wrap annotates err with a message and optional slog attributes. The call
// site is recorded so that SlogError can point at the wrapping location
// instead of this package.
func Wrap(err error, message string, attrs ...slog.Attr) error {
	return &annotatedError{
		message: message,
		cause:   err,
		attrs:   attrs,
		frame:   caller(1),
	}
}

// NewSentinel creates an error intended for package-level sentinel values
// checked with Is. No call site is recorded since sentinels are declared
// far from where they are returned.
func NewSentinel(message string) error {
	return &annotatedError{message: message} //nolint:exhaustruct // sentinel has no cause, attrs, nor frame.
}

// DecoratePanic converts a recovered panic value into an annotated error
// pointing at the recover site. Returns nil when v is nil.
func DecoratePanic(v any) error {
	if v == nil {
		return nil
	}
	return &annotatedError{
		message: fmt.Sprintf("panic: %v", v),
		frame:   caller(1),
	}
}

// SlogError renders err as a grouped slog attribute containing the error
// message, the annotations collected from the wrap chain, and the source
// location closest to the root cause.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Any("error", nil)
	}

	var (
		annotations []slog.Attr
		frame       runtime.Frame
	)
	for e := err; e != nil; {
		var annotated *annotatedError
		if !errors.As(e, &annotated) || annotated == nil {
			break
		}
		annotations = append(annotations, annotated.attrs...)
		if annotated.frame.File != "" {
			frame = annotated.frame
		}
		e = annotated.cause
	}

	args := []any{slog.String("message", err.Error())}
	if len(annotations) > 0 {
		annotationArgs := make([]any, len(annotations))
		for i, attr := range annotations {
			annotationArgs[i] = attr
		}
		args = append(args, slog.Group("annotations", annotationArgs...))
	}
	if frame.File != "" {
		args = append(args, slog.String("source", fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)))
	}

	return slog.Group("error", args...)
}

// New mirrors errors.New from the standard library.
func New(text string) error {
	return errors.New(text)
}

// Is mirrors errors.Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As mirrors errors.As from the standard library.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap mirrors errors.Unwrap from the standard library.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join mirrors errors.Join from the standard library.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
