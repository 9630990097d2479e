// Package errors provides classified error handling for the notekit CLI.
// Every terminal failure reaching the user carries a category, the offending
// path where known, and actionable remediation steps.
package errors

import "fmt"

// Category represents the kind of failure that occurred. The category decides
// retry behavior: only Transient failures are retried.
type Category int

const (
	// Validation means a bundled catalog entry failed structural rules.
	// This is a defect in the build, never a user error.
	Validation Category = iota
	// Permission means the filesystem denied an operation.
	Permission
	// ReadOnlyFS means the target filesystem is mounted read-only.
	ReadOnlyFS
	// DiskSpace means the device is out of space or over quota.
	DiskSpace
	// Transient covers I/O failures expected to resolve on retry.
	Transient
	// State means the persisted installation record is inconsistent.
	State
	// Unclassified covers everything else; treated as non-retryable.
	Unclassified
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case Validation:
		return "Validation Error"
	case Permission:
		return "Permission Error"
	case ReadOnlyFS:
		return "Read-Only Filesystem Error"
	case DiskSpace:
		return "Disk Space Error"
	case Transient:
		return "Transient I/O Error"
	case State:
		return "State Error"
	default:
		return "Error"
	}
}

// CLIError is a classified error with remediation guidance.
type CLIError struct {
	// Category is the kind of failure.
	Category Category
	// Message is a human-readable description of what went wrong.
	Message string
	// Path is the filesystem path involved, when known.
	Path string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Path)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// New creates a classified error with the given message and remediation steps.
func New(category Category, message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    category,
		Message:     message,
		Remediation: remediation,
	}
}

// Wrap wraps err with an explicit category and message.
func Wrap(err error, category Category, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
		Err:         err,
	}
}

// WrapPath classifies err automatically and records the path it occurred on.
// Remediation is filled in from the category's default guidance.
func WrapPath(err error, path, message string) *CLIError {
	if err == nil {
		return nil
	}
	category := Classify(err)
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Path:        path,
		Remediation: defaultRemediation(category, path),
		Err:         err,
	}
}
