package errors

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
)

// transientMessageMarkers are substrings in error text that indicate a
// recoverable condition even when no recognizable errno is attached.
var transientMessageMarkers = []string{
	"temporarily unavailable",
	"temporary failure",
	"timed out",
	"timeout",
	"network",
	"connection reset",
	"broken pipe",
	"interrupted",
}

// Classify maps an arbitrary error to its category. A *CLIError keeps its
// existing category; OS-level errors are classified by errno first, then by
// message text. Anything unrecognized is Unclassified and never retried.
func Classify(err error) Category {
	if err == nil {
		return Unclassified
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Category
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.EACCES, syscall.EPERM:
			return Permission
		case syscall.EROFS:
			return ReadOnlyFS
		case syscall.ENOSPC, syscall.EDQUOT:
			return DiskSpace
		case syscall.EAGAIN, syscall.EBUSY, syscall.EINTR, syscall.ETIMEDOUT:
			return Transient
		}
	}

	if errors.Is(err, os.ErrPermission) {
		return Permission
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range transientMessageMarkers {
		if strings.Contains(msg, marker) {
			return Transient
		}
	}

	return Unclassified
}

// IsRetryable reports whether err should be retried under the retry policy.
func IsRetryable(err error) bool {
	return Classify(err) == Transient
}

// defaultRemediation returns the standard guidance for a category.
func defaultRemediation(category Category, path string) []string {
	where := path
	if where == "" {
		where = "the target directory"
	}
	switch category {
	case Permission:
		return []string{
			fmt.Sprintf("Check permissions on %s", where),
			"Run notekit from a directory you own, or fix ownership with chown",
		}
	case ReadOnlyFS:
		return []string{
			fmt.Sprintf("The filesystem containing %s is mounted read-only", where),
			"Remount it writable or choose another directory with --dir",
		}
	case DiskSpace:
		return []string{
			"Free up disk space and run notekit init again",
		}
	case Transient:
		return []string{
			"The failure looked temporary; run notekit init again",
		}
	case Validation:
		return []string{
			"The bundled catalog is defective; reinstall notekit or report a bug",
		}
	default:
		return []string{
			"Run notekit init again; if the failure persists, report a bug",
		}
	}
}
