package cli

import apperrors "github.com/raveheart1/notekit/internal/errors"

// Exit codes for the notekit CLI. The codes distinguish failure classes so
// scripts and CI can react without parsing output.
const (
	// ExitSuccess indicates success or a benign no-op.
	ExitSuccess = 0

	// ExitFailure indicates a terminal, non-retryable failure.
	ExitFailure = 1

	// ExitRetryExhausted indicates a transient failure that persisted
	// through the retry budget.
	ExitRetryExhausted = 2

	// ExitInconsistent indicates the installation failed a status check.
	ExitInconsistent = 4
)

// exitCode maps an error category to the process exit code.
func exitCode(category apperrors.Category) int {
	switch category {
	case apperrors.Transient:
		return ExitRetryExhausted
	case apperrors.State:
		return ExitInconsistent
	default:
		return ExitFailure
	}
}
