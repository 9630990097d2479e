package catalog

import (
	"fmt"
	"regexp"
)

// namePattern constrains command names to lowercase slugs so installed
// filenames are portable and predictable for the host.
var namePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// maxDescriptionLen bounds descriptions so host command pickers render them
// on one line.
const maxDescriptionLen = 200

// ValidationResult carries every rule a definition violated, in check order.
// Callers need the complete set for diagnostics, not just the first failure.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// Validate checks a definition against the catalog's structural rules:
// name pattern, description presence and length, non-empty template, and a
// known agent when one is set. All violations are accumulated.
func Validate(def Definition) ValidationResult {
	var errs []string

	if !namePattern.MatchString(def.Name) {
		errs = append(errs, fmt.Sprintf("name %q must match %s", def.Name, namePattern.String()))
	}
	if def.Description == "" {
		errs = append(errs, "description must not be empty")
	} else if len(def.Description) >= maxDescriptionLen {
		errs = append(errs, fmt.Sprintf("description must be shorter than %d characters (got %d)", maxDescriptionLen, len(def.Description)))
	}
	if def.Template == "" {
		errs = append(errs, "template body must not be empty")
	}
	if def.Agent != "" && !ValidAgent(def.Agent) {
		errs = append(errs, fmt.Sprintf("agent %q must be one of general, plan, build, explore", def.Agent))
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
