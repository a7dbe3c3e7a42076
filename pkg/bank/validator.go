package bank

import (
	"fmt"
	"os"
)

// Registry reports which "kind.type" keys can be evaluated.
type Registry interface {
	HasEvaluator(key string) bool
}

// ValidationError represents a validation issue found in a suite
// file.
type ValidationError struct {
	Field   string
	Message string
	Index   int // -1 if not applicable
}

func (e ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("checks[%d].%s: %s", e.Index, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateFile validates a suite file and returns all errors
// found. When registry is not nil, operations it cannot evaluate
// are reported too.
func ValidateFile(path string, registry Registry) []ValidationError {
	data, err := os.ReadFile(path)
	if err != nil {
		return []ValidationError{{Field: "file", Message: err.Error(), Index: -1}}
	}

	file, err := Decode(path, data)
	if err != nil {
		return []ValidationError{{Field: "syntax", Message: err.Error(), Index: -1}}
	}

	return Validate(file, registry)
}

// Validate checks a decoded suite file.
func Validate(file SuiteFile, registry Registry) []ValidationError {
	var errs []ValidationError

	if file.Version == "" {
		errs = append(errs, ValidationError{
			Field: "version", Message: "version is required", Index: -1,
		})
	}

	if len(file.Checks) == 0 {
		errs = append(errs, ValidationError{
			Field: "checks", Message: "at least one check is required", Index: -1,
		})
	}

	ids := make(map[string]bool)
	for i, def := range file.Checks {
		switch {
		case def.ID == "":
			errs = append(errs, ValidationError{
				Field: "id", Message: "check ID is required", Index: i,
			})
		case ids[def.ID]:
			errs = append(errs, ValidationError{
				Field: "id", Message: fmt.Sprintf("duplicate ID: %s", def.ID), Index: i,
			})
		default:
			ids[def.ID] = true
		}

		if def.Kind == "" {
			errs = append(errs, ValidationError{
				Field: "kind", Message: "check kind is required", Index: i,
			})
		}
		if def.Type == "" {
			errs = append(errs, ValidationError{
				Field: "type", Message: "check type is required", Index: i,
			})
		}
		if def.Kind != "" && def.Type != "" && registry != nil &&
			!registry.HasEvaluator(def.Key()) {
			errs = append(errs, ValidationError{
				Field: "type", Message: fmt.Sprintf("unknown operation: %s", def.Key()), Index: i,
			})
		}
		if len(def.BecauseArgs) > 0 && def.Because == "" {
			errs = append(errs, ValidationError{
				Field: "because_args", Message: "arguments given without a reason", Index: i,
			})
		}
	}

	return errs
}
